package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobiliaria/portal-locacao/internal/kvstore"
	"github.com/imobiliaria/portal-locacao/internal/repository"
	"github.com/imobiliaria/portal-locacao/internal/testutil"
)

func TestKVRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		repo := repository.NewKVRepository(testutil.SetupTestDB(t), "sqlite")

		_, err := repo.Get(ctx, "recent", "nobody")
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("set overwrites existing value", func(t *testing.T) {
		repo := repository.NewKVRepository(testutil.SetupTestDB(t), "sqlite")

		require.NoError(t, repo.Set(ctx, "recent", "u1", []byte(`["ana"]`)))
		require.NoError(t, repo.Set(ctx, "recent", "u1", []byte(`["bruno"]`)))

		got, err := repo.Get(ctx, "recent", "u1")
		require.NoError(t, err)
		assert.Equal(t, `["bruno"]`, string(got))
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		repo := repository.NewKVRepository(testutil.SetupTestDB(t), "sqlite")

		require.NoError(t, repo.Set(ctx, "recent", "u1", []byte("x")))
		require.NoError(t, repo.Delete(ctx, "recent", "u1"))
		require.NoError(t, repo.Delete(ctx, "recent", "u1"))

		_, err := repo.Get(ctx, "recent", "u1")
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("prune only touches old entries of the namespace", func(t *testing.T) {
		repo := repository.NewKVRepository(testutil.SetupTestDB(t), "sqlite")
		cutoff := time.Now().Add(-time.Hour)

		require.NoError(t, repo.Set(ctx, "recent", "fresh", []byte("x")))
		require.NoError(t, repo.Set(ctx, "other", "fresh", []byte("x")))

		removed, err := repo.Prune(ctx, "recent", cutoff)
		require.NoError(t, err)
		assert.Equal(t, int64(0), removed)

		removed, err = repo.Prune(ctx, "recent", time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		_, err = repo.Get(ctx, "other", "fresh")
		assert.NoError(t, err)
	})
}
