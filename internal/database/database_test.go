package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	t.Run("leaves sqlite queries untouched", func(t *testing.T) {
		q := "SELECT value FROM kv_entries WHERE namespace = ? AND entry_key = ?"
		assert.Equal(t, q, Rebind("sqlite", q))
	})

	t.Run("numbers placeholders for postgres", func(t *testing.T) {
		got := Rebind("pgx", "DELETE FROM kv_entries WHERE namespace = ? AND updated_at < ?")
		assert.Equal(t, "DELETE FROM kv_entries WHERE namespace = $1 AND updated_at < $2", got)
	})
}

func TestMigrate(t *testing.T) {
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	version, err := Migrate(context.Background(), db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Running twice is a no-op.
	version, err = Migrate(context.Background(), db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = db.Exec("INSERT INTO kv_entries (namespace, entry_key, value, updated_at) VALUES ('n', 'k', 'v', 0)")
	assert.NoError(t, err)
	assert.NoError(t, HealthCheck(db))
}

func TestSchemaStatus(t *testing.T) {
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = Migrate(context.Background(), db, "sqlite")
	require.NoError(t, err)

	version, pending, err := SchemaStatus(context.Background(), db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.False(t, pending)
}
