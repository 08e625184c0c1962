package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "localhost:5001", cfg.Server.Addr)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 500*time.Millisecond, cfg.Search.Debounce)
		assert.Equal(t, 5, cfg.Search.RecentLimit)
		assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
		assert.Equal(t, "@every 15m", cfg.Scheduler.ClientRefresh)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("BACKEND_BASE_URL", "http://api.local/")
		t.Setenv("SEARCH_DEBOUNCE", "250ms")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "localhost:9090", cfg.Server.Addr)
		assert.Equal(t, "http://api.local", cfg.Backend.BaseURL)
		assert.Equal(t, 250*time.Millisecond, cfg.Search.Debounce)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("rejects pgx without DATABASE_URL", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "pgx")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects malformed durations", func(t *testing.T) {
		t.Setenv("BACKEND_TIMEOUT", "soon")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects a zero recent search limit", func(t *testing.T) {
		t.Setenv("RECENT_SEARCH_LIMIT", "0")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	assert.Equal(t, "./x.db", DatabaseConfig{Driver: "sqlite", Path: "./x.db"}.DSN())
	assert.Equal(t, "postgres://u@h/db", DatabaseConfig{Driver: "pgx", URL: "postgres://u@h/db"}.DSN())
}
