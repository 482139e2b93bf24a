package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3002, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3002", cfg.Server.Addr())
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "jokes", cfg.Store.Collection)
	assert.Empty(t, cfg.Store.Database)
	assert.Equal(t, 10*time.Second, cfg.Store.ConnectTimeout)
	assert.Equal(t, []string{"*"}, cfg.API.CORSAllowedOrigins)
	assert.False(t, cfg.API.StrictNotFound)
	assert.False(t, cfg.API.TypedErrorStatus)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_STORE_DRIVER", " Postgres ")
	t.Setenv("APP_PG_HOST", "db")
	t.Setenv("APP_STRICT_NOT_FOUND", "true")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://postgres:postgres@db:5432/jokes?sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.API.StrictNotFound)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.API.CORSAllowedOrigins)
}

func TestLoadConnectionFallback(t *testing.T) {
	t.Setenv("DB_CONNECTION", "mongodb://legacy:27017")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://legacy:27017", cfg.Store.Connection)

	t.Setenv("APP_DB_CONNECTION", "mongodb://prefixed:27017")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://prefixed:27017", cfg.Store.Connection)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_STORE_DRIVER", "cassandra")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store driver")
}
