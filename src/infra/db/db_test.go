package db

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokesapi/src/infra/config"
	"jokesapi/src/infra/logger"
)

func TestNewMongoUnreachable(t *testing.T) {
	_, err := NewMongo(context.Background(), config.StoreConfig{
		Connection:     "mongodb://127.0.0.1:1",
		Database:       "jokes",
		ConnectTimeout: 200 * time.Millisecond,
	}, logger.Discard())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping mongo")
}

func TestNewMongoBadURI(t *testing.T) {
	_, err := NewMongo(context.Background(), config.StoreConfig{
		Connection:     "not-a-uri",
		ConnectTimeout: time.Second,
	}, logger.Discard())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create mongo client")
}

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StoreConfig
		want string
	}{
		{"configured name wins", config.StoreConfig{Connection: "mongodb://localhost:27017/coursework", Database: "jokes"}, "jokes"},
		{"taken from the uri path", config.StoreConfig{Connection: "mongodb://user:pw@localhost:27017/coursework?authSource=admin"}, "coursework"},
		{"uri without a path", config.StoreConfig{Connection: "mongodb://localhost:27017"}, "test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DatabaseName(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatabaseNameBadURI(t *testing.T) {
	_, err := DatabaseName(config.StoreConfig{Connection: "not-a-uri"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse mongo connection string")
}

func TestNewPostgresFromDSNBadDSN(t *testing.T) {
	_, err := NewPostgresFromDSN(context.Background(), "postgres://%zz", logger.Discard())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse database config")
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS jokes")
}
