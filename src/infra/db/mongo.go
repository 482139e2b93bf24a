package db

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"jokesapi/src/infra/config"
)

// Mongo wraps a MongoDB client bound to one database.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *slog.Logger
}

// NewMongo connects to MongoDB and verifies the connection with a ping.
// The client pools connections and is safe for concurrent use.
func NewMongo(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Connection).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	name, err := DatabaseName(cfg)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Info("Connection to DB established",
		"driver", config.DriverMongo,
		"database", name,
	)

	return &Mongo{
		Client: client,
		DB:     client.Database(name),
		log:    log,
	}, nil
}

// defaultDatabase is the database the driver used when neither the config
// nor the URI names one.
const defaultDatabase = "test"

// DatabaseName resolves the database to use: the configured name, then the
// path of the connection string, then "test".
func DatabaseName(cfg config.StoreConfig) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}
	cs, err := connstring.ParseAndValidate(cfg.Connection)
	if err != nil {
		return "", fmt.Errorf("failed to parse mongo connection string: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return defaultDatabase, nil
}

// Close disconnects the client.
// Call this during graceful shutdown.
func (m *Mongo) Close(ctx context.Context) {
	if m.Client == nil {
		return
	}
	if err := m.Client.Disconnect(ctx); err != nil {
		m.log.Warn("mongo disconnect failed", "error", err)
		return
	}
	m.log.Info("database connection closed")
}

// Health checks if the primary is reachable.
func (m *Mongo) Health(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}
