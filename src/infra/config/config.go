// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store drivers accepted by StoreConfig.Driver.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=3002, APP_LOG_LEVEL=debug
type Config struct {
	// Server configuration (embedded to flatten env vars)
	Server ServerConfig

	// Store selects and configures the document store
	Store StoreConfig

	// Database configuration for the postgres driver
	Database DatabaseConfig

	// Logging configuration (embedded to flatten env vars)
	Log LogConfig

	// API behavior switches
	API APIConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 3002)
	Port int `envconfig:"PORT" default:"3002"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// StoreConfig holds document store settings.
type StoreConfig struct {
	// Driver is one of mongo, postgres, memory (default: mongo)
	Driver string `envconfig:"STORE_DRIVER" default:"mongo"`

	// Connection is the MongoDB connection string. APP_DB_CONNECTION wins,
	// a bare DB_CONNECTION is read as a fallback.
	Connection string `envconfig:"DB_CONNECTION" default:"mongodb://localhost:27017"`

	// Database is the MongoDB database name. Empty means the one named in
	// Connection, or "test" when the URI names none.
	Database string `envconfig:"DB_DATABASE"`

	// Collection holds the joke documents (default: jokes)
	Collection string `envconfig:"DB_COLLECTION" default:"jokes"`

	// ConnectTimeout bounds the startup connection and ping (default: 10s)
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`

	// QueryTimeout bounds each store call; zero leaves it to the driver (default: 0)
	QueryTimeout time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"0s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// Host is the database host (default: localhost)
	Host string `envconfig:"PG_HOST" default:"localhost"`

	// Port is the database port (default: 5432)
	Port int `envconfig:"PG_PORT" default:"5432"`

	// User is the database user (default: postgres)
	User string `envconfig:"PG_USER" default:"postgres"`

	// Password is the database password (required in production)
	Password string `envconfig:"PG_PASSWORD" default:"postgres"`

	// Name is the database name (default: jokes)
	Name string `envconfig:"PG_NAME" default:"jokes"`

	// SSLMode is the SSL mode for the connection (default: disable)
	SSLMode string `envconfig:"PG_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 25)
	MaxOpenConns int `envconfig:"PG_MAX_OPEN_CONNS" default:"25"`

	// MaxIdleConns is the maximum number of idle connections (default: 5)
	MaxIdleConns int `envconfig:"PG_MAX_IDLE_CONNS" default:"5"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"PG_CONN_MAX_LIFETIME" default:"5m"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// APIConfig holds switches for client-visible behavior.
type APIConfig struct {
	// CORSAllowedOrigins is a comma separated list of origins, or * (default: *)
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// StrictNotFound makes update and delete of a missing id fail (default: false)
	StrictNotFound bool `envconfig:"STRICT_NOT_FOUND" default:"false"`

	// TypedErrorStatus maps failures to 400/404/500/503 instead of 409 (default: false)
	TypedErrorStatus bool `envconfig:"TYPED_ERROR_STATUS" default:"false"`

	// DocsServerURL is advertised as the server in the OpenAPI document (default: http://localhost:3002)
	DocsServerURL string `envconfig:"DOCS_SERVER_URL" default:"http://localhost:3002"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate rejects settings envconfig cannot check on its own.
func (c *StoreConfig) Validate() error {
	switch c.Driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Driver)
	}
	if c.Driver == DriverMongo && strings.TrimSpace(c.Connection) == "" {
		return fmt.Errorf("store connection string is empty")
	}
	return nil
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	if err := envconfig.Process("APP", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Store); err != nil {
		return nil, fmt.Errorf("failed to load store config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.API); err != nil {
		return nil, fmt.Errorf("failed to load api config: %w", err)
	}

	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if err := cfg.Store.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}

	return &cfg, nil
}
