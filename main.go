// Package main is the entry point for the Jokes API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"jokesapi/src/app/server"
	"jokesapi/src/core/ports"
	"jokesapi/src/infra/config"
	"jokesapi/src/infra/db"
	"jokesapi/src/infra/logger"
	"jokesapi/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"store", cfg.Store.Driver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jokes, closeStore, err := openStore(ctx, cfg, logger.WithComponent(log, "store"))
	if err != nil {
		return err
	}
	defer closeStore()

	// Create and run HTTP server
	srv, err := server.New(cfg, log, repo.NewInstrumented(jokes, cfg.Store.Driver))
	if err != nil {
		return err
	}

	// Run blocks until a shutdown signal cancels ctx
	return srv.Run(ctx)
}

// openStore connects the configured driver and returns its joke repository
// with a matching close function.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (ports.JokeRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		m, err := db.NewMongo(ctx, cfg.Store, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { m.Close(context.Background()) }
		return repo.NewMongoRepository(m, cfg.Store.Collection, cfg.Store.QueryTimeout, log), closeFn, nil

	case config.DriverPostgres:
		pg, err := db.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return repo.NewPostgresRepository(pg, cfg.Store.QueryTimeout, log), pg.Close, nil

	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return repo.NewMemoryRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
