// Package db provides document store connection management.
//
// This package is responsible for:
//   - MongoDB client initialization (the default store)
//   - PostgreSQL connection pool initialization for the JSONB store
//   - Schema migrations for PostgreSQL, embedded and applied with goose
//   - Connection health checks
//
// Example usage:
//
//	mongo, err := db.NewMongo(ctx, cfg.Store, log)
//	if err != nil {
//	    return err
//	}
//	defer mongo.Close(context.Background())
package db
