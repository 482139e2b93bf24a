// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"jokesapi/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// JokeRepository is the data access layer for jokes. Every method issues a
// single store query and returns *domain.StoreError on failure.
type JokeRepository interface {
	Repository

	// FindAll returns every joke in the store's natural order.
	FindAll(ctx context.Context) ([]domain.Joke, error)

	// FindByID returns a filtered list holding zero or one joke.
	FindByID(ctx context.Context, id string) ([]domain.Joke, error)

	// FindOneByType returns the first joke of the given type, or nil.
	FindOneByType(ctx context.Context, jokeType int) (*domain.Joke, error)

	// Insert validates and persists a new joke, returning it with its id
	// and version assigned.
	Insert(ctx context.Context, fields domain.JokeFields) (*domain.Joke, error)

	// UpdateByID replaces the present fields of the matching joke and
	// returns the post-update record, or nil when nothing matched.
	UpdateByID(ctx context.Context, id string, fields domain.JokeFields) (*domain.Joke, error)

	// DeleteByID removes the matching joke and reports whether one existed.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
