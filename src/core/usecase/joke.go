package usecase

import (
	"context"
	"log/slog"

	"jokesapi/src/core/domain"
	"jokesapi/src/core/ports"
)

// JokeService runs the joke operations. Each method is one repository call.
type JokeService struct {
	repo ports.JokeRepository
	log  *slog.Logger

	// strictNotFound turns no-op updates and deletes into not found errors.
	strictNotFound bool
}

// JokeServiceOption configures a JokeService.
type JokeServiceOption func(*JokeService)

// WithStrictNotFound reports missing ids on update and delete as
// domain.ErrNotFound instead of succeeding with empty data.
func WithStrictNotFound(strict bool) JokeServiceOption {
	return func(s *JokeService) {
		s.strictNotFound = strict
	}
}

func NewJokeService(repo ports.JokeRepository, log *slog.Logger, opts ...JokeServiceOption) *JokeService {
	s := &JokeService{repo: repo, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *JokeService) List(ctx context.Context) ([]domain.Joke, error) {
	jokes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.fail("list jokes", err)
	}
	return jokes, nil
}

func (s *JokeService) GetByID(ctx context.Context, id string) ([]domain.Joke, error) {
	jokes, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("get joke by id", err, "joke_id", id)
	}
	return jokes, nil
}

func (s *JokeService) GetByType(ctx context.Context, jokeType int) (*domain.Joke, error) {
	joke, err := s.repo.FindOneByType(ctx, jokeType)
	if err != nil {
		return nil, s.fail("get joke by type", err, "type", jokeType)
	}
	return joke, nil
}

func (s *JokeService) Create(ctx context.Context, fields domain.JokeFields) (*domain.Joke, error) {
	joke, err := s.repo.Insert(ctx, fields)
	if err != nil {
		return nil, s.fail("create joke", err)
	}
	s.log.Debug("joke created", "joke_id", joke.ID, "type", joke.Type)
	return joke, nil
}

func (s *JokeService) Update(ctx context.Context, id string, fields domain.JokeFields) (*domain.Joke, error) {
	joke, err := s.repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, s.fail("update joke", err, "joke_id", id)
	}
	if joke == nil && s.strictNotFound {
		return nil, domain.NewNotFoundError("joke")
	}
	return joke, nil
}

func (s *JokeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return s.fail("delete joke", err, "joke_id", id)
	}
	if !deleted && s.strictNotFound {
		return domain.NewNotFoundError("joke")
	}
	return nil
}

// fail logs the failure and normalizes it to a *domain.StoreError.
func (s *JokeService) fail(op string, err error, args ...any) error {
	se := domain.AsStoreError(err)
	attrs := append([]any{"op", op, "kind", se.Kind(), "error", err}, args...)
	if se.Kind() == domain.KindValidation {
		s.log.Debug("joke operation rejected", attrs...)
	} else {
		s.log.Warn("joke operation failed", attrs...)
	}
	return se
}
