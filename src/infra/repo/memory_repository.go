package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"jokesapi/src/core/domain"
)

// MemoryRepository keeps jokes in process memory, in insertion order.
// Ids are 24 hex digits so they look like the ones Mongo hands out.
type MemoryRepository struct {
	mu     sync.RWMutex
	jokes  []domain.Joke
	nextID uint64
}

// NewMemoryRepository returns an empty store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Health(context.Context) error {
	return nil
}

func (r *MemoryRepository) FindAll(context.Context) ([]domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.jokes), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) ([]domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return []domain.Joke{r.jokes[i]}, nil
	}
	return []domain.Joke{}, nil
}

func (r *MemoryRepository) FindOneByType(_ context.Context, jokeType int) (*domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, j := range r.jokes {
		if j.Type == jokeType {
			return &j, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) Insert(_ context.Context, fields domain.JokeFields) (*domain.Joke, error) {
	if err := validateNew(fields); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	j := domain.Joke{ID: fmt.Sprintf("%024x", r.nextID)}
	fields.Apply(&j)
	r.jokes = append(r.jokes, j)
	return &j, nil
}

func (r *MemoryRepository) UpdateByID(_ context.Context, id string, fields domain.JokeFields) (*domain.Joke, error) {
	if err := validatePatch(fields); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	fields.Apply(&r.jokes[i])
	r.jokes[i].Version++
	j := r.jokes[i]
	return &j, nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.jokes = slices.Delete(r.jokes, i, i+1)
	return true, nil
}

// indexOf must be called with r.mu held.
func (r *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(r.jokes, func(j domain.Joke) bool { return j.ID == id })
}
