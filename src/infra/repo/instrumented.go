package repo

import (
	"context"
	"time"

	"jokesapi/src/core/domain"
	"jokesapi/src/core/ports"
	"jokesapi/src/infra/metrics"
)

// Instrumented records a Prometheus sample for every call to the wrapped
// repository.
type Instrumented struct {
	next   ports.JokeRepository
	driver string
}

// NewInstrumented wraps next. driver labels the samples.
func NewInstrumented(next ports.JokeRepository, driver string) *Instrumented {
	return &Instrumented{next: next, driver: driver}
}

func (r *Instrumented) Health(ctx context.Context) error {
	return r.next.Health(ctx)
}

func (r *Instrumented) FindAll(ctx context.Context) (jokes []domain.Joke, err error) {
	defer r.observe("find_all", time.Now(), &err)
	return r.next.FindAll(ctx)
}

func (r *Instrumented) FindByID(ctx context.Context, id string) (jokes []domain.Joke, err error) {
	defer r.observe("find_by_id", time.Now(), &err)
	return r.next.FindByID(ctx, id)
}

func (r *Instrumented) FindOneByType(ctx context.Context, jokeType int) (joke *domain.Joke, err error) {
	defer r.observe("find_one_by_type", time.Now(), &err)
	return r.next.FindOneByType(ctx, jokeType)
}

func (r *Instrumented) Insert(ctx context.Context, fields domain.JokeFields) (joke *domain.Joke, err error) {
	defer r.observe("insert", time.Now(), &err)
	return r.next.Insert(ctx, fields)
}

func (r *Instrumented) UpdateByID(ctx context.Context, id string, fields domain.JokeFields) (joke *domain.Joke, err error) {
	defer r.observe("update_by_id", time.Now(), &err)
	return r.next.UpdateByID(ctx, id, fields)
}

func (r *Instrumented) DeleteByID(ctx context.Context, id string) (deleted bool, err error) {
	defer r.observe("delete_by_id", time.Now(), &err)
	return r.next.DeleteByID(ctx, id)
}

func (r *Instrumented) observe(op string, start time.Time, errp *error) {
	result := "ok"
	if errp != nil && *errp != nil {
		result = string(domain.AsStoreError(*errp).Kind())
	}
	metrics.ObserveStoreOp(r.driver, op, result, time.Since(start))
}
