package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokesapi/src/core/domain"
)

// stubRepo returns canned results and records the last call.
type stubRepo struct {
	jokes   []domain.Joke
	joke    *domain.Joke
	deleted bool
	err     error

	lastID string
}

func (r *stubRepo) Health(context.Context) error { return r.err }

func (r *stubRepo) FindAll(context.Context) ([]domain.Joke, error) {
	return r.jokes, r.err
}

func (r *stubRepo) FindByID(_ context.Context, id string) ([]domain.Joke, error) {
	r.lastID = id
	return r.jokes, r.err
}

func (r *stubRepo) FindOneByType(context.Context, int) (*domain.Joke, error) {
	return r.joke, r.err
}

func (r *stubRepo) Insert(context.Context, domain.JokeFields) (*domain.Joke, error) {
	return r.joke, r.err
}

func (r *stubRepo) UpdateByID(_ context.Context, id string, _ domain.JokeFields) (*domain.Joke, error) {
	r.lastID = id
	return r.joke, r.err
}

func (r *stubRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	r.lastID = id
	return r.deleted, r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJokeServiceDeleteMissingSucceedsByDefault(t *testing.T) {
	repo := &stubRepo{deleted: false}
	svc := NewJokeService(repo, discardLogger())

	require.NoError(t, svc.Delete(context.Background(), "abc"))
	assert.Equal(t, "abc", repo.lastID)
}

func TestJokeServiceStrictNotFound(t *testing.T) {
	repo := &stubRepo{}
	svc := NewJokeService(repo, discardLogger(), WithStrictNotFound(true))

	err := svc.Delete(context.Background(), "abc")
	assert.True(t, domain.IsNotFound(err))

	joke, err := svc.Update(context.Background(), "abc", domain.JokeFields{})
	assert.Nil(t, joke)
	assert.True(t, domain.IsNotFound(err))
}

func TestJokeServiceUpdateMissingReturnsNil(t *testing.T) {
	svc := NewJokeService(&stubRepo{}, discardLogger())

	joke, err := svc.Update(context.Background(), "abc", domain.JokeFields{})
	require.NoError(t, err)
	assert.Nil(t, joke)
}

func TestJokeServiceNormalizesErrors(t *testing.T) {
	svc := NewJokeService(&stubRepo{err: errors.New("socket closed")}, discardLogger())

	_, err := svc.List(context.Background())
	require.Error(t, err)

	var se *domain.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.KindStore, se.Kind())
}

func TestJokeServiceKeepsStoreErrorKind(t *testing.T) {
	repoErr := domain.NewValidationError("setup", "Path `setup` is required.")
	svc := NewJokeService(&stubRepo{err: repoErr}, discardLogger())

	_, err := svc.Create(context.Background(), domain.JokeFields{})
	assert.Same(t, repoErr, err)
}

func TestJokeServicePassesResults(t *testing.T) {
	j := domain.Joke{ID: "1", Type: 2, Setup: "s", Punchline: "p"}
	svc := NewJokeService(&stubRepo{jokes: []domain.Joke{j}, joke: &j}, discardLogger())
	ctx := context.Background()

	list, err := svc.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Joke{j}, list)

	got, err := svc.GetByType(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &j, got)
}
