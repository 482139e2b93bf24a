package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokesapi/src/core/domain"
	"jokesapi/src/core/ports"
)

// runRepositoryContract exercises the behavior every adapter shares.
// newRepo must return an empty store.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) ports.JokeRepository) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Insert(ctx, newJoke(3, "S", "P"))
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, 0, created.Version)

		found, err := r.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, *created, found[0])
	})

	t.Run("list completeness", func(t *testing.T) {
		r := newRepo(t)
		empty, err := r.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		ids := map[string]bool{}
		for i := 0; i < 3; i++ {
			j, err := r.Insert(ctx, newJoke(i, "setup", "punchline"))
			require.NoError(t, err)
			ids[j.ID] = true
		}

		all, err := r.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		for _, j := range all {
			assert.True(t, ids[j.ID])
			delete(ids, j.ID)
		}
	})

	t.Run("update is partial", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Insert(ctx, newJoke(5, "old setup", "old punchline"))
		require.NoError(t, err)

		punchline := "new"
		updated, err := r.UpdateByID(ctx, created.ID, domain.JokeFields{Punchline: &punchline})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, 5, updated.Type)
		assert.Equal(t, "old setup", updated.Setup)
		assert.Equal(t, "new", updated.Punchline)
		assert.Equal(t, created.Version+1, updated.Version)
	})

	t.Run("update of a missing id matches nothing", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Insert(ctx, newJoke(1, "a", "b"))
		require.NoError(t, err)
		_, err = r.DeleteByID(ctx, created.ID)
		require.NoError(t, err)

		setup := "x"
		updated, err := r.UpdateByID(ctx, created.ID, domain.JokeFields{Setup: &setup})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("update rejects blank fields", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Insert(ctx, newJoke(1, "a", "b"))
		require.NoError(t, err)

		blank := ""
		_, err = r.UpdateByID(ctx, created.ID, domain.JokeFields{Setup: &blank})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("delete reports whether a joke matched", func(t *testing.T) {
		r := newRepo(t)
		created, err := r.Insert(ctx, newJoke(1, "a", "b"))
		require.NoError(t, err)

		deleted, err := r.DeleteByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = r.DeleteByID(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		found, err := r.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("find one by type", func(t *testing.T) {
		r := newRepo(t)
		a, err := r.Insert(ctx, newJoke(7, "a", "a"))
		require.NoError(t, err)
		b, err := r.Insert(ctx, newJoke(7, "b", "b"))
		require.NoError(t, err)

		got, err := r.FindOneByType(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Contains(t, []string{a.ID, b.ID}, got.ID)

		none, err := r.FindOneByType(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("insert validates and persists nothing on failure", func(t *testing.T) {
		r := newRepo(t)
		jokeType, punchline := 1, "P"
		_, err := r.Insert(ctx, domain.JokeFields{Type: &jokeType, Punchline: &punchline})
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
		assert.Equal(t, "setup", domain.AsStoreError(err).Field)

		all, err := r.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
