package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/repository"
	"github.com/campushub/events-api/internal/store"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	alice := domain.User{
		ID:       "student-1",
		Name:     "Alice",
		Email:    "alice@x.edu",
		Password: "secret123",
		Role:     domain.RoleStudent,
	}

	t.Run("empty store lists no users", func(t *testing.T) {
		repo := repository.NewUserRepository(store.NewMemoryStore())

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("create then find", func(t *testing.T) {
		repo := repository.NewUserRepository(store.NewMemoryStore())

		_, err := repo.Create(ctx, alice)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, "student-1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", found.Name)

		_, err = repo.FindByID(ctx, "student-404")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := repository.NewUserRepository(store.NewMemoryStore())

		_, err := repo.Create(ctx, alice)
		require.NoError(t, err)

		duplicate := alice
		duplicate.ID = "student-2"
		duplicate.Name = "Other Alice"

		_, err = repo.Create(ctx, duplicate)
		assert.ErrorIs(t, err, repository.ErrUserEmailExists)
	})

	t.Run("email comparison is case sensitive", func(t *testing.T) {
		repo := repository.NewUserRepository(store.NewMemoryStore())

		_, err := repo.Create(ctx, alice)
		require.NoError(t, err)

		upper := alice
		upper.ID = "student-2"
		upper.Email = "Alice@x.edu"

		_, err = repo.Create(ctx, upper)
		assert.NoError(t, err, "differing case registers as a distinct email")
	})

	t.Run("credentials match email or name, first match wins", func(t *testing.T) {
		repo := repository.NewUserRepository(store.NewMemoryStore())

		_, err := repo.Create(ctx, alice)
		require.NoError(t, err)

		// A second user whose name collides with Alice's email.
		impostor := domain.User{
			ID:       "student-2",
			Name:     "alice@x.edu",
			Email:    "impostor@x.edu",
			Password: "secret123",
			Role:     domain.RoleStudent,
		}
		_, err = repo.Create(ctx, impostor)
		require.NoError(t, err)

		found, err := repo.FindByCredentials(ctx, "alice@x.edu", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "student-1", found.ID, "insertion order decides collisions")

		byName, err := repo.FindByCredentials(ctx, "Alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "student-1", byName.ID)

		_, err = repo.FindByCredentials(ctx, "alice@x.edu", "wrong")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("password survives the stored blob but stays out of the API shape", func(t *testing.T) {
		st := store.NewMemoryStore()
		repo := repository.NewUserRepository(st)

		_, err := repo.Create(ctx, alice)
		require.NoError(t, err)

		blob, err := st.Get(ctx, store.KeyUsers)
		require.NoError(t, err)
		assert.Contains(t, string(blob), `"password":"secret123"`)

		apiShape, err := json.Marshal(alice)
		require.NoError(t, err)
		assert.NotContains(t, string(apiShape), "secret123")
	})
}
