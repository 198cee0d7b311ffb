package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/events-api/internal/store"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key reports not found", func(t *testing.T) {
		st := store.NewMemoryStore()

		_, err := st.Get(ctx, store.KeyUsers)
		assert.ErrorIs(t, err, store.ErrKeyNotFound)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		st := store.NewMemoryStore()

		require.NoError(t, st.Put(ctx, store.KeyEvents, []byte(`[{"id":"event-1"}]`)))

		value, err := st.Get(ctx, store.KeyEvents)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"event-1"}]`, string(value))
	})

	t.Run("put overwrites", func(t *testing.T) {
		st := store.NewMemoryStore()

		require.NoError(t, st.Put(ctx, store.KeyUsers, []byte(`[]`)))
		require.NoError(t, st.Put(ctx, store.KeyUsers, []byte(`[{"id":"student-1"}]`)))

		value, err := st.Get(ctx, store.KeyUsers)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"student-1"}]`, string(value))
	})

	t.Run("delete removes the key", func(t *testing.T) {
		st := store.NewMemoryStore()

		require.NoError(t, st.Put(ctx, store.KeyCurrentUser, []byte(`{"id":"student-1"}`)))
		require.NoError(t, st.Delete(ctx, store.KeyCurrentUser))

		_, err := st.Get(ctx, store.KeyCurrentUser)
		assert.ErrorIs(t, err, store.ErrKeyNotFound)

		// Deleting an absent key is a no-op.
		assert.NoError(t, st.Delete(ctx, store.KeyCurrentUser))
	})
}
