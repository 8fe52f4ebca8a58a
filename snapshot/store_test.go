package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract exercises the behavior every Store must share.
func storeContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "run-a", []byte("alpha")))
	require.NoError(t, store.Put(ctx, "run-b", []byte("beta")))
	require.NoError(t, store.Put(ctx, "other", []byte("gamma")))

	got, err := store.Get(ctx, "run-a")
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha"), got)

	// Put replaces wholesale.
	require.NoError(t, store.Put(ctx, "run-a", []byte("alpha2")))
	got, err = store.Get(ctx, "run-a")
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha2"), got)

	names, err := store.List(ctx, "run-")
	require.NoError(t, err)
	assert.Equal(t, []string{"run-a", "run-b"}, names)

	require.NoError(t, store.Delete(ctx, "run-a"))
	_, err = store.Get(ctx, "run-a")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing snapshot is not an error.
	assert.NoError(t, store.Delete(ctx, "run-a"))
}

func TestMemoryStore_Contract(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestLocalStore_Contract(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, store)
}

func TestMemoryStore_GetCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "x", []byte{1, 2, 3}))

	a, err := store.Get(ctx, "x")
	require.NoError(t, err)
	a[0] = 99

	b, err := store.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}
