package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_, err := s.GetItem(ctx, "sources")
	require.ErrorIs(t, err, ErrNotInitialized)
	require.ErrorIs(t, s.SetItem(ctx, "sources", "{}"), ErrNotInitialized)

	require.NoError(t, s.Initialize(ctx))

	_, err = s.GetItem(ctx, "sources")
	require.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, s.SetItem(ctx, "sources", `{"U1":"user"}`))

	value, err := s.GetItem(ctx, "sources")
	require.NoError(t, err)
	require.Equal(t, `{"U1":"user"}`, value)
}

func TestMemoryStorageInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.SetItem(ctx, "key", "value"))

	// a second initialize must not wipe stored items
	require.NoError(t, s.Initialize(ctx))

	value, err := s.GetItem(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, "value", value)
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	n := 50
	var wg sync.WaitGroup
	wg.Add(n)

	for i := range n {
		go func(i int) {
			defer wg.Done()
			require.NoError(t, s.Initialize(ctx))
			require.NoError(t, s.SetItem(ctx, fmt.Sprintf("key-%d", i), "value"))
		}(i)
	}

	wg.Wait()

	for i := range n {
		_, err := s.GetItem(ctx, fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
	}
}
