package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestRedisStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	s := NewRedisStorage(mr.Addr())
	t.Cleanup(func() { _ = s.Close() })

	return s, mr
}

func TestRedisStorage(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStorage(t)

	require.NoError(t, s.Initialize(ctx))

	_, err := s.GetItem(ctx, "sources")
	require.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, s.SetItem(ctx, "sources", `{"U1":"user"}`))

	value, err := s.GetItem(ctx, "sources")
	require.NoError(t, err)
	require.Equal(t, `{"U1":"user"}`, value)

	raw, err := mr.Get(ItemPrefix + "sources")
	require.NoError(t, err)
	require.Equal(t, `{"U1":"user"}`, raw)
}

func TestRedisStorageInitializeCachesSuccess(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStorage(t)

	require.NoError(t, s.Initialize(ctx))

	// once initialized the connection is not checked again
	mr.Close()
	require.NoError(t, s.Initialize(ctx))
}

func TestRedisStorageInitializeFailure(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStorage(t)

	mr.Close()
	require.Error(t, s.Initialize(ctx))

	require.NoError(t, mr.Restart())
	require.NoError(t, s.Initialize(ctx))
}

func TestRedisStorageGetItemError(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStorage(t)

	mr.Close()

	_, err := s.GetItem(ctx, "sources")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrItemNotFound)
}
