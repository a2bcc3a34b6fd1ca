package storage

import (
	"context"
	"testing"

	"github.com/BenWeng0419/gpt-ai-assistant/util"
	"github.com/stretchr/testify/require"
)

func TestNewStorage(t *testing.T) {
	ctx := context.Background()

	s, err := NewStorage(ctx, util.Config{StorageDriver: util.StorageDriverMemory})
	require.NoError(t, err)
	require.IsType(t, &MemoryStorage{}, s)

	s, err = NewStorage(ctx, util.Config{StorageDriver: util.StorageDriverRedis, RedisAddress: "localhost:6379"})
	require.NoError(t, err)
	require.IsType(t, &RedisStorage{}, s)

	_, err = NewStorage(ctx, util.Config{StorageDriver: "sqlite"})
	require.ErrorIs(t, err, ErrUnknownDriver)
}
