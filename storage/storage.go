package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/BenWeng0419/gpt-ai-assistant/util"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrNotInitialized = errors.New("storage is not initialized")
	ErrUnknownDriver  = errors.New("unknown storage driver")
)

// Storage is a small key/value store shared by the bot.
// Initialize is called before every dispatch, so implementations must make
// repeated calls cheap once the first one succeeded.
type Storage interface {
	Initialize(ctx context.Context) error
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}

// NewStorage picks the implementation configured by STORAGE_DRIVER.
func NewStorage(ctx context.Context, config util.Config) (Storage, error) {
	switch config.StorageDriver {
	case util.StorageDriverMemory, "":
		return NewMemoryStorage(), nil
	case util.StorageDriverRedis:
		return NewRedisStorage(config.RedisAddress), nil
	case util.StorageDriverPostgres:
		return NewPostgresStorage(ctx, config.DBSource, config.MigrationURL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, config.StorageDriver)
	}
}
