package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// every bot item lives under this prefix so the database can be shared
const ItemPrefix = "storage:"

type RedisStorage struct {
	client *redis.Client

	mu          sync.Mutex
	initialized bool
}

func NewRedisStorage(address string) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr:     address, //  default "localhost:6379"
		Password: "",      // "" for no password, ok for now
		DB:       0,       // 0 for default database
	})

	return &RedisStorage{client: rdb}
}

// Initialize checks the connection once. After a failure the next call tries again.
func (store *RedisStorage) Initialize(ctx context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.initialized {
		return nil
	}

	if err := store.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	store.initialized = true
	return nil
}

func (store *RedisStorage) GetItem(ctx context.Context, key string) (string, error) {
	value, err := store.client.Get(ctx, ItemPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrItemNotFound
		}
		return "", fmt.Errorf("failed to get item %q: %w", key, err)
	}

	return value, nil
}

func (store *RedisStorage) SetItem(ctx context.Context, key, value string) error {
	if err := store.client.Set(ctx, ItemPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set item %q: %w", key, err)
	}

	return nil
}

func (store *RedisStorage) Close() error {
	return store.client.Close()
}
