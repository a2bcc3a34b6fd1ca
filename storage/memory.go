package storage

import (
	"context"
	"sync"
)

// MemoryStorage keeps items in process memory. Items are lost on restart.
type MemoryStorage struct {
	mu          sync.RWMutex
	items       map[string]string
	initialized bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Initialize(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	s.items = make(map[string]string)
	s.initialized = true
	return nil
}

func (s *MemoryStorage) GetItem(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return "", ErrNotInitialized
	}

	value, ok := s.items[key]
	if !ok {
		return "", ErrItemNotFound
	}

	return value, nil
}

func (s *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}

	s.items[key] = value
	return nil
}
