package store

import (
	"context"
	"sync"
)

// memoryStorage is the in-memory implementation of [KVStorage], used by
// tests and by production code that opts out of persistence.
type memoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage constructs an empty in-memory [KVStorage].
func NewMemoryStorage() KVStorage {
	return &memoryStorage{values: make(map[string][]byte)}
}

func (s *memoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	// copy so callers cannot mutate the stored slice
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
