package store

import (
	"context"
	"sync"
)

// MemoryStore is the in-process localStorage analog. It never fails and is
// scoped to the lifetime of the owning process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get reads one slot.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set writes one slot.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete removes the given slots while holding the lock once, so teardown
// is all-or-nothing with respect to concurrent readers.
func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}
