// Package storage provides key-value persistence implementations for the
// timer snapshot and user preferences.
package storage

import (
	"context"
	"sync"

	"github.com/saltandflour/doughlab/internal/domain"
	"github.com/saltandflour/doughlab/internal/logger"
)

// Compile-time interface check.
var _ domain.KVStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory key-value store. Safe for concurrent access.
// Used in tests and when durable storage is disabled — state then lives for
// a single session only.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	log     *logger.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
		log:     log,
	}
}

// Get retrieves a value by key.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		s.log.Debug("key not found: %s", key)
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores a value under a key. Overwrites if it already exists.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving key %s (%d bytes)", key, len(value))
	v := make([]byte, len(value))
	copy(v, value)
	s.records[key] = v
	return nil
}

// Remove deletes a key. Removing an absent key is not an error — callers
// clear snapshots without checking whether one exists.
func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	s.log.Debug("removed key %s", key)
	return nil
}
