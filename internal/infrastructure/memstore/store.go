// Package memstore provides a process-local key/value store shared by
// repositories that keep state in memory.
package memstore

import "sync"

// Store is a concurrency-safe key/value map. The zero value is not usable; use New.
type Store[T any] struct {
	mu   sync.RWMutex
	data map[string]T
}

// New creates an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{data: make(map[string]T)}
}

// Get returns the value stored under key and whether it was present.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *Store[T]) Set(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}
