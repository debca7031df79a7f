// Package memory implements the key-value substrate in process memory.
// It backs tests and embedders that do not want durable state.
package memory

import "sync"

// Store is an in-memory core.Storage. The zero value is not usable; use New.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Read returns the value for key; ok is false when absent.
func (s *Store) Read(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Write stores value under key.
func (s *Store) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.writes++
	return nil
}

// Clear removes key.
func (s *Store) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Writes reports how many Write calls have happened. Tests use it to assert
// the at-most-one-write-per-operation contract.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
