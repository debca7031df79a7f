// Package fs implements the persistent key-value substrate on the local
// filesystem: one file per key, written atomically, plus change
// notification for externally-modified keys.
package fs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oceannotes/ocean/pkg/textutil"
)

// Store is a file-backed core.Storage. Keys map to files inside Dir; values
// are stored verbatim.
type Store struct {
	Dir    string
	logger *slog.Logger
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Dir    string
	Logger *slog.Logger
}

// NewStore creates the store, ensuring Dir exists.
func NewStore(config Config) (*Store, error) {
	if config.Dir == "" {
		return nil, fmt.Errorf("fs store requires a directory")
	}
	if err := os.MkdirAll(config.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{Dir: config.Dir, logger: logger}, nil
}

// keyPath maps a substrate key to its backing file. Keys are slugified so
// separators and other unsafe characters never reach the filesystem.
func (s *Store) keyPath(key string) string {
	return filepath.Join(s.Dir, textutil.Slugify(key)+".json")
}

// Read returns the stored value for key; ok is false when absent.
func (s *Store) Read(key string) (string, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Write persists value under key atomically.
func (s *Store) Write(key, value string) error {
	path := s.keyPath(key)
	if err := writeFileAtomic(path, []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	s.logger.Debug("wrote key", "key", key, "path", path, "bytes", len(value))
	return nil
}

// Clear removes key. Clearing an absent key is a no-op.
func (s *Store) Clear(key string) error {
	err := os.Remove(s.keyPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear %s: %w", key, err)
	}
	return nil
}
