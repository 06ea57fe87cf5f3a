// Package file persists snapshots as JSON files in a local directory,
// one file per named entry. It is the default backend; no external
// service is needed to keep session state across restarts.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Store implements ports.SnapshotStore on the local filesystem.
type Store struct {
	dir string
}

// NewStore creates the data directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get returns the stored blob for key, or nil, nil when absent.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", key, err)
	}
	return data, nil
}

// Set writes the blob via a temp file and rename, so a crash mid-write
// never leaves a truncated snapshot behind.
func (s *Store) Set(_ context.Context, key string, data []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("commit snapshot %s: %w", key, err)
	}
	return nil
}

// Ping verifies the data directory is still accessible.
func (s *Store) Ping(_ context.Context) error {
	if _, err := os.Stat(s.dir); err != nil {
		return fmt.Errorf("stat data dir: %w", err)
	}
	return nil
}

// Name returns the dependency name.
func (s *Store) Name() string { return "file" }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
