package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tallercr/workshop-api/internal/config"
)

// Storage defines where the snapshot document lives. There is exactly one
// document per store; Write replaces it wholesale.
type Storage interface {
	Write(ctx context.Context, data []byte) error
	Read(ctx context.Context) ([]byte, error)
	Exists(ctx context.Context) (bool, error)
}

// NewStorage creates a storage instance based on configuration. Only the
// local filesystem backend is supported.
func NewStorage(cfg *config.SnapshotConfig) (Storage, error) {
	switch cfg.StorageMode {
	case "local":
		return NewLocalStorage(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.StorageMode)
	}
}

// LocalStorage keeps the snapshot in a single file on disk
type LocalStorage struct {
	path string
}

// NewLocalStorage creates a local storage instance writing to path
func NewLocalStorage(path string) (*LocalStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	return &LocalStorage{path: path}, nil
}

// Write replaces the snapshot file. The data is written to a temp file in
// the same directory and renamed over the target, so readers never see a
// partially written document.
func (s *LocalStorage) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp snapshot file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}

// Read returns the snapshot file contents
func (s *LocalStorage) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("snapshot not found: %s", s.path)
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Exists reports whether a snapshot file is present
func (s *LocalStorage) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat snapshot: %w", err)
	}
	return true, nil
}
