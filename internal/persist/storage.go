package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// ErrNotFound is returned by Storage.Read when nothing is stored under a key.
var ErrNotFound = errors.New("snapshot not found")

// Storage is a durable key/value backend.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// FileStorage keeps one JSON file per key inside a directory.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

// NewFileStorage creates the directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.NewStorageError("open", dir, fmt.Errorf("failed to create state directory: %w", err))
	}
	return &FileStorage{dir: dir}, nil
}

// Path returns the file backing key.
func (s *FileStorage) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read returns the stored bytes for key.
func (s *FileStorage) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, apperrors.NewStorageError("read", key, err)
	}
	return data, nil
}

// Write replaces the stored bytes atomically via a temporary file.
func (s *FileStorage) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return apperrors.NewStorageError("write", key, fmt.Errorf("failed to write temporary file: %w", err))
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("write", key, fmt.Errorf("failed to rename temporary file: %w", err))
	}

	return nil
}

// Remove deletes the stored bytes for key. Removing a missing key is not an error.
func (s *FileStorage) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(key)); err != nil && !os.IsNotExist(err) {
		return apperrors.NewStorageError("remove", key, err)
	}
	return nil
}

// Close is a no-op for file storage.
func (s *FileStorage) Close() error {
	return nil
}

// MemoryStorage is an in-process backend. FailWrites and FailReads let tests
// simulate a broken disk.
type MemoryStorage struct {
	mu     sync.Mutex
	data   map[string][]byte
	writes int

	FailWrites error
	FailReads  error
}

// NewMemoryStorage creates an empty in-memory backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Read returns a copy of the stored bytes.
func (s *MemoryStorage) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailReads != nil {
		return nil, apperrors.NewStorageError("read", key, s.FailReads)
	}
	data, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Write stores a copy of data.
func (s *MemoryStorage) Write(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites != nil {
		return apperrors.NewStorageError("write", key, s.FailWrites)
	}
	s.data[key] = append([]byte(nil), data...)
	s.writes++
	return nil
}

// Remove deletes key.
func (s *MemoryStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Close is a no-op.
func (s *MemoryStorage) Close() error {
	return nil
}

// Writes reports how many successful writes happened.
func (s *MemoryStorage) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Put seeds raw bytes, bypassing the write counter.
func (s *MemoryStorage) Put(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
}
