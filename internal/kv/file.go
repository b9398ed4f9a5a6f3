package kv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/gridboard/internal/fsops"
)

// fileSuffix is appended to every key to form its file name.
const fileSuffix = ".json"

// FileStore implements Backend with one file per key inside a directory.
type FileStore struct {
	fs  fsops.FS
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(fs fsops.FS, dir string) *FileStore {
	return &FileStore{
		fs:  fs,
		dir: dir,
	}
}

// Dir returns the directory holding the key files.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file that holds key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+fileSuffix)
}

// Get reads the file for key.
func (s *FileStore) Get(key string) (string, bool, error) {
	if err := s.fs.ValidateIdentifier(key); err != nil {
		return "", false, fmt.Errorf("invalid key: %w", err)
	}

	data, err := s.fs.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return string(data), true, nil
}

// Set atomically rewrites the file for key.
func (s *FileStore) Set(key, value string) error {
	if err := s.fs.ValidateIdentifier(key); err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	if err := s.fs.AtomicWrite(s.Path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}
