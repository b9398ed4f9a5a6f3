// Package fsops provides the filesystem operations gridboard persists through.
//
// The file key-value backend and layout snapshots write through the FS
// interface so every write is atomic (temp file + rename) and every key that
// becomes a file name is validated first.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Remove removes a file or empty directory.
	Remove(path string) error

	// AtomicWrite writes data to path atomically using temp file + rename.
	AtomicWrite(path string, data []byte, perm os.FileMode) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// ValidateIdentifier validates an identifier used as a file name.
	ValidateIdentifier(id string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove removes a file or empty directory.
func (fs *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// AtomicWrite writes data to path atomically using temp file + rename.
// Readers never observe a partially written file.
func (fs *RealFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	// Temp file must live on the same filesystem for rename to be atomic
	tmpFile, err := os.CreateTemp(dir, ".gridboard-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	tmpFile = nil
	return nil
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ValidateIdentifier validates an identifier (e.g. a storage key) that is
// used as a file name. It rejects empty names, path separators and
// traversal attempts.
func (fs *RealFS) ValidateIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("invalid identifier: empty")
	}

	if strings.ContainsAny(id, `/\`) || strings.Contains(id, string(filepath.Separator)) {
		return fmt.Errorf("invalid identifier: must not contain path separators")
	}

	if id == "." || id == ".." || strings.HasPrefix(id, "..") {
		return fmt.Errorf("invalid identifier: path traversal not allowed")
	}

	if strings.ContainsRune(id, 0) {
		return fmt.Errorf("invalid identifier: contains NUL byte")
	}

	return nil
}
