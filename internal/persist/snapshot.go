// Package persist moves saved layout collections between key-value
// backends and snapshot files on disk.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danieljhkim/gridboard/internal/clock"
	"github.com/danieljhkim/gridboard/internal/fsops"
	"github.com/danieljhkim/gridboard/internal/kv"
	"github.com/danieljhkim/gridboard/internal/layout"
)

const snapshotExt = ".json"

// SnapshotManager exports and imports saved layout collections.
type SnapshotManager struct {
	fs    fsops.FS
	clock clock.Clock
}

// NewSnapshotManager creates a new SnapshotManager.
func NewSnapshotManager(fs fsops.FS, clk clock.Clock) *SnapshotManager {
	return &SnapshotManager{fs: fs, clock: clk}
}

// DefaultPath returns a timestamped snapshot path inside dir.
func (s *SnapshotManager) DefaultPath(dir string) string {
	stamp := s.clock.Now().Format("20060102T150405Z")
	return filepath.Join(dir, "layouts-"+stamp+snapshotExt)
}

// Export writes the collection stored under key to path and returns the
// number of layouts written. A missing key exports an empty collection.
func (s *SnapshotManager) Export(src kv.Store, key, path string) (int, error) {
	pages, err := read(src, key)
	if err != nil {
		return 0, err
	}

	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := s.fs.AtomicWrite(path, append(data, '\n'), 0644); err != nil {
		return 0, fmt.Errorf("failed to write snapshot: %w", err)
	}
	return len(pages), nil
}

// Import replaces the collection stored under key with the snapshot at
// path. The snapshot is validated before anything is written.
func (s *SnapshotManager) Import(dst kv.Store, key, path string) (int, error) {
	exists, err := s.fs.Exists(path)
	if err != nil {
		return 0, fmt.Errorf("failed to check snapshot: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("snapshot %s not found", path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read snapshot: %w", err)
	}
	pages, err := layout.DecodePages(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	if err := write(dst, key, pages); err != nil {
		return 0, err
	}
	return len(pages), nil
}

// Copy replicates the collection stored under key from src to dst.
func Copy(src, dst kv.Store, key string) (int, error) {
	pages, err := read(src, key)
	if err != nil {
		return 0, err
	}
	if err := write(dst, key, pages); err != nil {
		return 0, err
	}
	return len(pages), nil
}

// List returns the snapshot files in dir, oldest name first.
func (s *SnapshotManager) List(dir string) ([]string, error) {
	exists, err := s.fs.Exists(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to check snapshot directory: %w", err)
	}
	if !exists {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), snapshotExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Remove deletes a snapshot file.
func (s *SnapshotManager) Remove(path string) error {
	exists, err := s.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check snapshot: %w", err)
	}
	if !exists {
		return fmt.Errorf("snapshot %s not found", path)
	}
	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}
	return nil
}

func read(src kv.Store, key string) ([]layout.Page, error) {
	raw, ok, err := src.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return []layout.Page{}, nil
	}
	pages, err := layout.DecodePages([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("stored %s: %w", key, err)
	}
	return pages, nil
}

func write(dst kv.Store, key string, pages []layout.Page) error {
	data, err := layout.EncodePages(pages)
	if err != nil {
		return err
	}
	if err := dst.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
