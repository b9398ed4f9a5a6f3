// Package config manages gridboard configuration and filesystem paths.
//
// The default root is ~/.gridboard/ (override with GRIDBOARD_ROOT). It holds
// the file backend's data directory, the optional config.toml, an optional
// user template file and exported snapshots.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by gridboard.
type Paths struct {
	// Root is the base directory for all gridboard data (default: ~/.gridboard)
	Root string

	// Data is the directory of the default file key-value backend
	Data string

	// Config is the path to the config file
	Config string

	// Templates is the path to the optional user default-layout file
	Templates string

	// Snapshots is the default directory for exported layout snapshots
	Snapshots string
}

// DefaultPaths returns the default paths for gridboard.
// Paths can be overridden with environment variables:
// - GRIDBOARD_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("GRIDBOARD_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".gridboard")
	}

	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:      root,
		Data:      filepath.Join(root, "data"),
		Config:    filepath.Join(root, "config.toml"),
		Templates: filepath.Join(root, "templates.json"),
		Snapshots: filepath.Join(root, "snapshots"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Root, p.Data, p.Snapshots} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
