// Package kv provides the key-value persistence adapter behind the layout
// manager.
//
// The manager only ever needs Get and Set on string values. Several
// backends implement the same contract:
//   - MemoryStore: process-local map, used in tests and for ephemeral runs
//   - FileStore: one file per key in a directory, written atomically
//   - SQLiteStore / PostgresStore: a single key-value table
//
// Open selects a backend from a DSN.
package kv

import "errors"

var (
	// ErrInvalidDSN indicates a backend DSN could not be interpreted.
	ErrInvalidDSN = errors.New("invalid storage dsn")

	// ErrUnsupportedScheme indicates the DSN scheme has no backend.
	ErrUnsupportedScheme = errors.New("unsupported storage scheme")
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value stored under key. The boolean is false when
	// the key has never been set.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// Backend is a Store that holds resources until closed.
type Backend interface {
	Store

	// Close releases the backend's resources.
	Close() error
}
