package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/gridboard/internal/clock"

	// modernc.org/sqlite registers the cgo-free "sqlite" driver.
	_ "modernc.org/sqlite"
)

var sqliteDialect = sqlDialect{
	driver: "sqlite",
	createTable: `CREATE TABLE IF NOT EXISTS ` + kvTableName + ` (
		kv_key TEXT PRIMARY KEY,
		kv_value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	selectValue: `SELECT kv_value FROM ` + kvTableName + ` WHERE kv_key = ?`,
	upsertValue: `INSERT INTO ` + kvTableName + ` (kv_key, kv_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (kv_key)
		DO UPDATE SET kv_value = excluded.kv_value, updated_at = excluded.updated_at`,
}

// SQLiteStore implements Backend on a SQLite database file.
type SQLiteStore struct {
	*sqlStore
	path string
}

// NewSQLiteStore creates a SQLiteStore for the database at path. The file
// and its parent directory are created on first use.
func NewSQLiteStore(path string, clk clock.Clock) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty sqlite path", ErrInvalidDSN)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}
	return &SQLiteStore{
		sqlStore: newSQLStore(path, sqliteDialect, clk),
		path:     path,
	}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}
