package kv

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/gridboard/internal/clock"

	_ "github.com/lib/pq"
)

var postgresDialect = sqlDialect{
	driver: "postgres",
	createTable: `CREATE TABLE IF NOT EXISTS ` + kvTableName + ` (
		kv_key TEXT PRIMARY KEY,
		kv_value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	selectValue: `SELECT kv_value FROM ` + kvTableName + ` WHERE kv_key = $1`,
	upsertValue: `INSERT INTO ` + kvTableName + ` (kv_key, kv_value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (kv_key)
		DO UPDATE SET kv_value = EXCLUDED.kv_value, updated_at = EXCLUDED.updated_at`,
}

// PostgresStore implements Backend on a PostgreSQL table. The connection is
// opened lazily on first use.
type PostgresStore struct {
	*sqlStore
}

// NewPostgresStore creates a PostgresStore for the given connection string.
func NewPostgresStore(dsn string, clk clock.Clock) (*PostgresStore, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty postgres dsn", ErrInvalidDSN)
	}
	return &PostgresStore{sqlStore: newSQLStore(dsn, postgresDialect, clk)}, nil
}
