package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danieljhkim/gridboard/internal/clock"
)

const (
	kvTableName         = "gridboard_kv"
	sqlOperationTimeout = 5 * time.Second
)

type sqlOpenFunc func(driverName, dsn string) (*sql.DB, error)

// sqlDialect holds the statements that differ between SQL engines.
type sqlDialect struct {
	driver      string
	createTable string
	selectValue string
	upsertValue string
}

// sqlStore implements Backend on a single key-value table.
type sqlStore struct {
	dsn     string
	dialect sqlDialect
	clock   clock.Clock
	openDB  sqlOpenFunc

	initOnce sync.Once
	initErr  error
	db       *sql.DB
}

func newSQLStore(dsn string, dialect sqlDialect, clk clock.Clock) *sqlStore {
	return &sqlStore{
		dsn:     dsn,
		dialect: dialect,
		clock:   clk,
		openDB:  sql.Open,
	}
}

// Get selects the value for key.
func (s *sqlStore) Get(key string) (string, bool, error) {
	if err := s.ensureReady(); err != nil {
		return "", false, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), sqlOperationTimeout)
	defer cancel()

	var value string
	err := s.db.QueryRowContext(ctx, s.dialect.selectValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value for key.
func (s *sqlStore) Set(key, value string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), sqlOperationTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, s.dialect.upsertValue, key, value, s.clock.Now()); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Close closes the database handle if it was opened.
func (s *sqlStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ensureReady opens the database and creates the table on first use.
func (s *sqlStore) ensureReady() error {
	s.initOnce.Do(func() {
		db, err := s.openDB(s.dialect.driver, s.dsn)
		if err != nil {
			s.initErr = fmt.Errorf("failed to open %s store: %w", s.dialect.driver, err)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), sqlOperationTimeout)
		defer cancel()

		if _, err := db.ExecContext(ctx, s.dialect.createTable); err != nil {
			_ = db.Close()
			s.initErr = fmt.Errorf("failed to create %s table: %w", kvTableName, err)
			return
		}
		s.db = db
	})
	return s.initErr
}
