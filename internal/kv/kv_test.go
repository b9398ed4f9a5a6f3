package kv

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/gridboard/internal/clock"
	"github.com/danieljhkim/gridboard/internal/fsops"
)

// exerciseStore runs the contract every backend must satisfy.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Get("$widgetLayouts")
	require.NoError(t, err)
	assert.False(t, ok, "unset key should report not found")

	require.NoError(t, s.Set("$widgetLayouts", `[]`))
	v, ok, err := s.Get("$widgetLayouts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Set("$widgetLayouts", `[{"id":"a"}]`))
	v, _, err = s.Get("$widgetLayouts")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, v, "Set should replace the previous value")

	require.NoError(t, s.Set("$widgetSession", `{}`))
	v, _, err = s.Get("$widgetLayouts")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, v, "keys must be independent")

	require.NoError(t, s.Set("empty", ""))
	v, ok, err = s.Get("empty")
	require.NoError(t, err)
	assert.True(t, ok, "empty value is still a stored value")
	assert.Equal(t, "", v)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	exerciseStore(t, s)
	assert.Equal(t, 4, s.Writes())
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(fsops.NewRealFS(), dir)
	exerciseStore(t, s)

	data, err := os.ReadFile(filepath.Join(dir, "$widgetLayouts.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(data))
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	s := NewFileStore(fsops.NewRealFS(), t.TempDir())

	err := s.Set("../escape", "x")
	assert.Error(t, err)

	_, _, err = s.Get("a/b")
	assert.Error(t, err)
}

func TestSQLiteStore(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	path := filepath.Join(t.TempDir(), "nested", "gridboard.db")

	s, err := NewSQLiteStore(path, clk)
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)

	// A second handle on the same file sees the persisted values
	reopened, err := NewSQLiteStore(path, clk)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get("$widgetLayouts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("  ", clock.NewRealClock())
	assert.ErrorIs(t, err, ErrInvalidDSN)
}

func TestNewPostgresStore_EmptyDSN(t *testing.T) {
	_, err := NewPostgresStore("", clock.NewRealClock())
	assert.ErrorIs(t, err, ErrInvalidDSN)
}

func TestSQLStore_OpenFailureIsSticky(t *testing.T) {
	s, err := NewPostgresStore("postgres://user@localhost/db", clock.NewRealClock())
	require.NoError(t, err)

	openErr := errors.New("dial refused")
	s.openDB = func(driverName, dsn string) (*sql.DB, error) {
		assert.Equal(t, "postgres", driverName)
		return nil, openErr
	}

	_, _, err = s.Get("k")
	assert.ErrorIs(t, err, openErr)
	err = s.Set("k", "v")
	assert.ErrorIs(t, err, openErr)
	assert.NoError(t, s.Close())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		dsn     string
		check   func(t *testing.T, b Backend)
		wantErr error
	}{
		{
			name: "bare path",
			dsn:  dir,
			check: func(t *testing.T, b Backend) {
				fs, ok := b.(*FileStore)
				require.True(t, ok, "got %T", b)
				assert.Equal(t, dir, fs.Dir())
			},
		},
		{
			name: "file scheme",
			dsn:  "file://" + dir,
			check: func(t *testing.T, b Backend) {
				fs, ok := b.(*FileStore)
				require.True(t, ok, "got %T", b)
				assert.Equal(t, dir, fs.Dir())
			},
		},
		{
			name: "memory",
			dsn:  "memory://",
			check: func(t *testing.T, b Backend) {
				_, ok := b.(*MemoryStore)
				assert.True(t, ok, "got %T", b)
			},
		},
		{
			name: "sqlite absolute",
			dsn:  "sqlite://" + filepath.Join(dir, "a.db"),
			check: func(t *testing.T, b Backend) {
				s, ok := b.(*SQLiteStore)
				require.True(t, ok, "got %T", b)
				assert.Equal(t, filepath.Join(dir, "a.db"), s.Path())
			},
		},
		{
			name: "postgres",
			dsn:  "postgres://user:pw@localhost:5432/gridboard?sslmode=disable",
			check: func(t *testing.T, b Backend) {
				_, ok := b.(*PostgresStore)
				assert.True(t, ok, "got %T", b)
			},
		},
		{name: "empty", dsn: " ", wantErr: ErrInvalidDSN},
		{name: "sqlite without path", dsn: "sqlite://", wantErr: ErrInvalidDSN},
		{name: "unknown scheme", dsn: "redis://localhost", wantErr: ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Open(tt.dsn, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer b.Close()
			tt.check(t, b)
		})
	}
}
