package kv

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/danieljhkim/gridboard/internal/clock"
	"github.com/danieljhkim/gridboard/internal/fsops"
)

// Open builds a backend from a DSN:
//
//	""            -> error
//	/dir, file:// -> FileStore in that directory
//	memory://     -> MemoryStore
//	sqlite://path -> SQLiteStore
//	postgres://   -> PostgresStore
func Open(dsn string, clk clock.Clock) (Backend, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidDSN)
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDSN, err)
	}

	scheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	switch scheme {
	case "", "file":
		path, err := dsnPath(parsed, dsn)
		if err != nil {
			return nil, err
		}
		return NewFileStore(fsops.NewRealFS(), path), nil
	case "memory", "mem":
		return NewMemoryStore(), nil
	case "sqlite", "sqlite3":
		path, err := dsnPath(parsed, dsn)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(path, clk)
	case "postgres", "postgresql":
		return NewPostgresStore(dsn, clk)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
}

// dsnPath extracts a filesystem path from a DSN. Both sqlite:///abs/path
// and sqlite://relative/path are accepted.
func dsnPath(parsed *url.URL, raw string) (string, error) {
	if strings.TrimSpace(parsed.Scheme) == "" {
		return strings.TrimSpace(raw), nil
	}
	path := strings.TrimSpace(parsed.Host + parsed.Path)
	if path == "" {
		path = strings.TrimSpace(parsed.Opaque)
	}
	if path == "" {
		return "", fmt.Errorf("%w: missing path in %q", ErrInvalidDSN, raw)
	}
	return path, nil
}
