package integration

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/gridboard/internal/clock"
	"github.com/danieljhkim/gridboard/internal/fingerprint"
	"github.com/danieljhkim/gridboard/internal/fsops"
	"github.com/danieljhkim/gridboard/internal/ident"
	"github.com/danieljhkim/gridboard/internal/kv"
	"github.com/danieljhkim/gridboard/internal/manager"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files map[string][]byte
	dirs  map[string]bool
	real  *fsops.RealFS
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
		real:  fsops.NewRealFS(),
	}
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	for p := path; p != "." && p != string(filepath.Separator); p = filepath.Dir(p) {
		fs.dirs[p] = true
	}
	return nil
}

func (fs *testFS) Remove(path string) error {
	if _, ok := fs.files[path]; !ok {
		return os.ErrNotExist
	}
	delete(fs.files, path)
	return nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	_ = fs.MkdirAll(filepath.Dir(path), 0755)
	fs.files[path] = bytes.Clone(data)
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	data, ok := fs.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return bytes.Clone(data), nil
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) ValidateIdentifier(id string) error {
	return fs.real.ValidateIdentifier(id)
}

// testEnv wires managers against one shared backend so tests can
// simulate separate sessions.
type testEnv struct {
	t      *testing.T
	store  kv.Store
	clock  *clock.FakeClock
	ids    ident.Generator
	logBuf *bytes.Buffer
}

func newTestEnv(t *testing.T, store kv.Store) *testEnv {
	t.Helper()
	return &testEnv{
		t:      t,
		store:  store,
		clock:  clock.NewFakeClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)),
		ids:    ident.NewSequenceGenerator("00000000"),
		logBuf: &bytes.Buffer{},
	}
}

// newManager opens a fresh session on the shared backend.
func (e *testEnv) newManager() *manager.Manager {
	logger := slog.New(slog.NewTextHandler(e.logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return manager.New(
		e.store,
		fingerprint.NewSHA512Fingerprinter(),
		e.ids,
		e.clock,
		manager.WithLogger(logger),
	)
}

// backends returns every backend that can run without external services.
func backends(t *testing.T) map[string]kv.Store {
	t.Helper()

	sqlite, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "layouts.db"), clock.NewRealClock())
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]kv.Store{
		"memory": kv.NewMemoryStore(),
		"file":   kv.NewFileStore(newTestFS(), "/data"),
		"sqlite": sqlite,
	}
}
