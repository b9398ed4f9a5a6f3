package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/danieljhkim/gridboard/internal/clock"
	"github.com/danieljhkim/gridboard/internal/config"
	"github.com/danieljhkim/gridboard/internal/fingerprint"
	"github.com/danieljhkim/gridboard/internal/fsops"
	"github.com/danieljhkim/gridboard/internal/ident"
	"github.com/danieljhkim/gridboard/internal/kv"
	"github.com/danieljhkim/gridboard/internal/manager"
	"github.com/danieljhkim/gridboard/internal/templates"
)

// sessionKey holds the page, layout and tab selected by the last command.
const sessionKey = "$widgetSession"

// sessionState is the selection carried between invocations.
type sessionState struct {
	Page     string `json:"page"`
	LayoutID string `json:"layout"`
	Tab      int    `json:"tab"`
}

// session bundles everything a command needs: configuration, the opened
// backend and a manager restored to the last selection.
type session struct {
	paths     *config.Paths
	cfg       config.Config
	fs        fsops.FS
	clock     clock.Clock
	logger    *slog.Logger
	backend   kv.Backend
	templates templates.Set
	mgr       *manager.Manager
}

// openSession loads configuration, opens the backend and restores the
// manager to the selection saved by the previous command.
func openSession() (*session, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(paths)
	if err != nil {
		return nil, err
	}
	if dsnFlag != "" {
		cfg.Storage.DSN = dsnFlag
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	fs := fsops.NewRealFS()
	clk := clock.NewRealClock()

	tpl, err := loadTemplates(fs, cfg.Templates.Path)
	if err != nil {
		return nil, err
	}

	backend, err := kv.Open(cfg.Storage.DSN, clk)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	mgr := manager.New(
		backend,
		fingerprint.NewSHA512Fingerprinter(),
		ident.NewUUIDGenerator(),
		clk,
		manager.WithLogger(logger),
		manager.WithStorageKey(cfg.Storage.Key),
	)
	mgr.Subscribe(func(ev manager.Event) {
		logger.Debug("state changed",
			"event", string(ev.Kind), "page", ev.Page, "layout", ev.LayoutID, "tab", ev.Tab)
	})

	s := &session{
		paths:     paths,
		cfg:       cfg,
		fs:        fs,
		clock:     clk,
		logger:    logger,
		backend:   backend,
		templates: tpl,
		mgr:       mgr,
	}
	if err := s.restore(); err != nil {
		_ = backend.Close()
		return nil, err
	}
	return s, nil
}

// withSession runs fn against an opened session, then records the
// selection and closes the backend.
func withSession(fn func(s *session) error) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	runErr := fn(s)
	if err := s.close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// loadTemplates merges the bundled defaults with the user's template file.
func loadTemplates(fs fsops.FS, path string) (templates.Set, error) {
	bundled, err := templates.Bundled()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return bundled, nil
	}
	user, err := templates.LoadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return templates.Merge(bundled, user), nil
}

// restore selects the page, layout and tab recorded by the last command.
// A layout or tab that no longer exists falls back to the page's first.
func (s *session) restore() error {
	st, err := s.loadState()
	if err != nil {
		return err
	}

	page := st.Page
	if page == "" {
		page = manager.InitialPage
	}
	if err := s.usePage(page); err != nil {
		return err
	}

	if st.LayoutID != "" && st.LayoutID != s.mgr.CurrentLayout().ID {
		if err := s.mgr.SetLayout(st.LayoutID); err != nil && !errors.Is(err, manager.ErrLayoutNotFound) {
			return err
		}
	}
	if st.Tab > 0 {
		if err := s.mgr.SelectTab(st.Tab); err != nil {
			s.logger.Debug("recorded tab no longer exists", "tab", st.Tab)
		}
	}
	return nil
}

// usePage switches the manager to pageKey with that page's defaults.
func (s *session) usePage(pageKey string) error {
	return s.mgr.SetPage(pageKey, s.templates.For(pageKey))
}

func (s *session) loadState() (sessionState, error) {
	var st sessionState
	raw, ok, err := s.backend.Get(sessionKey)
	if err != nil {
		return st, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return st, nil
	}
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		s.logger.Warn("discarding unreadable session", "error", err)
		return sessionState{}, nil
	}
	return st, nil
}

func (s *session) saveState() error {
	st := sessionState{
		Page:     s.mgr.CurrentPage(),
		LayoutID: s.mgr.CurrentLayout().ID,
		Tab:      s.mgr.CurrentTab(),
	}
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := s.backend.Set(sessionKey, string(data)); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *session) close() error {
	stateErr := s.saveState()
	if err := s.backend.Close(); err != nil && stateErr == nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return stateErr
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatError formats an error for display.
func formatError(err error) string {
	initColors()
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
