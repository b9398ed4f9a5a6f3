// Package manager implements the dashboard layout store.
//
// A Manager owns the layouts of the current page: the caller-supplied
// default templates, the user's saved layouts, and a working copy of the
// active layout. Edits always apply to the working copy and reach storage
// through Save, which overwrites a saved layout in place or forks an edited
// default into a new saved layout. Defaults are never written back.
//
// Key components:
//   - Manager: state owner and API surface for the UI layer
//   - Save/Load: reconciliation and persistence of the saved collection
//   - Subscribe: change notification fired after every mutation
//
// A Manager is not safe for concurrent use; a single owner drives it.
package manager

import (
	"io"
	"log/slog"

	"github.com/danieljhkim/gridboard/internal/clock"
	"github.com/danieljhkim/gridboard/internal/fingerprint"
	"github.com/danieljhkim/gridboard/internal/ident"
	"github.com/danieljhkim/gridboard/internal/kv"
	"github.com/danieljhkim/gridboard/internal/layout"
)

const (
	// DefaultStorageKey is the key holding the saved layout collection.
	DefaultStorageKey = "$widgetLayouts"

	// InitialPage is the page selected before SetPage is called.
	InitialPage = "index"

	defaultNamePrefix = "Default - "
	customNamePrefix  = "Custom - "
)

// Manager holds the layout state of one dashboard session.
type Manager struct {
	store         kv.Store
	fingerprinter fingerprint.Fingerprinter
	ids           ident.Generator
	clock         clock.Clock
	logger        *slog.Logger
	storageKey    string

	currentPage    string
	defaultLayouts []layout.Page
	savedLayouts   []layout.Page
	currentTab     int
	currentLayout  layout.Page

	subscribers map[int]func(Event)
	nextSubID   int
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStorageKey overrides the key holding the saved layout collection.
func WithStorageKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.storageKey = key
		}
	}
}

// New creates a Manager with the given dependencies.
func New(
	store kv.Store,
	fingerprinter fingerprint.Fingerprinter,
	ids ident.Generator,
	clk clock.Clock,
	opts ...Option,
) *Manager {
	m := &Manager{
		store:         store,
		fingerprinter: fingerprinter,
		ids:           ids,
		clock:         clk,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		storageKey:    DefaultStorageKey,
		currentPage:   InitialPage,
		savedLayouts:  []layout.Page{},
		currentLayout: layout.Initial(),
		subscribers:   make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CurrentPage returns the selected page key.
func (m *Manager) CurrentPage() string {
	return m.currentPage
}

// CurrentTab returns the index of the selected tab.
func (m *Manager) CurrentTab() int {
	return m.currentTab
}

// CurrentLayout returns a copy of the working layout.
func (m *Manager) CurrentLayout() layout.Page {
	return m.currentLayout.Clone()
}

// SavedLayouts returns a copy of all saved layouts, across every page.
func (m *Manager) SavedLayouts() []layout.Page {
	return layout.ClonePages(m.savedLayouts)
}

// DefaultLayouts returns a copy of the default layouts of the current page,
// or nil if none were supplied.
func (m *Manager) DefaultLayouts() []layout.Page {
	return layout.ClonePages(m.defaultLayouts)
}

// StorageKey returns the key holding the saved layout collection.
func (m *Manager) StorageKey() string {
	return m.storageKey
}

// tabInRange reports whether currentTab indexes an existing tab.
func (m *Manager) tabInRange() bool {
	return m.currentTab >= 0 && m.currentTab < len(m.currentLayout.Tabs)
}
