package layout

import "github.com/danieljhkim/gridboard/internal/ident"

// InitialID is the id of the layout a store holds before any page is set.
const InitialID = "0000-000-000-0000"

// NewPlaceholder returns a 1x1 placeholder widget at the origin.
func NewPlaceholder(gen ident.Generator) Widget {
	return Widget{
		ID:   gen.NewID(),
		Kind: PlaceholderKind,
		Name: PlaceholderName,
		X:    0,
		Y:    0,
		W:    1,
		H:    1,
	}
}

// PlaceholderGrid returns a grid holding a single placeholder widget.
// A grid is never persisted empty.
func PlaceholderGrid(gen ident.Generator) Grid {
	return Grid{NewPlaceholder(gen)}
}

// NewTab returns a tab with a fresh id and a placeholder grid.
func NewTab(gen ident.Generator, name string) Tab {
	return Tab{
		ID:   gen.NewID(),
		Name: name,
		Grid: PlaceholderGrid(gen),
	}
}

// NewPage builds the empty layout used by newly created saved layouts:
// one placeholder in the grid and one tab holding one placeholder.
// Every call produces fresh ids.
func NewPage(gen ident.Generator, pageKey, name string) Page {
	return Page{
		ID:      gen.NewID(),
		Page:    pageKey,
		Name:    name,
		Default: false,
		Grid:    PlaceholderGrid(gen),
		HasTabs: true,
		Tabs:    []Tab{NewTab(gen, EmptyTabName)},
	}
}

// Initial returns the layout a store starts with.
func Initial() Page {
	return Page{
		ID:      InitialID,
		Page:    "default",
		Name:    "default",
		Default: false,
		Grid:    Grid{},
		HasTabs: false,
		Tabs:    []Tab{},
	}
}
