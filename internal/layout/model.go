package layout

import (
	"bytes"
	"encoding/json"
)

const (
	// PlaceholderKind is the widget kind used to fill otherwise empty grids.
	PlaceholderKind = "d287d3bc-94e9-4b6d-91ce-ef4bfced75ff"

	// PlaceholderName is the display name of the placeholder widget.
	PlaceholderName = "Empty Widget"

	// EmptyTabName is the name of the tab created with a new layout.
	EmptyTabName = "Empty Tab"
)

// Widget is one widget instance placed on a grid.
type Widget struct {
	// ID identifies this instance within the layout
	ID string `json:"i"`

	// Kind references the widget definition supplied by the host application
	Kind string `json:"widgetID"`

	// Name is the display name
	Name string `json:"name"`

	// X, Y, W, H describe the rectangle in grid cells
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`

	// Settings is an optional widget-specific payload
	Settings json.RawMessage `json:"settings,omitempty"`
}

// Grid is the set of widgets sharing one coordinate plane.
type Grid []Widget

// Tab is a named secondary grid within a layout.
type Tab struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Grid Grid   `json:"grid"`
}

// Page is a layout for one page of the dashboard.
type Page struct {
	// ID is unique across saved and default layouts
	ID string `json:"id"`

	// Page is the key of the page this layout belongs to
	Page string `json:"page"`

	// Name is the display name
	Name string `json:"name"`

	// Default marks a caller-supplied template
	Default bool `json:"default"`

	// Grid is the top-level grid
	Grid Grid `json:"grid"`

	// HasTabs reports whether the tab strip is shown
	HasTabs bool `json:"hasTabs"`

	// Tabs is the ordered list of tabs
	Tabs []Tab `json:"tabs"`
}

// NameRef is the listing projection of a layout.
type NameRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Clone returns a deep copy of the widget.
func (w Widget) Clone() Widget {
	if w.Settings != nil {
		w.Settings = bytes.Clone(w.Settings)
	}
	return w
}

// Clone returns a deep copy of the grid. A nil grid stays nil.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, w := range g {
		out[i] = w.Clone()
	}
	return out
}

// Find returns the index of the widget with the given id, or -1.
func (g Grid) Find(id string) int {
	for i := range g {
		if g[i].ID == id {
			return i
		}
	}
	return -1
}

// Without returns a copy of the grid with the widget id removed.
func (g Grid) Without(id string) Grid {
	out := make(Grid, 0, len(g))
	for _, w := range g {
		if w.ID != id {
			out = append(out, w.Clone())
		}
	}
	return out
}

// Clone returns a deep copy of the tab.
func (t Tab) Clone() Tab {
	t.Grid = t.Grid.Clone()
	return t
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	p.Grid = p.Grid.Clone()
	if p.Tabs != nil {
		tabs := make([]Tab, len(p.Tabs))
		for i, t := range p.Tabs {
			tabs[i] = t.Clone()
		}
		p.Tabs = tabs
	}
	return p
}

// ClonePages deep-copies a slice of pages. A nil slice stays nil.
func ClonePages(pages []Page) []Page {
	if pages == nil {
		return nil
	}
	out := make([]Page, len(pages))
	for i, p := range pages {
		out[i] = p.Clone()
	}
	return out
}

// FindPage returns the index of the page with the given id, or -1.
func FindPage(pages []Page, id string) int {
	for i := range pages {
		if pages[i].ID == id {
			return i
		}
	}
	return -1
}
