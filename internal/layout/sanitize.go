package layout

import "github.com/danieljhkim/gridboard/internal/ident"

// Sanitize returns a copy of w that satisfies the stored layout constraints:
// W and H of at least 1, X and Y of at least 0 and a non-empty id.
func (w Widget) Sanitize(gen ident.Generator) Widget {
	w = w.Clone()
	if w.ID == "" {
		w.ID = gen.NewID()
	}
	w.W = max(w.W, 1)
	w.H = max(w.H, 1)
	w.X = max(w.X, 0)
	w.Y = max(w.Y, 0)
	return w
}

// Sanitize returns a copy of g with every widget sanitized.
func (g Grid) Sanitize(gen ident.Generator) Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, w := range g {
		out[i] = w.Sanitize(gen)
	}
	return out
}

// Sanitize returns a copy of t with a non-empty id and a sanitized grid.
func (t Tab) Sanitize(gen ident.Generator) Tab {
	if t.ID == "" {
		t.ID = gen.NewID()
	}
	t.Grid = t.Grid.Sanitize(gen)
	return t
}

// Sanitize returns a copy of p whose grid and tabs are sanitized.
func (p Page) Sanitize(gen ident.Generator) Page {
	p = p.Clone()
	p.Grid = p.Grid.Sanitize(gen)
	for i := range p.Tabs {
		p.Tabs[i] = p.Tabs[i].Sanitize(gen)
	}
	return p
}
