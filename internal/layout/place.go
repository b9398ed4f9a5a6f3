package layout

// Columns is the number of columns in every grid.
const Columns = 3

// Overlaps reports whether two widget rectangles intersect.
// Rectangles that only share an edge do not overlap.
func Overlaps(a, b Widget) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Collides reports whether w overlaps any widget already in the grid.
func (g Grid) Collides(w Widget) bool {
	for _, other := range g {
		if Overlaps(w, other) {
			return true
		}
	}
	return false
}

// fits reports whether w lies inside the column span. A widget wider than
// the grid only fits at column 0.
func fits(w Widget) bool {
	limit := Columns
	if w.W > limit {
		limit = w.W
	}
	return w.X+w.W <= limit
}

// Place appends w to the grid at the first free position found by scanning
// from its requested position and returns the widget as placed.
//
// The scan steps x by the widget's own width modulo Columns and moves one
// row down every time x wraps to 0. Widths that do not divide Columns
// therefore pack unevenly; the scan still terminates because each wrap
// strictly increases y.
func (g *Grid) Place(w Widget) Widget {
	if w.W < 1 {
		w.W = 1
	}
	if w.H < 1 {
		w.H = 1
	}
	if w.Y < 0 {
		w.Y = 0
	}
	w.X %= Columns
	if w.X < 0 {
		w.X += Columns
	}
	if w.W >= Columns {
		w.X = 0
	}

	for !fits(w) || g.Collides(w) {
		w.X = (w.X + w.W) % Columns
		if w.X == 0 {
			w.Y++
		}
	}

	*g = append(*g, w)
	return w
}

// Valid reports whether no two widgets in the grid overlap.
func (g Grid) Valid() bool {
	for i := range g {
		for j := i + 1; j < len(g); j++ {
			if Overlaps(g[i], g[j]) {
				return false
			}
		}
	}
	return true
}
