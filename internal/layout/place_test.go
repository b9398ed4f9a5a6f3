package layout

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Widget
		want bool
	}{
		{
			name: "same cell",
			a:    Widget{X: 0, Y: 0, W: 1, H: 1},
			b:    Widget{X: 0, Y: 0, W: 1, H: 1},
			want: true,
		},
		{
			name: "touching on x edge",
			a:    Widget{X: 0, Y: 0, W: 2, H: 1},
			b:    Widget{X: 2, Y: 0, W: 1, H: 1},
			want: false,
		},
		{
			name: "touching on y edge",
			a:    Widget{X: 0, Y: 0, W: 1, H: 2},
			b:    Widget{X: 0, Y: 2, W: 1, H: 1},
			want: false,
		},
		{
			name: "partial overlap",
			a:    Widget{X: 0, Y: 0, W: 2, H: 2},
			b:    Widget{X: 1, Y: 1, W: 2, H: 2},
			want: true,
		},
		{
			name: "x overlap only",
			a:    Widget{X: 0, Y: 0, W: 2, H: 1},
			b:    Widget{X: 1, Y: 3, W: 1, H: 1},
			want: false,
		},
		{
			name: "contained",
			a:    Widget{X: 0, Y: 0, W: 3, H: 3},
			b:    Widget{X: 1, Y: 1, W: 1, H: 1},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGrid_Place_WrapsToNextRow(t *testing.T) {
	var g Grid

	a := g.Place(Widget{ID: "a", X: 0, Y: 0, W: 2, H: 1})
	if a.X != 0 || a.Y != 0 {
		t.Fatalf("A placed at (%d,%d), want (0,0)", a.X, a.Y)
	}

	b := g.Place(Widget{ID: "b", X: 0, Y: 0, W: 2, H: 1})
	if b.X != 0 || b.Y != 1 {
		t.Fatalf("B placed at (%d,%d), want (0,1)", b.X, b.Y)
	}

	if len(g) != 2 {
		t.Fatalf("grid has %d widgets, want 2", len(g))
	}
	if !g.Valid() {
		t.Error("grid has overlapping widgets")
	}
}

func TestGrid_Place_FreePositionKept(t *testing.T) {
	g := Grid{{ID: "a", X: 0, Y: 0, W: 1, H: 1}}

	placed := g.Place(Widget{ID: "b", X: 2, Y: 4, W: 1, H: 1})
	if placed.X != 2 || placed.Y != 4 {
		t.Errorf("placed at (%d,%d), want (2,4)", placed.X, placed.Y)
	}
}

func TestGrid_Place_WideWidgets(t *testing.T) {
	var g Grid

	first := g.Place(Widget{ID: "wide1", X: 1, Y: 0, W: 4, H: 1})
	if first.X != 0 || first.Y != 0 {
		t.Errorf("wide widget placed at (%d,%d), want (0,0)", first.X, first.Y)
	}

	second := g.Place(Widget{ID: "wide2", X: 0, Y: 0, W: 3, H: 2})
	if second.X != 0 || second.Y != 1 {
		t.Errorf("full-width widget placed at (%d,%d), want (0,1)", second.X, second.Y)
	}

	if !g.Valid() {
		t.Error("grid has overlapping widgets")
	}
}

func TestGrid_Place_NormalizesRectangle(t *testing.T) {
	var g Grid

	placed := g.Place(Widget{ID: "z", X: -1, Y: -3, W: 0, H: 0})
	if placed.X != 2 || placed.Y != 0 || placed.W != 1 || placed.H != 1 {
		t.Errorf("placed = %+v, want x=2 y=0 w=1 h=1", placed)
	}
}

func TestGrid_Place_NeverOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		t.Run(fmt.Sprintf("round-%d", round), func(t *testing.T) {
			var g Grid
			for i := 0; i < 25; i++ {
				g.Place(Widget{
					ID: fmt.Sprintf("w%d", i),
					X:  rng.Intn(Columns),
					Y:  rng.Intn(4),
					W:  1 + rng.Intn(Columns),
					H:  1 + rng.Intn(3),
				})
			}
			for i := range g {
				for j := i + 1; j < len(g); j++ {
					if Overlaps(g[i], g[j]) {
						t.Fatalf("widgets %s %+v and %s %+v overlap", g[i].ID, g[i], g[j].ID, g[j])
					}
				}
			}
		})
	}
}
