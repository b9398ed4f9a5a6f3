package layout

import (
	"errors"
	"testing"

	"github.com/danieljhkim/gridboard/internal/ident"
)

func TestWidgetSanitize(t *testing.T) {
	gen := ident.NewSequenceGenerator("abcdefab")

	tests := []struct {
		name string
		in   Widget
		want Widget
	}{
		{"valid is unchanged", Widget{ID: "a", X: 1, Y: 2, W: 2, H: 3}, Widget{ID: "a", X: 1, Y: 2, W: 2, H: 3}},
		{"zero size", Widget{ID: "a", W: 0, H: 0}, Widget{ID: "a", W: 1, H: 1}},
		{"negative size", Widget{ID: "a", W: -4, H: -1}, Widget{ID: "a", W: 1, H: 1}},
		{"negative position", Widget{ID: "a", X: -2, Y: -1, W: 1, H: 1}, Widget{ID: "a", X: 0, Y: 0, W: 1, H: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Sanitize(gen)
			if got.ID != tt.want.ID || got.X != tt.want.X || got.Y != tt.want.Y || got.W != tt.want.W || got.H != tt.want.H {
				t.Errorf("Sanitize() = %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("empty id gets a fresh one", func(t *testing.T) {
		got := Widget{W: 1, H: 1}.Sanitize(gen)
		if got.ID == "" {
			t.Error("expected a generated id")
		}
	})
}

func TestPageSanitize_PassesValidation(t *testing.T) {
	gen := ident.NewSequenceGenerator("abcdefab")
	page := Page{
		ID:   "p",
		Page: "dashboard",
		Name: "Broken",
		Grid: Grid{{ID: "w1", Kind: "k", W: 1, H: 0}, {Kind: "k", X: -1, W: 1, H: 1}},
		Tabs: []Tab{{Name: "t", Grid: Grid{{ID: "w2", Kind: "k", Y: -3, W: 0, H: 1}}}},
	}

	data, err := EncodePages([]Page{page})
	if err != nil {
		t.Fatalf("EncodePages() error = %v", err)
	}
	if err := Validate(data); !errors.Is(err, ErrInvalidCollection) {
		t.Fatalf("Validate() error = %v, want ErrInvalidCollection", err)
	}

	clean := page.Sanitize(gen)
	data, err = EncodePages([]Page{clean})
	if err != nil {
		t.Fatalf("EncodePages() error = %v", err)
	}
	if err := Validate(data); err != nil {
		t.Errorf("Validate() after Sanitize error = %v", err)
	}

	if page.Grid[0].H != 0 || page.Tabs[0].ID != "" {
		t.Error("Sanitize must not modify its receiver")
	}
}
