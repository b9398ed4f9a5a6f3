// Package templates provides the default layouts offered per page.
//
// A bundled set ships inside the binary. Users can add or replace pages
// with a JSON file of the same shape: an object mapping a page key to an
// array of layouts.
package templates

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/danieljhkim/gridboard/internal/fsops"
	"github.com/danieljhkim/gridboard/internal/layout"
)

//go:embed defaults.json
var bundled []byte

// Set maps a page key to its default layouts.
type Set map[string][]layout.Page

// Bundled returns the default layouts compiled into the binary.
func Bundled() (Set, error) {
	set, err := Parse(bundled)
	if err != nil {
		return nil, fmt.Errorf("bundled templates: %w", err)
	}
	return set, nil
}

// Parse decodes a template document. Every page's layouts are validated
// against the layout schema, marked as defaults and bound to their page key.
func Parse(data []byte) (Set, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	set := make(Set, len(raw))
	for pageKey, doc := range raw {
		pages, err := layout.DecodePages(doc)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", pageKey, err)
		}
		for i := range pages {
			pages[i].Page = pageKey
			pages[i].Default = true
		}
		set[pageKey] = pages
	}
	return set, nil
}

// LoadFile reads a template document from path. A missing file yields an
// empty set.
func LoadFile(fs fsops.FS, path string) (Set, error) {
	exists, err := fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check templates file: %w", err)
	}
	if !exists {
		return Set{}, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Merge returns a set holding base's pages with overlay's pages replacing
// any page key both define.
func Merge(base, overlay Set) Set {
	out := make(Set, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// For returns a copy of the default layouts of pageKey, or nil when the
// page has none.
func (s Set) For(pageKey string) []layout.Page {
	pages, ok := s[pageKey]
	if !ok || len(pages) == 0 {
		return nil
	}
	return layout.ClonePages(pages)
}

// Pages returns the page keys in the set, sorted.
func (s Set) Pages() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
