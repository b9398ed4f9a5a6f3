// Package layout defines the dashboard layout model and the grid placement
// rules.
//
// A Page (one saved or default layout) belongs to a page key and holds a
// top-level Grid plus optional Tabs, each with a Grid of its own. Widgets in
// a grid are rectangles measured in grid cells; no two widgets in one grid
// may overlap once they have been placed.
//
// Key concepts:
//   - Widget: a widget instance with a kind reference, rectangle and settings
//   - Grid: an unordered set of widgets sharing one coordinate plane
//   - Page: a layout for one page key, either a default template or saved
//   - Clone: explicit deep copies used at every store boundary
//   - Place: auto-placement of new widgets without overlap
package layout
