package manager

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/danieljhkim/gridboard/internal/layout"
)

// CreateLayout adds an empty saved layout named name to the current page,
// persists the collection and activates the new layout.
func (m *Manager) CreateLayout(name string) (layout.Page, error) {
	page := layout.NewPage(m.ids, m.currentPage, name)
	m.savedLayouts = append(m.savedLayouts, page.Clone())
	if err := m.persist(); err != nil {
		m.savedLayouts = m.savedLayouts[:len(m.savedLayouts)-1]
		return layout.Page{}, err
	}
	if err := m.SetLayout(page.ID); err != nil {
		return layout.Page{}, err
	}
	return page, nil
}

// CreateTab appends an empty tab to the working layout, saves, and selects
// the new tab.
func (m *Manager) CreateTab(name string) (layout.Tab, error) {
	tab := layout.NewTab(m.ids, name)
	m.currentLayout.Tabs = append(m.currentLayout.Tabs, tab.Clone())
	if err := m.Save(); err != nil {
		return layout.Tab{}, err
	}
	m.currentTab = len(m.currentLayout.Tabs) - 1
	m.notify(EventTab)
	return tab, nil
}

// UpdateLayout replaces the working layout with a sanitized copy of page
// and saves.
func (m *Manager) UpdateLayout(page layout.Page) error {
	m.currentLayout = page.Sanitize(m.ids)
	m.notify(EventLayout)
	return m.Save()
}

// RenameLayout renames the working layout and saves. Renaming a default
// layout forks it like any other edit.
func (m *Manager) RenameLayout(name string) error {
	m.currentLayout.Name = name
	m.notify(EventLayout)
	return m.Save()
}

// UpdateGrid replaces the working layout's grid and saves. Widgets are
// sanitized so the collection stays loadable. An empty grid is replaced by a
// single placeholder widget.
func (m *Manager) UpdateGrid(grid layout.Grid) error {
	if len(grid) > 0 {
		m.currentLayout.Grid = grid.Sanitize(m.ids)
	} else {
		m.currentLayout.Grid = layout.PlaceholderGrid(m.ids)
	}
	m.notify(EventGrid)
	return m.Save()
}

// UpdateTab writes tab into the selected tab slot and saves. An empty tab
// grid is replaced by a single placeholder widget.
func (m *Manager) UpdateTab(tab layout.Tab) error {
	if !m.tabInRange() {
		return fmt.Errorf("%w: %d (layout has %d tabs)", ErrTabOutOfRange, m.currentTab, len(m.currentLayout.Tabs))
	}

	tab = tab.Sanitize(m.ids)
	if len(tab.Grid) == 0 {
		tab.Grid = layout.PlaceholderGrid(m.ids)
	}
	m.currentLayout.Tabs[m.currentTab] = tab
	m.notify(EventGrid)
	return m.Save()
}

// AddWidgetToGrid places w on the working layout's grid without overlap and
// returns it as placed. A widget without an id is given one. The change is
// held in memory until the next save.
func (m *Manager) AddWidgetToGrid(w layout.Widget) layout.Widget {
	placed := m.currentLayout.Grid.Place(m.prepareWidget(w))
	m.notify(EventWidget)
	return placed
}

// AddWidgetToTab places w on the selected tab's grid without overlap.
func (m *Manager) AddWidgetToTab(w layout.Widget) (layout.Widget, error) {
	if !m.tabInRange() {
		return layout.Widget{}, fmt.Errorf("%w: %d (layout has %d tabs)", ErrTabOutOfRange, m.currentTab, len(m.currentLayout.Tabs))
	}
	placed := m.currentLayout.Tabs[m.currentTab].Grid.Place(m.prepareWidget(w))
	m.notify(EventWidget)
	return placed, nil
}

func (m *Manager) prepareWidget(w layout.Widget) layout.Widget {
	w = w.Clone()
	if w.ID == "" {
		w.ID = m.ids.NewID()
	}
	return w
}

// UpdateWidgetSettings sets the settings of the widget with the given id,
// looking in the grid before the selected tab, then saves. An unknown id
// changes nothing but still saves.
func (m *Manager) UpdateWidgetSettings(id string, settings json.RawMessage) error {
	if len(settings) > 0 && !json.Valid(settings) {
		return fmt.Errorf("%w: widget %s", ErrInvalidSettings, id)
	}

	if w := m.findWidget(id); w != nil {
		w.Settings = bytes.Clone(settings)
		m.notify(EventWidget)
	} else {
		m.logger.Debug("no widget to update settings for", "widget", id, "layout", m.currentLayout.ID)
	}
	return m.Save()
}

// findWidget returns a pointer into the working layout for the widget id,
// searching the grid before the selected tab.
func (m *Manager) findWidget(id string) *layout.Widget {
	if i := m.currentLayout.Grid.Find(id); i != -1 {
		return &m.currentLayout.Grid[i]
	}
	if m.tabInRange() {
		grid := m.currentLayout.Tabs[m.currentTab].Grid
		if i := grid.Find(id); i != -1 {
			return &grid[i]
		}
	}
	return nil
}

// RemoveWidget removes a widget from the grid, or else from the selected
// tab, and saves through UpdateGrid or UpdateTab so the grid never ends up
// empty.
func (m *Manager) RemoveWidget(id string) error {
	if m.currentLayout.Grid.Find(id) != -1 {
		return m.UpdateGrid(m.currentLayout.Grid.Without(id))
	}
	if m.tabInRange() {
		tab := m.currentLayout.Tabs[m.currentTab]
		if tab.Grid.Find(id) != -1 {
			tab.Grid = tab.Grid.Without(id)
			return m.UpdateTab(tab)
		}
	}
	m.logger.Warn("widget not found", "widget", id, "layout", m.currentLayout.ID)
	return fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
}
