package manager

import (
	"fmt"

	"github.com/danieljhkim/gridboard/internal/layout"
)

// SetPage switches to pageKey. It reloads the saved layouts, installs
// defaults as the page's default templates (nil for none), resets the tab
// selection and activates the first layout ListLayoutNames reports. With no
// layouts available the working layout is left as it was.
func (m *Manager) SetPage(pageKey string, defaults []layout.Page) error {
	if err := m.Load(); err != nil {
		return err
	}

	m.currentPage = pageKey
	m.defaultLayouts = layout.ClonePages(defaults)
	m.currentTab = 0
	m.notify(EventPage)

	names := m.ListLayoutNames()
	if len(names) == 0 {
		m.logger.Warn("no layouts available for page", "page", pageKey)
		return nil
	}

	return m.SetLayout(names[0].ID)
}

// SetLayout makes a copy of the layout with the given id the working
// layout and selects its first tab. Saved layouts take priority over
// defaults sharing the same id.
func (m *Manager) SetLayout(id string) error {
	source, ok := m.lookup(id)
	if !ok {
		m.logger.Warn("layout not found", "layout", id, "page", m.currentPage)
		return fmt.Errorf("%w: %s", ErrLayoutNotFound, id)
	}

	m.currentTab = 0
	m.currentLayout = source.Clone()
	m.notify(EventLayout)
	return nil
}

// lookup finds a layout by id, saved layouts first.
func (m *Manager) lookup(id string) (layout.Page, bool) {
	if i := layout.FindPage(m.savedLayouts, id); i != -1 {
		return m.savedLayouts[i], true
	}
	if i := layout.FindPage(m.defaultLayouts, id); i != -1 {
		return m.defaultLayouts[i], true
	}
	return layout.Page{}, false
}

// ListLayoutNames lists the saved layouts of the current page followed by
// every default layout, whose names are prefixed with "Default - ". Defaults
// are not filtered by page: the caller supplies them already page-scoped.
func (m *Manager) ListLayoutNames() []layout.NameRef {
	names := make([]layout.NameRef, 0, len(m.savedLayouts)+len(m.defaultLayouts))
	for _, p := range m.savedLayouts {
		if p.Page == m.currentPage {
			names = append(names, layout.NameRef{ID: p.ID, Name: p.Name})
		}
	}
	for _, p := range m.defaultLayouts {
		names = append(names, layout.NameRef{ID: p.ID, Name: defaultNamePrefix + p.Name})
	}
	return names
}

// SelectTab selects the tab at index in the working layout.
func (m *Manager) SelectTab(index int) error {
	if index < 0 || index >= len(m.currentLayout.Tabs) {
		return fmt.Errorf("%w: %d (layout has %d tabs)", ErrTabOutOfRange, index, len(m.currentLayout.Tabs))
	}
	m.currentTab = index
	m.notify(EventTab)
	return nil
}

// DeleteLayout removes a saved layout and persists the collection. Deleting
// the working layout activates the first remaining layout of the page.
func (m *Manager) DeleteLayout(id string) error {
	i := layout.FindPage(m.savedLayouts, id)
	if i == -1 {
		if layout.FindPage(m.defaultLayouts, id) != -1 {
			return fmt.Errorf("%w: %s", ErrDefaultLayout, id)
		}
		m.logger.Warn("layout not found", "layout", id, "page", m.currentPage)
		return fmt.Errorf("%w: %s", ErrLayoutNotFound, id)
	}

	m.savedLayouts = append(m.savedLayouts[:i:i], m.savedLayouts[i+1:]...)
	if err := m.persist(); err != nil {
		return err
	}
	m.notify(EventSaved)

	if m.currentLayout.ID != id {
		return nil
	}
	names := m.ListLayoutNames()
	if len(names) == 0 {
		m.logger.Warn("deleted the last layout of page", "page", m.currentPage)
		m.currentTab = 0
		m.currentLayout = layout.Initial()
		m.notify(EventLayout)
		return nil
	}
	return m.SetLayout(names[0].ID)
}
