package manager

import (
	"fmt"

	"github.com/danieljhkim/gridboard/internal/layout"
)

// Save reconciles the working layout with storage.
//
//   - A saved layout with the same id is overwritten and the collection persisted.
//   - With no default layouts there is nothing to reconcile; nothing is written.
//   - A default layout with the same id is compared by fingerprint. Unchanged
//     content is a no-op. Changed content forks the working layout into a new
//     saved layout named "Custom - <name>"; later saves hit the first case.
//   - Any other id is a caller logic error and returns ErrUnknownLayout.
func (m *Manager) Save() error {
	id := m.currentLayout.ID

	if i := layout.FindPage(m.savedLayouts, id); i != -1 {
		prev := m.savedLayouts[i]
		m.savedLayouts[i] = m.currentLayout.Clone()
		if err := m.persist(); err != nil {
			m.savedLayouts[i] = prev
			return err
		}
		m.notify(EventSaved)
		return nil
	}

	if m.defaultLayouts == nil {
		m.logger.Warn("no default layouts to reconcile against; layout not saved",
			"layout", id, "page", m.currentPage)
		return nil
	}

	i := layout.FindPage(m.defaultLayouts, id)
	if i == -1 {
		m.logger.Error("current layout matches no saved or default layout",
			"layout", id, "page", m.currentPage)
		return fmt.Errorf("%w: %s", ErrUnknownLayout, id)
	}

	digestDefault, err := m.fingerprinter.Fingerprint(m.defaultLayouts[i])
	if err != nil {
		return fmt.Errorf("failed to fingerprint default layout: %w", err)
	}
	digestCurrent, err := m.fingerprinter.Fingerprint(m.currentLayout)
	if err != nil {
		return fmt.Errorf("failed to fingerprint current layout: %w", err)
	}
	if digestDefault == digestCurrent {
		m.logger.Debug("default layout unchanged; nothing to save", "layout", id)
		return nil
	}

	edited := m.currentLayout
	m.currentLayout.ID = m.ids.NewID()
	m.currentLayout.Page = m.currentPage
	m.currentLayout.Name = customNamePrefix + m.currentLayout.Name
	m.currentLayout.Default = false
	m.savedLayouts = append(m.savedLayouts, m.currentLayout.Clone())

	if err := m.persist(); err != nil {
		m.savedLayouts = m.savedLayouts[:len(m.savedLayouts)-1]
		m.currentLayout = edited
		return err
	}
	m.logger.Info("forked default layout",
		"default", id, "layout", m.currentLayout.ID, "name", m.currentLayout.Name)
	m.notify(EventSaved)
	return nil
}

// Load replaces the saved layouts with the persisted collection. A missing
// key leaves the saved layouts untouched. Data that fails validation is
// logged and replaced with an empty collection.
func (m *Manager) Load() error {
	data, ok, err := m.store.Get(m.storageKey)
	if err != nil {
		return fmt.Errorf("failed to load saved layouts: %w", err)
	}
	if !ok {
		return nil
	}

	pages, err := layout.DecodePages([]byte(data))
	if err != nil {
		m.logger.Warn("discarding unreadable saved layouts", "key", m.storageKey, "error", err)
		pages = []layout.Page{}
	}

	m.savedLayouts = pages
	m.notify(EventLoaded)
	return nil
}

// persist writes the whole saved collection under the storage key.
func (m *Manager) persist() error {
	data, err := layout.EncodePages(m.savedLayouts)
	if err != nil {
		return err
	}
	// Load discards a collection that fails validation, so never write one.
	if err := layout.Validate(data); err != nil {
		m.logger.Error("refusing to persist invalid saved layouts", "key", m.storageKey, "error", err)
		return err
	}
	if err := m.store.Set(m.storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist saved layouts: %w", err)
	}
	return nil
}
