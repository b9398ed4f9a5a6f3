package manager

import (
	"sort"
	"time"
)

// EventKind names the part of the state that changed.
type EventKind string

const (
	EventPage   EventKind = "page"
	EventLayout EventKind = "layout"
	EventTab    EventKind = "tab"
	EventGrid   EventKind = "grid"
	EventWidget EventKind = "widget"
	EventSaved  EventKind = "saved"
	EventLoaded EventKind = "loaded"
)

// Event describes a state change.
type Event struct {
	Kind     EventKind
	Page     string
	LayoutID string
	Tab      int
	At       time.Time
}

// Subscribe registers fn to be called synchronously after every mutation.
// The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(Event)) func() {
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	return func() {
		delete(m.subscribers, id)
	}
}

// notify delivers an event to subscribers in registration order.
func (m *Manager) notify(kind EventKind) {
	if len(m.subscribers) == 0 {
		return
	}
	ev := Event{
		Kind:     kind,
		Page:     m.currentPage,
		LayoutID: m.currentLayout.ID,
		Tab:      m.currentTab,
		At:       m.clock.Now(),
	}

	ids := make([]int, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := m.subscribers[id]; ok {
			fn(ev)
		}
	}
}
