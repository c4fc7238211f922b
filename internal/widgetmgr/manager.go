package widgetmgr

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"buttongroup/internal/domain"
	"buttongroup/internal/eventbus"
)

// ErrUnavailable is returned by writes while the manager is offline
var ErrUnavailable = errors.New("widget state manager unavailable")

// Manager stores int-array widget values and notifies listeners when a form is cleared
type Manager interface {
	GetIntArrayValue(widgetID string) ([]int, bool)
	SetIntArrayValue(widgetID string, value []int, source domain.Source, fragmentID string) error
	AddFormClearedListener(formID string, fn func()) func()
	ClearForm(formID string)
}

// Controllable is a Manager whose availability can be switched by the host
type Controllable interface {
	Manager
	SetOnline(online bool)
	Online() bool
	Entries() map[string]Entry
}

// Entry is a stored widget value with the metadata of its last write
type Entry struct {
	WidgetID   string
	Value      []int
	FromUI     bool
	FragmentID string
}

type listener struct {
	id uint64
	fn func()
}

// MemoryManager is an in-memory implementation of Manager
type MemoryManager struct {
	mu        sync.RWMutex
	values    map[string]Entry
	listeners map[string][]listener // formID -> listeners
	nextID    uint64
	online    bool
	bus       eventbus.EventBus
}

// NewMemoryManager creates an online manager without event publishing
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{
		values:    make(map[string]Entry),
		listeners: make(map[string][]listener),
		online:    true,
	}
}

// NewMemoryManagerWithBus creates a manager that publishes its writes on bus
func NewMemoryManagerWithBus(bus eventbus.EventBus) *MemoryManager {
	m := NewMemoryManager()
	m.bus = bus
	return m
}

// GetIntArrayValue returns a copy of the stored value, if any.
// Reads keep working while offline.
func (m *MemoryManager) GetIntArrayValue(widgetID string) ([]int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.values[widgetID]
	if !ok {
		return nil, false
	}
	return append([]int{}, e.Value...), true
}

// SetIntArrayValue stores value for widgetID
func (m *MemoryManager) SetIntArrayValue(widgetID string, value []int, source domain.Source, fragmentID string) error {
	m.mu.Lock()
	if !m.online {
		m.mu.Unlock()
		return fmt.Errorf("set %s: %w", widgetID, ErrUnavailable)
	}
	stored := append([]int{}, value...)
	m.values[widgetID] = Entry{
		WidgetID:   widgetID,
		Value:      stored,
		FromUI:     source.FromUI,
		FragmentID: fragmentID,
	}
	m.mu.Unlock()

	if m.bus != nil {
		m.bus.Publish(eventbus.WidgetValueSetEvent{
			WidgetID:   widgetID,
			Value:      append([]int{}, stored...),
			FromUI:     source.FromUI,
			FragmentID: fragmentID,
		})
	}
	return nil
}

// AddFormClearedListener registers fn for clears of formID.
// Returns a function that removes the listener.
func (m *MemoryManager) AddFormClearedListener(formID string, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.listeners[formID] = append(m.listeners[formID], listener{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		ls := m.listeners[formID]
		for i, l := range ls {
			if l.id == id {
				m.listeners[formID] = append(ls[:i:i], ls[i+1:]...)
				break
			}
		}
		if len(m.listeners[formID]) == 0 {
			delete(m.listeners, formID)
		}
	}
}

// ClearForm synchronously notifies every listener registered for formID
func (m *MemoryManager) ClearForm(formID string) {
	m.mu.RLock()
	ls := make([]listener, len(m.listeners[formID]))
	copy(ls, m.listeners[formID])
	m.mu.RUnlock()

	log.Printf("Manager: clearing form %q (%d listeners)", formID, len(ls))
	for _, l := range ls {
		l.fn()
	}

	if m.bus != nil {
		m.bus.Publish(eventbus.FormClearedEvent{FormID: formID})
	}
}

// ListenerCount returns the number of listeners registered for formID
func (m *MemoryManager) ListenerCount(formID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.listeners[formID])
}

// SetOnline marks the manager available or unavailable for writes
func (m *MemoryManager) SetOnline(online bool) {
	m.mu.Lock()
	changed := m.online != online
	m.online = online
	m.mu.Unlock()

	if changed && m.bus != nil {
		m.bus.Publish(eventbus.ManagerStatusEvent{Online: online})
	}
}

// Online reports whether writes are accepted
func (m *MemoryManager) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Entries returns a copy of all stored values
func (m *MemoryManager) Entries() map[string]Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]Entry, len(m.values))
	for k, v := range m.values {
		v.Value = append([]int{}, v.Value...)
		result[k] = v
	}
	return result
}

var _ Controllable = (*MemoryManager)(nil)
