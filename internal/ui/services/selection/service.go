package selection

import (
	"log"

	"buttongroup/internal/domain"
	"buttongroup/internal/ui/services/events"
	"buttongroup/internal/widgetmgr"
)

// Service owns the selection of one button group and keeps it in sync with
// the widget state manager.
type Service struct {
	element    *domain.Element
	state      State
	mgr        widgetmgr.Manager
	fragmentID string
	bus        events.EventBus

	lastPush *PushEffect
	pending  *PushEffect // last push the manager rejected
}

// NewService creates a service for element, seeding the selection from the
// manager's stored value or the element's default. Nothing is written.
func NewService(element *domain.Element, mgr widgetmgr.Manager, fragmentID string, bus events.EventBus) (*Service, error) {
	if bus == nil {
		bus = &events.NullBus{}
	}
	s := &Service{
		element:    element,
		mgr:        mgr,
		fragmentID: fragmentID,
		bus:        bus,
	}

	stored, ok := mgr.GetIntArrayValue(element.ID)
	if err := s.Handle(InitEvent{Stored: stored, HasStored: ok}); err != nil {
		return nil, err
	}
	return s, nil
}

// Handle applies ev and performs the resulting push, if any
func (s *Service) Handle(ev Event) error {
	t, err := Reduce(*s.element, s.state, ev)
	if t.ConsumeSetValue {
		s.element.SetValue = false
	}
	if err != nil {
		return err
	}

	s.state = t.State
	if t.Push != nil {
		s.push(*t.Push)
	}

	s.bus.Publish(SelectionChangedEvent{
		WidgetID:  s.element.ID,
		Cause:     ev.Kind(),
		Selection: s.Selection(),
		Pushed:    t.Push != nil,
		FromUI:    t.Push != nil && t.Push.FromUI,
	})
	return nil
}

// Click handles a user click on option index. Clicks on a disabled widget are ignored.
func (s *Service) Click(index int) error {
	if s.element.Disabled {
		return nil
	}
	return s.Handle(ClickEvent{Index: index})
}

// Reset returns the selection to the element's default and reports it
func (s *Service) Reset() error {
	return s.Handle(ResetEvent{})
}

// Refresh applies the element's externally pushed value when its apply marker is set.
// It returns true when a value was applied.
func (s *Service) Refresh() (bool, error) {
	if !s.element.SetValue {
		return false, nil
	}
	if err := s.Handle(ExternalPushEvent{Value: s.element.Value}); err != nil {
		return false, err
	}
	return true, nil
}

// PushValue records value on the element with its apply marker set and applies it
func (s *Service) PushValue(value []int) error {
	s.element.Value = clone(value)
	s.element.SetValue = true
	_, err := s.Refresh()
	return err
}

// Sync writes the current selection as a non-UI value. Hosts call it once on mount.
func (s *Service) Sync() {
	s.push(PushEffect{Selection: s.Selection(), FromUI: false})
}

// Resync writes the current selection after a rejected push. It carries the
// origin of the rejected push and reports whether the write succeeded.
func (s *Service) Resync() bool {
	if s.pending == nil {
		return false
	}
	return s.push(PushEffect{Selection: s.Selection(), FromUI: s.pending.FromUI})
}

func (s *Service) push(p PushEffect) bool {
	if err := s.mgr.SetIntArrayValue(s.element.ID, p.Selection, domain.Source{FromUI: p.FromUI}, s.fragmentID); err != nil {
		log.Printf("Selection: push of %s failed, keeping local value %v: %v", s.element.ID, p.Selection, err)
		s.pending = &p
		s.bus.Publish(SyncFailedEvent{WidgetID: s.element.ID, Err: err})
		return false
	}
	s.pending = nil
	s.lastPush = &p
	return true
}

// Selection returns a copy of the current selection
func (s *Service) Selection() []int {
	return clone(s.state.Selection)
}

// Element returns the widget configuration
func (s *Service) Element() *domain.Element {
	return s.element
}

// LastPush returns the last successful push, or nil
func (s *Service) LastPush() *PushEffect {
	return s.lastPush
}

// Unsynced reports whether the latest push was rejected by the manager
func (s *Service) Unsynced() bool {
	return s.pending != nil
}
