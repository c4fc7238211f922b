package handlers

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"buttongroup/internal/eventbus"
	"buttongroup/internal/ui/coordinator"
	"buttongroup/internal/ui/services/events"
	"buttongroup/internal/ui/services/selection"
	"buttongroup/internal/ui/state"
)

// EventHandler handles domain and UI service events and updates state
type EventHandler struct {
	state       *state.AppState
	coordinator *coordinator.Coordinator
	now         func() time.Time
	failed      string // widget whose push just failed
}

// NewEventHandler creates a new event handler. The coordinator is attached
// later with SetCoordinator so mount-time events are recorded too.
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state: appState,
		now:   time.Now,
	}
}

// SetCoordinator attaches the coordinator that domain events are applied to
func (h *EventHandler) SetCoordinator(c *coordinator.Coordinator) {
	h.coordinator = c
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ValuePushedEvent:
		if h.coordinator == nil {
			return nil
		}
		if err := h.coordinator.PushValue(e.WidgetID, e.Value); err != nil {
			log.Printf("EventHandler: push to %s failed: %v", e.WidgetID, err)
			h.state.SetError(err)
		}

	case eventbus.ManagerStatusEvent:
		h.state.Online = e.Online
		if !e.Online {
			h.state.SetStatus("Widget state manager offline")
			return nil
		}
		n := 0
		if h.coordinator != nil {
			n = h.coordinator.ResyncAll()
		}
		if n > 0 {
			h.state.SetStatus(fmt.Sprintf("Back online, resynced %d widget(s)", n))
		} else {
			h.state.SetStatus("Back online")
		}

	case eventbus.FormClearedEvent:
		h.state.SetStatus(fmt.Sprintf("Cleared form %s", e.FormID))

	case eventbus.ErrorEvent:
		if e.Err != nil {
			h.state.LastError = fmt.Sprintf("%s: %v", e.Message, e.Err)
		} else {
			h.state.LastError = e.Message
		}

	case eventbus.ConfigLoadedEvent:
		h.state.SetStatus(fmt.Sprintf("Loaded %d widget(s) from %s", e.Widgets, e.Path))

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(fmt.Sprintf("Saved configuration to %s", e.Path))

	case eventbus.WidgetValueSetEvent:
		log.Printf("EventHandler: %s stored %v fromUi=%t fragment=%s", e.WidgetID, e.Value, e.FromUI, e.FragmentID)
	}

	return nil
}

// Subscribe registers the handler for the events published by the widget services
func (h *EventHandler) Subscribe(bus events.EventBus) {
	bus.Subscribe(events.EventType(selection.SelectionChangedEvent{}), func(ev interface{}) {
		h.handleSelectionChanged(ev.(selection.SelectionChangedEvent))
	})
	bus.Subscribe(events.EventType(selection.SyncFailedEvent{}), func(ev interface{}) {
		h.handleSyncFailed(ev.(selection.SyncFailedEvent))
	})
	bus.Subscribe(events.EventType(coordinator.WidgetErrorEvent{}), func(ev interface{}) {
		e := ev.(coordinator.WidgetErrorEvent)
		h.state.SetError(fmt.Errorf("%s: %w", e.WidgetID, e.Err))
	})
}

func (h *EventHandler) handleSelectionChanged(e selection.SelectionChangedEvent) {
	h.state.Record(state.SyncRecord{
		At:        h.now(),
		WidgetID:  e.WidgetID,
		Cause:     e.Cause.String(),
		Selection: e.Selection,
		Pushed:    e.Pushed,
		FromUI:    e.FromUI,
	})
	if e.Cause == selection.KindInit {
		return
	}
	msg := fmt.Sprintf("%s: %v (%s)", e.WidgetID, e.Selection, e.Cause)
	if e.Pushed {
		msg = fmt.Sprintf("%s: %v fromUi=%t", e.WidgetID, e.Selection, e.FromUI)
	}
	// Keep the sync error of this transition visible
	if h.failed == e.WidgetID {
		h.failed = ""
		h.state.StatusMessage = msg
		return
	}
	h.state.SetStatus(msg)
}

func (h *EventHandler) handleSyncFailed(e selection.SyncFailedEvent) {
	h.state.Record(state.SyncRecord{
		At:       h.now(),
		WidgetID: e.WidgetID,
		Cause:    "sync",
		Err:      e.Err.Error(),
	})
	h.failed = e.WidgetID
	h.state.SetError(fmt.Errorf("%s not synced: %w", e.WidgetID, e.Err))
}
