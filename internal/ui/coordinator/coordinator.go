package coordinator

import (
	"errors"
	"fmt"
	"log"

	"buttongroup/internal/domain"
	"buttongroup/internal/ui/logic"
	"buttongroup/internal/ui/services/events"
	"buttongroup/internal/ui/services/formreset"
	"buttongroup/internal/ui/services/selection"
	"buttongroup/internal/widgetmgr"
)

// ErrUnknownWidget is returned for widget IDs the coordinator does not manage
var ErrUnknownWidget = errors.New("unknown widget")

// WidgetErrorEvent is published when a trigger fails outside a direct call,
// e.g. a form reset against an invalid default
type WidgetErrorEvent struct {
	WidgetID string
	Err      error
}

// Widget pairs the selection service of one button group with its form bridge
type Widget struct {
	Selection *selection.Service
	Bridge    *formreset.Bridge
}

// Coordinator manages all button groups of a page and their interactions
type Coordinator struct {
	Navigation *logic.Navigator
	Widgets    []*Widget

	byID map[string]int
	mgr  widgetmgr.Manager
	bus  events.EventBus
}

// NewCoordinator mounts one widget per element: it seeds each selection,
// performs the initial sync and subscribes to form clears.
func NewCoordinator(elements []*domain.Element, mgr widgetmgr.Manager, fragmentID string, bus events.EventBus) (*Coordinator, error) {
	if bus == nil {
		bus = &events.NullBus{}
	}
	c := &Coordinator{
		byID: make(map[string]int, len(elements)),
		mgr:  mgr,
		bus:  bus,
	}

	sizes := make([]int, 0, len(elements))
	for i, el := range elements {
		if _, dup := c.byID[el.ID]; dup {
			c.Close()
			return nil, fmt.Errorf("widget %q: duplicate id", el.ID)
		}
		svc, err := selection.NewService(el, mgr, fragmentID, bus)
		if err != nil {
			c.Close()
			return nil, err
		}
		svc.Sync()

		w := &Widget{Selection: svc}
		w.Bridge = formreset.New(mgr, el.FormID, func() { c.reset(w) })

		c.byID[el.ID] = i
		c.Widgets = append(c.Widgets, w)
		sizes = append(sizes, len(el.Options))
	}
	c.Navigation = logic.NewNavigator(sizes)

	return c, nil
}

func (c *Coordinator) reset(w *Widget) {
	if err := w.Selection.Reset(); err != nil {
		log.Printf("Coordinator: reset of %s failed: %v", w.Selection.Element().ID, err)
		c.bus.Publish(WidgetErrorEvent{WidgetID: w.Selection.Element().ID, Err: err})
	}
}

// Focused returns the focused widget, or nil when there are none
func (c *Coordinator) Focused() *Widget {
	i := c.Navigation.Focused()
	if i < 0 {
		return nil
	}
	return c.Widgets[i]
}

// Widget returns the widget with the given ID
func (c *Coordinator) Widget(id string) (*Widget, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWidget, id)
	}
	return c.Widgets[i], nil
}

// ClickCurrent clicks the option under the cursor of the focused widget
func (c *Coordinator) ClickCurrent() error {
	w := c.Focused()
	if w == nil {
		return nil
	}
	return w.Selection.Click(c.Navigation.Cursor(c.Navigation.Focused()))
}

// Click clicks option index of the widget with the given ID
func (c *Coordinator) Click(id string, index int) error {
	w, err := c.Widget(id)
	if err != nil {
		return err
	}
	return w.Selection.Click(index)
}

// PushValue applies an externally pushed value to the widget with the given ID
func (c *Coordinator) PushValue(id string, value []int) error {
	w, err := c.Widget(id)
	if err != nil {
		return err
	}
	return w.Selection.PushValue(value)
}

// ClearFocusedForm clears the form of the focused widget.
// Returns the form ID, or "" when the widget is not in a form.
func (c *Coordinator) ClearFocusedForm() string {
	w := c.Focused()
	if w == nil {
		return ""
	}
	formID := w.Selection.Element().FormID
	if formID == "" {
		return ""
	}
	c.mgr.ClearForm(formID)
	return formID
}

// ResyncAll retries every push the manager rejected. Returns how many succeeded.
func (c *Coordinator) ResyncAll() int {
	n := 0
	for _, w := range c.Widgets {
		if w.Selection.Resync() {
			n++
		}
	}
	return n
}

// Unsynced returns the number of widgets whose latest push was rejected
func (c *Coordinator) Unsynced() int {
	n := 0
	for _, w := range c.Widgets {
		if w.Selection.Unsynced() {
			n++
		}
	}
	return n
}

// Close releases every form subscription
func (c *Coordinator) Close() {
	for _, w := range c.Widgets {
		if w.Bridge != nil {
			w.Bridge.Close()
		}
	}
}
