package input

import (
	"buttongroup/internal/ui/coordinator"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Coordinator *coordinator.Coordinator
}

// WidgetCount returns the number of mounted button groups
func (c *ModelContext) WidgetCount() int {
	if c.Coordinator == nil {
		return 0
	}
	return len(c.Coordinator.Widgets)
}

// FocusedWidgetID returns the ID of the focused widget, or "" when there is none
func (c *ModelContext) FocusedWidgetID() string {
	if c.Coordinator == nil {
		return ""
	}
	if w := c.Coordinator.Focused(); w != nil {
		return w.Selection.Element().ID
	}
	return ""
}

// FocusedFormID returns the form of the focused widget
func (c *ModelContext) FocusedFormID() string {
	if c.Coordinator == nil {
		return ""
	}
	if w := c.Coordinator.Focused(); w != nil {
		return w.Selection.Element().FormID
	}
	return ""
}

// Cursor returns the option under the cursor of the focused widget
func (c *ModelContext) Cursor() int {
	if c.Coordinator == nil {
		return 0
	}
	return c.Coordinator.Navigation.Cursor(c.Coordinator.Navigation.Focused())
}
