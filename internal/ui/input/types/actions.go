package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// ClickAction clicks the option under the cursor of the focused widget
type ClickAction struct {
	WidgetID string
	Index    int
}

func (a ClickAction) Type() string { return "click" }

// ResetFormAction clears the form the focused widget belongs to
type ResetFormAction struct {
	FormID string
}

func (a ResetFormAction) Type() string { return "reset_form" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text   string
	Mode   Mode   // Which mode submitted the text
	Target string // Widget the mode was opened for
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ToggleOnlineAction struct{}

func (a ToggleOnlineAction) Type() string { return "toggle_online" }

type ShowHistoryAction struct{}

func (a ShowHistoryAction) Type() string { return "show_history" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
