package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"buttongroup/internal/eventbus"
	"buttongroup/internal/ui/state"
	"buttongroup/internal/widgetmgr"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, mgr widgetmgr.Controllable, apply func(eventbus.DomainEvent) tea.Cmd) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:   state,
			Bus:     bus,
			Manager: mgr,
			Apply:   apply,
		},
	}
}

// ExecutePushValue creates and executes a push value command
func (e *Executor) ExecutePushValue(widgetID, text string) tea.Cmd {
	cmd := NewPushValueCommand(e.ctx, widgetID, text)
	return cmd.Execute()
}

// ExecuteToggleOnline creates and executes a toggle online command
func (e *Executor) ExecuteToggleOnline() tea.Cmd {
	cmd := NewToggleOnlineCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteClearForm creates and executes a clear form command
func (e *Executor) ExecuteClearForm(formID string) tea.Cmd {
	cmd := NewClearFormCommand(e.ctx, formID)
	return cmd.Execute()
}
