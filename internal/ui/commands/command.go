package commands

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"buttongroup/internal/eventbus"
	"buttongroup/internal/ui/state"
	"buttongroup/internal/widgetmgr"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution.
// Without a bus, events are handed to Apply directly.
type CommandContext struct {
	State   *state.AppState
	Bus     eventbus.EventBus
	Manager widgetmgr.Controllable
	Apply   func(eventbus.DomainEvent) tea.Cmd
}

func (c *CommandContext) dispatch(event eventbus.DomainEvent) tea.Cmd {
	if c.Bus != nil {
		c.Bus.Publish(event)
		return nil
	}
	if c.Apply != nil {
		return c.Apply(event)
	}
	return nil
}

// ParseSelection parses a comma separated list of option indices.
// Blank input is the empty selection.
func ParseSelection(text string) ([]int, error) {
	text = strings.TrimSpace(strings.Trim(strings.TrimSpace(text), "[]"))
	if text == "" {
		return []int{}, nil
	}
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// PushValueCommand pushes an external value into a widget
type PushValueCommand struct {
	ctx      *CommandContext
	widgetID string
	text     string
}

// NewPushValueCommand creates a new push value command
func NewPushValueCommand(ctx *CommandContext, widgetID, text string) *PushValueCommand {
	return &PushValueCommand{
		ctx:      ctx,
		widgetID: widgetID,
		text:     text,
	}
}

// Execute parses the value and publishes it for the widget
func (c *PushValueCommand) Execute() tea.Cmd {
	value, err := ParseSelection(c.text)
	if err != nil {
		c.ctx.State.SetError(err)
		return nil
	}
	log.Printf("PushValueCommand: %s <- %v", c.widgetID, value)
	return c.ctx.dispatch(eventbus.ValuePushedEvent{WidgetID: c.widgetID, Value: value})
}

// ToggleOnlineCommand switches the widget state manager between online and offline
type ToggleOnlineCommand struct {
	ctx *CommandContext
}

// NewToggleOnlineCommand creates a new toggle online command
func NewToggleOnlineCommand(ctx *CommandContext) *ToggleOnlineCommand {
	return &ToggleOnlineCommand{ctx: ctx}
}

// Execute flips the manager availability
func (c *ToggleOnlineCommand) Execute() tea.Cmd {
	online := !c.ctx.Manager.Online()
	c.ctx.Manager.SetOnline(online)
	// A manager with a bus announces the change itself
	if c.ctx.Bus != nil {
		return nil
	}
	return c.ctx.dispatch(eventbus.ManagerStatusEvent{Online: online})
}

// ClearFormCommand clears every widget of a form through the manager
type ClearFormCommand struct {
	ctx    *CommandContext
	formID string
}

// NewClearFormCommand creates a new clear form command
func NewClearFormCommand(ctx *CommandContext, formID string) *ClearFormCommand {
	return &ClearFormCommand{ctx: ctx, formID: formID}
}

// Execute clears the form; listeners run before it returns
func (c *ClearFormCommand) Execute() tea.Cmd {
	if c.formID == "" {
		return nil
	}
	c.ctx.Manager.ClearForm(c.formID)
	if c.ctx.Bus != nil {
		return nil
	}
	return c.ctx.dispatch(eventbus.FormClearedEvent{FormID: c.formID})
}
