package modes

import (
	"buttongroup/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case key.Matches(msg, m.keys.Right):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case msg.Type == tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case msg.Type == tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Click):
		if ctx.FocusedWidgetID() == "" {
			return nil, false
		}
		return []types.Action{types.ClickAction{WidgetID: ctx.FocusedWidgetID(), Index: ctx.Cursor()}}, true

	case key.Matches(msg, m.keys.Reset):
		// Only widgets inside a form take part in a form clear
		if ctx.FocusedFormID() == "" {
			return nil, false
		}
		return []types.Action{types.ResetFormAction{FormID: ctx.FocusedFormID()}}, true

	case key.Matches(msg, m.keys.Push):
		if ctx.FocusedWidgetID() == "" {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModePush, Data: ctx.FocusedWidgetID()}}, true

	case key.Matches(msg, m.keys.Online):
		return []types.Action{types.ToggleOnlineAction{}}, true

	case key.Matches(msg, m.keys.History):
		return []types.Action{types.ShowHistoryAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
