package modes

import (
	"strings"

	"buttongroup/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// selectionRunes are the only characters a pushed selection can contain
const selectionRunes = "0123456789, []"

// PushMode reads a comma separated selection to push into the focused widget
type PushMode struct {
	textInput *textinput.Model
}

func NewPushMode(ti *textinput.Model) *PushMode {
	return &PushMode{textInput: ti}
}

func (m *PushMode) Name() string {
	return "push"
}

// Prompt returns the label shown in front of the text input
func (m *PushMode) Prompt() string {
	return "Push value: "
}

func (m *PushMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "" // drawn by the view model
		m.textInput.Placeholder = "e.g. 0,2 or empty to clear"
	}
	return nil
}

func (m *PushMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *PushMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case tea.KeyEnter:
		return []types.Action{
			types.SubmitTextAction{Text: m.value(), Mode: types.ModePush},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !strings.ContainsRune(selectionRunes, r) {
				// swallow the key, leave the input as is
				return []types.Action{types.UpdateTextAction{Text: m.value()}}, true
			}
		}
	}
	// Let the main handler update the text input
	return nil, false
}

func (m *PushMode) value() string {
	if m.textInput == nil {
		return ""
	}
	return m.textInput.Value()
}
