package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the normal mode bindings for the help view
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Click   key.Binding
	Reset   key.Binding
	Push    key.Binding
	Online  key.Binding
	History key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the bindings handled by the normal mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev option")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next option")),
		Up:      key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "prev group")),
		Down:    key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next group")),
		Click:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "click")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "clear form")),
		Push:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "push value")),
		Online:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle online")),
		History: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Reset, k.Push, k.Online, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Click, k.Reset, k.Push},
		{k.Online, k.History, k.Help, k.Quit},
	}
}
