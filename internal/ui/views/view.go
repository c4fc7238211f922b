package views

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Widgets       []WidgetView
	ShowLabels    bool
	Online        bool
	Unsynced      int
	StatusMessage string
	LastError     string
	ShowHelp      bool
	HelpModel     help.Model
	HelpKeys      help.KeyMap
	TextInput     string
	InputMode     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	groupRender *ButtonGroupRenderer
	readyMarker bool
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		groupRender: NewButtonGroupRenderer(styles),
		readyMarker: os.Getenv("BUTTONGROUP_E2E_TEST") == "1",
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.InputMode != "" {
		content.WriteString(r.styles.Input.Render(state.TextInput))
		content.WriteString("\n\n")
	}

	if len(state.Widgets) == 0 {
		content.WriteString(r.styles.Dim.Render("No button groups configured."))
	} else {
		rows := make([]string, 0, len(state.Widgets))
		for _, w := range state.Widgets {
			rows = append(rows, r.groupRender.Render(w, state.ShowLabels))
		}
		content.WriteString(strings.Join(rows, "\n\n"))
	}
	content.WriteString("\n")

	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")

	if state.HelpKeys != nil {
		if state.ShowHelp {
			content.WriteString(state.HelpModel.FullHelpView(state.HelpKeys.FullHelp()))
		} else {
			content.WriteString(state.HelpModel.ShortHelpView(state.HelpKeys.ShortHelp()))
		}
	} else {
		content.WriteString(r.styles.Help.Render("Press ? for help"))
	}

	if r.readyMarker {
		content.WriteString("\n__READY__")
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitle renders the logo with the manager status right-aligned
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("buttongroup")

	var right string
	if state.Online {
		right = r.styles.StatusSuccess.Render("● online")
	} else {
		right = r.styles.StatusError.Render("○ offline")
	}
	if state.Unsynced > 0 {
		right = fmt.Sprintf("%s  %s", r.styles.StatusWarning.Render(fmt.Sprintf("%d unsynced", state.Unsynced)), right)
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(right)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + right
	}
	return fmt.Sprintf("%s  %s", logo, right)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.LastError != "" {
		return r.styles.StatusError.MarginTop(1).Render("error: " + state.LastError)
	}
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}
	return r.styles.Status.Render(" ")
}
