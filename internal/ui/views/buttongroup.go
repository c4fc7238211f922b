package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"buttongroup/internal/ui/logic"
)

// OptionView is the resolved rendering input of one option
type OptionView struct {
	Index            int
	Content          logic.Content
	VisuallySelected bool
	Highlight        bool
	Cursor           bool
}

// WidgetView is the resolved rendering input of one button group
type WidgetView struct {
	ID        string
	Label     string
	Mode      string
	FormID    string
	Selection []int
	Options   []OptionView
	Focused   bool
	Disabled  bool
	Unsynced  bool
}

var iconGlyphs = map[string]string{
	"thumb_up":               "👍",
	"thumb_down":             "👎",
	"bug_report":             "🐞",
	"star":                   "★",
	"star_border":            "☆",
	"check":                  "✓",
	"close":                  "✗",
	"sentiment_satisfied":    "☺",
	"sentiment_dissatisfied": "☹",
}

// IconGlyph returns the terminal glyph for a material icon name.
// Unknown icons render as their bracketed name.
func IconGlyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	return "[" + name + "]"
}

// ButtonGroupRenderer renders button groups from their option views
type ButtonGroupRenderer struct {
	styles *Styles
}

// NewButtonGroupRenderer creates a new button group renderer
func NewButtonGroupRenderer(styles *Styles) *ButtonGroupRenderer {
	return &ButtonGroupRenderer{styles: styles}
}

// RenderOption renders a single option button
func (r *ButtonGroupRenderer) RenderOption(opt OptionView, disabled bool) string {
	text := opt.Content.Text
	if opt.Content.Kind == logic.ContentIcon {
		text = IconGlyph(opt.Content.Text)
	}
	if text == "" {
		text = " "
	}

	style := r.styles.Button
	switch {
	case disabled:
		style = r.styles.ButtonDisabled
	case opt.VisuallySelected && opt.Highlight:
		style = r.styles.ButtonSelected
	}
	if opt.Cursor {
		style = style.Inherit(r.styles.ButtonCursor)
	}
	return style.Render(text)
}

// Render renders the label line and the row of option buttons
func (r *ButtonGroupRenderer) Render(w WidgetView, showLabel bool) string {
	var b strings.Builder

	if showLabel {
		label := w.Label
		if label == "" {
			label = w.ID
		}
		labelStyle := r.styles.Label
		marker := "  "
		if w.Focused {
			labelStyle = r.styles.FocusedLabel
			marker = "› "
		}
		b.WriteString(labelStyle.Render(marker + label))

		details := []string{w.Mode}
		if w.FormID != "" {
			details = append(details, "form "+w.FormID)
		}
		if w.Disabled {
			details = append(details, "disabled")
		}
		b.WriteString(" ")
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("(%s) %v", strings.Join(details, ", "), w.Selection)))
		if w.Unsynced {
			b.WriteString(" ")
			b.WriteString(r.styles.StatusWarning.Render("unsynced"))
		}
		b.WriteString("\n")
	}

	buttons := make([]string, 0, len(w.Options))
	for _, opt := range w.Options {
		buttons = append(buttons, r.RenderOption(opt, w.Disabled))
	}
	b.WriteString("  ")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	return b.String()
}
