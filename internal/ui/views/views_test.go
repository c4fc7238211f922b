package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"buttongroup/internal/ui/logic"
)

func textOption(i int, text string) OptionView {
	return OptionView{Index: i, Content: logic.Content{Kind: logic.ContentText, Text: text}}
}

func TestIconGlyph(t *testing.T) {
	assert.Equal(t, "👍", IconGlyph("thumb_up"))
	assert.Equal(t, "[rocket]", IconGlyph("rocket"))
}

func TestRenderWidgetContent(t *testing.T) {
	r := NewButtonGroupRenderer(NewStyles())
	w := WidgetView{
		ID:        "tags",
		Label:     "Tags",
		Mode:      "multi_select",
		FormID:    "feedback",
		Selection: []int{1},
		Focused:   true,
		Options: []OptionView{
			textOption(0, "speed"),
			{Index: 1, Content: logic.Content{Kind: logic.ContentIcon, Text: "bug_report"}, VisuallySelected: true, Highlight: true},
		},
	}

	out := r.Render(w, true)
	assert.Contains(t, out, "› Tags")
	assert.Contains(t, out, "form feedback")
	assert.Contains(t, out, "[1]")
	assert.Contains(t, out, "speed")
	assert.Contains(t, out, "🐞")

	out = r.Render(w, false)
	assert.NotContains(t, out, "Tags")
}

func TestRenderShowsUnsyncedAndOffline(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width:      100,
		Widgets:    []WidgetView{{ID: "rating", Mode: "single_select", Unsynced: true, Options: []OptionView{textOption(0, "a")}}},
		Online:     false,
		Unsynced:   1,
		ShowLabels: true,
	})
	assert.Contains(t, out, "buttongroup")
	assert.Contains(t, out, "offline")
	assert.Contains(t, out, "1 unsynced")
	assert.Contains(t, out, "rating")
}

func TestRenderStatusPrefersError(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{StatusMessage: "pushed", LastError: "boom"})
	assert.Contains(t, out, "error: boom")
	assert.False(t, strings.Contains(out, "pushed"))
	assert.Contains(t, out, "No button groups configured.")
}

func TestRenderInputLine(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{InputMode: "push", TextInput: "Push value: 1,2", Online: true})
	assert.Contains(t, out, "Push value: 1,2")
	assert.Contains(t, out, "online")
}
