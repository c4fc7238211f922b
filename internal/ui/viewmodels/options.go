package viewmodels

import (
	"buttongroup/internal/domain"
	"buttongroup/internal/ui/logic"
	"buttongroup/internal/ui/views"
)

// BuildOptionViews resolves the visual state of every option of el for the
// given selection. cursor is -1 when the widget is not focused.
func BuildOptionViews(el *domain.Element, selection []int, cursor int) []views.OptionView {
	out := make([]views.OptionView, len(el.Options))
	for i, opt := range el.Options {
		selected := logic.IsVisuallySelected(el.SelectionVisualization, el.ClickMode, selection, i)
		out[i] = views.OptionView{
			Index:            i,
			Content:          logic.ParseContent(logic.ResolveContent(selected, opt.Content, opt.SelectedContent)),
			VisuallySelected: selected,
			Highlight:        logic.ShowHighlight(selected, opt.DisableSelectionHighlight),
			Cursor:           i == cursor,
		}
	}
	return out
}

// BuildWidgetView assembles the view of one button group
func BuildWidgetView(el *domain.Element, selection []int, focused bool, cursor int, unsynced bool) views.WidgetView {
	if !focused {
		cursor = -1
	}
	return views.WidgetView{
		ID:        el.ID,
		Label:     el.Label,
		Mode:      el.ClickMode.String(),
		FormID:    el.FormID,
		Selection: selection,
		Options:   BuildOptionViews(el, selection, cursor),
		Focused:   focused,
		Disabled:  el.Disabled,
		Unsynced:  unsynced,
	}
}
