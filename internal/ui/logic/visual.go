package logic

import "buttongroup/internal/domain"

// IsVisuallySelected reports whether the option at index should render as selected.
// Options that are part of the selection always do. Under single select with the
// AllUpToSelected visualization every option before the selected one does too,
// which turns the group into a progress-style indicator.
func IsVisuallySelected(visualization domain.SelectionVisualization, mode domain.ClickMode, selection []int, index int) bool {
	if Contains(selection, index) {
		return true
	}

	if mode != domain.SingleSelect || visualization != domain.AllUpToSelected {
		return false
	}

	return len(selection) > 0 && index < selection[0]
}

// SingleSelection returns the selected index under single select, or -1
func SingleSelection(selection []int) int {
	if len(selection) == 0 {
		return -1
	}
	return selection[0]
}
