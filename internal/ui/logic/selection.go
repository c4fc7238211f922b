package logic

import (
	"errors"
	"fmt"

	"buttongroup/internal/domain"
)

// ErrInvalidSelection marks a selection that does not fit the widget's options or mode
var ErrInvalidSelection = errors.New("invalid selection")

// NextSelection returns the selection that results from clicking index.
// Single select always yields [index]; clicking the selected option keeps it selected.
// Multi select toggles index, appending it when absent. current is never modified.
func NextSelection(mode domain.ClickMode, index int, current []int) []int {
	if mode == domain.MultiSelect {
		return toggle(index, current)
	}
	return []int{index}
}

func toggle(index int, current []int) []int {
	next := make([]int, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == index {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, index)
	}
	return next
}

// ValidateSelection checks that every index refers to an option, that no index
// repeats and that single select holds at most one index.
func ValidateSelection(mode domain.ClickMode, optionCount int, selection []int) error {
	if mode == domain.SingleSelect && len(selection) > 1 {
		return fmt.Errorf("%w: single select holds %d indices", ErrInvalidSelection, len(selection))
	}
	seen := make(map[int]bool, len(selection))
	for _, v := range selection {
		if v < 0 || v >= optionCount {
			return fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSelection, v, optionCount)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate index %d", ErrInvalidSelection, v)
		}
		seen[v] = true
	}
	return nil
}

// Contains reports whether index is part of selection
func Contains(selection []int, index int) bool {
	for _, v := range selection {
		if v == index {
			return true
		}
	}
	return false
}

// SameSelection compares two selections as sets
func SameSelection(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !Contains(b, v) {
			return false
		}
	}
	return true
}
