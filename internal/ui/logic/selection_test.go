package logic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buttongroup/internal/domain"
)

func TestNextSelectionSingleSelect(t *testing.T) {
	assert.Equal(t, []int{1}, NextSelection(domain.SingleSelect, 1, nil))
	assert.Equal(t, []int{2}, NextSelection(domain.SingleSelect, 2, []int{0}))

	// Re-clicking the selected option keeps it selected
	for i := 0; i < 5; i++ {
		assert.Equal(t, []int{i}, NextSelection(domain.SingleSelect, i, []int{i}))
	}
}

func TestNextSelectionMultiSelectToggles(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		current []int
		want    []int
	}{
		{"add to empty", 1, nil, []int{1}},
		{"append keeps order", 0, []int{2, 1}, []int{2, 1, 0}},
		{"remove present", 2, []int{0, 2}, []int{0}},
		{"remove only", 3, []int{3}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextSelection(domain.MultiSelect, tt.index, tt.current))
		})
	}
}

func TestNextSelectionMultiSelectRoundTrip(t *testing.T) {
	selections := [][]int{{}, {0}, {4, 2}, {1, 3, 5}}
	for _, s := range selections {
		for i := 6; i < 9; i++ {
			added := NextSelection(domain.MultiSelect, i, s)
			require.Len(t, added, len(s)+1)
			assert.True(t, Contains(added, i))

			removed := NextSelection(domain.MultiSelect, i, added)
			assert.True(t, SameSelection(s, removed))
		}
	}
}

func TestNextSelectionDoesNotModifyInput(t *testing.T) {
	current := []int{0, 1, 2}
	NextSelection(domain.MultiSelect, 1, current)
	NextSelection(domain.MultiSelect, 5, current)
	assert.Equal(t, []int{0, 1, 2}, current)
}

func TestValidateSelection(t *testing.T) {
	require.NoError(t, ValidateSelection(domain.SingleSelect, 3, nil))
	require.NoError(t, ValidateSelection(domain.SingleSelect, 3, []int{2}))
	require.NoError(t, ValidateSelection(domain.MultiSelect, 3, []int{2, 0, 1}))

	bad := []struct {
		name string
		mode domain.ClickMode
		sel  []int
	}{
		{"out of range", domain.MultiSelect, []int{3}},
		{"negative", domain.SingleSelect, []int{-1}},
		{"duplicate", domain.MultiSelect, []int{1, 1}},
		{"too many for single", domain.SingleSelect, []int{0, 1}},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSelection(tt.mode, 3, tt.sel)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSelection))
		})
	}
}
