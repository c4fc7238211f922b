package logic

// Navigator tracks which widget has focus and which option the cursor is on
// inside every widget.
type Navigator struct {
	focused int
	cursors []int
	sizes   []int // option count per widget
}

// NewNavigator creates a navigator for widgets with the given option counts
func NewNavigator(sizes []int) *Navigator {
	return &Navigator{
		sizes:   append([]int{}, sizes...),
		cursors: make([]int, len(sizes)),
	}
}

// Focused returns the index of the focused widget, or -1 when there are none
func (n *Navigator) Focused() int {
	if len(n.sizes) == 0 {
		return -1
	}
	return n.focused
}

// Cursor returns the cursor position inside widget w
func (n *Navigator) Cursor(w int) int {
	if w < 0 || w >= len(n.cursors) {
		return -1
	}
	return n.cursors[w]
}

// MoveFocus moves focus by delta widgets, wrapping around
func (n *Navigator) MoveFocus(delta int) int {
	if len(n.sizes) == 0 {
		return -1
	}
	n.focused = wrap(n.focused+delta, len(n.sizes))
	return n.focused
}

// MoveCursor moves the focused widget's cursor by delta, clamped to its options
func (n *Navigator) MoveCursor(delta int) int {
	w := n.Focused()
	if w < 0 {
		return -1
	}
	return n.SetCursor(w, n.cursors[w]+delta)
}

// SetCursor places the cursor of widget w, clamped to its options
func (n *Navigator) SetCursor(w, index int) int {
	if w < 0 || w >= len(n.sizes) {
		return -1
	}
	if index >= n.sizes[w] {
		index = n.sizes[w] - 1
	}
	if index < 0 {
		index = 0
	}
	n.cursors[w] = index
	return index
}

// Home moves the focused cursor to the first option
func (n *Navigator) Home() int {
	return n.SetCursor(n.Focused(), 0)
}

// End moves the focused cursor to the last option
func (n *Navigator) End() int {
	w := n.Focused()
	if w < 0 {
		return -1
	}
	return n.SetCursor(w, n.sizes[w]-1)
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
