package domain

// ClickMode determines how a click mutates the selection
type ClickMode int

const (
	SingleSelect ClickMode = iota
	MultiSelect
)

func (m ClickMode) String() string {
	switch m {
	case SingleSelect:
		return "single_select"
	case MultiSelect:
		return "multi_select"
	default:
		return "unknown"
	}
}

// SelectionVisualization controls which options render as selected
type SelectionVisualization int

const (
	OnlySelected SelectionVisualization = iota
	AllUpToSelected
)

func (v SelectionVisualization) String() string {
	switch v {
	case OnlySelected:
		return "only_selected"
	case AllUpToSelected:
		return "all_up_to_selected"
	default:
		return "unknown"
	}
}

// Option is a single clickable entry of a button group
type Option struct {
	Content                   string // text or :material/icon: token
	SelectedContent           string // shown instead of Content while visually selected
	DisableSelectionHighlight bool
}

// Element is the configuration of one button group widget
type Element struct {
	ID                     string
	Label                  string
	Options                []Option
	ClickMode              ClickMode
	Default                []int
	SelectionVisualization SelectionVisualization
	FormID                 string // "" if the widget is not inside a form
	Disabled               bool

	// Value is an externally pushed selection, applied once when SetValue is true
	Value    []int
	SetValue bool
}

// Source describes where a widget value came from
type Source struct {
	FromUI bool
}
