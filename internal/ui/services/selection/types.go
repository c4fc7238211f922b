package selection

// State holds the selection owned by one widget
type State struct {
	Selection []int
}

// EventKind classifies what caused a transition
type EventKind int

const (
	KindInit EventKind = iota
	KindClick
	KindExternalPush
	KindReset
)

func (k EventKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindClick:
		return "click"
	case KindExternalPush:
		return "external-push"
	case KindReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a trigger handled by Reduce
type Event interface {
	Kind() EventKind
}

// InitEvent seeds the selection from the stored value, or the default when nothing is stored
type InitEvent struct {
	Stored    []int
	HasStored bool
}

// ClickEvent is a user click on the option at Index
type ClickEvent struct {
	Index int
}

// ExternalPushEvent carries a value pushed from outside the widget
type ExternalPushEvent struct {
	Value []int
}

// ResetEvent returns the widget to its default, e.g. when its form is cleared
type ResetEvent struct{}

func (InitEvent) Kind() EventKind         { return KindInit }
func (ClickEvent) Kind() EventKind        { return KindClick }
func (ExternalPushEvent) Kind() EventKind { return KindExternalPush }
func (ResetEvent) Kind() EventKind        { return KindReset }

// PushEffect asks the host to write Selection to the state manager
type PushEffect struct {
	Selection []int
	FromUI    bool
}

// Transition is the result of reducing one event
type Transition struct {
	State State
	Push  *PushEffect // nil when nothing must be written

	// ConsumeSetValue clears the element's one-shot apply marker
	ConsumeSetValue bool
}

// SelectionChangedEvent is published after every applied transition
type SelectionChangedEvent struct {
	WidgetID  string
	Cause     EventKind
	Selection []int
	Pushed    bool
	FromUI    bool
}

// SyncFailedEvent is published when the state manager rejects a push
type SyncFailedEvent struct {
	WidgetID string
	Err      error
}
