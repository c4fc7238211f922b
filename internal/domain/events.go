package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventWidgetValueSet EventType = "WidgetValueSet"
	EventFormCleared    EventType = "FormCleared"
	EventValuePushed    EventType = "ValuePushed"
	EventManagerStatus  EventType = "ManagerStatus"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// WidgetValueSetEvent is emitted when the state manager stores a widget value
type WidgetValueSetEvent struct {
	WidgetID   string
	Value      []int
	FromUI     bool
	FragmentID string
}

func (e WidgetValueSetEvent) Type() EventType { return EventWidgetValueSet }

// FormClearedEvent is emitted when every widget of a form must return to its default
type FormClearedEvent struct {
	FormID string
}

func (e FormClearedEvent) Type() EventType { return EventFormCleared }

// ValuePushedEvent carries a scripted value update for a widget.
// The receiver applies it once through the widget's apply marker.
type ValuePushedEvent struct {
	WidgetID string
	Value    []int
}

func (e ValuePushedEvent) Type() EventType { return EventValuePushed }

// ManagerStatusEvent is emitted when the state manager goes online or offline
type ManagerStatusEvent struct {
	Online bool
}

func (e ManagerStatusEvent) Type() EventType { return EventManagerStatus }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Widgets int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
