package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"buttongroup/internal/config"
	"buttongroup/internal/ui/coordinator"
	"buttongroup/internal/ui/state"
	"buttongroup/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	coordinator      *coordinator.Coordinator
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, coord *coordinator.Coordinator, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		coordinator:      coord,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode, target string) {
	vm.inputTransformer.SetMode(mode, target)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildWidgetViews builds one view per mounted button group
func (vm *ViewModel) BuildWidgetViews() []views.WidgetView {
	if vm.coordinator == nil {
		return nil
	}
	nav := vm.coordinator.Navigation
	focused := nav.Focused()
	out := make([]views.WidgetView, 0, len(vm.coordinator.Widgets))
	for i, w := range vm.coordinator.Widgets {
		svc := w.Selection
		out = append(out, BuildWidgetView(svc.Element(), svc.Selection(), i == focused, nav.Cursor(i), svc.Unsynced()))
	}
	return out
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	unsynced := 0
	if vm.coordinator != nil {
		unsynced = vm.coordinator.Unsynced()
	}
	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Widgets:       vm.BuildWidgetViews(),
		ShowLabels:    vm.config.UISettings.ShowLabels,
		Online:        vm.state.Online,
		Unsynced:      unsynced,
		StatusMessage: vm.state.StatusMessage,
		LastError:     vm.state.LastError,
		ShowHelp:      vm.state.ShowHelp,
		HelpModel:     vm.help,
		HelpKeys:      vm.keys,
		TextInput:     vm.inputTransformer.GetInputText(),
		InputMode:     vm.inputTransformer.GetInputModeString(),
	}
}
