package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModePush
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	target    string
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode and the widget it targets
func (it *InputTransformer) SetMode(mode InputMode, target string) {
	it.mode = mode
	it.target = target
}

// GetInputText returns the current text input string for the view
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case InputModeNormal:
		return ""
	case InputModePush:
		prompt := "Push value: "
		if it.target != "" {
			prompt = "Push value to " + it.target + ": "
		}
		return prompt + it.textInput.View()
	default:
		return it.textInput.View()
	}
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModePush:
		return "push"
	default:
		return ""
	}
}
