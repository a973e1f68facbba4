package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput for typing a question number.
// Non-digit keys are dropped.
type NumberInput struct {
	Model textinput.Model
}

// NewNumberInput creates a focused input accepting up to maxDigits digits.
func NewNumberInput(placeholder string, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "Go to #"
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	ti.Focus()
	return NumberInput{Model: ti}
}

// Init returns the focus command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update forwards messages to the text input, filtering out non-digits.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}
	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumberInput) View() string {
	return n.Model.View()
}

// Number returns the typed number.
func (n NumberInput) Number() (int, error) {
	return strconv.Atoi(n.Model.Value())
}
