package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrop/internal/ui/theme"
)

// InputMode restricts which printable characters a TextInput accepts.
type InputMode int

const (
	// ModeFree accepts any printable character.
	ModeFree InputMode = iota
	// ModeAnswer accepts characters that can appear in a numeric answer:
	// digits, sign, decimal point, slash and space.
	ModeAnswer
)

// TextInput wraps bubbles/textinput with Math Drop styling.
type TextInput struct {
	Model     textinput.Model
	Mode      InputMode
	MaxWidth  int
	submitted bool
	valid     bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, mode InputMode, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		Mode:     mode,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Mode == ModeAnswer {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if key == "space" {
				key = " "
			}
			if len(key) == 1 && !isAnswerChar(key[0]) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	t.submitted = false
	return t, cmd
}

func isAnswerChar(c byte) bool {
	return (c >= '0' && c <= '9') || strings.IndexByte("+-./ ", c) >= 0
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input for the next answer.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
