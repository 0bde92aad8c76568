package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled is returned when the user backs out of a prompt or picker.
// It is not a failure: callers treat it as a quiet no-op.
var ErrCanceled = errors.New("canceled")

type inputModel struct {
	title    string
	input    textinput.Model
	canceled bool
}

// RunInput asks for a single line of text. Esc or ctrl+c cancels.
func RunInput(title, placeholder string) (string, error) {
	applyThemePreference()

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 60
	ti.Focus()

	out, err := tea.NewProgram(inputModel{title: title, input: ti}).Run()
	if err != nil {
		return "", err
	}
	m := out.(inputModel)
	if m.canceled {
		return "", ErrCanceled
	}
	return strings.TrimSpace(m.input.Value()), nil
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return titleStyle.Render(m.title) + "\n\n" +
		m.input.View() + "\n\n" +
		hintStyle.Render("enter accept · esc cancel") + "\n"
}
