package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycommit/internal/theme"
)

// InputScreen displays a modal input prompt with optional validation.
type InputScreen struct {
	Prompt      string
	Placeholder string
	Input       textinput.Model
	ErrorMsg    string
	Thm         *theme.Theme

	// Validation returns an error message, or "" when the value is fine.
	Validate func(string) string

	// Callbacks
	OnSubmit func(value string) tea.Cmd
	OnCancel func() tea.Cmd

	boxWidth int
}

// NewInputScreen creates an input screen with the given parameters.
func NewInputScreen(prompt, placeholder, value string, thm *theme.Theme) *InputScreen {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Focus()
	ti.CharLimit = 200
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(thm.TextFg)
	ti.Width = 52

	return &InputScreen{
		Prompt:      prompt,
		Placeholder: placeholder,
		Input:       ti,
		Thm:         thm,
		boxWidth:    60,
	}
}

// Type returns the screen type.
func (s *InputScreen) Type() Type {
	return TypeInput
}

// Update handles keyboard input for the input screen.
// Returns nil to signal the screen should be closed.
func (s *InputScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case keyEnter:
		value := s.Input.Value()

		if s.Validate != nil {
			if errMsg := strings.TrimSpace(s.Validate(value)); errMsg != "" {
				s.ErrorMsg = errMsg
				return s, nil
			}
			s.ErrorMsg = ""
		}

		if s.OnSubmit != nil {
			cmd = s.OnSubmit(value)
			// If OnSubmit set an error message, stay open
			if s.ErrorMsg != "" {
				return s, cmd
			}
		}
		return nil, cmd

	case keyEsc, keyEscRaw, keyCtrlC:
		if s.OnCancel != nil {
			return nil, s.OnCancel()
		}
		return nil, nil
	}

	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// View renders the input modal.
func (s *InputScreen) View() string {
	width := s.boxWidth

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Padding(1, 2).
		Width(width)

	promptStyle := lipgloss.NewStyle().
		Foreground(s.Thm.Accent).
		Bold(true).
		Width(width - 6).
		Align(lipgloss.Center)

	inputWrapperStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.Thm.Border).
		Padding(0, 1).
		Width(width - 6)

	footerStyle := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg).
		Width(width - 6).
		Align(lipgloss.Center).
		MarginTop(1)

	contentLines := []string{
		promptStyle.Render(s.Prompt),
		inputWrapperStyle.Render(s.Input.View()),
	}

	if s.ErrorMsg != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(s.Thm.ErrorFg).
			Width(width - 6).
			Align(lipgloss.Center)
		contentLines = append(contentLines, errorStyle.Render(s.ErrorMsg))
	}

	contentLines = append(contentLines, footerStyle.Render("Enter to confirm • Esc to cancel"))

	return boxStyle.Render(strings.Join(contentLines, "\n\n"))
}
