package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycommit/internal/theme"
)

// SuggestScreen is the full-frame commit-message picker. Enter commits the
// highlighted suggestion, Esc discards the whole list.
type SuggestScreen struct {
	Suggestions  []string
	Cursor       Cursor
	ScrollOffset int
	Width        int
	Height       int
	Thm          *theme.Theme

	// Callbacks
	OnCommit func(message string) tea.Cmd
	OnCancel func() tea.Cmd
}

// NewSuggestScreen creates the picker over the given suggestions.
func NewSuggestScreen(suggestions []string, thm *theme.Theme) *SuggestScreen {
	return &SuggestScreen{
		Suggestions: suggestions,
		Thm:         thm,
	}
}

// Type returns the screen type.
func (s *SuggestScreen) Type() Type {
	return TypeSuggest
}

// Resize updates the frame dimensions.
func (s *SuggestScreen) Resize(width, height int) {
	s.Width = width
	s.Height = height
}

// Selected returns the highlighted suggestion, if any.
func (s *SuggestScreen) Selected() (string, bool) {
	if len(s.Suggestions) == 0 {
		return "", false
	}
	return s.Suggestions[s.Cursor.Pos()], true
}

// Update handles the picker keys. Everything else is ignored.
func (s *SuggestScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		s.Cursor.Up(len(s.Suggestions))
		s.ensureVisible()
		return s, nil
	case "down", "j":
		s.Cursor.Down(len(s.Suggestions))
		s.ensureVisible()
		return s, nil
	case keyEnter:
		if message, ok := s.Selected(); ok && s.OnCommit != nil {
			return nil, s.OnCommit(message)
		}
		return s, nil
	case keyEsc, keyEscRaw:
		if s.OnCancel != nil {
			return nil, s.OnCancel()
		}
		return nil, nil
	}
	return s, nil
}

func (s *SuggestScreen) ensureVisible() {
	visible := s.maxVisible()
	if s.Cursor.Pos() < s.ScrollOffset {
		s.ScrollOffset = s.Cursor.Pos()
	}
	if s.Cursor.Pos() >= s.ScrollOffset+visible {
		s.ScrollOffset = s.Cursor.Pos() - visible + 1
	}
}

func (s *SuggestScreen) maxVisible() int {
	return maxInt(1, s.Height-14)
}

// View renders the full picker frame: header, instructions, list, footer.
func (s *SuggestScreen) View() string {
	width := maxInt(20, s.Width)

	header := frameBox(width, s.Thm.Border).Render(
		lipgloss.NewStyle().
			Foreground(s.Thm.SuccessFg).
			Bold(true).
			Width(width-2).
			Align(lipgloss.Center).
			Render("AI-Powered Commit Message Selection"))

	instructions := frameBox(width, s.Thm.Border).Render(
		lipgloss.NewStyle().
			Foreground(s.Thm.Yellow).
			Width(width - 2).
			Render("AI has generated conventional commit message suggestions.\nSelect one with ↑↓ and press Enter to commit, or 'Esc' to cancel."))

	var rows []string
	visible := s.maxVisible()
	end := minInt(s.ScrollOffset+visible, len(s.Suggestions))
	for i := s.ScrollOffset; i < end; i++ {
		line := fmt.Sprintf("%d. %s", i+1, s.Suggestions[i])
		style := lipgloss.NewStyle().Foreground(s.Thm.TextFg)
		if i == s.Cursor.Pos() {
			style = lipgloss.NewStyle().
				Foreground(s.Thm.AccentFg).
				Background(s.Thm.Accent).
				Bold(true)
		}
		rows = append(rows, style.Width(width-2).Render(line))
	}
	if len(s.Suggestions) == 0 {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(s.Thm.MutedFg).
			Italic(true).
			Render("No suggestions available."))
	}

	listHeight := maxInt(3, s.Height-14)
	listLines := append([]string{boxTitle(width, "Commit Message Suggestions", s.Thm)}, rows...)
	list := frameBox(width, s.Thm.Border).Height(listHeight).Render(
		lipgloss.JoinVertical(lipgloss.Left, listLines...))

	footer := frameBox(width, s.Thm.Border).Render(
		lipgloss.NewStyle().
			Foreground(s.Thm.MutedFg).
			Width(width-2).
			Align(lipgloss.Center).
			Render("Press ↑↓ to navigate | Enter to select | Esc to cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, header, instructions, list, footer)
}
