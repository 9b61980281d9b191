package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycommit/internal/theme"
	"github.com/muesli/reflow/wrap"
)

// DisplayScreen is the full-frame pager for generated reports, diffs, and
// other read-only content. Esc goes back to the menu; 'q' quits the whole
// application through OnQuit.
type DisplayScreen struct {
	Title    string
	Content  string
	Viewport viewport.Model
	Width    int
	Height   int
	Thm      *theme.Theme

	// Callbacks
	OnClose func() tea.Cmd
	OnQuit  func() tea.Cmd
}

// NewDisplayScreen creates a pager over the given content.
func NewDisplayScreen(title, content string, maxWidth, maxHeight int, thm *theme.Theme) *DisplayScreen {
	s := &DisplayScreen{
		Title: title,
		Thm:   thm,
	}
	if strings.TrimSpace(content) == "" {
		content = "  "
	}
	s.Content = content
	s.Resize(maxWidth, maxHeight)
	return s
}

// Type returns the screen type.
func (s *DisplayScreen) Type() Type {
	return TypeDisplay
}

// Resize updates frame and viewport dimensions based on terminal size.
func (s *DisplayScreen) Resize(maxWidth, maxHeight int) {
	s.Width = maxInt(20, maxWidth)
	s.Height = maxInt(10, maxHeight)
	s.Viewport.Width = maxInt(1, s.Width-2)
	s.Viewport.Height = maxInt(3, s.Height-8)
	s.setViewportContent()
}

// Update handles navigation and close keys.
func (s *DisplayScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case keyEsc, keyEscRaw:
		if s.OnClose != nil {
			return nil, s.OnClose()
		}
		return nil, nil
	case keyQ, keyCtrlC:
		if s.OnQuit != nil {
			return nil, s.OnQuit()
		}
		return nil, nil
	case "j", "down":
		s.Viewport.ScrollDown(1)
		return s, nil
	case "k", "up":
		s.Viewport.ScrollUp(1)
		return s, nil
	case "ctrl+d", keySpace:
		s.Viewport.HalfPageDown()
		return s, nil
	case "ctrl+u":
		s.Viewport.HalfPageUp()
		return s, nil
	case "g":
		s.Viewport.GotoTop()
		return s, nil
	case "G":
		s.Viewport.GotoBottom()
		return s, nil
	}

	var cmd tea.Cmd
	s.Viewport, cmd = s.Viewport.Update(msg)
	return s, cmd
}

// View renders the pager frame: header, content viewport, footer.
func (s *DisplayScreen) View() string {
	width := maxInt(20, s.Width)

	header := frameBox(width, s.Thm.Border).Render(
		lipgloss.NewStyle().
			Foreground(s.Thm.Cyan).
			Bold(true).
			Width(width-2).
			Align(lipgloss.Center).
			Render(s.Title))

	body := frameBox(width, s.Thm.Border).
		Height(maxInt(3, s.Height-8)).
		Render(s.Viewport.View())

	footer := frameBox(width, s.Thm.Border).Render(
		lipgloss.NewStyle().
			Foreground(s.Thm.MutedFg).
			Width(width-2).
			Align(lipgloss.Center).
			Render("Press 'q' to quit | Esc to go back | ↑↓ to scroll"))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (s *DisplayScreen) setViewportContent() {
	if s.Viewport.Width <= 0 {
		return
	}
	s.Viewport.SetContent(wrap.String(s.Content, s.Viewport.Width))
}
