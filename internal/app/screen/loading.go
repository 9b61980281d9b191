package screen

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycommit/internal/theme"
)

// LoadingTips is a list of helpful tips shown while a collaborator call runs.
var LoadingTips = []string{
	"Press '?' to view the help overlay anytime.",
	"Press 'f' to jump straight into file staging.",
	"Use Tab and Shift+Tab to switch menu tabs.",
	"Press 'r' to refresh the repository status.",
	"Space stages or unstages the selected file.",
	"Press 'a' in the file list to stage everything at once.",
	"Press 'u' in the file list to unstage everything.",
	"Set OPENAI_API_KEY to unlock AI-generated commit messages.",
	"Set GITHUB_TOKEN to create pull requests without leaving the TUI.",
	"Esc almost always takes you back to the previous view.",
	"Staged changes drive every AI feature; stage before you generate.",
	"Run 'lazycommit commit' for a one-shot AI commit from your shell.",
	"Run 'lazycommit changelog --output FILE' to write a release log.",
	"Use '--base' to compare against a branch other than the default.",
}

// LoadingScreen displays a busy indicator while a worker is outstanding.
// It renders as a modal over whichever view was active when the call began;
// popping it resumes that view untouched.
type LoadingScreen struct {
	Message        string
	Tip            string
	Spinner        spinner.Model
	BorderColorIdx int
	Thm            *theme.Theme
}

// NewLoadingScreen creates a loading modal with the given message.
func NewLoadingScreen(message string, thm *theme.Theme) *LoadingScreen {
	// Pick a random tip (cryptographic randomness not needed for UI tips)
	tip := LoadingTips[rand.IntN(len(LoadingTips))] //nolint:gosec

	sp := spinner.New(
		spinner.WithSpinner(spinner.Spinner{
			Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
			FPS:    time.Second / 10,
		}),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(thm.Accent).Bold(true)),
	)

	return &LoadingScreen{
		Message: message,
		Tip:     tip,
		Spinner: sp,
		Thm:     thm,
	}
}

// Type returns the screen type.
func (s *LoadingScreen) Type() Type {
	return TypeLoading
}

// Update ignores key input; quit handling while loading lives in the
// main loop so an outstanding worker never blocks it.
func (s *LoadingScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	return s, nil
}

// Start returns the command that schedules the first spinner tick.
func (s *LoadingScreen) Start() tea.Cmd {
	return s.Spinner.Tick
}

// Advance moves the spinner one frame forward and cycles the border
// colour. Stale ticks from an earlier spinner are dropped by the
// spinner model itself.
func (s *LoadingScreen) Advance(msg spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	s.Spinner, cmd = s.Spinner.Update(msg)
	if cmd != nil {
		s.BorderColorIdx = (s.BorderColorIdx + 1) % len(s.borderColors())
	}
	return cmd
}

// borderColors returns the colour cycle for the pulsing border.
func (s *LoadingScreen) borderColors() []lipgloss.Color {
	return []lipgloss.Color{
		s.Thm.Accent,
		s.Thm.Cyan,
		s.Thm.Yellow,
		s.Thm.Accent,
	}
}

// Render draws the loading dialog into a box of the given size.
func (s *LoadingScreen) Render(width, height int) string {
	colours := s.borderColors()
	borderColour := colours[s.BorderColorIdx%len(colours)]

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColour).
		Padding(1, 2).
		Width(width).
		Height(height)

	headerStyle := lipgloss.NewStyle().
		Foreground(s.Thm.Cyan).
		Bold(true)

	messageStyle := lipgloss.NewStyle().
		Foreground(s.Thm.Yellow).
		Bold(true)

	innerWidth := width - 6
	separator := lipgloss.NewStyle().
		Foreground(s.Thm.BorderDim).
		Render(strings.Repeat("-", maxInt(1, innerWidth)))

	tipText := s.Tip
	if maxTipLen := innerWidth - 5; maxTipLen > 3 && len(tipText) > maxTipLen {
		tipText = tipText[:maxTipLen-3] + "..."
	}
	tipStyle := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg).
		Italic(true)

	content := lipgloss.JoinVertical(lipgloss.Center,
		headerStyle.Render("AI Processing"),
		"",
		s.Spinner.View(),
		messageStyle.Render(s.Message),
		"",
		separator,
		tipStyle.Render("Tip: "+tipText),
	)

	return boxStyle.Render(lipgloss.PlaceHorizontal(maxInt(1, innerWidth), lipgloss.Center, content))
}

// View renders the loading modal at its default size.
func (s *LoadingScreen) View() string {
	return s.Render(60, 9)
}
