package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycommit/internal/theme"
)

// helpText is the searchable keybinding guide.
const helpText = `LazyCommit Help Guide

**Main Menu**
- Up / Down: Move between menu entries (wraps at both ends)
- Tab / Shift+Tab: Cycle through the menu tabs
- Enter: Run the selected entry
- r: Refresh the repository status
- f: Open the file staging view
- ?: Show this help
- q: Quit application

**File Staging**
- Up / Down: Move between files (wraps at both ends)
- Space: Stage or unstage the selected file
- a: Stage all changes
- u: Unstage all changes
- Esc: Return to the main menu

**Commit Selection**
- Up / Down: Move between suggestions (wraps at both ends)
- Enter: Commit with the selected message
- Esc: Cancel without committing

**Content Views**
- Up / Down or j / k: Scroll
- Ctrl+D / Ctrl+U: Half page down / up
- g / G: Jump to top / bottom
- Esc: Return to the main menu
- q: Quit application

**AI Features**
All AI features read the staged diff or the commit range against the
default branch, so stage your changes first. Without an OPENAI_API_KEY
the features fall back to deterministic placeholder output.
- Generate PR description: summary of the commit range
- Create PR with AI description: opens the pull request via gh
- Generate unit tests: suggested tests for the changed code
- Improve commit message: rewrites the HEAD commit message
- Interactive commit: pick from AI commit message suggestions
- Generate changelog: release-style changelog for the range
- Code review: review comments for the range

**Configuration**
Configuration is read from (in order of precedence):
1. CLI flags (highest)
2. Environment: OPENAI_API_KEY, GITHUB_TOKEN, GH_TOKEN,
   LAZYCOMMIT_DEFAULT_BRANCH, LAZYCOMMIT_THEME
3. YAML file: ~/.config/lazycommit/config.yaml
4. Built-in defaults (lowest)

**Help Navigation**
- /: Search help (Enter to apply, Esc to clear)
- j / k: Scroll up / down
- Ctrl+D / Ctrl+U: Scroll half page down / up
- q / Esc: Close help`

// HelpScreen renders searchable documentation for the app controls.
type HelpScreen struct {
	Viewport    viewport.Model
	Width       int
	Height      int
	FullText    []string
	SearchInput textinput.Model
	Searching   bool
	SearchQuery string
	Thm         *theme.Theme
}

// NewHelpScreen initializes help content with the available screen size.
func NewHelpScreen(maxWidth, maxHeight int, thm *theme.Theme) *HelpScreen {
	width := 80
	height := 30
	if maxWidth > 0 {
		width = minInt(100, maxInt(60, int(float64(maxWidth)*0.75)))
	}
	if maxHeight > 0 {
		height = minInt(40, maxInt(20, int(float64(maxHeight)*0.7)))
	}

	vp := viewport.New(width, maxInt(5, height-3))

	ti := textinput.New()
	ti.Placeholder = "Search help (/ to start, Enter to apply, Esc to clear)"
	ti.CharLimit = 64
	ti.Prompt = "/ "
	ti.Blur()
	ti.Width = maxInt(20, width-6)

	hs := &HelpScreen{
		Viewport:    vp,
		Width:       width,
		Height:      height,
		FullText:    strings.Split(helpText, "\n"),
		SearchInput: ti,
		Thm:         thm,
	}

	hs.refreshContent()
	return hs
}

// Type returns TypeHelp to identify this screen.
func (s *HelpScreen) Type() Type {
	return TypeHelp
}

// Update handles scrolling and search input for the help screen.
func (s *HelpScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	switch key {
	case "/":
		if !s.Searching {
			s.Searching = true
			s.SearchInput.Focus()
			return s, textinput.Blink
		}
	case keyEnter:
		if s.Searching {
			s.SearchQuery = strings.TrimSpace(s.SearchInput.Value())
			s.Searching = false
			s.SearchInput.Blur()
			s.refreshContent()
			return s, nil
		}
	case keyEsc, keyCtrlC:
		// If searching, clear search; otherwise close help
		if s.Searching || s.SearchQuery != "" {
			s.Searching = false
			s.SearchInput.SetValue("")
			s.SearchQuery = ""
			s.SearchInput.Blur()
			s.refreshContent()
			return s, nil
		}
		return nil, nil
	case keyQ:
		if !s.Searching {
			return nil, nil
		}
	}

	if s.Searching {
		s.SearchInput, cmd = s.SearchInput.Update(msg)
		newQuery := strings.TrimSpace(s.SearchInput.Value())
		if newQuery != s.SearchQuery {
			s.SearchQuery = newQuery
			s.refreshContent()
		}
		return s, cmd
	}

	switch key {
	case "ctrl+d", keySpace:
		s.Viewport.HalfPageDown()
		return s, nil
	case "ctrl+u":
		s.Viewport.HalfPageUp()
		return s, nil
	case "j", "down":
		s.Viewport.ScrollDown(1)
		return s, nil
	case "k", "up":
		s.Viewport.ScrollUp(1)
		return s, nil
	}

	s.Viewport, cmd = s.Viewport.Update(msg)
	return s, cmd
}

// refreshContent updates the viewport with styled and filtered content.
func (s *HelpScreen) refreshContent() {
	s.Viewport.SetContent(s.renderContent())
	s.Viewport.GotoTop()
}

// renderContent applies styling and search filtering to help text.
func (s *HelpScreen) renderContent() string {
	titleStyle := lipgloss.NewStyle().Foreground(s.Thm.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(s.Thm.SuccessFg).Bold(true)

	styledLines := []string{}
	for _, line := range s.FullText {
		// Section headers are wrapped in ** markers
		if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
			header := strings.TrimPrefix(strings.TrimSuffix(line, "**"), "**")
			styledLines = append(styledLines, titleStyle.Render("# "+header))
			continue
		}

		// Key bindings are "- keys: description" lines
		if strings.HasPrefix(line, "- ") {
			parts := strings.SplitN(line, ": ", 2)
			if len(parts) == 2 {
				keys := strings.TrimPrefix(parts[0], "- ")
				styledLines = append(styledLines, "  "+keyStyle.Render(keys)+": "+parts[1])
				continue
			}
		}

		styledLines = append(styledLines, line)
	}

	if strings.TrimSpace(s.SearchQuery) != "" {
		query := strings.ToLower(strings.TrimSpace(s.SearchQuery))
		filtered := []string{}
		for _, line := range styledLines {
			if strings.Contains(strings.ToLower(line), query) {
				filtered = append(filtered, line)
			}
		}
		if len(filtered) == 0 {
			return fmt.Sprintf("No help entries match %q", s.SearchQuery)
		}
		return strings.Join(filtered, "\n")
	}

	return strings.Join(styledLines, "\n")
}

// View renders the help content and search input inside the viewport.
func (s *HelpScreen) View() string {
	vHeight := maxInt(5, s.Height-4)
	s.Viewport.Width = s.Width - 2
	s.Viewport.Height = vHeight

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Width(s.Width).
		Padding(0)

	title := boxTitle(s.Width, "Help", s.Thm)

	searchView := ""
	if s.Searching || s.SearchQuery != "" {
		searchView = lipgloss.NewStyle().
			Width(s.Width-2).
			Padding(0, 1).
			Render(s.SearchInput.View())
	}

	footer := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg).
		Width(s.Width - 2).
		PaddingTop(1).
		Render("j/k: scroll • Ctrl+d/u: page • /: search • esc: close")

	body := lipgloss.NewStyle().
		Padding(0, 1).
		Width(s.Width - 2).
		Render(s.Viewport.View())

	sections := []string{title}
	if searchView != "" {
		sections = append(sections, searchView)
	}
	sections = append(sections, body, footer)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
