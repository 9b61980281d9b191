package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chmouel/lazycommit/internal/theme"
)

// SelectionItem represents a single item in a list selection.
type SelectionItem struct {
	ID          string
	Label       string
	Description string
}

// ListSelectScreen lets the user pick from a list of options, with an
// optional filter activated by 'f'.
type ListSelectScreen struct {
	Items    []SelectionItem
	Filtered []SelectionItem

	FilterInput  textinput.Model
	FilterActive bool
	Cursor       int
	ScrollOffset int
	Width        int
	Height       int
	Title        string
	NoResults    string
	Thm          *theme.Theme

	// Callbacks
	OnSelect func(SelectionItem) tea.Cmd
	OnCancel func() tea.Cmd
}

// NewListSelectScreen builds a list selection modal sized to the terminal.
func NewListSelectScreen(items []SelectionItem, title string, maxWidth, maxHeight int, thm *theme.Theme) *ListSelectScreen {
	width := 60
	height := 20
	if maxWidth > 0 {
		width = clampInt(int(float64(maxWidth)*0.6), 50, 90)
	}
	if maxHeight > 0 {
		height = clampInt(int(float64(maxHeight)*0.6), 12, 30)
	}

	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 100
	ti.Prompt = "> "
	ti.Blur()
	ti.Width = width - 4

	cursor := 0
	if len(items) == 0 {
		cursor = -1
	}

	return &ListSelectScreen{
		Items:       items,
		Filtered:    items,
		FilterInput: ti,
		Cursor:      cursor,
		Width:       width,
		Height:      height,
		Title:       title,
		NoResults:   "No results found.",
		Thm:         thm,
	}
}

// Type returns the screen type.
func (s *ListSelectScreen) Type() Type {
	return TypeListSelect
}

// Update handles keyboard input and returns nil to signal the screen should close.
func (s *ListSelectScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	if !s.FilterActive {
		switch key {
		case "f", "/":
			s.FilterActive = true
			s.FilterInput.Focus()
			return s, textinput.Blink
		case keyEnter:
			if s.OnSelect != nil {
				if item, ok := s.Selected(); ok {
					return nil, s.OnSelect(item)
				}
			}
			return nil, nil
		case keyEsc, keyEscRaw, keyQ, keyCtrlC:
			if s.OnCancel != nil {
				return nil, s.OnCancel()
			}
			return nil, nil
		case "up", "k":
			s.moveUp()
			return s, nil
		case "down", "j":
			s.moveDown()
			return s, nil
		}
		return s, nil
	}

	switch key {
	case keyEsc:
		s.FilterActive = false
		s.FilterInput.Blur()
		return s, nil
	case keyEnter:
		if s.OnSelect != nil {
			if item, ok := s.Selected(); ok {
				return nil, s.OnSelect(item)
			}
		}
		return nil, nil
	case keyCtrlC:
		if s.OnCancel != nil {
			return nil, s.OnCancel()
		}
		return nil, nil
	case "up":
		s.moveUp()
		return s, nil
	case "down":
		s.moveDown()
		return s, nil
	}

	s.FilterInput, cmd = s.FilterInput.Update(msg)
	s.applyFilter()
	return s, cmd
}

func (s *ListSelectScreen) moveUp() {
	if s.Cursor > 0 {
		s.Cursor--
		if s.Cursor < s.ScrollOffset {
			s.ScrollOffset = s.Cursor
		}
	}
}

func (s *ListSelectScreen) moveDown() {
	if s.Cursor < len(s.Filtered)-1 {
		s.Cursor++
		if maxVisible := s.maxVisible(); s.Cursor >= s.ScrollOffset+maxVisible {
			s.ScrollOffset = s.Cursor - maxVisible + 1
		}
	}
}

// View renders the list selection modal.
func (s *ListSelectScreen) View() string {
	maxVisible := s.maxVisible()

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Thm.Accent).
		Width(s.Width).
		Padding(0)

	title := boxTitle(s.Width, s.Title, s.Thm)

	inputStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Width(s.Width - 2).
		Foreground(s.Thm.TextFg)

	itemStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Width(s.Width - 2)

	selectedStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Width(s.Width - 2).
		Background(s.Thm.Accent).
		Foreground(s.Thm.AccentFg).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg)

	var itemViews []string
	end := minInt(s.ScrollOffset+maxVisible, len(s.Filtered))
	start := minInt(s.ScrollOffset, end)
	for i := start; i < end; i++ {
		item := s.Filtered[i]
		label := item.Label
		if item.Description != "" && i != s.Cursor {
			label = fmt.Sprintf("%s  %s", label, descStyle.Render(item.Description))
		} else if item.Description != "" {
			label = fmt.Sprintf("%s  %s", label, item.Description)
		}

		if i == s.Cursor {
			itemViews = append(itemViews, selectedStyle.Render(label))
		} else {
			itemViews = append(itemViews, itemStyle.Render(label))
		}
	}

	if len(s.Filtered) == 0 {
		itemViews = append(itemViews, lipgloss.NewStyle().
			Padding(0, 1).
			Width(s.Width-2).
			Foreground(s.Thm.MutedFg).
			Italic(true).
			Render(s.NoResults))
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(s.Thm.MutedFg).
		Align(lipgloss.Right).
		Width(s.Width - 2).
		PaddingTop(1)
	footerText := "j/k to move • f to filter • Enter to select • Esc to cancel"
	if s.FilterActive {
		footerText = "Esc to return • Enter to select"
	}
	footer := footerStyle.Render(footerText)

	contentLines := []string{title}
	if s.FilterActive {
		contentLines = append(contentLines, inputStyle.Render(s.FilterInput.View()))
	}
	contentLines = append(contentLines, strings.Join(itemViews, "\n"), footer)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, contentLines...))
}

// Selected returns the currently selected item, if any.
func (s *ListSelectScreen) Selected() (SelectionItem, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Filtered) {
		return SelectionItem{}, false
	}
	return s.Filtered[s.Cursor], true
}

func (s *ListSelectScreen) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(s.FilterInput.Value()))
	if query == "" {
		s.Filtered = s.Items
	} else {
		s.Filtered = []SelectionItem{}
		for _, item := range s.Items {
			if strings.Contains(strings.ToLower(item.Label), query) ||
				strings.Contains(strings.ToLower(item.Description), query) ||
				strings.Contains(strings.ToLower(item.ID), query) {
				s.Filtered = append(s.Filtered, item)
			}
		}
	}

	if len(s.Filtered) == 0 {
		s.Cursor = -1
	} else if s.Cursor >= len(s.Filtered) || s.Cursor < 0 {
		s.Cursor = 0
	}
	s.ScrollOffset = 0
}

func (s *ListSelectScreen) maxVisible() int {
	maxVisible := s.Height - 6
	if !s.FilterActive {
		maxVisible += 2
	}
	return maxVisible
}
