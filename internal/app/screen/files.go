package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycommit/internal/models"
	"github.com/chmouel/lazycommit/internal/theme"
)

// FilesScreen is the full-frame staging view. Space toggles the selected
// file between index and worktree, 'a' stages everything, 'u' unstages
// everything. The entry list is rebuilt by the owner after every toggle,
// so the screen never mutates entries itself.
type FilesScreen struct {
	Entries      []models.FileEntry
	Cursor       Cursor
	ScrollOffset int
	Width        int
	Height       int
	Thm          *theme.Theme
	ShowIcons    bool

	// PathIcon, when set, supplies a per-file icon rendered before the
	// path (devicons when the terminal font has them).
	PathIcon func(path string) string

	// Callbacks
	OnToggle     func(models.FileEntry) tea.Cmd
	OnStageAll   func() tea.Cmd
	OnUnstageAll func() tea.Cmd
	OnClose      func() tea.Cmd
}

// NewFilesScreen creates the staging view over the given entries.
func NewFilesScreen(entries []models.FileEntry, thm *theme.Theme, showIcons bool) *FilesScreen {
	return &FilesScreen{
		Entries:   entries,
		Thm:       thm,
		ShowIcons: showIcons,
	}
}

// Type returns the screen type.
func (s *FilesScreen) Type() Type {
	return TypeFiles
}

// Resize updates the frame dimensions.
func (s *FilesScreen) Resize(width, height int) {
	s.Width = width
	s.Height = height
}

// Selected returns the entry under the cursor, if any.
func (s *FilesScreen) Selected() (models.FileEntry, bool) {
	if len(s.Entries) == 0 {
		return models.FileEntry{}, false
	}
	return s.Entries[s.Cursor.Pos()], true
}

// SetEntries replaces the list after a staging operation. The cursor is
// clamped so it keeps pointing at a real entry when the list shrank.
func (s *FilesScreen) SetEntries(entries []models.FileEntry) {
	s.Entries = entries
	s.Cursor.Clamp(len(entries))
	s.ensureVisible()
}

// Update handles the staging-view keys. Everything else is ignored.
func (s *FilesScreen) Update(msg tea.KeyMsg) (Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		s.Cursor.Up(len(s.Entries))
		s.ensureVisible()
		return s, nil
	case "down", "j":
		s.Cursor.Down(len(s.Entries))
		s.ensureVisible()
		return s, nil
	case keySpace:
		if entry, ok := s.Selected(); ok && s.OnToggle != nil {
			return s, s.OnToggle(entry)
		}
		return s, nil
	case "a":
		if s.OnStageAll != nil {
			return s, s.OnStageAll()
		}
		return s, nil
	case "u":
		if s.OnUnstageAll != nil {
			return s, s.OnUnstageAll()
		}
		return s, nil
	case keyEsc, keyEscRaw:
		if s.OnClose != nil {
			return nil, s.OnClose()
		}
		return nil, nil
	}
	return s, nil
}

// ensureVisible scrolls the list so the cursor stays on screen.
func (s *FilesScreen) ensureVisible() {
	visible := s.maxVisible()
	if s.Cursor.Pos() < s.ScrollOffset {
		s.ScrollOffset = s.Cursor.Pos()
	}
	if s.Cursor.Pos() >= s.ScrollOffset+visible {
		s.ScrollOffset = s.Cursor.Pos() - visible + 1
	}
}

func (s *FilesScreen) maxVisible() int {
	return maxInt(1, s.Height-13)
}

// statusMarker returns the list marker for a file status.
func statusMarker(status models.FileStatus, showIcons bool) string {
	if showIcons {
		switch status {
		case models.StatusStaged:
			return "✅"
		case models.StatusModified:
			return "📝"
		case models.StatusUntracked:
			return "❓"
		case models.StatusDeleted:
			return "🗑️"
		}
	}
	switch status {
	case models.StatusStaged:
		return "[S]"
	case models.StatusModified:
		return "[M]"
	case models.StatusUntracked:
		return "[?]"
	case models.StatusDeleted:
		return "[D]"
	}
	return "   "
}

// statusColor maps a file status to its list colour.
func (s *FilesScreen) statusColor(status models.FileStatus) lipgloss.Color {
	switch status {
	case models.StatusStaged:
		return s.Thm.SuccessFg
	case models.StatusModified:
		return s.Thm.Yellow
	case models.StatusUntracked:
		return s.Thm.ErrorFg
	case models.StatusDeleted:
		return s.Thm.Accent
	}
	return s.Thm.TextFg
}

// View renders the full staging frame: header, instructions, list, footer.
func (s *FilesScreen) View() string {
	width := maxInt(20, s.Width)

	header := frameBox(width, s.Thm.Border).Render(
		lipgloss.NewStyle().
			Foreground(s.Thm.Accent).
			Bold(true).
			Width(width-2).
			Align(lipgloss.Center).
			Render("File Staging/Unstaging"))

	instructions := frameBox(width, s.Thm.Border).Render(
		lipgloss.NewStyle().
			Foreground(s.Thm.Yellow).
			Width(width - 2).
			Render("Use ↑↓ to navigate files | Space to stage/unstage | 'a' to stage all | 'u' to unstage all | Esc to return"))

	var rows []string
	visible := s.maxVisible()
	end := minInt(s.ScrollOffset+visible, len(s.Entries))
	for i := s.ScrollOffset; i < end; i++ {
		entry := s.Entries[i]
		name := entry.Path
		if s.PathIcon != nil {
			if icon := s.PathIcon(entry.Path); icon != "" {
				name = icon + " " + name
			}
		}
		line := fmt.Sprintf("%s %s", statusMarker(entry.Status, s.ShowIcons), name)
		style := lipgloss.NewStyle().Foreground(s.statusColor(entry.Status))
		if i == s.Cursor.Pos() {
			style = lipgloss.NewStyle().
				Foreground(s.Thm.AccentFg).
				Background(s.Thm.Accent).
				Bold(true)
		}
		rows = append(rows, style.Width(width-2).Render(line))
	}
	if len(s.Entries) == 0 {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(s.Thm.MutedFg).
			Italic(true).
			Render("Working tree clean - nothing to stage."))
	}

	listHeight := maxInt(3, s.Height-13)
	listLines := append([]string{boxTitle(width, "Files", s.Thm)}, rows...)
	list := frameBox(width, s.Thm.Border).Height(listHeight).Render(
		lipgloss.JoinVertical(lipgloss.Left, listLines...))

	footer := frameBox(width, s.Thm.Border).Render(
		lipgloss.NewStyle().
			Foreground(s.Thm.MutedFg).
			Width(width-2).
			Align(lipgloss.Center).
			Render("Space: Toggle | 'a': Stage All | 'u': Unstage All | Esc: Back"))

	return lipgloss.JoinVertical(lipgloss.Left, header, instructions, list, footer)
}
