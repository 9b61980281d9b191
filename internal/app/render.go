package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/chmouel/lazycommit/internal/app/screen"
	"github.com/chmouel/lazycommit/internal/utils"
)

// View renders the active screen for the Bubble Tea program.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Wait for window size before rendering full UI
	if m.ui.windowWidth == 0 || m.ui.windowHeight == 0 {
		return "Loading..."
	}

	dims := m.computeLayout()
	base := m.renderMain(dims)

	if !m.ui.screenManager.IsActive() {
		return base
	}

	scr := m.ui.screenManager.Current()
	switch scr.Type() {
	case screen.TypeFiles, screen.TypeSuggest, screen.TypeDisplay:
		// Full-frame replacement screens
		m.resizeFullFrame(scr)
		return truncateToHeight(scr.View(), m.ui.windowHeight)
	case screen.TypeLoading:
		// The overlay floats above whichever view it covered, so the
		// resume target stays visible behind the dialog.
		behind := base
		if under := m.ui.screenManager.Under(); under != nil {
			switch under.Type() {
			case screen.TypeFiles, screen.TypeSuggest, screen.TypeDisplay:
				m.resizeFullFrame(under)
				behind = truncateToHeight(under.View(), m.ui.windowHeight)
			}
		}
		ls, ok := scr.(*screen.LoadingScreen)
		if !ok {
			return behind
		}
		x, y, w, h := centeredRect(loadingWidthPct, loadingHeightPct, m.ui.windowWidth, m.ui.windowHeight)
		return overlayAt(behind, ls.Render(maxInt(30, w-2), maxInt(7, h-2)), x, y)
	default:
		// Modal popups centered over the base view
		return overlayPopup(base, scr.View(), 3)
	}
}

func (m *Model) resizeFullFrame(scr screen.Screen) {
	width := m.ui.windowWidth - 2
	height := m.ui.windowHeight
	switch s := scr.(type) {
	case *screen.FilesScreen:
		s.Resize(width, height)
	case *screen.SuggestScreen:
		s.Resize(width, height)
	case *screen.DisplayScreen:
		s.Resize(width, height)
	}
}

// renderMain draws the menu and status panes with header and footer.
func (m *Model) renderMain(dims layoutDims) string {
	header := m.renderHeader(dims)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderMenuPane(dims),
		m.renderStatusPane(dims))
	body = truncateToHeight(body, dims.bodyHeight)
	statusLine := m.renderStatusLine(dims)
	footer := m.renderFooter(dims)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusLine, footer)
}

func (m *Model) renderHeader(dims layoutDims) string {
	title := "LAZYCOMMIT - AI-Powered Git Companion"
	if m.iconsEnabled() {
		title = "🤖 " + title
	}
	return m.paneBox(dims.width - 2).Render(
		lipgloss.NewStyle().
			Foreground(m.theme.Cyan).
			Bold(true).
			Width(dims.width-4).
			Align(lipgloss.Center).
			Render(title))
}

// renderMenuPane draws the tab bar and the active tab's entries. The
// rows come from the same table the dispatcher consumes.
func (m *Model) renderMenuPane(dims layoutDims) string {
	width := dims.menuWidth - 2

	rows := []string{m.renderTabBar(width), ""}
	tab := m.currentTab()
	for i, item := range tab.Items {
		label := item.Label
		if m.iconsEnabled() {
			label = iconWithSpace(item.Icon) + label
		}
		style := lipgloss.NewStyle().Foreground(m.theme.TextFg)
		if i == m.ui.menuCursor.Pos() {
			style = lipgloss.NewStyle().
				Foreground(m.theme.AccentFg).
				Background(m.theme.Accent).
				Bold(true)
		}
		rows = append(rows, style.Width(width).Render(" "+label))
	}

	return m.paneBox(width).
		Height(dims.bodyHeight - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderTabBar(width int) string {
	parts := make([]string, 0, len(m.data.tabs))
	for i, tab := range m.data.tabs {
		style := lipgloss.NewStyle().
			Foreground(m.theme.MutedFg).
			Padding(0, 1)
		if i == m.ui.activeTab {
			style = lipgloss.NewStyle().
				Foreground(m.theme.AccentFg).
				Background(m.theme.Accent).
				Bold(true).
				Padding(0, 1)
		}
		parts = append(parts, style.Render(tab.Title))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.NewStyle().Width(width).Render(bar)
}

// renderStatusPane draws the dual-listing working-tree summary: staged
// and unstaged lists plus untracked files, every list in full.
func (m *Model) renderStatusPane(dims layoutDims) string {
	width := dims.statusWidth - 2
	status := m.data.status

	titleStyle := lipgloss.NewStyle().
		Foreground(m.theme.Accent).
		Bold(true).
		Width(width).
		Align(lipgloss.Center)

	rows := []string{titleStyle.Render("Repository Status"), ""}

	if status == nil {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(m.theme.MutedFg).
			Italic(true).
			Render(" Scanning repository..."))
		return m.paneBox(width).Height(dims.bodyHeight - 2).Render(
			lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	sections := []struct {
		icon   string
		name   string
		files  []string
		colour lipgloss.Color
	}{
		{"📁", "Staged Files", status.Staged, m.theme.SuccessFg},
		{"📝", "Modified Files", status.Unstaged, m.theme.Yellow},
		{"❓", "Untracked Files", status.Untracked, m.theme.ErrorFg},
	}

	// Cap each file list so three sections always fit the pane.
	maxFiles := maxInt(1, (dims.bodyHeight-11)/3)

	for _, section := range sections {
		header := fmt.Sprintf("%s (%d)", section.name, len(section.files))
		if m.iconsEnabled() {
			header = section.icon + " " + header
		}
		rows = append(rows, lipgloss.NewStyle().
			Foreground(section.colour).
			Bold(true).
			Render(header))

		shown := section.files
		if len(shown) > maxFiles {
			shown = shown[:maxFiles]
		}
		for _, file := range shown {
			line := " " + file
			if m.iconsEnabled() {
				line = " " + iconWithSpace(deviconForName(file, false)) + file
			}
			rows = append(rows, lipgloss.NewStyle().
				Foreground(section.colour).
				Render(utils.Truncate(line, width)))
		}
		if hidden := len(section.files) - len(shown); hidden > 0 {
			rows = append(rows, lipgloss.NewStyle().
				Foreground(m.theme.MutedFg).
				Italic(true).
				Render(fmt.Sprintf(" … and %d more", hidden)))
		}
		rows = append(rows, "")
	}

	return m.paneBox(width).
		Height(dims.bodyHeight - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderStatusLine shows transient operation feedback, or the key help
// when nothing is pending.
func (m *Model) renderStatusLine(dims layoutDims) string {
	if m.ui.statusLine != "" {
		colour := m.theme.SuccessFg
		if m.ui.statusIsError {
			colour = m.theme.ErrorFg
		}
		return lipgloss.NewStyle().
			Foreground(colour).
			Width(dims.width).
			Render(utils.Truncate(" "+m.ui.statusLine, dims.width))
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.MutedFg).
		Width(dims.width).
		Render(utils.Truncate(" "+m.renderKeyHelp(), dims.width))
}

func (m *Model) renderKeyHelp() string {
	parts := make([]string, 0, 8)
	for _, binding := range m.keys.shortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, " • ")
}

func (m *Model) renderFooter(dims layoutDims) string {
	branch := "-"
	summary := "Scanning..."
	if m.data.status != nil {
		if m.data.status.Branch != "" {
			branch = m.data.status.Branch
		}
		summary = m.data.status.Summary
	}

	aiState := "Disabled"
	if m.config.HasOpenAIKey() {
		aiState = "Enabled"
	}
	if m.iconsEnabled() {
		if m.config.HasOpenAIKey() {
			aiState = "✅ Enabled"
		} else {
			aiState = "❌ Disabled"
		}
	}

	info := fmt.Sprintf("Branch: %s | Status: %s | AI: %s", branch, summary, aiState)
	return m.paneBox(dims.width - 2).Render(
		lipgloss.NewStyle().
			Foreground(m.theme.Yellow).
			Width(dims.width-4).
			Align(lipgloss.Center).
			Render(utils.Truncate(info, dims.width-4)))
}

// paneBox is the bordered container used by the main view sections.
func (m *Model) paneBox(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(width)
}

// overlayPopup overlays a popup on top of the base view, horizontally
// centered, preserving the portions of the base that fall outside the
// popup bounds so that underlying box borders remain visible.
func overlayPopup(base, popup string, marginTop int) string {
	if base == "" || popup == "" {
		return base
	}
	baseWidth := lipgloss.Width(strings.Split(base, "\n")[0])
	popupWidth := lipgloss.Width(strings.Split(popup, "\n")[0])
	leftPad := maxInt((baseWidth-popupWidth)/2, 0)
	return overlayAt(base, popup, leftPad, marginTop)
}

// overlayAt splices the popup into the base view at the given column
// and row using ANSI-aware truncation so styling stays intact.
func overlayAt(base, popup string, left, top int) string {
	if base == "" || popup == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")

	if len(baseLines) == 0 {
		return popup
	}
	baseWidth := lipgloss.Width(baseLines[0])

	for i, line := range popupLines {
		row := top + i
		if row < 0 || row >= len(baseLines) {
			break
		}

		popupWidth := lipgloss.Width(line)
		leftPart := ansi.Truncate(baseLines[row], left, "")
		if w := lipgloss.Width(leftPart); w < left {
			leftPart += strings.Repeat(" ", left-w)
		}
		rightPart := ansi.TruncateLeft(baseLines[row], left+popupWidth, "")

		newLine := leftPart + line + rightPart
		if w := lipgloss.Width(newLine); w < baseWidth {
			newLine += strings.Repeat(" ", baseWidth-w)
		}
		baseLines[row] = newLine
	}

	return strings.Join(baseLines, "\n")
}

// truncateToHeight ensures output doesn't exceed maxLines.
func truncateToHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
