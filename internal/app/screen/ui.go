package screen

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/lazycommit/internal/theme"
)

// frameBox is the bordered container used by the full-frame sections.
func frameBox(width int, border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width)
}

// boxTitle renders a centered title with a dim rule underneath, used as
// the first line inside a frameBox.
func boxTitle(width int, title string, thm *theme.Theme) string {
	return lipgloss.NewStyle().
		Foreground(thm.Accent).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(thm.BorderDim).
		Width(width-2).
		Align(lipgloss.Center).
		Render(title)
}

// Helper functions for min/max
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
