package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycommit/internal/app/screen"
	"github.com/chmouel/lazycommit/internal/models"
	"github.com/chmouel/lazycommit/internal/utils"
)

// pushFilesScreen opens the staging view over the given entries.
func (m *Model) pushFilesScreen(entries []models.FileEntry) {
	fs := screen.NewFilesScreen(entries, m.theme, m.iconsEnabled())
	fs.Resize(m.ui.windowWidth-2, m.ui.windowHeight)
	if m.iconsEnabled() {
		fs.PathIcon = func(path string) string {
			return deviconForName(path, false)
		}
	}
	fs.OnToggle = m.toggleFileCmd
	fs.OnStageAll = m.stageAllFilesCmd
	fs.OnUnstageAll = m.unstageAllFilesCmd
	fs.OnClose = m.refreshStatusCmd
	m.ui.screenManager.Push(fs)
}

// pushSuggestScreen opens the commit suggestion picker.
func (m *Model) pushSuggestScreen(suggestions []string) {
	ss := screen.NewSuggestScreen(suggestions, m.theme)
	ss.Resize(m.ui.windowWidth-2, m.ui.windowHeight)
	ss.OnCommit = m.commitCmd
	m.ui.screenManager.Push(ss)
}

// pushDisplayScreen opens the read-only pager.
func (m *Model) pushDisplayScreen(title, content string) {
	ds := screen.NewDisplayScreen(title, content, m.ui.windowWidth-2, m.ui.windowHeight, m.theme)
	ds.OnQuit = m.quitCmd
	m.ui.screenManager.Push(ds)
}

// pushBranchInputScreen prompts for a new branch name. A generated
// adjective-noun name is offered as the placeholder.
func (m *Model) pushBranchInputScreen() {
	input := screen.NewInputScreen("Create new branch", "e.g. "+utils.RandomBranchName(), "", m.theme)
	input.Validate = validateBranchName
	input.OnSubmit = func(value string) tea.Cmd {
		return m.createBranchCmd(strings.TrimSpace(value))
	}
	m.ui.screenManager.Push(input)
}

func validateBranchName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Branch name cannot be empty."
	}
	if strings.ContainsAny(value, " \t") {
		return "Branch name cannot contain spaces."
	}
	if strings.HasPrefix(value, "-") {
		return "Branch name cannot start with '-'."
	}
	return ""
}

// pushMergeSelectScreen opens the branch picker for a merge. The pick
// is reported back as a message so the confirmation opens after this
// screen closed.
func (m *Model) pushMergeSelectScreen(items []screen.SelectionItem, current string) {
	ls := screen.NewListSelectScreen(items, "Merge branch", m.ui.windowWidth, m.ui.windowHeight, m.theme)
	ls.OnSelect = func(item screen.SelectionItem) tea.Cmd {
		return func() tea.Msg {
			return mergeBranchChosenMsg{branch: item.ID, current: current}
		}
	}
	m.ui.screenManager.Push(ls)
}

func (m *Model) handleMergeBranchChosen(msg mergeBranchChosenMsg) tea.Cmd {
	target := msg.current
	if target == "" {
		target = "the current branch"
	} else {
		target = fmt.Sprintf("%q", target)
	}
	confirm := screen.NewConfirmScreen(fmt.Sprintf("Merge %q into %s?", msg.branch, target), m.theme)
	confirm.OnConfirm = func() tea.Cmd {
		return m.mergeCmd(msg.branch)
	}
	m.ui.screenManager.Push(confirm)
	return nil
}
