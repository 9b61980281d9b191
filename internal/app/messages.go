package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycommit/internal/app/screen"
	"github.com/chmouel/lazycommit/internal/models"
)

// Message types for the Bubble Tea app. Every collaborator call runs as
// a tea.Cmd on its own goroutine and reports back through exactly one of
// these.
type (
	errMsg             struct{ err error }
	statusRefreshedMsg struct {
		status *models.WorkingTreeStatus
		err    error
	}
	fileEntriesLoadedMsg struct {
		entries []models.FileEntry
		err     error
	}
	filesRefreshedMsg struct {
		entries []models.FileEntry
		status  *models.WorkingTreeStatus
		err     error
	}
	suggestionsMsg struct {
		suggestions []string
		noStaged    bool
		fellBack    bool
		err         error
	}
	reportMsg struct {
		title   string
		content string
		err     error
	}
	commitDoneMsg struct {
		message string
		err     error
	}
	gitOpDoneMsg struct {
		op     gitOp
		detail string
		err    error
	}
	branchesLoadedMsg struct {
		branches []string
		current  string
		err      error
	}
	mergeBranchChosenMsg struct {
		branch  string
		current string
	}
	prCreatedMsg struct {
		repo string
		url  string
		body string
		err  error
	}
	viewStatusMsg struct {
		content string
		err     error
	}
	gitDirChangedMsg struct{}
)

// gitOp names a plain git operation for status-bar wording.
type gitOp int

const (
	opPush gitOp = iota
	opPull
	opNewBranch
	opMerge
	opStageAll
)

func (m *Model) handleStatusRefreshed(msg statusRefreshedMsg) tea.Cmd {
	if msg.err != nil {
		m.debugf("status refresh failed: %v", msg.err)
		m.setStatusError(fmt.Sprintf("Status refresh failed: %v", msg.err))
		return nil
	}
	m.data.status = msg.status
	return nil
}

func (m *Model) handleFileEntriesLoaded(msg fileEntriesLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.setStatusError(fmt.Sprintf("Could not read files: %v", msg.err))
		return nil
	}
	m.pushFilesScreen(msg.entries)
	return nil
}

func (m *Model) handleFilesRefreshed(msg filesRefreshedMsg) tea.Cmd {
	if msg.err != nil {
		m.setStatusError(fmt.Sprintf("Staging failed: %v", msg.err))
		return nil
	}
	if msg.status != nil {
		m.data.status = msg.status
	}
	if fs, ok := m.ui.screenManager.Current().(*screen.FilesScreen); ok {
		fs.SetEntries(msg.entries)
	}
	return nil
}

func (m *Model) handleSuggestions(msg suggestionsMsg) tea.Cmd {
	m.popLoading()
	if msg.noStaged {
		m.setStatusInfo("No staged changes to commit.")
		return nil
	}
	if msg.err != nil && len(msg.suggestions) == 0 {
		m.setStatusError(fmt.Sprintf("Could not read staged changes: %v", msg.err))
		return nil
	}
	if msg.fellBack {
		m.debugf("suggestion generation fell back: %v", msg.err)
		m.setStatusInfo("AI unavailable, using fallback suggestions.")
	}
	m.pushSuggestScreen(msg.suggestions)
	return nil
}

func (m *Model) handleReport(msg reportMsg) tea.Cmd {
	m.popLoading()
	if msg.err != nil {
		m.debugf("report generation failed: %v", msg.err)
		m.setStatusError(fmt.Sprintf("Generation failed: %v", msg.err))
		return nil
	}
	m.pushDisplayScreen(msg.title, msg.content)
	return nil
}

func (m *Model) handleCommitDone(msg commitDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.setStatusError(fmt.Sprintf("Commit failed: %v", msg.err))
		return nil
	}
	first := msg.message
	if idx := strings.IndexByte(first, '\n'); idx >= 0 {
		first = first[:idx]
	}
	m.setStatusInfo(fmt.Sprintf("Committed: %s", first))
	return m.refreshStatusCmd()
}

func (m *Model) handleGitOpDone(msg gitOpDoneMsg) tea.Cmd {
	m.popLoading()
	if msg.err != nil {
		m.setStatusError(fmt.Sprintf("%s failed: %v", msg.op.label(), msg.err))
		return m.refreshStatusCmd()
	}
	switch msg.op {
	case opPush:
		m.setStatusInfo("Pushed to remote.")
	case opPull:
		m.setStatusInfo("Pulled from remote.")
	case opNewBranch:
		m.setStatusInfo(fmt.Sprintf("Switched to new branch %q.", msg.detail))
	case opMerge:
		m.setStatusInfo(fmt.Sprintf("Merged %q.", msg.detail))
	case opStageAll:
		m.setStatusInfo("Staged all changes.")
	}
	return m.refreshStatusCmd()
}

// label returns the operation name used in failure messages.
func (op gitOp) label() string {
	switch op {
	case opPush:
		return "Push"
	case opPull:
		return "Pull"
	case opNewBranch:
		return "Branch creation"
	case opMerge:
		return "Merge"
	case opStageAll:
		return "Stage all"
	}
	return "Operation"
}

func (m *Model) handleBranchesLoaded(msg branchesLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.setStatusError(fmt.Sprintf("Could not list branches: %v", msg.err))
		return nil
	}
	items := make([]screen.SelectionItem, 0, len(msg.branches))
	for _, branch := range msg.branches {
		if branch == msg.current {
			continue
		}
		items = append(items, screen.SelectionItem{ID: branch, Label: branch})
	}
	if len(items) == 0 {
		m.setStatusInfo("No other branch to merge.")
		return nil
	}
	m.pushMergeSelectScreen(items, msg.current)
	return nil
}

func (m *Model) handlePRCreated(msg prCreatedMsg) tea.Cmd {
	m.popLoading()
	if msg.err != nil {
		m.debugf("pr creation failed: %v", msg.err)
		m.setStatusError(fmt.Sprintf("PR creation failed: %v", msg.err))
		return nil
	}
	m.setStatusInfo(fmt.Sprintf("Pull request created: %s", msg.url))
	content := msg.url
	if msg.repo != "" {
		content = msg.repo + "\n" + content
	}
	if strings.TrimSpace(msg.body) != "" {
		content += "\n\n" + msg.body
	}
	m.pushDisplayScreen(titlePRCreated, content)
	return m.refreshStatusCmd()
}

func (m *Model) handleViewStatus(msg viewStatusMsg) tea.Cmd {
	if msg.err != nil {
		m.setStatusError(fmt.Sprintf("Could not read status: %v", msg.err))
		return nil
	}
	m.pushDisplayScreen(titleRepositoryStatus, msg.content)
	return nil
}

// handleGitDirChanged refreshes the visible view after watcher activity,
// debounced, and re-arms the event wait.
func (m *Model) handleGitDirChanged() tea.Cmd {
	if m.services.watch != nil {
		m.services.watch.ResetWaiting()
	}
	wait := m.waitForGitWatchEvent()
	if !m.shouldRefreshGitEvent(time.Now()) {
		return wait
	}
	if m.isLoading() {
		return wait
	}
	switch m.ui.screenManager.Type() {
	case screen.TypeNone:
		return tea.Batch(wait, m.refreshStatusCmd())
	case screen.TypeFiles:
		return tea.Batch(wait, m.reloadFilesCmd())
	default:
		return wait
	}
}
