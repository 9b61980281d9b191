package app

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycommit/internal/ai"
	"github.com/chmouel/lazycommit/internal/forge"
	"github.com/chmouel/lazycommit/internal/models"
)

// runAction dispatches one menu entry. Long-running collaborator calls
// go through the loading overlay; quick local git calls run as silent
// workers so the menu stays responsive.
func (m *Model) runAction(action menuAction) tea.Cmd {
	switch action {
	case actionManageFiles:
		return m.openFilesCmd()
	case actionStageAll:
		return m.stageAllCmd()
	case actionCommit, actionInteractiveCommit:
		return m.interactiveCommitCmd()
	case actionPush:
		return m.pushRemoteCmd()
	case actionPull:
		return m.pullRemoteCmd()
	case actionNewBranch:
		m.pushBranchInputScreen()
		return nil
	case actionMergeBranch:
		return m.loadBranchesCmd()
	case actionViewStatus:
		return m.viewStatusCmd()
	case actionPRDescription:
		return m.reportCmd(ai.KindPRDescription, titlePRDescription, "Generating PR description...")
	case actionCreatePR:
		return m.createPRCmd()
	case actionGenerateTests:
		return m.reportCmd(ai.KindTests, titleUnitTests, "Generating unit tests...")
	case actionImproveCommit:
		return m.improveCommitCmd()
	case actionChangelog:
		return m.reportCmd(ai.KindChangelog, titleChangelog, "Generating changelog...")
	case actionCodeReview:
		return m.reportCmd(ai.KindReview, titleCodeReview, "Performing code review...")
	case actionRefresh:
		return m.refreshStatusCmd()
	case actionConfiguration:
		m.pushDisplayScreen(titleConfiguration, m.config.Describe())
		return nil
	case actionExit:
		return m.quitCmd()
	}
	return nil
}

// refreshStatusCmd rescans the working tree.
func (m *Model) refreshStatusCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	return func() tea.Msg {
		status, err := backend.Status(ctx)
		return statusRefreshedMsg{status: status, err: err}
	}
}

// openFilesCmd loads the file list and opens the staging view.
func (m *Model) openFilesCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	return func() tea.Msg {
		entries, err := backend.FileEntries(ctx)
		return fileEntriesLoadedMsg{entries: entries, err: err}
	}
}

// reloadFilesCmd rebuilds both the file list and the status summary,
// used after every staging operation and on watcher events while the
// staging view is open.
func (m *Model) reloadFilesCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	return func() tea.Msg {
		entries, err := backend.FileEntries(ctx)
		if err != nil {
			return filesRefreshedMsg{err: err}
		}
		status, err := backend.Status(ctx)
		return filesRefreshedMsg{entries: entries, status: status, err: err}
	}
}

// toggleFileCmd flips one entry between index and worktree, then
// rebuilds the whole list.
func (m *Model) toggleFileCmd(entry models.FileEntry) tea.Cmd {
	ctx, backend := m.ctx, m.git
	reload := m.reloadFilesCmd()
	return func() tea.Msg {
		var err error
		switch entry.Status {
		case models.StatusStaged:
			err = backend.Unstage(ctx, entry.Path)
		case models.StatusModified, models.StatusUntracked:
			err = backend.Stage(ctx, entry.Path)
		case models.StatusDeleted:
			err = backend.Remove(ctx, entry.Path)
		}
		if err != nil {
			return filesRefreshedMsg{err: err}
		}
		return reload()
	}
}

func (m *Model) stageAllFilesCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	reload := m.reloadFilesCmd()
	return func() tea.Msg {
		if err := backend.StageAll(ctx); err != nil {
			return filesRefreshedMsg{err: err}
		}
		return reload()
	}
}

func (m *Model) unstageAllFilesCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	reload := m.reloadFilesCmd()
	return func() tea.Msg {
		if err := backend.UnstageAll(ctx); err != nil {
			return filesRefreshedMsg{err: err}
		}
		return reload()
	}
}

// stageAllCmd is the menu variant of stage-all, reporting through the
// status bar instead of the staging view.
func (m *Model) stageAllCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	return func() tea.Msg {
		return gitOpDoneMsg{op: opStageAll, err: backend.StageAll(ctx)}
	}
}

// interactiveCommitCmd gathers staged changes, asks the collaborator
// for commit messages and opens the suggestion picker.
func (m *Model) interactiveCommitCmd() tea.Cmd {
	ctx, backend, gen := m.ctx, m.git, m.gen
	return tea.Batch(m.pushLoading("Generating commit suggestions..."), func() tea.Msg {
		set, err := backend.StagedChanges(ctx)
		if err != nil {
			return suggestionsMsg{err: err}
		}
		if set.Empty() {
			return suggestionsMsg{noStaged: true}
		}
		suggestions, err := gen.Suggestions(ctx, set)
		if err != nil || len(suggestions) == 0 {
			return suggestionsMsg{suggestions: ai.FallbackSuggestions(), fellBack: true, err: err}
		}
		return suggestionsMsg{suggestions: suggestions}
	})
}

// commitCmd records the chosen message.
func (m *Model) commitCmd(message string) tea.Cmd {
	ctx, backend := m.ctx, m.git
	return func() tea.Msg {
		return commitDoneMsg{message: message, err: backend.Commit(ctx, message)}
	}
}

func (m *Model) pushRemoteCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	return tea.Batch(m.pushLoading("Pushing to remote..."), func() tea.Msg {
		return gitOpDoneMsg{op: opPush, err: backend.Push(ctx)}
	})
}

func (m *Model) pullRemoteCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	return tea.Batch(m.pushLoading("Pulling from remote..."), func() tea.Msg {
		return gitOpDoneMsg{op: opPull, err: backend.Pull(ctx)}
	})
}

func (m *Model) createBranchCmd(name string) tea.Cmd {
	ctx, backend := m.ctx, m.git
	return func() tea.Msg {
		return gitOpDoneMsg{op: opNewBranch, detail: name, err: backend.CheckoutNewBranch(ctx, name)}
	}
}

func (m *Model) loadBranchesCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	return func() tea.Msg {
		branches, err := backend.LocalBranches(ctx)
		if err != nil {
			return branchesLoadedMsg{err: err}
		}
		current, err := backend.CurrentBranch(ctx)
		return branchesLoadedMsg{branches: branches, current: current, err: err}
	}
}

func (m *Model) mergeCmd(branch string) tea.Cmd {
	ctx, backend := m.ctx, m.git
	return func() tea.Msg {
		return gitOpDoneMsg{op: opMerge, detail: branch, err: backend.Merge(ctx, branch)}
	}
}

// viewStatusCmd assembles the full status report with the staged diff.
func (m *Model) viewStatusCmd() tea.Cmd {
	ctx, backend := m.ctx, m.git
	highlight := m.highlight
	return func() tea.Msg {
		status, err := backend.Status(ctx)
		if err != nil {
			return viewStatusMsg{err: err}
		}
		diff, err := backend.StagedDiff(ctx)
		if err != nil {
			return viewStatusMsg{err: err}
		}
		return viewStatusMsg{content: buildStatusReport(status, diff, highlight)}
	}
}

// buildStatusReport renders the dual-listing status plus the staged
// diff into pager content.
func buildStatusReport(status *models.WorkingTreeStatus, diff string, highlight *diffHighlighter) string {
	var b strings.Builder
	branch := status.Branch
	if branch == "" {
		branch = "(detached)"
	}
	fmt.Fprintf(&b, "Branch: %s\n%s\n", branch, status.Summary)

	section := func(name string, files []string) {
		fmt.Fprintf(&b, "\n%s (%d)\n", name, len(files))
		for _, file := range files {
			fmt.Fprintf(&b, "  %s\n", file)
		}
	}
	section("Staged", status.Staged)
	section("Unstaged", status.Unstaged)
	section("Untracked", status.Untracked)

	if strings.TrimSpace(diff) != "" {
		b.WriteString("\nStaged diff:\n\n")
		b.WriteString(highlight.Highlight(diff))
	}
	return b.String()
}

// reportCmd runs one generated-content flow: range change set against
// the default branch, collaborator report, pager.
func (m *Model) reportCmd(kind ai.Kind, title, loadingMessage string) tea.Cmd {
	ctx, backend, gen := m.ctx, m.git, m.gen
	base := m.config.DefaultBranch
	return tea.Batch(m.pushLoading(loadingMessage), func() tea.Msg {
		set, err := backend.Commits(ctx, base)
		if err != nil {
			return reportMsg{title: title, err: err}
		}
		content, err := gen.Report(ctx, kind, set)
		if err != nil {
			return reportMsg{title: title, err: err}
		}
		return reportMsg{title: title, content: content}
	})
}

// improveCommitCmd rewrites the HEAD commit message.
func (m *Model) improveCommitCmd() tea.Cmd {
	ctx, backend, gen := m.ctx, m.git, m.gen
	return tea.Batch(m.pushLoading("Improving commit message..."), func() tea.Msg {
		message, err := backend.CommitMessage(ctx, "HEAD")
		if err != nil {
			return reportMsg{title: titleImprovedMessage, err: err}
		}
		improved, err := gen.ImproveMessage(ctx, message)
		if err != nil {
			return reportMsg{title: titleImprovedMessage, err: err}
		}
		return reportMsg{title: titleImprovedMessage, content: improved}
	})
}

// createPRCmd opens a pull request with a generated description. The
// token check happens before any transition so a missing credential
// costs nothing but a status-bar note.
func (m *Model) createPRCmd() tea.Cmd {
	if !m.config.HasGitHubToken() {
		m.setStatusError("GitHub token not configured; set GITHUB_TOKEN or github_token.")
		return nil
	}
	if m.forge == nil || !m.forge.Available() {
		m.setStatusError("gh executable not found in PATH.")
		return nil
	}
	ctx, backend, gen, forgeClient := m.ctx, m.git, m.gen, m.forge
	base := m.config.DefaultBranch
	return tea.Batch(m.pushLoading("Creating PR with AI description..."), func() tea.Msg {
		branch, err := backend.CurrentBranch(ctx)
		if err != nil {
			return prCreatedMsg{err: err}
		}
		if branch == "" {
			return prCreatedMsg{err: errors.New("detached HEAD, checkout a branch first")}
		}
		if branch == base {
			return prCreatedMsg{err: fmt.Errorf("already on base branch %q", base)}
		}
		remote, err := backend.RemoteURL(ctx)
		if err != nil {
			return prCreatedMsg{err: fmt.Errorf("resolve origin remote: %w", err)}
		}
		repo, err := forge.ParseRemoteURL(remote)
		if err != nil {
			return prCreatedMsg{err: err}
		}
		// Pre-flight before spending an AI call: gh must be able to
		// see the repository.
		if _, err := forgeClient.Repository(ctx); err != nil {
			return prCreatedMsg{err: fmt.Errorf("repository %s not reachable: %w", repo, err)}
		}
		set, err := backend.Commits(ctx, base)
		if err != nil {
			return prCreatedMsg{err: err}
		}
		body, err := gen.Report(ctx, ai.KindPRDescription, set)
		if err != nil {
			return prCreatedMsg{err: err}
		}
		url, err := forgeClient.CreatePullRequest(ctx, forge.PullRequest{
			Title: forge.PRTitle(branch),
			Body:  body,
			Head:  branch,
			Base:  base,
		})
		if err != nil {
			return prCreatedMsg{err: err}
		}
		return prCreatedMsg{repo: repo.String(), url: url, body: body}
	})
}
