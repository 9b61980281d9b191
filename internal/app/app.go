// Package app hosts the Bubble Tea model driving the lazycommit TUI:
// a tabbed action menu next to the working-tree status, with modal
// screens for staging, commit selection, generated content and loading.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycommit/internal/ai"
	"github.com/chmouel/lazycommit/internal/app/screen"
	"github.com/chmouel/lazycommit/internal/config"
	"github.com/chmouel/lazycommit/internal/forge"
	"github.com/chmouel/lazycommit/internal/git"
	log "github.com/chmouel/lazycommit/internal/log"
	"github.com/chmouel/lazycommit/internal/models"
	"github.com/chmouel/lazycommit/internal/theme"
)

// ForgeClient is the remote-repository surface the app depends on.
type ForgeClient interface {
	Available() bool
	CreatePullRequest(ctx context.Context, pr forge.PullRequest) (string, error)
	Repository(ctx context.Context) (*forge.RepoInfo, error)
}

var _ ForgeClient = (*forge.Client)(nil)

// Titles of the generated-content views.
const (
	titlePRDescription    = "📋 AI-Generated PR Description"
	titleUnitTests        = "🧪 AI-Generated Unit Tests"
	titleImprovedMessage  = "💬 AI-Improved Commit Message"
	titleChangelog        = "📋 AI-Generated Changelog"
	titleCodeReview       = "🔍 AI Code Review"
	titlePRCreated        = "🚀 Pull Request Created"
	titleRepositoryStatus = "📋 Repository Status"
	titleConfiguration    = "⚙️ Configuration"
)

type uiState struct {
	screenManager *screen.Manager
	menuCursor    screen.Cursor
	activeTab     int
	windowWidth   int
	windowHeight  int
	statusLine    string
	statusIsError bool
}

type dataState struct {
	tabs   []menuTab
	status *models.WorkingTreeStatus
}

type serviceState struct {
	watch *gitWatcher
}

// Model is the main application model.
type Model struct {
	config *config.AppConfig
	theme  *theme.Theme
	keys   KeyMap

	git   git.Backend
	gen   ai.Generator
	forge ForgeClient

	ui        uiState
	data      dataState
	services  serviceState
	highlight *diffHighlighter

	ctx    context.Context
	cancel context.CancelFunc

	quitting bool
}

// New creates the application model over the injected collaborators.
func New(cfg *config.AppConfig, backend git.Backend, gen ai.Generator, forgeClient ForgeClient) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	thm := theme.ByName(cfg.Theme)
	if thm == nil {
		thm = theme.Default()
	}

	return &Model{
		config: cfg,
		theme:  thm,
		keys:   DefaultKeyMap(),
		git:    backend,
		gen:    gen,
		forge:  forgeClient,
		ui: uiState{
			screenManager: screen.NewManager(),
		},
		data: dataState{
			tabs: menuTabs(),
		},
		highlight: newDiffHighlighter(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init performs the unconditional initial refresh and arms the git
// directory watcher.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refreshStatusCmd()}
	if watch := m.startGitWatcher(); watch != nil {
		cmds = append(cmds, watch)
	}
	return tea.Batch(cmds...)
}

// Update routes messages to the key handler and the worker-result
// handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.windowWidth = msg.Width
		m.ui.windowHeight = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if ls := m.loadingScreen(); ls != nil {
			return m, ls.Advance(msg)
		}
		return m, nil
	case statusRefreshedMsg:
		return m, m.handleStatusRefreshed(msg)
	case fileEntriesLoadedMsg:
		return m, m.handleFileEntriesLoaded(msg)
	case filesRefreshedMsg:
		return m, m.handleFilesRefreshed(msg)
	case suggestionsMsg:
		return m, m.handleSuggestions(msg)
	case reportMsg:
		return m, m.handleReport(msg)
	case commitDoneMsg:
		return m, m.handleCommitDone(msg)
	case gitOpDoneMsg:
		return m, m.handleGitOpDone(msg)
	case branchesLoadedMsg:
		return m, m.handleBranchesLoaded(msg)
	case mergeBranchChosenMsg:
		return m, m.handleMergeBranchChosen(msg)
	case prCreatedMsg:
		return m, m.handlePRCreated(msg)
	case viewStatusMsg:
		return m, m.handleViewStatus(msg)
	case gitDirChangedMsg:
		return m, m.handleGitDirChanged()
	case errMsg:
		m.setStatusError(msg.err.Error())
		return m, nil
	}
	return m, nil
}

// handleKey feeds the active screen first; the menu only sees keys when
// no screen is open. Quit is honored even while a worker is outstanding.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, m.quitCmd()
	}

	if m.ui.screenManager.IsActive() {
		current := m.ui.screenManager.Current()
		if current.Type() == screen.TypeLoading {
			// A worker is outstanding: discard everything but quit.
			if key.Matches(msg, m.keys.Quit) {
				return m, m.quitCmd()
			}
			return m, nil
		}
		next, cmd := current.Update(msg)
		if next == nil {
			m.ui.screenManager.Pop()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quitCmd()
	case key.Matches(msg, m.keys.Help):
		m.ui.screenManager.Push(screen.NewHelpScreen(m.ui.windowWidth, m.ui.windowHeight, m.theme))
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.clearStatusLine()
		return m, m.refreshStatusCmd()
	case key.Matches(msg, m.keys.Files):
		m.clearStatusLine()
		return m, m.openFilesCmd()
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.ui.menuCursor.Up(len(m.currentTab().Items))
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.ui.menuCursor.Down(len(m.currentTab().Items))
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		m.clearStatusLine()
		return m, m.runAction(item.Action)
	}
	return m, nil
}

// Close releases the watcher and cancels outstanding workers.
func (m *Model) Close() {
	m.stopGitWatcher()
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Model) quitCmd() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *Model) loadingScreen() *screen.LoadingScreen {
	ls, _ := m.ui.screenManager.Current().(*screen.LoadingScreen)
	return ls
}

func (m *Model) isLoading() bool {
	return m.ui.screenManager.Type() == screen.TypeLoading
}

// pushLoading opens the loading overlay and returns the command that
// starts its spinner cadence.
func (m *Model) pushLoading(message string) tea.Cmd {
	ls := screen.NewLoadingScreen(message, m.theme)
	m.ui.screenManager.Push(ls)
	return ls.Start()
}

// popLoading closes the loading overlay, resuming whichever screen it
// covered. No-op when no overlay is open.
func (m *Model) popLoading() {
	if m.isLoading() {
		m.ui.screenManager.Pop()
	}
}

func (m *Model) setStatusInfo(text string) {
	m.ui.statusLine = text
	m.ui.statusIsError = false
}

func (m *Model) setStatusError(text string) {
	m.ui.statusLine = text
	m.ui.statusIsError = true
}

func (m *Model) clearStatusLine() {
	m.ui.statusLine = ""
	m.ui.statusIsError = false
}

func (m *Model) debugf(format string, args ...any) {
	log.Printf(format, args...)
}

func (m *Model) iconsEnabled() bool {
	return m.config != nil && m.config.ShowIcons
}
