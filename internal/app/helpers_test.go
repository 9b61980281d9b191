package app

import (
	"context"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycommit/internal/ai"
	"github.com/chmouel/lazycommit/internal/config"
	"github.com/chmouel/lazycommit/internal/forge"
	"github.com/chmouel/lazycommit/internal/models"
)

// fakeBackend is an in-memory git.Backend. Mutating calls are recorded
// so tests can assert which operations ran.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	status     *models.WorkingTreeStatus
	statusErr  error
	entries    []models.FileEntry
	entriesErr error

	commits    *models.ChangeSet
	commitsErr error
	staged     *models.ChangeSet
	stagedErr  error
	stagedDiff string

	branch      string
	branchErr   error
	branches    []string
	branchesErr error

	headMessage string
	remoteURL   string

	opErr error
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) IsRepository(context.Context) bool { return true }

func (f *fakeBackend) Status(context.Context) (*models.WorkingTreeStatus, error) {
	f.record("status")
	return f.status, f.statusErr
}

func (f *fakeBackend) FileEntries(context.Context) ([]models.FileEntry, error) {
	f.record("file-entries")
	return f.entries, f.entriesErr
}

func (f *fakeBackend) Commits(ctx context.Context, base string) (*models.ChangeSet, error) {
	f.record("commits " + base)
	return f.commits, f.commitsErr
}

func (f *fakeBackend) StagedChanges(context.Context) (*models.ChangeSet, error) {
	f.record("staged-changes")
	return f.staged, f.stagedErr
}

func (f *fakeBackend) StagedDiff(context.Context) (string, error) {
	f.record("staged-diff")
	return f.stagedDiff, nil
}

func (f *fakeBackend) Stage(ctx context.Context, path string) error {
	f.record("stage " + path)
	return f.opErr
}

func (f *fakeBackend) Unstage(ctx context.Context, path string) error {
	f.record("unstage " + path)
	return f.opErr
}

func (f *fakeBackend) Remove(ctx context.Context, path string) error {
	f.record("remove " + path)
	return f.opErr
}

func (f *fakeBackend) StageAll(context.Context) error {
	f.record("stage-all")
	return f.opErr
}

func (f *fakeBackend) UnstageAll(context.Context) error {
	f.record("unstage-all")
	return f.opErr
}

func (f *fakeBackend) Commit(ctx context.Context, message string) error {
	f.record("commit " + message)
	return f.opErr
}

func (f *fakeBackend) Push(context.Context) error {
	f.record("push")
	return f.opErr
}

func (f *fakeBackend) Pull(context.Context) error {
	f.record("pull")
	return f.opErr
}

func (f *fakeBackend) CheckoutNewBranch(ctx context.Context, name string) error {
	f.record("checkout-new " + name)
	return f.opErr
}

func (f *fakeBackend) Merge(ctx context.Context, branch string) error {
	f.record("merge " + branch)
	return f.opErr
}

func (f *fakeBackend) CurrentBranch(context.Context) (string, error) {
	f.record("current-branch")
	return f.branch, f.branchErr
}

func (f *fakeBackend) LocalBranches(context.Context) ([]string, error) {
	f.record("local-branches")
	return f.branches, f.branchesErr
}

func (f *fakeBackend) CommitMessage(ctx context.Context, rev string) (string, error) {
	f.record("commit-message " + rev)
	return f.headMessage, f.opErr
}

func (f *fakeBackend) RemoteURL(context.Context) (string, error) {
	f.record("remote-url")
	return f.remoteURL, nil
}

// fakeGenerator is a canned ai.Generator.
type fakeGenerator struct {
	suggestions []string
	suggestErr  error
	report      string
	reportErr   error
	improved    string
	improveErr  error

	lastKind    ai.Kind
	reportCalls int
}

func (f *fakeGenerator) Suggestions(context.Context, *models.ChangeSet) ([]string, error) {
	return f.suggestions, f.suggestErr
}

func (f *fakeGenerator) Report(ctx context.Context, kind ai.Kind, set *models.ChangeSet) (string, error) {
	f.lastKind = kind
	f.reportCalls++
	return f.report, f.reportErr
}

func (f *fakeGenerator) ImproveMessage(context.Context, string) (string, error) {
	return f.improved, f.improveErr
}

// fakeForge records pull requests instead of shelling out to gh.
type fakeForge struct {
	available bool
	url       string
	err       error
	repoInfo  *forge.RepoInfo
	repoErr   error
	created   []forge.PullRequest
}

func (f *fakeForge) Available() bool { return f.available }

func (f *fakeForge) CreatePullRequest(ctx context.Context, pr forge.PullRequest) (string, error) {
	f.created = append(f.created, pr)
	return f.url, f.err
}

func (f *fakeForge) Repository(context.Context) (*forge.RepoInfo, error) {
	if f.repoErr != nil {
		return nil, f.repoErr
	}
	if f.repoInfo == nil {
		return &forge.RepoInfo{Name: "r"}, nil
	}
	return f.repoInfo, nil
}

func testConfig() *config.AppConfig {
	cfg := config.DefaultConfig()
	cfg.DefaultBranch = "main"
	cfg.AutoRefresh = false
	cfg.OpenAIAPIKey = "sk-test"
	cfg.GitHubToken = "ghp-test"
	return cfg
}

// newTestModel builds a sized model over fakes, with the watcher off.
func newTestModel(t *testing.T) (*Model, *fakeBackend, *fakeGenerator, *fakeForge) {
	t.Helper()

	backend := &fakeBackend{
		status: &models.WorkingTreeStatus{
			Branch:  "feature/login",
			Staged:  []string{"auth.go"},
			Summary: "1 staged",
		},
		branch:    "feature/login",
		remoteURL: "https://github.com/o/r.git",
	}
	gen := &fakeGenerator{}
	forgeClient := &fakeForge{available: true, url: "https://github.com/o/r/pull/7"}

	m := New(testConfig(), backend, gen, forgeClient)
	m.ui.windowWidth = 120
	m.ui.windowHeight = 40
	t.Cleanup(m.Close)
	return m, backend, gen, forgeClient
}

// drain runs a command tree to completion and feeds every produced
// message back into the model, mimicking the Bubble Tea runtime.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			drain(t, m, sub)
		}
		return
	}
	if _, isTick := msg.(spinner.TickMsg); isTick {
		// Spinner cadence would loop forever; one frame is enough.
		return
	}
	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		return
	}
	_, next := m.Update(msg)
	drain(t, m, next)
}
