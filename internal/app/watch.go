package app

import (
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// gitWatchDebounce is the debounce window for watcher events.
const gitWatchDebounce = 600 * time.Millisecond

// resolveGitCommonDir locates the repository's common git directory.
// Package variable so tests run without a git checkout.
var resolveGitCommonDir = func(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--git-common-dir").Output()
	if err != nil {
		return ""
	}
	commonDir := strings.TrimSpace(string(out))
	if commonDir == "" {
		return ""
	}
	if filepath.IsAbs(commonDir) {
		return commonDir
	}

	top, err := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel").Output()
	if err == nil {
		if root := strings.TrimSpace(string(top)); root != "" {
			return filepath.Join(root, commonDir)
		}
	}
	if abs, err := filepath.Abs(commonDir); err == nil {
		return abs
	}
	return commonDir
}

// gitWatcher watches the git common directory so branch switches,
// commits and index updates made outside the TUI refresh the status.
type gitWatcher struct {
	started     bool
	waiting     bool
	commonDir   string
	roots       []string
	events      chan struct{}
	done        chan struct{}
	paths       map[string]struct{}
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	lastRefresh time.Time
	logf        func(string, ...any)
}

func newGitWatcher(logf func(string, ...any)) *gitWatcher {
	return &gitWatcher{logf: logf}
}

// Start initialises the watcher and starts the background goroutine.
func (w *gitWatcher) Start(ctx context.Context, enabled bool) (bool, error) {
	if w.started || !enabled {
		return false, nil
	}
	commonDir := resolveGitCommonDir(ctx)
	if commonDir == "" {
		w.debugf("auto refresh: unable to resolve git common dir")
		return false, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}

	w.started = true
	w.watcher = watcher
	w.commonDir = commonDir
	w.events = make(chan struct{}, 1)
	w.done = make(chan struct{})
	w.paths = make(map[string]struct{})
	w.roots = []string{
		filepath.Join(commonDir, "refs"),
		filepath.Join(commonDir, "logs"),
	}
	// The common dir itself covers HEAD and index writes.
	w.addWatchDir(commonDir)
	for _, root := range w.roots {
		w.addWatchTree(root)
	}

	go w.run()
	return true, nil
}

// Stop stops the watcher and closes channels.
func (w *gitWatcher) Stop() {
	if !w.started {
		return
	}
	close(w.done)
	w.started = false
	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}

// NextEvent returns the event channel if waiting is not already active.
func (w *gitWatcher) NextEvent() <-chan struct{} {
	if w.events == nil || w.waiting {
		return nil
	}
	w.waiting = true
	return w.events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *gitWatcher) ResetWaiting() {
	w.waiting = false
}

// ShouldRefresh checks debounce timing for watcher events.
func (w *gitWatcher) ShouldRefresh(now time.Time) bool {
	if !w.lastRefresh.IsZero() && now.Sub(w.lastRefresh) < gitWatchDebounce {
		return false
	}
	w.lastRefresh = now
	return true
}

// Signal notifies listeners of watcher activity.
func (w *gitWatcher) Signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// maybeWatchNewDir registers newly created directories under watch roots.
func (w *gitWatcher) maybeWatchNewDir(path string) {
	if !w.isUnderRoot(path) {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	w.addWatchDir(path)
}

// isUnderRoot reports whether the path is under any watch root.
func (w *gitWatcher) isUnderRoot(path string) bool {
	if path == "" {
		return false
	}
	for _, root := range w.roots {
		if root == "" {
			continue
		}
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *gitWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				w.maybeWatchNewDir(event.Name)
			}
			w.Signal()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.debugf("git watcher error: %v", err)
		}
	}
}

func (w *gitWatcher) addWatchDir(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.paths[path]; ok {
		return
	}
	if err := w.watcher.Add(path); err != nil {
		w.debugf("git watcher add failed for %s: %v", path, err)
		return
	}
	w.paths[path] = struct{}{}
}

func (w *gitWatcher) addWatchTree(root string) {
	if root == "" {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		w.addWatchDir(path)
		return nil
	})
}

func (w *gitWatcher) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}

// startGitWatcher arms the watcher and returns the first event wait.
func (m *Model) startGitWatcher() tea.Cmd {
	if m.services.watch != nil && m.services.watch.started {
		return nil
	}
	if m.services.watch == nil {
		m.services.watch = newGitWatcher(m.debugf)
	}
	enabled := m.config != nil && m.config.AutoRefresh
	started, err := m.services.watch.Start(m.ctx, enabled)
	if err != nil {
		return func() tea.Msg {
			return errMsg{err: err}
		}
	}
	if !started {
		return nil
	}
	return m.waitForGitWatchEvent()
}

func (m *Model) stopGitWatcher() {
	if m.services.watch == nil || !m.services.watch.started {
		return
	}
	m.services.watch.Stop()
}

// waitForGitWatchEvent blocks on the next watcher event as a command.
func (m *Model) waitForGitWatchEvent() tea.Cmd {
	if m.services.watch == nil {
		return nil
	}
	events := m.services.watch.NextEvent()
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-events
		if !ok {
			return nil
		}
		return gitDirChangedMsg{}
	}
}

func (m *Model) shouldRefreshGitEvent(now time.Time) bool {
	if m.services.watch == nil {
		return false
	}
	return m.services.watch.ShouldRefresh(now)
}
