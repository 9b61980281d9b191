package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	log "github.com/chmouel/lazycommit/internal/log"
	"github.com/chmouel/lazycommit/internal/models"
)

// defaultTimeout bounds every git invocation so a hung remote never
// wedges the UI loop.
const defaultTimeout = 30 * time.Second

// commitFormat keeps fields apart with unit separators and records
// apart with a record separator so multi-line bodies survive parsing.
const commitFormat = "%H%x1f%an%x1f%at%x1f%B%x1e"

// LookupPath is used to find executables in PATH. It's exposed as a package
// variable so tests can mock it and avoid depending on system binaries.
var LookupPath = exec.LookPath

// Service is the exec-based Backend implementation. It shells out to
// the git binary in a fixed working directory.
type Service struct {
	dir     string
	timeout time.Duration
}

var _ Backend = (*Service)(nil)

// NewService returns a Service operating in dir. An empty dir means
// the process working directory.
func NewService(dir string) *Service {
	return &Service{dir: dir, timeout: defaultTimeout}
}

// SetTimeout overrides the per-command timeout. Zero restores the default.
func (s *Service) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = defaultTimeout
	}
	s.timeout = d
}

func prepareCommand(ctx context.Context, args []string) (*exec.Cmd, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no command provided")
	}
	switch args[0] {
	case "git":
		// #nosec G204 -- arguments for git come from internal logic and are not shell interpolated
		return exec.CommandContext(ctx, "git", args[1:]...), nil
	default:
		return nil, fmt.Errorf("unsupported command %q", args[0])
	}
}

// run executes git with args and returns its stdout untrimmed.
func (s *Service) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log.Printf("run: git %s (cwd=%s)", strings.Join(args, " "), s.dir)
	cmd, err := prepareCommand(ctx, append([]string{"git"}, args...))
	if err != nil {
		return "", err
	}
	if s.dir != "" {
		cmd.Dir = s.dir
	}
	// Background scans must never take the index lock away from the user.
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0")

	output, err := cmd.Output()
	if err != nil {
		sub := args[0]
		if exitError, ok := err.(*exec.ExitError); ok {
			detail := strings.TrimSpace(string(exitError.Stderr))
			if detail == "" {
				detail = fmt.Sprintf("exit %d", exitError.ExitCode())
			}
			log.Printf("error: git %s: %s", sub, detail)
			return "", fmt.Errorf("git %s: %s: %w", sub, detail, err)
		}
		log.Printf("error: git %s: %v", sub, err)
		return "", fmt.Errorf("git %s: %w", sub, err)
	}
	return string(output), nil
}

// line runs git and returns the first line of output, trimmed.
func (s *Service) line(ctx context.Context, args ...string) (string, error) {
	out, err := s.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepository reports whether dir sits inside a git work tree.
func (s *Service) IsRepository(ctx context.Context) bool {
	out, err := s.line(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// CurrentBranch returns the checked-out branch, or "" when detached.
func (s *Service) CurrentBranch(ctx context.Context) (string, error) {
	return s.line(ctx, "branch", "--show-current")
}

// Status runs a porcelain scan and assembles the dual-listing snapshot.
func (s *Service) Status(ctx context.Context) (*models.WorkingTreeStatus, error) {
	raw, err := s.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	branch, err := s.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	status := ParseStatus(raw)
	status.Branch = branch
	return status, nil
}

// FileEntries runs a fresh porcelain scan and classifies each line for
// the staging view.
func (s *Service) FileEntries(ctx context.Context) ([]models.FileEntry, error) {
	raw, err := s.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParseFileEntries(raw), nil
}

// StagedDiff returns the diff of the index against HEAD.
func (s *Service) StagedDiff(ctx context.Context) (string, error) {
	return s.run(ctx, "diff", "--cached")
}

func (s *Service) stagedRecord(ctx context.Context) (*models.CommitRecord, error) {
	diff, err := s.StagedDiff(ctx)
	if err != nil {
		return nil, err
	}
	record, ok := NewStagedRecord(diff)
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// StagedChanges returns a change set holding only the synthetic staged
// record, or an empty set when the index is clean.
func (s *Service) StagedChanges(ctx context.Context) (*models.ChangeSet, error) {
	record, err := s.stagedRecord(ctx)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &models.ChangeSet{}, nil
	}
	return BuildChangeSet([]models.CommitRecord{*record}), nil
}

// Commits lists the commits on HEAD missing from base, newest first.
func (s *Service) Commits(ctx context.Context, base string) (*models.ChangeSet, error) {
	var records []models.CommitRecord

	out, err := s.run(ctx, "log", "--format="+commitFormat, base+"..HEAD")
	if err != nil {
		return nil, err
	}
	for _, block := range strings.Split(out, "\x1e") {
		block = strings.TrimLeft(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		fields := strings.SplitN(block, "\x1f", 4)
		if len(fields) != 4 {
			log.Printf("log: malformed commit block %q", block)
			continue
		}
		record := models.CommitRecord{
			ID:        fields[0],
			Author:    fields[1],
			Message:   strings.TrimSpace(fields[3]),
			Timestamp: parseUnixTime(fields[2]),
		}
		patch, err := s.commitPatch(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		record.Patch = patch
		record.FilesChanged = ExtractPaths(patch)
		records = append(records, record)
	}
	return BuildChangeSet(records), nil
}

// commitPatch returns the unified diff of id against its first parent.
// A plain show prints a combined diff for merge commits, which is empty
// when the merge applied cleanly, so the parent is named explicitly.
// Root commits have no parent and fall back to show.
func (s *Service) commitPatch(ctx context.Context, id string) (string, error) {
	patch, err := s.run(ctx, "diff", id+"^", id)
	if err == nil {
		return patch, nil
	}
	return s.run(ctx, "show", "--format=", "--patch", id)
}

func parseUnixTime(value string) time.Time {
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("log: bad timestamp %q: %v", value, err)
		return time.Time{}
	}
	return time.Unix(seconds, 0)
}

// Stage adds a single path to the index.
func (s *Service) Stage(ctx context.Context, path string) error {
	_, err := s.run(ctx, "add", path)
	return err
}

// Unstage resets a single path out of the index.
func (s *Service) Unstage(ctx context.Context, path string) error {
	_, err := s.run(ctx, "reset", "HEAD", "--", path)
	return err
}

// Remove deletes a path from the work tree and stages the deletion.
func (s *Service) Remove(ctx context.Context, path string) error {
	_, err := s.run(ctx, "rm", path)
	return err
}

// StageAll stages every change in the work tree. -A is repo-wide even
// when the service runs in a subdirectory.
func (s *Service) StageAll(ctx context.Context) error {
	_, err := s.run(ctx, "add", "-A")
	return err
}

// UnstageAll resets the whole index against HEAD.
func (s *Service) UnstageAll(ctx context.Context) error {
	_, err := s.run(ctx, "reset", "HEAD")
	return err
}

// Commit records the index with the given message.
func (s *Service) Commit(ctx context.Context, message string) error {
	_, err := s.run(ctx, "commit", "-m", message)
	return err
}

// Push updates the current branch's upstream.
func (s *Service) Push(ctx context.Context) error {
	_, err := s.run(ctx, "push")
	return err
}

// Pull fast-forwards or merges from the upstream.
func (s *Service) Pull(ctx context.Context) error {
	_, err := s.run(ctx, "pull")
	return err
}

// CheckoutNewBranch creates and switches to a new branch.
func (s *Service) CheckoutNewBranch(ctx context.Context, name string) error {
	_, err := s.run(ctx, "checkout", "-b", name)
	return err
}

// Merge merges the named branch into the current one.
func (s *Service) Merge(ctx context.Context, branch string) error {
	_, err := s.run(ctx, "merge", branch)
	return err
}

// LocalBranches lists local branch names, short form.
func (s *Service) LocalBranches(ctx context.Context) ([]string, error) {
	out, err := s.run(ctx, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	var branches []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

// CommitMessage returns the full message of rev.
func (s *Service) CommitMessage(ctx context.Context, rev string) (string, error) {
	out, err := s.run(ctx, "log", "-1", "--format=%B", rev)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RemoteURL returns origin's fetch URL.
func (s *Service) RemoteURL(ctx context.Context) (string, error) {
	return s.line(ctx, "remote", "get-url", "origin")
}
