package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chmouel/lazycommit/internal/ai"
	"github.com/chmouel/lazycommit/internal/models"
)

type fakeGitService struct {
	commits    *models.ChangeSet
	commitsErr error
	staged     *models.ChangeSet
	stagedErr  error
	message    string
	messageErr error
	opErr      error

	calls        []string
	requestedRev string
}

func (f *fakeGitService) Commits(_ context.Context, base string) (*models.ChangeSet, error) {
	f.calls = append(f.calls, "commits "+base)
	if f.commitsErr != nil {
		return nil, f.commitsErr
	}
	if f.commits == nil {
		return &models.ChangeSet{}, nil
	}
	return f.commits, nil
}

func (f *fakeGitService) StagedChanges(_ context.Context) (*models.ChangeSet, error) {
	f.calls = append(f.calls, "staged-changes")
	if f.stagedErr != nil {
		return nil, f.stagedErr
	}
	if f.staged == nil {
		return &models.ChangeSet{}, nil
	}
	return f.staged, nil
}

func (f *fakeGitService) StageAll(_ context.Context) error {
	f.calls = append(f.calls, "stage-all")
	return f.opErr
}

func (f *fakeGitService) Commit(_ context.Context, message string) error {
	f.calls = append(f.calls, "commit "+message)
	return f.opErr
}

func (f *fakeGitService) CommitMessage(_ context.Context, rev string) (string, error) {
	f.calls = append(f.calls, "commit-message "+rev)
	f.requestedRev = rev
	return f.message, f.messageErr
}

type fakeGenerator struct {
	suggestions []string
	suggestErr  error
	report      string
	reportErr   error
	improved    string
	improveErr  error

	lastKind ai.Kind
}

func (f *fakeGenerator) Suggestions(_ context.Context, _ *models.ChangeSet) ([]string, error) {
	return f.suggestions, f.suggestErr
}

func (f *fakeGenerator) Report(_ context.Context, kind ai.Kind, _ *models.ChangeSet) (string, error) {
	f.lastKind = kind
	return f.report, f.reportErr
}

func (f *fakeGenerator) ImproveMessage(_ context.Context, _ string) (string, error) {
	return f.improved, f.improveErr
}

func rangeSet() *models.ChangeSet {
	return &models.ChangeSet{
		Commits: []models.CommitRecord{
			{ID: "abc1234def", Message: "feat: add login", FilesChanged: []string{"auth.go"}},
		},
		TotalFilesChanged: 1,
	}
}

func stagedSet() *models.ChangeSet {
	return &models.ChangeSet{
		Commits: []models.CommitRecord{
			{ID: models.StagedID, Message: "Staged changes", FilesChanged: []string{"auth.go"}},
		},
		TotalFilesChanged: 1,
	}
}

func TestPRDescriptionMarkdown(t *testing.T) {
	gitSvc := &fakeGitService{commits: rangeSet()}
	gen := &fakeGenerator{report: "## Summary\n\nAdds login."}
	var out bytes.Buffer

	if err := PRDescription(context.Background(), gitSvc, gen, "main", "markdown", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "🔍 Analyzing commits since main...") {
		t.Errorf("missing analyzing line, got %q", output)
	}
	if !strings.Contains(output, "📝 Generating AI-powered PR description...") {
		t.Errorf("missing generating line, got %q", output)
	}
	if !strings.Contains(output, "Adds login.") {
		t.Errorf("missing description body, got %q", output)
	}
	if gen.lastKind != ai.KindPRDescription {
		t.Errorf("report kind = %v, want KindPRDescription", gen.lastKind)
	}
}

func TestPRDescriptionJSON(t *testing.T) {
	gitSvc := &fakeGitService{commits: rangeSet()}
	gen := &fakeGenerator{report: "Line one\nLine two"}
	var out bytes.Buffer

	if err := PRDescription(context.Background(), gitSvc, gen, "main", "json", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	last := lines[len(lines)-1]
	var decoded string
	if err := json.Unmarshal([]byte(last), &decoded); err != nil {
		t.Fatalf("last line is not a JSON string: %v (%q)", err, last)
	}
	if decoded != "Line one\nLine two" {
		t.Errorf("decoded = %q, want the raw description", decoded)
	}
}

func TestPRDescriptionNoCommits(t *testing.T) {
	gitSvc := &fakeGitService{}
	gen := &fakeGenerator{report: "should not appear"}
	var out bytes.Buffer

	if err := PRDescription(context.Background(), gitSvc, gen, "main", "markdown", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "No commits found to analyze.") {
		t.Errorf("missing empty notice, got %q", out.String())
	}
	if strings.Contains(out.String(), "should not appear") {
		t.Error("generator output printed despite empty change set")
	}
}

func TestPRDescriptionGeneratorError(t *testing.T) {
	gitSvc := &fakeGitService{commits: rangeSet()}
	gen := &fakeGenerator{reportErr: errors.New("model unavailable")}
	var out bytes.Buffer

	err := PRDescription(context.Background(), gitSvc, gen, "main", "markdown", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "model unavailable") {
		t.Errorf("error = %v, want wrapped generator error", err)
	}
}

func TestPRDescriptionGitError(t *testing.T) {
	gitSvc := &fakeGitService{commitsErr: errors.New("not a repository")}
	gen := &fakeGenerator{}
	var out bytes.Buffer

	if err := PRDescription(context.Background(), gitSvc, gen, "main", "markdown", &out); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateTests(t *testing.T) {
	gitSvc := &fakeGitService{commits: rangeSet()}
	gen := &fakeGenerator{report: "func TestLogin(t *testing.T) {}"}
	var out bytes.Buffer

	if err := GenerateTests(context.Background(), gitSvc, gen, "main", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "🔍 Analyzing code changes since main...") {
		t.Errorf("missing analyzing line, got %q", output)
	}
	if !strings.Contains(output, "🧪 Generating unit tests...") {
		t.Errorf("missing generating line, got %q", output)
	}
	if !strings.Contains(output, "func TestLogin") {
		t.Errorf("missing tests body, got %q", output)
	}
	if gen.lastKind != ai.KindTests {
		t.Errorf("report kind = %v, want KindTests", gen.lastKind)
	}
}

func TestGenerateTestsNoCommits(t *testing.T) {
	gitSvc := &fakeGitService{}
	gen := &fakeGenerator{}
	var out bytes.Buffer

	if err := GenerateTests(context.Background(), gitSvc, gen, "main", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No commits found to analyze.") {
		t.Errorf("missing empty notice, got %q", out.String())
	}
}

func TestImproveCommitDefaultsToHead(t *testing.T) {
	gitSvc := &fakeGitService{message: "fixed stuff"}
	gen := &fakeGenerator{improved: "fix: resolve session expiry"}
	var out bytes.Buffer

	if err := ImproveCommit(context.Background(), gitSvc, gen, "", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gitSvc.requestedRev != "HEAD" {
		t.Errorf("rev = %q, want HEAD", gitSvc.requestedRev)
	}
	output := out.String()
	if !strings.Contains(output, "📝 Analyzing commit: HEAD") {
		t.Errorf("missing analyzing line, got %q", output)
	}
	if !strings.Contains(output, "Current message: fixed stuff") {
		t.Errorf("missing current message, got %q", output)
	}
	if !strings.Contains(output, "💡 Suggested improved message:") {
		t.Errorf("missing suggestion header, got %q", output)
	}
	if !strings.Contains(output, "fix: resolve session expiry") {
		t.Errorf("missing improved message, got %q", output)
	}
}

func TestImproveCommitExplicitRev(t *testing.T) {
	gitSvc := &fakeGitService{message: "wip"}
	gen := &fakeGenerator{improved: "chore: better"}
	var out bytes.Buffer

	if err := ImproveCommit(context.Background(), gitSvc, gen, "abc1234", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gitSvc.requestedRev != "abc1234" {
		t.Errorf("rev = %q, want abc1234", gitSvc.requestedRev)
	}
}

func TestImproveCommitGeneratorError(t *testing.T) {
	gitSvc := &fakeGitService{message: "wip"}
	gen := &fakeGenerator{improveErr: errors.New("model unavailable")}
	var out bytes.Buffer

	if err := ImproveCommit(context.Background(), gitSvc, gen, "", &out); err == nil {
		t.Fatal("expected error")
	}
}

func TestInteractiveCommitStagesAllWhenAsked(t *testing.T) {
	gitSvc := &fakeGitService{staged: stagedSet()}
	gen := &fakeGenerator{suggestions: []string{"feat: add login"}}
	var out bytes.Buffer

	err := InteractiveCommit(context.Background(), gitSvc, gen, true, strings.NewReader("1\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gitSvc.calls[0] != "stage-all" {
		t.Errorf("calls = %v, want stage-all first", gitSvc.calls)
	}
	if !strings.Contains(out.String(), "📁 Staging all changes...") {
		t.Errorf("missing staging line, got %q", out.String())
	}
}

func TestInteractiveCommitNoStagedChanges(t *testing.T) {
	gitSvc := &fakeGitService{}
	gen := &fakeGenerator{}
	var out bytes.Buffer

	if err := InteractiveCommit(context.Background(), gitSvc, gen, false, strings.NewReader(""), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No staged changes found.") {
		t.Errorf("missing empty notice, got %q", out.String())
	}
	for _, call := range gitSvc.calls {
		if strings.HasPrefix(call, "commit ") {
			t.Errorf("unexpected commit call: %v", gitSvc.calls)
		}
	}
}

func TestInteractiveCommitPicksAndCommits(t *testing.T) {
	gitSvc := &fakeGitService{staged: stagedSet()}
	gen := &fakeGenerator{suggestions: []string{"feat: add login", "fix: session expiry"}}
	var out bytes.Buffer

	err := InteractiveCommit(context.Background(), gitSvc, gen, false, strings.NewReader("2\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	committed := false
	for _, call := range gitSvc.calls {
		if call == "commit fix: session expiry" {
			committed = true
		}
	}
	if !committed {
		t.Errorf("calls = %v, want commit with second suggestion", gitSvc.calls)
	}
	output := out.String()
	if !strings.Contains(output, "1. feat: add login") || !strings.Contains(output, "2. fix: session expiry") {
		t.Errorf("missing numbered suggestions, got %q", output)
	}
	if !strings.Contains(output, "✅ Committed: fix: session expiry") {
		t.Errorf("missing commit confirmation, got %q", output)
	}
}

func TestInteractiveCommitFallbackOnGeneratorFailure(t *testing.T) {
	gitSvc := &fakeGitService{staged: stagedSet()}
	gen := &fakeGenerator{suggestErr: errors.New("model unavailable")}
	var out bytes.Buffer

	err := InteractiveCommit(context.Background(), gitSvc, gen, false, strings.NewReader("1\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	committed := false
	for _, call := range gitSvc.calls {
		if call == "commit feat: add new functionality" {
			committed = true
		}
	}
	if !committed {
		t.Errorf("calls = %v, want commit with first fallback suggestion", gitSvc.calls)
	}
}

func TestInteractiveCommitInvalidSelection(t *testing.T) {
	gitSvc := &fakeGitService{staged: stagedSet()}
	gen := &fakeGenerator{suggestions: []string{"feat: add login"}}
	var out bytes.Buffer

	err := InteractiveCommit(context.Background(), gitSvc, gen, false, strings.NewReader("9\n"), &out)
	if err == nil {
		t.Fatal("expected out-of-range error")
	}
	for _, call := range gitSvc.calls {
		if strings.HasPrefix(call, "commit ") {
			t.Errorf("unexpected commit call: %v", gitSvc.calls)
		}
	}
}

func TestInteractiveCommitNonInteractiveHint(t *testing.T) {
	piped, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer func() { _ = piped.Close() }()

	gitSvc := &fakeGitService{staged: stagedSet()}
	gen := &fakeGenerator{suggestions: []string{"feat: add login"}}
	var out bytes.Buffer

	if err := InteractiveCommit(context.Background(), gitSvc, gen, false, piped, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), `✨ Use one of these suggestions with: git commit -m "your message"`) {
		t.Errorf("missing hint, got %q", out.String())
	}
	for _, call := range gitSvc.calls {
		if strings.HasPrefix(call, "commit ") {
			t.Errorf("unexpected commit call: %v", gitSvc.calls)
		}
	}
}

func TestChangelogToStdout(t *testing.T) {
	gitSvc := &fakeGitService{commits: rangeSet()}
	gen := &fakeGenerator{report: "## 1.2.0\n- Added login"}
	var out bytes.Buffer

	if err := Changelog(context.Background(), gitSvc, gen, "main", "", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "📋 Generating changelog since main...") {
		t.Errorf("missing generating line, got %q", output)
	}
	if !strings.Contains(output, "- Added login") {
		t.Errorf("missing changelog body, got %q", output)
	}
	if gen.lastKind != ai.KindChangelog {
		t.Errorf("report kind = %v, want KindChangelog", gen.lastKind)
	}
}

func TestChangelogToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "CHANGELOG.md")
	gitSvc := &fakeGitService{commits: rangeSet()}
	gen := &fakeGenerator{report: "## 1.2.0\n- Added login"}
	var out bytes.Buffer

	if err := Changelog(context.Background(), gitSvc, gen, "main", target, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "✅ Changelog written to "+target) {
		t.Errorf("missing written notice, got %q", out.String())
	}
	content, err := os.ReadFile(target) // #nosec G304 -- t.TempDir path
	if err != nil {
		t.Fatalf("failed to read changelog: %v", err)
	}
	if string(content) != "## 1.2.0\n- Added login" {
		t.Errorf("content = %q, want the generated changelog", string(content))
	}
}

func TestChangelogNoCommits(t *testing.T) {
	gitSvc := &fakeGitService{}
	gen := &fakeGenerator{}
	var out bytes.Buffer

	if err := Changelog(context.Background(), gitSvc, gen, "main", "", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No commits found to analyze.") {
		t.Errorf("missing empty notice, got %q", out.String())
	}
}

func TestReview(t *testing.T) {
	gitSvc := &fakeGitService{commits: rangeSet()}
	gen := &fakeGenerator{report: "Looks solid, consider more tests."}
	var out bytes.Buffer

	if err := Review(context.Background(), gitSvc, gen, "develop", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "🔍 Performing AI code review since develop...") {
		t.Errorf("missing review line, got %q", output)
	}
	if !strings.Contains(output, "Looks solid") {
		t.Errorf("missing review body, got %q", output)
	}
	if gen.lastKind != ai.KindReview {
		t.Errorf("report kind = %v, want KindReview", gen.lastKind)
	}
}

func TestReviewNoCommits(t *testing.T) {
	gitSvc := &fakeGitService{}
	gen := &fakeGenerator{}
	var out bytes.Buffer

	if err := Review(context.Background(), gitSvc, gen, "main", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No commits found to review.") {
		t.Errorf("missing empty notice, got %q", out.String())
	}
}

func TestReportOutputWrapped(t *testing.T) {
	long := strings.Repeat("wrap ", 40)
	gitSvc := &fakeGitService{commits: rangeSet()}
	gen := &fakeGenerator{report: long}
	var out bytes.Buffer

	if err := Review(context.Background(), gitSvc, gen, "main", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, line := range strings.Split(out.String(), "\n") {
		if len(line) > defaultWrapWidth {
			t.Errorf("line longer than wrap width: %d chars", len(line))
		}
	}
}
