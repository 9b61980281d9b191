// Package cli implements the one-shot subcommand flows that run the
// git and AI collaborators without launching the TUI.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/chmouel/lazycommit/internal/ai"
	"github.com/chmouel/lazycommit/internal/git"
	"github.com/chmouel/lazycommit/internal/models"
	"github.com/chmouel/lazycommit/internal/utils"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultWrapWidth = 100
	outputFilePerms  = 0o600
)

// gitService is the slice of the git backend the one-shot flows need.
type gitService interface {
	Commits(ctx context.Context, base string) (*models.ChangeSet, error)
	StagedChanges(ctx context.Context) (*models.ChangeSet, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	CommitMessage(ctx context.Context, rev string) (string, error)
}

var _ gitService = (*git.Service)(nil)

// wrapFor wraps report text to the terminal width when out is a
// terminal, or to a fixed width otherwise.
func wrapFor(out io.Writer, text string) string {
	width := defaultWrapWidth
	if f, ok := out.(*os.File); ok && utils.IsTerminal(f.Fd()) {
		width = utils.TerminalWidth(f.Fd(), defaultWrapWidth)
	}
	return wordwrap.String(text, width)
}

// PRDescription prints an AI-generated pull-request description for the
// commits between base and HEAD. With format "json" the description is
// emitted as a JSON-encoded string instead of wrapped markdown.
func PRDescription(ctx context.Context, gitSvc gitService, gen ai.Generator, base, format string, out io.Writer) error {
	fmt.Fprintf(out, "🔍 Analyzing commits since %s...\n", base)

	set, err := gitSvc.Commits(ctx, base)
	if err != nil {
		return err
	}
	if set.Empty() {
		fmt.Fprintln(out, "No commits found to analyze.")
		return nil
	}

	fmt.Fprintln(out, "📝 Generating AI-powered PR description...")
	description, err := gen.Report(ctx, ai.KindPRDescription, set)
	if err != nil {
		return fmt.Errorf("generate PR description: %w", err)
	}

	if format == "json" {
		encoded, err := json.Marshal(description)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	fmt.Fprintf(out, "\n%s\n", wrapFor(out, description))
	return nil
}

// GenerateTests prints AI-generated unit tests covering the commits
// between base and HEAD. The test framework is configured on the
// generator by the caller.
func GenerateTests(ctx context.Context, gitSvc gitService, gen ai.Generator, base string, out io.Writer) error {
	fmt.Fprintf(out, "🔍 Analyzing code changes since %s...\n", base)

	set, err := gitSvc.Commits(ctx, base)
	if err != nil {
		return err
	}
	if set.Empty() {
		fmt.Fprintln(out, "No commits found to analyze.")
		return nil
	}

	fmt.Fprintln(out, "🧪 Generating unit tests...")
	tests, err := gen.Report(ctx, ai.KindTests, set)
	if err != nil {
		return fmt.Errorf("generate tests: %w", err)
	}

	fmt.Fprintf(out, "\n%s\n", wrapFor(out, tests))
	return nil
}

// ImproveCommit prints an AI-improved version of the given commit's
// message. An empty rev analyzes HEAD.
func ImproveCommit(ctx context.Context, gitSvc gitService, gen ai.Generator, rev string, out io.Writer) error {
	if rev == "" {
		rev = "HEAD"
	}

	message, err := gitSvc.CommitMessage(ctx, rev)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "📝 Analyzing commit: %s\n", rev)
	fmt.Fprintf(out, "Current message: %s\n", message)

	improved, err := gen.ImproveMessage(ctx, message)
	if err != nil {
		return fmt.Errorf("improve commit message: %w", err)
	}

	fmt.Fprintln(out, "\n💡 Suggested improved message:")
	fmt.Fprintln(out, wrapFor(out, improved))
	return nil
}

// InteractiveCommit generates commit-message suggestions for the staged
// changes and, when in can serve a prompt, lets the user pick one to
// commit with. Without a promptable input it prints the suggestions and
// a hint instead.
func InteractiveCommit(ctx context.Context, gitSvc gitService, gen ai.Generator, stageAll bool, in io.Reader, out io.Writer) error {
	if stageAll {
		fmt.Fprintln(out, "📁 Staging all changes...")
		if err := gitSvc.StageAll(ctx); err != nil {
			return err
		}
	}

	set, err := gitSvc.StagedChanges(ctx)
	if err != nil {
		return err
	}
	if set.Empty() {
		fmt.Fprintln(out, "No staged changes found.")
		return nil
	}

	fmt.Fprintln(out, "🤖 Generating commit message suggestions...")
	suggestions, err := gen.Suggestions(ctx, set)
	if err != nil || len(suggestions) == 0 {
		suggestions = ai.FallbackSuggestions()
	}

	fmt.Fprintln(out, "\n💡 Suggested commit messages:")
	for i, suggestion := range suggestions {
		fmt.Fprintf(out, "%d. %s\n", i+1, suggestion)
	}

	if !promptable(in) {
		fmt.Fprintln(out, "\n✨ Use one of these suggestions with: git commit -m \"your message\"")
		return nil
	}

	message, err := SelectSuggestion(suggestions, in, out)
	if err != nil {
		return err
	}
	if err := gitSvc.Commit(ctx, message); err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Committed: %s\n", message)
	return nil
}

// Changelog prints an AI-generated changelog for the commits between
// base and HEAD, or writes it to output when given.
func Changelog(ctx context.Context, gitSvc gitService, gen ai.Generator, base, output string, out io.Writer) error {
	fmt.Fprintf(out, "📋 Generating changelog since %s...\n", base)

	set, err := gitSvc.Commits(ctx, base)
	if err != nil {
		return err
	}
	if set.Empty() {
		fmt.Fprintln(out, "No commits found to analyze.")
		return nil
	}

	changelog, err := gen.Report(ctx, ai.KindChangelog, set)
	if err != nil {
		return fmt.Errorf("generate changelog: %w", err)
	}

	if output != "" {
		path := output
		if expanded, err := utils.ExpandPath(output); err == nil {
			path = expanded
		}
		if err := os.WriteFile(path, []byte(changelog), outputFilePerms); err != nil {
			return fmt.Errorf("write changelog: %w", err)
		}
		fmt.Fprintf(out, "✅ Changelog written to %s\n", output)
		return nil
	}

	fmt.Fprintf(out, "\n%s\n", wrapFor(out, changelog))
	return nil
}

// Review prints an AI code review of the commits between base and HEAD.
func Review(ctx context.Context, gitSvc gitService, gen ai.Generator, base string, out io.Writer) error {
	fmt.Fprintf(out, "🔍 Performing AI code review since %s...\n", base)

	set, err := gitSvc.Commits(ctx, base)
	if err != nil {
		return err
	}
	if set.Empty() {
		fmt.Fprintln(out, "No commits found to review.")
		return nil
	}

	review, err := gen.Report(ctx, ai.KindReview, set)
	if err != nil {
		return fmt.Errorf("generate review: %w", err)
	}

	fmt.Fprintf(out, "\n%s\n", wrapFor(out, review))
	return nil
}
