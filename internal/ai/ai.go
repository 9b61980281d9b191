// Package ai generates commit messages, PR descriptions, changelogs,
// code reviews and test suggestions from change sets through an
// OpenAI-compatible chat completion endpoint.
package ai

import (
	"context"
	"strings"

	"github.com/chmouel/lazycommit/internal/models"
)

// Kind selects which report a Generator produces.
type Kind int

const (
	// KindPRDescription asks for a markdown pull-request description.
	KindPRDescription Kind = iota
	// KindTests asks for unit tests covering the changes.
	KindTests
	// KindChangelog asks for a Keep-a-Changelog style changelog.
	KindChangelog
	// KindReview asks for a code review of the changes.
	KindReview
)

func (k Kind) String() string {
	switch k {
	case KindPRDescription:
		return "pr-description"
	case KindTests:
		return "tests"
	case KindChangelog:
		return "changelog"
	case KindReview:
		return "review"
	}
	return "unknown"
}

// Generator is the AI collaborator surface the application depends on.
type Generator interface {
	// Suggestions proposes commit messages for the given change set.
	Suggestions(ctx context.Context, set *models.ChangeSet) ([]string, error)

	// Report produces a free-form text report of the given kind.
	Report(ctx context.Context, kind Kind, set *models.ChangeSet) (string, error)

	// ImproveMessage rewrites an existing commit message.
	ImproveMessage(ctx context.Context, message string) (string, error)
}

// FallbackSuggestions is the canned list used when suggestion
// generation fails or yields nothing.
func FallbackSuggestions() []string {
	return []string{
		"feat: add new functionality",
		"fix: resolve issue",
		"chore: update code",
	}
}

// ParseSuggestions splits a model response into one suggestion per
// non-empty trimmed line.
func ParseSuggestions(response string) []string {
	var suggestions []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			suggestions = append(suggestions, line)
		}
	}
	return suggestions
}
