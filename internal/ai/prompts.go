package ai

import (
	"fmt"
	"strings"

	"github.com/chmouel/lazycommit/internal/models"
)

// commitsSummary renders one "- <short-id>: <message>" line per commit.
func commitsSummary(set *models.ChangeSet) string {
	lines := make([]string, 0, len(set.Commits))
	for i := range set.Commits {
		c := &set.Commits[i]
		lines = append(lines, fmt.Sprintf("- %s: %s", c.ShortID(), c.Message))
	}
	return strings.Join(lines, "\n")
}

// filesSummary renders the distinct changed files as a bullet list.
func filesSummary(set *models.ChangeSet) string {
	files := set.DistinctFiles()
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, "- "+f)
	}
	return strings.Join(lines, "\n")
}

// codeChanges renders each commit with its full diff.
func codeChanges(set *models.ChangeSet) string {
	blocks := make([]string, 0, len(set.Commits))
	for i := range set.Commits {
		c := &set.Commits[i]
		blocks = append(blocks, fmt.Sprintf("Commit %s: %s\nDiff:\n%s", c.ShortID(), c.Message, c.Patch))
	}
	return strings.Join(blocks, "\n\n")
}

// stagedChanges renders each record as its file list plus diff.
func stagedChanges(set *models.ChangeSet) string {
	blocks := make([]string, 0, len(set.Commits))
	for i := range set.Commits {
		c := &set.Commits[i]
		blocks = append(blocks, fmt.Sprintf("Files: %s\nDiff:\n%s", strings.Join(c.FilesChanged, ", "), c.Patch))
	}
	return strings.Join(blocks, "\n\n")
}

func suggestionsPrompt(set *models.ChangeSet) (system, user string) {
	system = "You are an expert software engineer helping to write commit messages. Suggest 3 different commit messages following conventional commit format."
	user = fmt.Sprintf(
		"Based on the following staged changes, suggest 3 different commit messages:\n\n%s\n\nProvide 3 options:\n1. A concise, single-line commit message\n2. A more descriptive commit message with body\n3. A detailed commit message with multiple paragraphs if needed\n\nEach suggestion should follow conventional commit format (feat, fix, docs, style, refactor, test, chore).",
		stagedChanges(set))
	return system, user
}

func prDescriptionPrompt(set *models.ChangeSet) (system, user string) {
	system = "You are an expert software engineer creating a pull request description. Generate a comprehensive PR description in markdown format that includes a clear title, summary of changes, what was modified and why, any breaking changes, testing instructions, and screenshots if relevant."
	user = fmt.Sprintf(
		"Based on the following commit information, generate a comprehensive PR description:\n\nCommits:\n%s\n\nFiles changed:\n%s\n\nTotal files changed: %d\n\nPlease create a professional PR description with proper markdown formatting.",
		commitsSummary(set), filesSummary(set), set.TotalFilesChanged)
	return system, user
}

func testsPrompt(set *models.ChangeSet, framework string) (system, user string) {
	system = "You are an expert software engineer writing comprehensive unit tests. Generate well-structured unit tests with proper test cases, edge cases, error handling, and mocking for external dependencies."
	user = fmt.Sprintf(
		"Based on the following code changes, generate comprehensive unit tests using the %s framework:\n\n%s\n\nPlease generate:\n1. Unit tests for all new/modified functions\n2. Edge cases and error handling tests\n3. Integration tests if applicable\n4. Mocking for external dependencies\n5. Clear test descriptions and assertions\n\nFormat the tests as proper code blocks with syntax highlighting.",
		framework, codeChanges(set))
	return system, user
}

func changelogPrompt(set *models.ChangeSet) (system, user string) {
	system = "You are an expert software engineer creating a changelog. Generate a professional changelog in markdown format following Keep a Changelog standards."
	user = fmt.Sprintf(
		"Based on the following commits, generate a professional changelog:\n\n%s\n\nPlease create a changelog that includes:\n1. A clear version header\n2. Categorized changes (Added, Changed, Fixed, Removed, etc.)\n3. Breaking changes section if applicable\n4. Contributors if available\n5. Links to issues/PRs if mentioned in commits\n\nFormat as proper markdown following Keep a Changelog format.",
		commitsSummary(set))
	return system, user
}

func reviewPrompt(set *models.ChangeSet) (system, user string) {
	system = "You are an expert software engineer performing a code review. Provide comprehensive feedback on code quality, potential bugs, performance, security, maintainability, and testing."
	user = fmt.Sprintf(
		"Please review the following code changes and provide feedback:\n\n%s\n\nPlease review and provide feedback on:\n1. Code quality and best practices\n2. Potential bugs or issues\n3. Performance considerations\n4. Security concerns\n5. Maintainability and readability\n6. Testing coverage\n7. Documentation needs\n\nFormat your review as constructive feedback with specific suggestions for improvement.",
		codeChanges(set))
	return system, user
}

func improvePrompt(message string) (system, user string) {
	system = "You are an expert software engineer helping to improve commit messages. Provide an improved version that follows conventional commit format with imperative mood, clear subject line, and proper body if needed."
	user = fmt.Sprintf(
		"The current commit message is: \"%s\"\n\nPlease provide an improved version that follows conventional commit format:\n- Use imperative mood (\"Add feature\" not \"Added feature\")\n- Keep the subject line under 50 characters\n- Use the body to explain what and why, not how\n- Reference issues if applicable\n\nProvide only the improved commit message, no additional commentary.",
		message)
	return system, user
}
