package screen

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazycommit/internal/theme"
)

func testSuggestions() []string {
	return []string{
		"feat: add new functionality",
		"fix: resolve issue",
		"chore: update code",
	}
}

func TestSuggestScreenCommitsSelected(t *testing.T) {
	s := NewSuggestScreen(testSuggestions(), theme.Dracula())
	s.Resize(80, 24)

	var committed string
	s.OnCommit = func(message string) tea.Cmd {
		committed = message
		return nil
	}

	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if updated != nil {
		t.Error("expected the picker to close after committing")
	}
	if committed != "fix: resolve issue" {
		t.Errorf("expected the highlighted suggestion, got %q", committed)
	}
}

func TestSuggestScreenEscCancels(t *testing.T) {
	s := NewSuggestScreen(testSuggestions(), theme.Dracula())

	canceled := false
	s.OnCancel = func() tea.Cmd { canceled = true; return nil }

	updated, _ := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if updated != nil {
		t.Error("expected nil screen after esc")
	}
	if !canceled {
		t.Error("expected OnCancel to be called")
	}
}

func TestSuggestScreenNavigationWraps(t *testing.T) {
	s := NewSuggestScreen(testSuggestions(), theme.Dracula())
	s.Resize(80, 24)

	s.Update(tea.KeyMsg{Type: tea.KeyUp})
	if msg, _ := s.Selected(); msg != "chore: update code" {
		t.Errorf("expected wrap to last suggestion, got %q", msg)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	if msg, _ := s.Selected(); msg != "feat: add new functionality" {
		t.Errorf("expected wrap back to first suggestion, got %q", msg)
	}
}

func TestSuggestScreenIgnoresQuitKey(t *testing.T) {
	s := NewSuggestScreen(testSuggestions(), theme.Dracula())

	updated, cmd := s.Update(keyMsg("q"))
	if updated != s || cmd != nil {
		t.Error("expected 'q' to be ignored in the picker")
	}
}

func TestSuggestScreenEnterOnEmptyListStaysOpen(t *testing.T) {
	s := NewSuggestScreen(nil, theme.Dracula())

	var committed bool
	s.OnCommit = func(string) tea.Cmd { committed = true; return nil }

	updated, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if updated == nil {
		t.Error("expected the picker to stay open with nothing to commit")
	}
	if committed {
		t.Error("expected no commit on an empty list")
	}
}

func TestSuggestScreenViewNumbersSuggestions(t *testing.T) {
	s := NewSuggestScreen(testSuggestions(), theme.Dracula())
	s.Resize(80, 24)

	view := s.View()
	for _, want := range []string{"1. feat: add new functionality", "2. fix: resolve issue", "3. chore: update code"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
