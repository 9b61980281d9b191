package app

import "testing"

func TestDeviconForName(t *testing.T) {
	if deviconForName("main.go", false) == "" {
		t.Error("expected an icon for a .go file")
	}
	if deviconForName("internal", true) == "" {
		t.Error("expected a directory icon")
	}
	if deviconForName("", false) != "" {
		t.Error("expected no icon for an empty name")
	}
}

func TestIconWithSpace(t *testing.T) {
	if got := iconWithSpace(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := iconWithSpace("X"); got != "X " {
		t.Errorf("expected trailing space, got %q", got)
	}
}
