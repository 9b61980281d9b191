// Package utils collects small helpers shared by the CLI and the TUI.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// ExpandPath resolves a leading ~ or ~user-less home reference in path.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// IsTerminal reports whether the given file descriptor is attached to a TTY.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// TerminalWidth returns the column count of the terminal behind fd, or the
// fallback when fd is not a terminal or the size cannot be read.
func TerminalWidth(fd uintptr, fallback int) int {
	if !term.IsTerminal(int(fd)) {
		return fallback
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// Truncate shortens s to max runes, appending … when something was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// MaskSecret hides all but the first and last three characters of a
// credential so configuration can be displayed without leaking it.
func MaskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:3] + strings.Repeat("*", 6) + s[len(s)-3:]
}
