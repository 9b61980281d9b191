// Package screen provides the modal and full-frame views layered over the
// main menu by the screen manager.
package screen

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen represents a view that can handle input and render itself.
type Screen interface {
	// Update processes a key message and returns the updated screen and any command.
	// Returning nil for the Screen signals that this screen should be closed.
	Update(msg tea.KeyMsg) (Screen, tea.Cmd)

	// View renders the screen's content.
	View() string

	// Type returns the screen's type identifier.
	Type() Type
}

// Type identifies the kind of screen being displayed.
type Type int

// Screen type constants.
const (
	TypeNone Type = iota
	TypeFiles
	TypeSuggest
	TypeDisplay
	TypeInput
	TypeListSelect
	TypeConfirm
	TypeHelp
	TypeLoading
)

// String returns a human-readable name for the screen type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeFiles:
		return "files"
	case TypeSuggest:
		return "suggest"
	case TypeDisplay:
		return "display"
	case TypeInput:
		return "input"
	case TypeListSelect:
		return "list-select"
	case TypeConfirm:
		return "confirm"
	case TypeHelp:
		return "help"
	case TypeLoading:
		return "loading"
	default:
		return "unknown"
	}
}
