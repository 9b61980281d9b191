package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the main-menu keybindings. Screens layered above the
// menu handle their own keys; quit and force-quit are honored even
// while a worker is outstanding.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Refresh   key.Binding
	Files     key.Binding
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Files:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "files")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}

// shortHelp lists the bindings shown in the menu footer, in order.
func (k KeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Enter, k.Files, k.Refresh, k.Help, k.Quit}
}
