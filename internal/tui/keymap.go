package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the browser.
type KeyMap struct {
	Invoke key.Binding
	Copy   key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Invoke: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "invoke variant"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy output"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear output"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Invoke, k.Copy, k.Clear, k.Quit}
}
