package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the palette preview.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Escape key.Binding
	Copy   key.Binding
	Mode   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy palette")),
		Mode:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "light/dark")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the key bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Copy, k.Mode, k.Quit}
}
