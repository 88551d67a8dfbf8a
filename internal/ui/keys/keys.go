package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the application understands. The first three
// are the reserved tab chords; they are claimed by the tab dispatch before
// any pane sees the key.
type KeyMap struct {
	NewTab   key.Binding
	CloseTab key.Binding
	NextTab  key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding

	Help key.Binding
	Quit key.Binding
}

var Keys = &KeyMap{
	NewTab: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "new tab"),
	),
	CloseTab: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("ctrl+w", "close tab"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	GotoTop: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	GotoBottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) TabBindings() []key.Binding {
	return []key.Binding{
		k.NewTab,
		k.CloseTab,
		k.NextTab,
	}
}

func (k KeyMap) PaneBindings() []key.Binding {
	return []key.Binding{
		k.ScrollUp,
		k.ScrollDown,
		k.GotoTop,
		k.GotoBottom,
	}
}

func (k KeyMap) ShortBindings() []key.Binding {
	return []key.Binding{
		k.NewTab,
		k.CloseTab,
		k.NextTab,
		k.ScrollUp,
		k.ScrollDown,
		k.Quit,
	}
}
