package picker

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keyboard bindings of the timeline panel
type KeyMap struct {
	Earlier key.Binding
	Later   key.Binding
	Shrink  key.Binding
	Grow    key.Binding
	Extend  key.Binding
	Trim    key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Earlier: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "earlier")),
		Later:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "later")),
		Shrink:  key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "shrink")),
		Grow:    key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "grow")),
		Extend:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "start earlier")),
		Trim:    key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "start later")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Earlier, k.Later, k.Shrink, k.Grow}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Earlier, k.Later},
		{k.Shrink, k.Grow},
		{k.Extend, k.Trim},
	}
}
