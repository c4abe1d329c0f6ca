package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the global bindings. Panel-local keys are matched in the
// panels themselves.
type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Back     key.Binding
	Forward  key.Binding
	Focus    key.Binding
	Escape   key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
	Top      key.Binding
	Theme    key.Binding
	Menu     key.Binding
	Palette  key.Binding
	Cards    key.Binding
	Layout   key.Binding
	Projects key.Binding
	Contact  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:     key.NewBinding(key.WithKeys("up", "left"), key.WithHelp("↑/←", "previous section")),
		Next:     key.NewBinding(key.WithKeys("down", "right"), key.WithHelp("↓/→", "next section")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first section")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last section")),
		Back:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "back")),
		Forward:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "forward")),
		Focus:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "interact")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave / close")),
		ScrollUp: key.NewBinding(key.WithKeys("k", "pgup"), key.WithHelp("k/pgup", "scroll up")),
		ScrollDn: key.NewBinding(key.WithKeys("j", "pgdown"), key.WithHelp("j/pgdn", "scroll down")),
		Top:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "back to top")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Palette:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump to section")),
		Cards:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy contact info")),
		Layout:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "continuous layout")),
		Projects: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "view projects")),
		Contact:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "get in touch")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Focus, k.Theme, k.Palette, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last, k.Back, k.Forward},
		{k.ScrollUp, k.ScrollDn, k.Top, k.Layout, k.Menu, k.Palette},
		{k.Focus, k.Escape, k.Theme, k.Cards, k.Help, k.Quit},
	}
}
