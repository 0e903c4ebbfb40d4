package builder

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Toggle      key.Binding
	Edit        key.Binding
	Frame       key.Binding
	CopyClasses key.Binding
	CopySnippet key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Gallery     key.Binding
	Reset       key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Edit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit / copy")),
		Frame:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "rest/hover/press")),
		CopyClasses: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy classes")),
		CopySnippet: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy snippet")),
		ScrollUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll export")),
		ScrollDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll export")),
		Gallery:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gallery")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset to start")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Toggle, k.CopyClasses, k.CopySnippet, k.Gallery, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Edit, k.Frame, k.Reset},
		{k.CopyClasses, k.CopySnippet, k.ScrollUp, k.ScrollDown},
		{k.Gallery, k.Help, k.Back, k.Quit},
	}
}
