package editor

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the editor key bindings.
type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	AddRow       key.Binding
	RemoveRow    key.Binding
	AddColumn    key.Binding
	RemoveColumn key.Binding
	StarRow      key.Binding
	StarColumn   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddRow, k.AddColumn, k.StarRow, k.StarColumn, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.AddRow, k.RemoveRow, k.AddColumn, k.RemoveColumn},
		{k.StarRow, k.StarColumn, k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next row"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add row"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove row"),
		),
		AddColumn: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "add column"),
		),
		RemoveColumn: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "remove column"),
		),
		StarRow: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "star row"),
		),
		StarColumn: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "star column"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
