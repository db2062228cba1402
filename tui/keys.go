package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Up      key.Binding
	Down    key.Binding
	P1      key.Binding
	P2      key.Binding
	P3      key.Binding
	NoSort  key.Binding
	Details key.Binding
	Close   key.Binding
	Buy     key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next column")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev column")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		P1:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "P1 recent")),
		P2:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "P2 mcap")),
		P3:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "P3 volume")),
		NoSort:  key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "unsorted")),
		Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Buy:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "buy")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Down, k.P1, k.P2, k.P3, k.NoSort, k.Details, k.Buy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Up, k.Down},
		{k.P1, k.P2, k.P3, k.NoSort},
		{k.Details, k.Close, k.Buy, k.Quit},
	}
}
