package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Clients      key.Binding
	Transactions key.Binding

	// Actions
	Select key.Binding
	New    key.Binding
	Save   key.Binding

	// Movement
	Up        key.Binding
	Down      key.Binding
	NextField key.Binding
	PrevField key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Clients:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clients")),
	Transactions: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "transactions")),
	Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	New:          key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Save:         key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NextField:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
}
