package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Commit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate"),
		),
	}
}

// handleKeyMsg moves focus or commits the focused node, then hands the key
// to the caller handler with the state as it stands after the commit.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Next):
		m.focus.Advance()
	case key.Matches(keyMsg, m.keys.Prev):
		m.focus.Retreat()
	case key.Matches(keyMsg, m.keys.Commit):
		if m.commit() {
			return tea.Quit
		}
	}
	if m.apply(m.bus.Handle(keyMsg, m.store.Snapshot())) {
		return tea.Quit
	}
	return nil
}

func (m *Model) commit() bool {
	node := m.focus.CurrentNode()
	if node == nil {
		return false
	}
	return m.apply(m.bus.Commit(node, m.store.Snapshot()))
}
