package ui

import (
	"github.com/atomicstack/tui-markup-renderer/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForTick(t *backend.Ticker) tea.Cmd {
	return func() tea.Msg {
		tick, ok := <-t.Ticks()
		if !ok {
			return tickerDoneMsg{}
		}
		return tickMsg{tick: tick}
	}
}

type tickMsg struct {
	tick backend.Tick
}

type tickerDoneMsg struct{}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	t, ok := msg.(tickMsg)
	if !ok {
		return nil
	}
	if m.onTick != nil && m.apply(m.onTick(t.tick, m.store.Snapshot())) {
		return tea.Quit
	}
	if m.ticker == nil {
		return nil
	}
	return waitForTick(m.ticker)
}

func (m *Model) handleTickerDoneMsg(tea.Msg) tea.Cmd {
	m.ticker = nil
	return nil
}
