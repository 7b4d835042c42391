// Package state implements the Bubble Tea model for the pairup TUI.
package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pairup/internal/bus"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
)

const statusClearDuration = 4 * time.Second

// searchEventMsg carries one event from the active search.
type searchEventMsg struct {
	event matchmaking.Event
}

// searchClosedMsg is sent when a search's event stream ends.
type searchClosedMsg struct {
	id string
}

// themeChangedMsg is sent when the bus delivers a theme change.
type themeChangedMsg struct {
	event bus.Event
}

// clearStatusMsg clears the status line if it has not changed since.
type clearStatusMsg struct {
	seq int
}

// waitForSearch receives the next event of s.
func waitForSearch(s *matchmaking.Search) tea.Cmd {
	id := s.ID()
	events := s.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return searchClosedMsg{id: id}
		}
		return searchEventMsg{event: ev}
	}
}

// waitForTheme receives the next theme change forwarded from the bus.
func waitForTheme(ch <-chan bus.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return themeChangedMsg{event: ev}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusClearDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
