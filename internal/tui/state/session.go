package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
)

// startSearch begins matchmaking unless a search or session is already open.
func (m *Model) startSearch(kind matchmaking.Kind) tea.Cmd {
	if m.search != nil || m.matched != nil {
		return nil
	}
	m.search = m.backend.StartSearch(m.ctx, kind)
	m.waiting = m.search.Snapshot()
	return waitForSearch(m.search)
}

// cancelSearch stops the active search. It is safe with no search.
func (m *Model) cancelSearch() {
	if m.search == nil {
		return
	}
	m.search.Cancel()
	m.search = nil
}

// leaveSession tears down any search, match result or room without
// confirmation. Used when the tab loses focus or the program quits.
func (m *Model) leaveSession() {
	m.cancelSearch()
	m.matched = nil
	m.closeRoom()
}

func (m *Model) handleSearchEvent(ev matchmaking.Event) (tea.Model, tea.Cmd) {
	if m.search == nil || ev.SearchID() != m.search.ID() {
		return m, nil
	}

	switch ev := ev.(type) {
	case matchmaking.TickEvent:
		m.waiting = ev.Snapshot
		return m, waitForSearch(m.search)
	case matchmaking.MatchEvent:
		session := ev.Session
		m.matched = &session
		m.search.Cancel()
		m.search = nil
		m.unread = m.backend.RecordMatch(m.ctx, session)
		if session.Kind == matchmaking.KindChat {
			m.openRoom(session)
			return m, m.input.Focus()
		}
		return m, nil
	case matchmaking.FailedEvent:
		m.search.Cancel()
		m.search = nil
		return m, m.setStatus("매칭에 실패했습니다: " + ev.Err.Error())
	}
	return m, nil
}

func (m *Model) openRoom(session matchmaking.SessionParams) {
	m.room = m.backend.OpenRoom(session)
	m.input.Reset()
}

func (m *Model) closeRoom() {
	if m.room == nil {
		return
	}
	m.room = nil
	m.input.Blur()
	m.input.Reset()
}

// handleRoomKey handles input while a chat room is open, including the
// exit confirmation for random chats.
func (m *Model) handleRoomKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.room.State() == matchmaking.RoomExitRequested {
		switch msg.String() {
		case "y", "enter":
			m.room.ConfirmExit()
			m.matched = nil
			m.closeRoom()
			return m, m.setStatus("대화방을 나왔습니다")
		case "n", "esc":
			m.room.DismissExit()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		if m.room.RequestExit() == matchmaking.ExitNow {
			m.matched = nil
			m.closeRoom()
		}
		return m, nil
	case tea.KeyEnter:
		if m.room.Send(m.input.Value()) {
			m.input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
