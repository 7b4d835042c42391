package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pairup/internal/engagement"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
)

// handleKey routes key input. An open room or pending exit confirmation
// takes precedence over tab navigation.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.room != nil {
		return m.handleRoomKey(msg)
	}
	if m.search != nil && m.matched == nil {
		if msg.Type == tea.KeyEsc {
			m.cancelSearch()
			return m, m.setStatus("매칭을 취소했습니다")
		}
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "tab", "right", "l":
		return m, m.focus((m.tab + 1) % tabCount)
	case "shift+tab", "left", "h":
		return m, m.focus((m.tab + tabCount - 1) % tabCount)
	case "1", "2", "3", "4", "5", "6":
		return m, m.focus(Tab(msg.Runes[0] - '1'))
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "esc":
		if m.matched != nil {
			m.leaveSession()
		}
		return m, nil
	case "enter", " ":
		return m.activate()
	case "r":
		if m.tab == TabNotifications {
			m.backend.ResetUnread(m.ctx)
			m.unread = 0
			return m, m.setStatus("모든 알림을 읽음으로 표시했습니다")
		}
	}
	return m, nil
}

// activate performs the current tab's primary action.
func (m *Model) activate() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabChats:
		return m.openChat()
	case TabRanking:
		return m.sendFriendRequest()
	case TabRandomChat:
		return m, m.startSearch(matchmaking.KindChat)
	case TabRandomVideo:
		return m, m.startSearch(matchmaking.KindVideo)
	case TabSettings:
		return m, m.toggleSetting(m.cursor)
	}
	return m, nil
}

func (m *Model) openChat() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.chats) {
		return m, nil
	}
	chat := m.chats[m.cursor]
	if err := m.backend.MarkChatRead(m.ctx, chat.ID); err != nil {
		return m, m.setStatus(err.Error())
	}
	m.chats = m.backend.Chats(m.ctx)
	m.openRoom(matchmaking.SessionParams{
		Kind:        matchmaking.KindChat,
		PartnerName: chat.Name,
		Avatar:      chat.Avatar,
	})
	return m, m.input.Focus()
}

func (m *Model) sendFriendRequest() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.ranking) {
		return m, nil
	}
	user := m.ranking[m.cursor]
	_, res, err := m.backend.SendFriendRequest(m.ctx, user.Name, user.Avatar)
	if err != nil {
		return m, m.setStatus(err.Error())
	}
	m.ranking = m.backend.Ranking(m.ctx)
	if res == engagement.AlreadyPending {
		return m, m.setStatus(fmt.Sprintf("%s님에게 이미 친구 요청을 보냈습니다", user.Name))
	}
	return m, m.setStatus(fmt.Sprintf("%s님에게 친구 요청을 보냈습니다", user.Name))
}
