package state

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
	"github.com/cristianoliveira/pairup/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	p := m.palette
	var s strings.Builder

	s.WriteString(p.Title.Render("pairup"))
	s.WriteString("\n")
	s.WriteString(render.Tabs(p, tabNames, int(m.tab), m.unread, int(TabNotifications)))
	s.WriteString("\n\n")
	s.WriteString(m.body())
	s.WriteString("\n\n")
	if m.status != "" {
		s.WriteString(p.Warning.Render(m.status))
		s.WriteString("\n")
	}
	s.WriteString(p.Muted.Render(m.help()))
	return s.String()
}

func (m *Model) body() string {
	p := m.palette
	if m.room != nil {
		return m.roomView()
	}

	switch m.tab {
	case TabChats:
		rows := make([]string, 0, len(m.chats))
		for i, c := range m.chats {
			rows = append(rows, render.ChatRow(p, c.ChatThread, c.Badge, i == m.cursor, m.width))
		}
		return strings.Join(rows, "\n")
	case TabNotifications:
		rows := make([]string, 0, len(m.notifications))
		for i, n := range m.notifications {
			rows = append(rows, render.NotificationRow(p, n, i == m.cursor, m.width))
		}
		return strings.Join(rows, "\n")
	case TabRanking:
		rows := make([]string, 0, len(m.ranking))
		for i, u := range m.ranking {
			rows = append(rows, render.RankRow(p, u.RankedUser, u.RequestPending, i == m.cursor, m.width))
		}
		return strings.Join(rows, "\n")
	case TabRandomChat, TabRandomVideo:
		return m.matchView()
	case TabSettings:
		rows := make([]string, 0, len(settingRows))
		for i, r := range settingRows {
			rows = append(rows, render.Toggle(p, r.label, r.value(m), i == m.cursor))
		}
		return strings.Join(rows, "\n")
	}
	return ""
}

func (m *Model) matchView() string {
	p := m.palette
	switch {
	case m.matched != nil:
		summary := render.MatchSummary(p, *m.matched)
		if m.matched.Kind == matchmaking.KindVideo {
			summary += "\n\n" + p.Muted.Render("영상통화 연결됨 · esc: 종료")
		}
		return summary
	case m.search != nil:
		return render.Waiting(p, m.waiting)
	case m.tab == TabRandomVideo:
		return p.Muted.Render("enter: 랜덤 영상통화 시작")
	default:
		return p.Muted.Render("enter: 랜덤 채팅 시작")
	}
}

func (m *Model) roomView() string {
	p := m.palette
	params := m.room.Params()

	var s strings.Builder
	if params.IsRandom && m.matched != nil {
		s.WriteString(render.MatchSummary(p, params))
	} else {
		s.WriteString(p.Title.Render("[" + params.Avatar + "] " + params.PartnerName))
	}
	s.WriteString("\n\n")
	s.WriteString(render.Transcript(p, params.PartnerName, m.room.Messages()))
	s.WriteString("\n\n")
	s.WriteString(m.input.View())

	if m.room.State() == matchmaking.RoomExitRequested {
		dialog := p.Dialog.Render("대화를 종료하시겠습니까?\ny: 나가기  n: 계속하기")
		s.WriteString("\n\n")
		s.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dialog))
	}
	return s.String()
}

func (m *Model) help() string {
	if m.room != nil {
		return "enter: 보내기 · esc: 나가기 · ctrl+c: 종료"
	}
	switch m.tab {
	case TabChats:
		return "↑/↓: 이동 · enter: 열기 · tab: 다음 · q: 종료"
	case TabNotifications:
		return "r: 모두 읽음 · tab: 다음 · q: 종료"
	case TabRanking:
		return "↑/↓: 이동 · enter: 친구 요청 · tab: 다음 · q: 종료"
	case TabSettings:
		return "↑/↓: 이동 · enter: 변경 · tab: 다음 · q: 종료"
	default:
		return "enter: 시작 · esc: 취소 · tab: 다음 · q: 종료"
	}
}
