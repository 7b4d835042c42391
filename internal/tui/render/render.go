package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pairup/internal/catalog"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
)

const (
	nameWidth    = 10
	timeWidth    = 10
	minLineWidth = 40
)

// Tabs renders the tab bar. The unread count is shown next to the
// notifications tab when positive.
func Tabs(p Palette, names []string, active, unread, notificationsTab int) string {
	parts := make([]string, 0, len(names))
	for i, name := range names {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == notificationsTab && unread > 0 {
			label += " " + p.Badge.Render(strconv.Itoa(unread))
		}
		if i == active {
			parts = append(parts, p.TabActive.Render(label))
			continue
		}
		parts = append(parts, p.Tab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// ChatRow renders one chat list entry with its effective badge.
func ChatRow(p Palette, chat catalog.ChatThread, badge int, selected bool, width int) string {
	online := " "
	if chat.Online {
		online = "●"
	}
	badgeText := ""
	if badge > 0 {
		badgeText = p.Badge.Render(strconv.Itoa(badge))
	}
	line := fmt.Sprintf("%s [%s] %s  %s  %s",
		online,
		chat.Avatar,
		padRight(chat.Name, nameWidth),
		padRight(chat.Time, timeWidth),
		truncate(chat.LastMessage, messageWidth(width)),
	)
	return rowStyle(p, selected).Render(line) + " " + badgeText
}

// RankRow renders one ranking entry.
func RankRow(p Palette, u catalog.RankedUser, pending, selected bool, width int) string {
	status := ""
	if pending {
		status = p.Muted.Render("요청됨")
	}
	line := fmt.Sprintf("%2d. [%s] %s %d세  %s  ♥ %d",
		u.Rank, u.Avatar, padRight(u.Name, nameWidth), u.Age, u.Location, u.Likes)
	return rowStyle(p, selected).Render(truncate(line, max(width-8, minLineWidth))) + " " + status
}

// NotificationRow renders one notification entry.
func NotificationRow(p Palette, n catalog.Notification, selected bool, width int) string {
	line := fmt.Sprintf("%s  %s  %s", padRight(n.Title, 12), truncate(n.Body, messageWidth(width)), n.Time)
	return rowStyle(p, selected).Render(line)
}

// Waiting renders a search in progress.
func Waiting(p Palette, snap matchmaking.Snapshot) string {
	title := "랜덤 채팅 상대를 찾는 중..."
	if snap.Kind == matchmaking.KindVideo {
		title = "랜덤 영상통화 상대를 찾는 중..."
	}
	return strings.Join([]string{
		p.Title.Render(title),
		"",
		p.Accent.Render(matchmaking.FormatElapsed(snap.Elapsed)),
		p.Muted.Render(fmt.Sprintf("현재 %d명이 대기 중", snap.Queue)),
		"",
		p.Muted.Render("esc: 취소"),
	}, "\n")
}

// MatchSummary renders the handoff parameters of a match.
func MatchSummary(p Palette, s matchmaking.SessionParams) string {
	lines := []string{p.Success.Render("매칭 성공!"), fmt.Sprintf("[%s] %s", s.Avatar, s.PartnerName)}
	if s.Score != nil {
		lines = append(lines, p.Accent.Render(fmt.Sprintf("궁합 %d%% · %s", *s.Score, s.Rating)))
	}
	return strings.Join(lines, "\n")
}

// Transcript renders chat room messages.
func Transcript(p Palette, partner string, msgs []matchmaking.Message) string {
	if len(msgs) == 0 {
		return p.Muted.Render(partner + "님과 대화를 시작해 보세요")
	}
	var b strings.Builder
	for i, m := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		stamp := p.Muted.Render(m.At.Format("15:04"))
		if m.FromMe {
			b.WriteString(fmt.Sprintf("%s %s", stamp, p.Accent.Render("나: "+m.Text)))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s: %s", stamp, partner, m.Text))
	}
	return b.String()
}

// Toggle renders a settings row.
func Toggle(p Palette, label string, value string, selected bool) string {
	return rowStyle(p, selected).Render(fmt.Sprintf("%s  %s", padRight(label, 16), value))
}

// OnOff renders a boolean setting value.
func OnOff(on bool) string {
	if on {
		return "켜짐"
	}
	return "꺼짐"
}

func rowStyle(p Palette, selected bool) lipgloss.Style {
	if selected {
		return p.Selected
	}
	return p.Row
}

func messageWidth(width int) int {
	w := width - nameWidth - timeWidth - 16
	if w < 10 {
		return 10
	}
	return w
}

// padRight pads s to width display cells.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to at most width display cells, adding an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > width-1 {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "…"
}
