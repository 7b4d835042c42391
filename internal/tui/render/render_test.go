package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/pairup/internal/catalog"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteFor(t *testing.T) {
	require.True(t, PaletteFor(settings.ThemeDark).Dark)
	require.False(t, PaletteFor(settings.ThemeLight).Dark)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"안녕하세요", 6, "안녕…"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := truncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, lipgloss.Width(got), tt.width)
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, 6, lipgloss.Width(padRight("김서", 6)))
	assert.Equal(t, "toolong", padRight("toolong", 3))
}

func TestChatRowShowsBadgeOnlyWhenUnread(t *testing.T) {
	p := PaletteFor(settings.ThemeLight)
	chat := catalog.ChatThread{ID: 1, Name: "김서연", Avatar: "김서", LastMessage: "안녕", Time: "오후 2:30"}

	assert.Contains(t, ChatRow(p, chat, 3, false, 80), "3")
	assert.Contains(t, ChatRow(p, chat, 0, false, 80), "김서연")
}

func TestTabsIncludeUnreadBadge(t *testing.T) {
	p := PaletteFor(settings.ThemeLight)
	out := Tabs(p, []string{"채팅", "알림"}, 0, 7, 1)
	assert.Contains(t, out, "1 채팅")
	assert.Contains(t, out, "7")
}

func TestWaitingAndMatchSummary(t *testing.T) {
	p := PaletteFor(settings.ThemeDark)

	out := Waiting(p, matchmaking.Snapshot{Kind: matchmaking.KindChat, Elapsed: 65, Queue: 11})
	assert.Contains(t, out, "1분 5초 경과")
	assert.Contains(t, out, "11명")

	score := 92
	out = MatchSummary(p, matchmaking.SessionParams{PartnerName: "김지민", Avatar: "김지", Score: &score, Rating: matchmaking.RatingVeryGood})
	assert.Contains(t, out, "김지민")
	assert.Contains(t, out, "92%")
	assert.Contains(t, out, matchmaking.RatingVeryGood)
}

func TestTranscript(t *testing.T) {
	p := PaletteFor(settings.ThemeLight)
	assert.Contains(t, Transcript(p, "김지민", nil), "김지민")

	at := time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)
	out := Transcript(p, "김지민", []matchmaking.Message{{FromMe: true, Text: "hi", At: at}})
	assert.Contains(t, out, "09:05")
	assert.Contains(t, out, "hi")
}
