package state

import (
	"context"

	"github.com/cristianoliveira/pairup/internal/bus"
	"github.com/cristianoliveira/pairup/internal/catalog"
	"github.com/cristianoliveira/pairup/internal/core"
	"github.com/cristianoliveira/pairup/internal/engagement"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
	"github.com/cristianoliveira/pairup/internal/settings"
)

// Backend is the part of core.Core the screens use.
type Backend interface {
	UnreadCount(ctx context.Context) int
	ResetUnread(ctx context.Context)
	Chats(ctx context.Context) []core.ChatView
	MarkChatRead(ctx context.Context, chatID int) error
	Ranking(ctx context.Context) []core.RankedView
	SendFriendRequest(ctx context.Context, userName, avatar string) (engagement.FriendRequest, engagement.EnqueueResult, error)
	Notifications() []catalog.Notification

	Settings(ctx context.Context) settings.AppSettings
	SaveSettings(ctx context.Context, s settings.AppSettings) error
	Theme(ctx context.Context) settings.Theme
	SetDarkMode(ctx context.Context, on bool) error
	Language(ctx context.Context) string
	SetLanguage(ctx context.Context, code string) error
	SubscribeTheme(fn func(bus.Event)) func()

	StartSearch(ctx context.Context, kind matchmaking.Kind) *matchmaking.Search
	RecordMatch(ctx context.Context, session matchmaking.SessionParams) int
	OpenRoom(session matchmaking.SessionParams) *matchmaking.ChatRoom
}

var _ Backend = (*core.Core)(nil)
