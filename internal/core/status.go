package core

import (
	"context"

	"github.com/cristianoliveira/pairup/internal/settings"
)

// Status summarizes the persisted engagement state.
type Status struct {
	Backend         string
	Unread          int
	ReadChats       int
	TotalChats      int
	ChatBadges      int
	PendingRequests int
	Friends         int
	Theme           settings.Theme
	Language        string
}

// Status collects the current state.
func (c *Core) Status(ctx context.Context) Status {
	chats := c.Chats(ctx)
	badges, read := 0, 0
	for _, ch := range chats {
		badges += ch.Badge
		if ch.Read {
			read++
		}
	}
	return Status{
		Backend:         c.backend,
		Unread:          c.engagement.LoadUnreadCount(ctx),
		ReadChats:       read,
		TotalChats:      len(chats),
		ChatBadges:      badges,
		PendingRequests: len(c.engagement.PendingRequests(ctx)),
		Friends:         len(c.engagement.Friends(ctx)),
		Theme:           c.settings.ThemeOverride(ctx),
		Language:        c.settings.Language(ctx),
	}
}
