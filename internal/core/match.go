package core

import (
	"context"

	"github.com/cristianoliveira/pairup/internal/matchmaking"
)

// StartSearch begins a matchmaking search.
func (c *Core) StartSearch(ctx context.Context, kind matchmaking.Kind) *matchmaking.Search {
	return c.matchmaker.Start(ctx, kind)
}

// RecordMatch bumps the unread count for a new match and returns the count.
func (c *Core) RecordMatch(ctx context.Context, session matchmaking.SessionParams) int {
	n := c.engagement.AddUnread(ctx, 1)
	c.log.Debug("match recorded", "partner", session.PartnerName, "kind", session.Kind.String(), "unread", n)
	return n
}

// OpenRoom opens the chat room a chat match hands off to.
func (c *Core) OpenRoom(session matchmaking.SessionParams) *matchmaking.ChatRoom {
	return matchmaking.NewChatRoom(session, c.clock)
}
