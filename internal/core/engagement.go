package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/cristianoliveira/pairup/internal/catalog"
	"github.com/cristianoliveira/pairup/internal/engagement"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
)

// ChatView is a chat list row with its effective badge.
type ChatView struct {
	catalog.ChatThread
	Badge int
	Read  bool
}

// RankedView is a ranking row with the viewer's friend-request state.
type RankedView struct {
	catalog.RankedUser
	RequestPending bool
}

// UnreadCount returns the unread notification count.
func (c *Core) UnreadCount(ctx context.Context) int {
	return c.engagement.LoadUnreadCount(ctx)
}

// ResetUnread marks every notification read.
func (c *Core) ResetUnread(ctx context.Context) {
	c.engagement.ResetUnreadCount(ctx)
}

// Chats returns the chat list with read state applied.
func (c *Core) Chats(ctx context.Context) []ChatView {
	threads := c.catalog.Chats()
	states := c.engagement.ChatStates(ctx, threads)

	views := make([]ChatView, 0, len(threads))
	for _, t := range threads {
		st := states[t.ID]
		views = append(views, ChatView{ChatThread: t, Badge: st.Badge, Read: st.Read})
	}
	return views
}

// MarkChatRead records that chatID was opened. Any id is accepted; ids
// outside the catalog simply never match a row.
func (c *Core) MarkChatRead(ctx context.Context, chatID int) error {
	c.engagement.MarkChatRead(ctx, chatID)
	return nil
}

// ResetReadChats forgets which chats were opened.
func (c *Core) ResetReadChats(ctx context.Context) {
	c.engagement.ResetReadChats(ctx)
}

// Ranking returns the ranking with pending friend requests flagged.
func (c *Core) Ranking(ctx context.Context) []RankedView {
	pending := make(map[string]bool)
	for _, r := range c.engagement.PendingRequests(ctx) {
		pending[r.UserName] = true
	}

	users := c.catalog.Ranking()
	views := make([]RankedView, 0, len(users))
	for _, u := range users {
		views = append(views, RankedView{RankedUser: u, RequestPending: pending[u.Name]})
	}
	return views
}

// Notifications returns the notification list.
func (c *Core) Notifications() []catalog.Notification {
	return c.catalog.Notifications()
}

// SendFriendRequest enqueues a request to userName. An empty avatar is taken
// from the catalog, or from the first two characters of the name.
func (c *Core) SendFriendRequest(ctx context.Context, userName, avatar string) (engagement.FriendRequest, engagement.EnqueueResult, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return engagement.FriendRequest{}, 0, fmt.Errorf("friend request: user name cannot be empty")
	}
	if avatar == "" {
		if u, ok := c.catalog.User(userName); ok {
			avatar = u.Avatar
		} else {
			avatar = matchmaking.Avatar(userName)
		}
	}
	req, res := c.engagement.EnqueueFriendRequest(ctx, userName, avatar)
	return req, res, nil
}

// HasPendingRequest reports whether a request to userName is queued.
func (c *Core) HasPendingRequest(ctx context.Context, userName string) bool {
	return c.engagement.HasPendingRequest(ctx, userName)
}

// PendingRequests returns queued friend requests.
func (c *Core) PendingRequests(ctx context.Context) []engagement.FriendRequest {
	return c.engagement.PendingRequests(ctx)
}

// Friends returns the friend list.
func (c *Core) Friends(ctx context.Context) []engagement.Friend {
	return c.engagement.Friends(ctx)
}

// RemoveFriend removes a friend by id.
func (c *Core) RemoveFriend(ctx context.Context, id int64) bool {
	return c.engagement.RemoveFriend(ctx, id)
}
