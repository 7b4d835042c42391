// Package catalog holds the static chat, ranking and notification data the
// screens render. It is read-only; per-user state lives in engagement.
package catalog

// ChatThread is one entry of the chat list.
type ChatThread struct {
	ID          int
	Name        string
	Avatar      string
	LastMessage string
	Time        string
	// UnreadCount is the thread's innate badge before any read state is applied.
	UnreadCount int
	Online      bool
}

// RankedUser is one entry of the popularity ranking.
type RankedUser struct {
	Rank     int
	Name     string
	Avatar   string
	Age      int
	Location string
	Likes    int
	Bio      string
}

// NotificationKind classifies a notification entry.
type NotificationKind string

const (
	NotificationLike    NotificationKind = "like"
	NotificationMatch   NotificationKind = "match"
	NotificationMessage NotificationKind = "message"
	NotificationFriend  NotificationKind = "friend"
)

// Notification is one entry of the notification list.
type Notification struct {
	ID    int
	Kind  NotificationKind
	Title string
	Body  string
	Time  string
}

// Catalog serves copies of the static data so callers cannot mutate it.
type Catalog struct {
	chats         []ChatThread
	ranking       []RankedUser
	notifications []Notification
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultChats, defaultRanking, defaultNotifications)
}

// New builds a catalog from the given data.
func New(chats []ChatThread, ranking []RankedUser, notifications []Notification) *Catalog {
	return &Catalog{
		chats:         append([]ChatThread(nil), chats...),
		ranking:       append([]RankedUser(nil), ranking...),
		notifications: append([]Notification(nil), notifications...),
	}
}

// Chats returns the chat list in display order.
func (c *Catalog) Chats() []ChatThread {
	return append([]ChatThread(nil), c.chats...)
}

// Chat looks up a thread by id.
func (c *Catalog) Chat(id int) (ChatThread, bool) {
	for _, t := range c.chats {
		if t.ID == id {
			return t, true
		}
	}
	return ChatThread{}, false
}

// Ranking returns ranked users ordered by rank.
func (c *Catalog) Ranking() []RankedUser {
	return append([]RankedUser(nil), c.ranking...)
}

// User looks up a ranked user by name.
func (c *Catalog) User(name string) (RankedUser, bool) {
	for _, u := range c.ranking {
		if u.Name == name {
			return u, true
		}
	}
	return RankedUser{}, false
}

// Notifications returns notifications newest first.
func (c *Catalog) Notifications() []Notification {
	return append([]Notification(nil), c.notifications...)
}
