// Package engagement owns the persisted unread count, read-chat set and
// friend-request queue shared by every screen.
//
// Every call reads through to the key-value store; nothing is cached between
// calls. Read failures and malformed values degrade to empty defaults and
// write failures are logged and counted but never returned, so screens always
// render.
package engagement

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/cristianoliveira/pairup/internal/catalog"
	"github.com/cristianoliveira/pairup/internal/logging"
	"github.com/cristianoliveira/pairup/internal/metrics"
	"github.com/cristianoliveira/pairup/internal/storage"
	"github.com/jonboulle/clockwork"
)

// Persisted keys.
const (
	KeyUnreadCount    = "notificationCount"
	KeyReadChats      = "readChats"
	KeyFriendRequests = "friend_requests"
	KeyFriends        = "friends_list"
)

// DefaultUnreadSeed is the unread count a fresh install starts with.
const DefaultUnreadSeed = 4

// Store is the engagement state store.
type Store struct {
	kv      storage.Store
	clock   clockwork.Clock
	log     logging.Logger
	metrics *metrics.Metrics
	seed    int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for friend-request ids.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger write failures are reported to.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithMetrics sets the collectors failures and mutations are counted in.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithUnreadSeed overrides the initial unread count. Negative seeds are ignored.
func WithUnreadSeed(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.seed = n
		}
	}
}

// New creates a store over kv.
func New(kv storage.Store, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		clock: clockwork.NewRealClock(),
		log:   logging.Noop(),
		seed:  DefaultUnreadSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.Noop()
	}
	s.log = s.log.With("component", "engagement")
	return s
}

// LoadUnreadCount returns the persisted unread count. An absent value is
// seeded and persisted; an unreadable one yields the seed without writing.
func (s *Store) LoadUnreadCount(ctx context.Context) int {
	raw, ok, err := s.kv.Get(ctx, KeyUnreadCount)
	if err != nil {
		s.readFailed(KeyUnreadCount, err)
		return s.seed
	}
	if !ok {
		s.write(ctx, KeyUnreadCount, strconv.Itoa(s.seed))
		return s.seed
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.readFailed(KeyUnreadCount, err)
		return s.seed
	}
	if n < 0 {
		return 0
	}
	return n
}

// ResetUnreadCount sets the unread count to zero.
func (s *Store) ResetUnreadCount(ctx context.Context) {
	s.write(ctx, KeyUnreadCount, "0")
}

// AddUnread adds n to the unread count, flooring at zero, and returns the new value.
func (s *Store) AddUnread(ctx context.Context, n int) int {
	next := s.LoadUnreadCount(ctx) + n
	if next < 0 {
		next = 0
	}
	s.write(ctx, KeyUnreadCount, strconv.Itoa(next))
	return next
}

// ReadChats returns the set of chat ids opened at least once.
func (s *Store) ReadChats(ctx context.Context) map[int]struct{} {
	ids := s.readChatIDs(ctx)
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// IsChatRead reports whether chatID is in the read set.
func (s *Store) IsChatRead(ctx context.Context, chatID int) bool {
	_, ok := s.ReadChats(ctx)[chatID]
	return ok
}

// MarkChatRead adds chatID to the read set. Marking an already read chat
// does not write.
func (s *Store) MarkChatRead(ctx context.Context, chatID int) {
	ids := s.readChatIDs(ctx)
	for _, id := range ids {
		if id == chatID {
			return
		}
	}
	ids = append(ids, chatID)
	if s.writeJSON(ctx, KeyReadChats, ids) {
		s.metrics.ChatsMarkedRead.Inc()
	}
}

// ResetReadChats empties the read set.
func (s *Store) ResetReadChats(ctx context.Context) {
	s.remove(ctx, KeyReadChats)
}

// EffectiveUnread is the badge shown for thread: zero once read, else its
// innate unread count.
func (s *Store) EffectiveUnread(ctx context.Context, thread catalog.ChatThread) int {
	if s.IsChatRead(ctx, thread.ID) {
		return 0
	}
	return thread.UnreadCount
}

// ChatState is the read state of one thread.
type ChatState struct {
	Badge int
	Read  bool
}

// ChatStates computes the badge and read flag of every thread from a single
// load of the read set, keyed by chat id.
func (s *Store) ChatStates(ctx context.Context, threads []catalog.ChatThread) map[int]ChatState {
	read := s.ReadChats(ctx)
	states := make(map[int]ChatState, len(threads))
	for _, t := range threads {
		if _, ok := read[t.ID]; ok {
			states[t.ID] = ChatState{Read: true}
			continue
		}
		states[t.ID] = ChatState{Badge: t.UnreadCount}
	}
	return states
}

// Clear removes every engagement key. The next LoadUnreadCount reseeds.
func (s *Store) Clear(ctx context.Context) {
	for _, key := range []string{KeyUnreadCount, KeyReadChats, KeyFriendRequests, KeyFriends} {
		s.remove(ctx, key)
	}
}

func (s *Store) readChatIDs(ctx context.Context) []int {
	var ids []int
	s.readJSON(ctx, KeyReadChats, &ids)
	return ids
}

// readJSON decodes key into dst. It reports false, leaving dst untouched,
// when the key is absent, unreadable or malformed.
func (s *Store) readJSON(ctx context.Context, key string, dst any) bool {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.readFailed(key, err)
		return false
	}
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.readFailed(key, err)
		return false
	}
	return true
}

func (s *Store) writeJSON(ctx context.Context, key string, v any) bool {
	encoded, err := json.Marshal(v)
	if err != nil {
		s.writeFailed(key, err)
		return false
	}
	return s.write(ctx, key, string(encoded))
}

func (s *Store) write(ctx context.Context, key, value string) bool {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.writeFailed(key, err)
		return false
	}
	return true
}

func (s *Store) remove(ctx context.Context, key string) {
	if err := s.kv.Remove(ctx, key); err != nil {
		s.writeFailed(key, err)
	}
}

func (s *Store) readFailed(key string, err error) {
	s.metrics.StoreReadFailures.WithLabelValues(key).Inc()
	s.log.Warn("read failed, using default", "key", key, "error", err)
}

func (s *Store) writeFailed(key string, err error) {
	s.metrics.StoreWriteFailures.WithLabelValues(key).Inc()
	s.log.Warn("write dropped", "key", key, "error", err)
}
