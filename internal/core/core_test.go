package core

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/cristianoliveira/pairup/internal/bus"
	"github.com/cristianoliveira/pairup/internal/engagement"
	"github.com/cristianoliveira/pairup/internal/logging"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/cristianoliveira/pairup/internal/storage"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func newTestCore(t *testing.T) (*Core, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.UnixMilli(1700000000000))
	c := NewWithStore(storage.NewMemoryStore(), Options{
		Clock:  clock,
		Logger: logging.Noop(),
		Rand:   rand.New(rand.NewPCG(7, 7)),
	})
	t.Cleanup(func() { _ = c.Close() })
	return c, clock
}

func TestChatsApplyReadState(t *testing.T) {
	c, _ := newTestCore(t)
	ctx := context.Background()

	require.NoError(t, c.MarkChatRead(ctx, 4))
	for _, ch := range c.Chats(ctx) {
		if ch.ID == 4 {
			require.True(t, ch.Read)
			require.Zero(t, ch.Badge)
			continue
		}
		require.False(t, ch.Read)
		require.Equal(t, ch.UnreadCount, ch.Badge)
	}

	require.NoError(t, c.MarkChatRead(ctx, 404))
	require.True(t, c.engagement.IsChatRead(ctx, 404))

	c.ResetReadChats(ctx)
	for _, ch := range c.Chats(ctx) {
		require.False(t, ch.Read)
	}
}

// countingStore counts Get calls per key.
type countingStore struct {
	*storage.MemoryStore
	mu   sync.Mutex
	gets map[string]int
}

func (s *countingStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	s.gets[key]++
	s.mu.Unlock()
	return s.MemoryStore.Get(ctx, key)
}

func TestChatsLoadReadSetOnce(t *testing.T) {
	kv := &countingStore{MemoryStore: storage.NewMemoryStore(), gets: map[string]int{}}
	c := NewWithStore(kv, Options{Clock: clockwork.NewFakeClock(), Logger: logging.Noop()})
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()
	require.NoError(t, c.MarkChatRead(ctx, 1))

	kv.gets = map[string]int{}
	rows := c.Chats(ctx)
	require.NotEmpty(t, rows)
	require.Equal(t, 1, kv.gets[engagement.KeyReadChats])
	for _, row := range rows {
		require.False(t, row.Read && row.Badge != 0, "chat %d", row.ID)
	}
}

func TestSendFriendRequest(t *testing.T) {
	c, _ := newTestCore(t)
	ctx := context.Background()

	req, res, err := c.SendFriendRequest(ctx, "한소희", "")
	require.NoError(t, err)
	require.Equal(t, engagement.Created, res)
	require.Equal(t, "한소", req.AvatarText)
	require.Equal(t, int64(1700000000000), req.ID)

	_, res, err = c.SendFriendRequest(ctx, "한소희", "")
	require.NoError(t, err)
	require.Equal(t, engagement.AlreadyPending, res)

	req, _, err = c.SendFriendRequest(ctx, "낯선사람", "")
	require.NoError(t, err)
	require.Equal(t, "낯선", req.AvatarText)

	_, _, err = c.SendFriendRequest(ctx, "  ", "")
	require.Error(t, err)

	var flagged []string
	for _, u := range c.Ranking(ctx) {
		if u.RequestPending {
			flagged = append(flagged, u.Name)
		}
	}
	require.Equal(t, []string{"한소희"}, flagged)
	require.Len(t, c.PendingRequests(ctx), 2)
}

func TestThemeFlowsThroughBus(t *testing.T) {
	c, _ := newTestCore(t)
	ctx := context.Background()

	require.Equal(t, settings.ThemeSystem, c.Theme(ctx))

	var got []string
	unsubscribe := c.SubscribeTheme(func(e bus.Event) { got = append(got, e.Payload) })
	require.NoError(t, c.SetDarkMode(ctx, true))
	unsubscribe()
	require.NoError(t, c.SetDarkMode(ctx, false))

	require.Equal(t, []string{"dark"}, got)
	require.Equal(t, settings.ThemeLight, c.Theme(ctx))
}

func TestRecordMatchBumpsUnread(t *testing.T) {
	c, _ := newTestCore(t)
	ctx := context.Background()

	c.ResetUnread(ctx)
	n := c.RecordMatch(ctx, matchmaking.SessionParams{PartnerName: "김지민", IsRandom: true})
	require.Equal(t, 1, n)
	require.Equal(t, 1, c.UnreadCount(ctx))
}

func TestStartSearchUsesConfiguredClock(t *testing.T) {
	c, clock := newTestCore(t)
	ctx := context.Background()

	search := c.StartSearch(ctx, matchmaking.KindChat)
	defer search.Cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 2))

	clock.Advance(time.Second)
	select {
	case ev := <-search.Events():
		require.Equal(t, search.ID(), ev.SearchID())
	case <-time.After(2 * time.Second):
		t.Fatal("no event after one second")
	}
}

func TestStatusAndClear(t *testing.T) {
	c, _ := newTestCore(t)
	ctx := context.Background()

	st := c.Status(ctx)
	require.Equal(t, 4, st.Unread)
	require.Equal(t, "ko", st.Language)
	require.Equal(t, settings.ThemeSystem, st.Theme)
	require.Equal(t, len(c.Catalog().Chats()), st.TotalChats)

	require.NoError(t, c.MarkChatRead(ctx, 1))
	_, _, _ = c.SendFriendRequest(ctx, "윤서준", "")
	require.NoError(t, c.SetLanguage(ctx, "en"))
	require.NoError(t, c.SetDarkMode(ctx, true))
	c.ResetUnread(ctx)

	st = c.Status(ctx)
	require.Equal(t, 0, st.Unread)
	require.Equal(t, 1, st.ReadChats)
	require.Equal(t, 1, st.PendingRequests)
	require.Equal(t, settings.ThemeDark, st.Theme)
	require.Equal(t, "en", st.Language)

	require.NoError(t, c.Clear(ctx))
	st = c.Status(ctx)
	require.Equal(t, 4, st.Unread)
	require.Zero(t, st.ReadChats)
	require.Zero(t, st.PendingRequests)
	require.Equal(t, settings.ThemeSystem, st.Theme)
}

func TestNewOpensConfiguredBackend(t *testing.T) {
	t.Setenv("PAIRUP_STATE_DIR", t.TempDir())
	t.Setenv("PAIRUP_CONFIG_DIR", t.TempDir())
	storage.Reset()
	t.Cleanup(storage.Reset)

	c, err := New(context.Background(), Options{Backend: storage.BackendSQLite, Logger: logging.Noop()})
	require.NoError(t, err)
	defer c.Close()

	require.Equal(t, storage.BackendSQLite, c.Backend())
	require.Equal(t, 4, c.UnreadCount(context.Background()))
}
