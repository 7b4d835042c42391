package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/core"
	"github.com/cristianoliveira/pairup/internal/engagement"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/cristianoliveira/pairup/internal/tui/state"
	"github.com/cristianoliveira/pairup/internal/version"
)

// lazyCore opens storage on first use so that --help and version never
// touch the state directory.
type lazyCore struct {
	once sync.Once
	open func() (*core.Core, error)
	c    *core.Core
	err  error
}

func newLazyCore() *lazyCore {
	return &lazyCore{open: func() (*core.Core, error) {
		return core.New(context.Background(), core.Options{Backend: cmd.Backend()})
	}}
}

func (l *lazyCore) get() (*core.Core, error) {
	l.once.Do(func() {
		l.c, l.err = l.open()
	})
	return l.c, l.err
}

// Close releases the store if it was opened.
func (l *lazyCore) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}

func (l *lazyCore) Version() string { return version.String() }

func (l *lazyCore) Status(ctx context.Context) (core.Status, error) {
	c, err := l.get()
	if err != nil {
		return core.Status{}, err
	}
	return c.Status(ctx), nil
}

func (l *lazyCore) MarkChatRead(ctx context.Context, chatID int) error {
	c, err := l.get()
	if err != nil {
		return err
	}
	if _, ok := c.Catalog().Chat(chatID); !ok {
		return fmt.Errorf("%w: %d", core.ErrUnknownChat, chatID)
	}
	return c.MarkChatRead(ctx, chatID)
}

func (l *lazyCore) ResetUnread(ctx context.Context) error {
	c, err := l.get()
	if err != nil {
		return err
	}
	c.ResetUnread(ctx)
	return nil
}

func (l *lazyCore) SendFriendRequest(ctx context.Context, userName, avatar string) (engagement.FriendRequest, engagement.EnqueueResult, error) {
	c, err := l.get()
	if err != nil {
		return engagement.FriendRequest{}, 0, err
	}
	return c.SendFriendRequest(ctx, userName, avatar)
}

func (l *lazyCore) PendingRequests(ctx context.Context) ([]engagement.FriendRequest, error) {
	c, err := l.get()
	if err != nil {
		return nil, err
	}
	return c.PendingRequests(ctx), nil
}

func (l *lazyCore) Friends(ctx context.Context) ([]engagement.Friend, error) {
	c, err := l.get()
	if err != nil {
		return nil, err
	}
	return c.Friends(ctx), nil
}

func (l *lazyCore) RemoveFriend(ctx context.Context, id int64) (bool, error) {
	c, err := l.get()
	if err != nil {
		return false, err
	}
	return c.RemoveFriend(ctx, id), nil
}

func (l *lazyCore) Theme(ctx context.Context) (settings.Theme, error) {
	c, err := l.get()
	if err != nil {
		return settings.ThemeSystem, err
	}
	return c.Theme(ctx), nil
}

func (l *lazyCore) SetDarkMode(ctx context.Context, on bool) error {
	c, err := l.get()
	if err != nil {
		return err
	}
	return c.SetDarkMode(ctx, on)
}

func (l *lazyCore) Language(ctx context.Context) (string, error) {
	c, err := l.get()
	if err != nil {
		return "", err
	}
	return c.Language(ctx), nil
}

func (l *lazyCore) SetLanguage(ctx context.Context, code string) error {
	c, err := l.get()
	if err != nil {
		return err
	}
	return c.SetLanguage(ctx, code)
}

func (l *lazyCore) StartSearch(ctx context.Context, kind matchmaking.Kind) (*matchmaking.Search, error) {
	c, err := l.get()
	if err != nil {
		return nil, err
	}
	return c.StartSearch(ctx, kind), nil
}

func (l *lazyCore) RecordMatch(ctx context.Context, session matchmaking.SessionParams) (int, error) {
	c, err := l.get()
	if err != nil {
		return 0, err
	}
	return c.RecordMatch(ctx, session), nil
}

func (l *lazyCore) Clear(ctx context.Context) error {
	c, err := l.get()
	if err != nil {
		return err
	}
	return c.Clear(ctx)
}

func (l *lazyCore) TUIBackend() (state.Backend, error) {
	c, err := l.get()
	if err != nil {
		return nil, err
	}
	return c, nil
}

var coreClient = newLazyCore()
