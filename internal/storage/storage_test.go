package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behavior every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "notificationCount")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "notificationCount", "4"))
	require.NoError(t, s.Set(ctx, "readChats", "[1,2]"))

	v, ok, err := s.Get(ctx, "notificationCount")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "4", v)

	require.NoError(t, s.Set(ctx, "notificationCount", "0"))
	v, _, err = s.Get(ctx, "notificationCount")
	require.NoError(t, err)
	require.Equal(t, "0", v)

	require.NoError(t, s.Remove(ctx, "notificationCount"))
	require.NoError(t, s.Remove(ctx, "missing"))
	_, ok, err = s.Get(ctx, "notificationCount")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Clear(ctx))
	_, ok, err = s.Get(ctx, "readChats")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Close())
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreClosed(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Close())

	_, _, err := s.Get(context.Background(), "k")
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, s.Set(context.Background(), "k", "v"), ErrClosed)
}

func TestMemoryStoreHonorsCancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, s.Set(ctx, "k", "v"), context.Canceled)
}
