package redis

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/cristianoliveira/pairup/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var testRedisURL string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start redis container: %v\n", err)
		os.Exit(1)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get redis endpoint: %v\n", err)
		os.Exit(1)
	}
	testRedisURL = "redis://" + endpoint

	code := m.Run()

	_ = container.Terminate(ctx)
	os.Exit(code)
}

func setupTestStore(t *testing.T, prefix string) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	s, err := NewStore(context.Background(), testRedisURL, prefix)
	require.NoError(t, err)
	require.NoError(t, s.rdb.FlushAll(context.Background()).Err())

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := setupTestStore(t, "pairup:")
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "notificationCount")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "notificationCount", "4"))
	v, ok, err := s.Get(ctx, "notificationCount")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "4", v)

	raw, err := s.rdb.Get(ctx, "pairup:notificationCount").Result()
	require.NoError(t, err)
	require.Equal(t, "4", raw)

	require.NoError(t, s.Remove(ctx, "notificationCount"))
	_, ok, err = s.Get(ctx, "notificationCount")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestClearOnlyTouchesPrefix(t *testing.T) {
	s := setupTestStore(t, "pairup:")
	ctx := context.Background()

	for i := 0; i < 250; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("k%d", i), "v"))
	}
	require.NoError(t, s.rdb.Set(ctx, "other:keep", "1", 0).Err())

	require.NoError(t, s.Clear(ctx))

	n, err := s.rdb.DBSize(ctx).Result()
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Equal(t, "1", s.rdb.Get(ctx, "other:keep").Val())
}

func TestMetricsHookCountsCommands(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	m := metrics.New()
	s, err := NewStore(context.Background(), testRedisURL, "hook:", NewMetricsHook(m))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "a", "1"))
	_, _, err = s.Get(ctx, "missing")
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.RedisOpsTotal.WithLabelValues("set", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RedisOpsTotal.WithLabelValues("get", "success")))
}
