// Package metrics defines the Prometheus collectors pairup records into.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pairup"

// Metrics groups every collector. Each instance registers on its own
// registerer so tests can build isolated sets.
type Metrics struct {
	Registry prometheus.Gatherer

	// StoreReadFailures counts KV reads that failed or held malformed data, by key.
	StoreReadFailures *prometheus.CounterVec
	// StoreWriteFailures counts KV writes that were dropped, by key.
	StoreWriteFailures *prometheus.CounterVec

	// FriendRequests counts enqueue attempts by result (created/already_pending).
	FriendRequests *prometheus.CounterVec
	// ChatsMarkedRead counts chats newly added to the read set.
	ChatsMarkedRead prometheus.Counter

	// SearchesStarted counts matchmaking searches by kind.
	SearchesStarted *prometheus.CounterVec
	// SearchesCancelled counts searches cancelled before a match, by kind.
	SearchesCancelled *prometheus.CounterVec
	// MatchesFound counts completed matches by kind.
	MatchesFound *prometheus.CounterVec

	// ThemeChanges counts theme_change events published on the bus.
	ThemeChanges *prometheus.CounterVec

	// RedisOpsTotal tracks redis commands by operation and status.
	RedisOpsTotal *prometheus.CounterVec
	// RedisOpDuration tracks redis command latency in seconds.
	RedisOpDuration *prometheus.HistogramVec
	// RedisConnectionErrors counts failed redis dials.
	RedisConnectionErrors prometheus.Counter
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers all collectors on reg and exposes them through g.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registry: g,
		StoreReadFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_read_failures_total",
			Help:      "KV reads that failed or returned malformed data, by key",
		}, []string{"key"}),
		StoreWriteFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_write_failures_total",
			Help:      "KV writes that failed and were dropped, by key",
		}, []string{"key"}),
		FriendRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "friend_requests_total",
			Help:      "Friend request enqueue attempts by result",
		}, []string{"result"}),
		ChatsMarkedRead: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chats_marked_read_total",
			Help:      "Chats newly marked as read",
		}),
		SearchesStarted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_searches_started_total",
			Help:      "Matchmaking searches started by kind",
		}, []string{"kind"}),
		SearchesCancelled: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_searches_cancelled_total",
			Help:      "Matchmaking searches cancelled before a match, by kind",
		}, []string{"kind"}),
		MatchesFound: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_found_total",
			Help:      "Completed matches by kind",
		}, []string{"kind"}),
		ThemeChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_changes_total",
			Help:      "Theme change events published, by theme",
		}, []string{"theme"}),
		RedisOpsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redis_operations_total",
			Help:      "Total Redis operations by operation and status",
		}, []string{"operation", "status"}),
		RedisOpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "redis_operation_duration_seconds",
			Help:      "Redis operation duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		RedisConnectionErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redis_connection_errors_total",
			Help:      "Total Redis connection errors",
		}),
	}
}

// Noop returns collectors registered on a throwaway registry.
func Noop() *Metrics {
	return New()
}
