// Package core wires pairup's storage, engagement state, settings, bus and
// matchmaking into a single application root.
package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/cristianoliveira/pairup/internal/bus"
	"github.com/cristianoliveira/pairup/internal/catalog"
	"github.com/cristianoliveira/pairup/internal/config"
	"github.com/cristianoliveira/pairup/internal/engagement"
	"github.com/cristianoliveira/pairup/internal/logging"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
	"github.com/cristianoliveira/pairup/internal/metrics"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/cristianoliveira/pairup/internal/storage"
	"github.com/jonboulle/clockwork"
)

// ErrUnknownChat reports a chat id the catalog does not contain.
var ErrUnknownChat = errors.New("unknown chat")

// Options configure New. Zero values pick the configured or real defaults.
type Options struct {
	// Backend overrides the storage_backend config key.
	Backend string
	// Store is used as-is instead of opening a backend.
	Store   storage.Store
	Clock   clockwork.Clock
	Logger  logging.Logger
	Metrics *metrics.Metrics
	Catalog *catalog.Catalog
	// Provider replaces the randomized match provider.
	Provider matchmaking.MatchProvider
	// Rand seeds the match provider and queue perturbation.
	Rand *rand.Rand
}

// Core is the application root. It owns the bus and every store.
type Core struct {
	kv         storage.Store
	backend    string
	clock      clockwork.Clock
	log        logging.Logger
	metrics    *metrics.Metrics
	catalog    *catalog.Catalog
	bus        *bus.Bus
	engagement *engagement.Store
	settings   *settings.Service
	matchmaker *matchmaking.Simulator
}

// New opens the configured storage backend and builds a Core around it.
func New(ctx context.Context, opts Options) (*Core, error) {
	config.Load()

	backend := opts.Backend
	if backend == "" {
		backend = config.Get("storage_backend", storage.BackendFile)
	}

	kv := opts.Store
	if kv == nil {
		if err := storage.Init(); err != nil {
			return nil, fmt.Errorf("core: %w", err)
		}
		m := opts.Metrics
		if m == nil {
			m = metrics.New()
			opts.Metrics = m
		}
		var err error
		kv, err = storage.NewForBackend(ctx, backend, m)
		if err != nil {
			return nil, fmt.Errorf("core: open %s storage: %w", backend, err)
		}
	}

	c := build(kv, opts)
	c.backend = backend
	c.log.Debug("core ready", "backend", backend)
	return c, nil
}

// NewWithStore builds a Core over kv without reading configuration.
func NewWithStore(kv storage.Store, opts Options) *Core {
	opts.Store = kv
	return build(kv, opts)
}

func build(kv storage.Store, opts Options) *Core {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	log := opts.Logger
	if log == nil {
		log = logging.GetGlobal()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	provider := opts.Provider
	if provider == nil {
		provider = matchmaking.NewRandomProvider(clock, opts.Rand)
	}

	b := bus.New()
	simOpts := []matchmaking.Option{
		matchmaking.WithClock(clock),
		matchmaking.WithLogger(log),
		matchmaking.WithMetrics(m),
		matchmaking.WithInitialQueue(matchmaking.KindChat, config.GetInt("match_queue_chat", matchmaking.DefaultChatQueue)),
		matchmaking.WithInitialQueue(matchmaking.KindVideo, config.GetInt("match_queue_video", matchmaking.DefaultVideoQueue)),
	}
	if opts.Rand != nil {
		simOpts = append(simOpts, matchmaking.WithRand(opts.Rand))
	}

	return &Core{
		kv:      kv,
		backend: "custom",
		clock:   clock,
		log:     log.With("component", "core"),
		metrics: m,
		catalog: cat,
		bus:     b,
		engagement: engagement.New(kv,
			engagement.WithClock(clock),
			engagement.WithLogger(log),
			engagement.WithMetrics(m),
			engagement.WithUnreadSeed(config.GetInt("unread_seed", engagement.DefaultUnreadSeed)),
		),
		settings:   settings.NewService(kv, b, log, m),
		matchmaker: matchmaking.NewSimulator(provider, simOpts...),
	}
}

// Close releases the storage backend and drops bus subscribers.
func (c *Core) Close() error {
	c.bus.Reset()
	return c.kv.Close()
}

// Backend names the storage backend in use.
func (c *Core) Backend() string { return c.backend }

// Metrics returns the collectors this core records into.
func (c *Core) Metrics() *metrics.Metrics { return c.metrics }

// Clock returns the core's clock.
func (c *Core) Clock() clockwork.Clock { return c.clock }

// Catalog returns the static data.
func (c *Core) Catalog() *catalog.Catalog { return c.catalog }

// Clear removes all engagement state and settings.
func (c *Core) Clear(ctx context.Context) error {
	c.engagement.Clear(ctx)
	if err := c.settings.Clear(ctx); err != nil {
		return fmt.Errorf("core: clear: %w", err)
	}
	c.log.Info("state cleared")
	return nil
}
