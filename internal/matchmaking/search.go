package matchmaking

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cristianoliveira/pairup/internal/logging"
	"github.com/cristianoliveira/pairup/internal/metrics"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Phase is the lifecycle stage of a search.
type Phase int

const (
	Searching Phase = iota
	Matched
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Searching:
		return "searching"
	case Matched:
		return "matched"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Default initial queue sizes shown on the waiting screens.
const (
	DefaultChatQueue  = 12
	DefaultVideoQueue = 7
)

const tickInterval = time.Second

// Snapshot is the observable state of a search.
type Snapshot struct {
	ID      string
	Kind    Kind
	Elapsed int
	Queue   int
	Phase   Phase
}

// Event is delivered on Search.Events.
type Event interface {
	SearchID() string
}

// TickEvent reports one elapsed second.
type TickEvent struct {
	Snapshot
}

// MatchEvent reports the match. It is always the last event of a search.
type MatchEvent struct {
	ID      string
	Session SessionParams
}

// FailedEvent reports a provider error other than cancellation. It is
// always the last event of a search.
type FailedEvent struct {
	ID  string
	Err error
}

func (e TickEvent) SearchID() string   { return e.ID }
func (e MatchEvent) SearchID() string  { return e.ID }
func (e FailedEvent) SearchID() string { return e.ID }

// Simulator starts searches.
type Simulator struct {
	provider MatchProvider
	clock    clockwork.Clock
	log      logging.Logger
	metrics  *metrics.Metrics
	queue    map[Kind]int

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithClock sets the clock driving the one-second ticker.
func WithClock(c clockwork.Clock) Option {
	return func(s *Simulator) { s.clock = c }
}

// WithRand sets the source used to perturb the queue count.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) { s.rng = r }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// WithMetrics sets the collectors searches are counted in.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Simulator) { s.metrics = m }
}

// WithInitialQueue sets the queue count a search of kind starts at.
// Values below 1 are ignored.
func WithInitialQueue(kind Kind, n int) Option {
	return func(s *Simulator) {
		if n >= 1 {
			s.queue[kind] = n
		}
	}
}

// NewSimulator creates a simulator backed by provider.
func NewSimulator(provider MatchProvider, opts ...Option) *Simulator {
	s := &Simulator{
		provider: provider,
		clock:    clockwork.NewRealClock(),
		log:      logging.Noop(),
		queue:    map[Kind]int{KindChat: DefaultChatQueue, KindVideo: DefaultVideoQueue},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.metrics == nil {
		s.metrics = metrics.Noop()
	}
	return s
}

// delta returns a queue perturbation in {-1, 0, +1}.
func (s *Simulator) delta() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(3) - 1
}

// Start begins a search. The match is requested exactly once; the search
// ends on match, provider failure, Cancel, or ctx cancellation.
func (s *Simulator) Start(ctx context.Context, kind Kind) *Search {
	ctx, cancel := context.WithCancel(ctx)
	id := uuid.NewString()
	search := &Search{
		sim:    s,
		cancel: cancel,
		events: make(chan Event),
		done:   make(chan struct{}),
		log:    s.log.With("component", "matchmaking", "search_id", id, "kind", kind.String()),
		state: Snapshot{
			ID:    id,
			Kind:  kind,
			Queue: s.queue[kind],
			Phase: Searching,
		},
	}
	s.metrics.SearchesStarted.WithLabelValues(kind.String()).Inc()
	search.log.Debug("search started", "queue", search.state.Queue)

	ticker := s.clock.NewTicker(tickInterval)
	results := make(chan matchOutcome, 1)
	go func() {
		res, err := s.provider.FindMatch(ctx, kind)
		results <- matchOutcome{res: res, err: err}
	}()

	go search.run(ctx, ticker, results)
	return search
}

type matchOutcome struct {
	res MatchResult
	err error
}

// Search is one running matchmaking session.
//
// Events are delivered on an unbuffered channel which is closed when the
// search ends. After Cancel returns no further events are delivered.
type Search struct {
	sim    *Simulator
	cancel context.CancelFunc
	events chan Event
	done   chan struct{}
	log    logging.Logger

	mu    sync.Mutex
	state Snapshot
}

// Events returns the event stream.
func (s *Search) Events() <-chan Event {
	return s.events
}

// Done is closed once the search goroutine has exited.
func (s *Search) Done() <-chan struct{} {
	return s.done
}

// Snapshot returns the current state.
func (s *Search) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ID returns the search identifier.
func (s *Search) ID() string {
	return s.state.ID
}

// Cancel stops the search and waits for it to wind down. If the match was
// already produced the phase stays Matched; any undelivered event is dropped.
// Calling Cancel more than once is safe.
func (s *Search) Cancel() {
	s.mu.Lock()
	cancelled := s.state.Phase == Searching
	if cancelled {
		s.state.Phase = Cancelled
	}
	s.mu.Unlock()

	s.cancel()
	<-s.done

	if cancelled {
		s.sim.metrics.SearchesCancelled.WithLabelValues(s.state.Kind.String()).Inc()
		s.log.Debug("search cancelled", "elapsed", s.Snapshot().Elapsed)
	}
}

// run advances the state on every tick whether or not the previous tick
// was received. Only the latest undelivered tick is kept.
func (s *Search) run(ctx context.Context, ticker clockwork.Ticker, results <-chan matchOutcome) {
	defer close(s.done)
	defer close(s.events)
	defer ticker.Stop()

	var (
		pending Event
		out     chan Event
	)
	for {
		select {
		case <-ctx.Done():
			s.markCancelled()
			return
		case <-ticker.Chan():
			snap, ok := s.tick()
			if !ok {
				return
			}
			pending, out = TickEvent{Snapshot: snap}, s.events
		case out <- pending:
			pending, out = nil, nil
		case res := <-results:
			s.finish(ctx, res)
			return
		}
	}
}

func (s *Search) tick() (Snapshot, bool) {
	delta := s.sim.delta()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Phase != Searching {
		return s.state, false
	}
	s.state.Elapsed++
	s.state.Queue += delta
	if s.state.Queue < 1 {
		s.state.Queue = 1
	}
	return s.state, true
}

func (s *Search) finish(ctx context.Context, out matchOutcome) {
	if out.err != nil {
		if errors.Is(out.err, context.Canceled) || errors.Is(out.err, context.DeadlineExceeded) {
			s.markCancelled()
			return
		}
		s.markCancelled()
		s.log.Error("match provider failed", "error", out.err)
		s.send(ctx, FailedEvent{ID: s.state.ID, Err: out.err})
		return
	}

	s.mu.Lock()
	if s.state.Phase != Searching {
		s.mu.Unlock()
		return
	}
	s.state.Phase = Matched
	kind := s.state.Kind
	elapsed := s.state.Elapsed
	s.mu.Unlock()

	session := SessionParams{
		Kind:        kind,
		PartnerName: out.res.PartnerName,
		Avatar:      out.res.Avatar,
		Score:       out.res.Score,
		IsRandom:    true,
	}
	if session.Score != nil {
		session.Rating = Rating(*session.Score)
	}

	s.sim.metrics.MatchesFound.WithLabelValues(kind.String()).Inc()
	s.log.Info("match found", "partner", session.PartnerName, "elapsed", elapsed)
	s.send(ctx, MatchEvent{ID: s.state.ID, Session: session})
}

func (s *Search) markCancelled() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Phase == Searching {
		s.state.Phase = Cancelled
	}
}

func (s *Search) send(ctx context.Context, ev Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
