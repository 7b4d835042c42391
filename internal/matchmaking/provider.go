package matchmaking

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// MatchResult is the counterpart a provider found.
type MatchResult struct {
	PartnerName string
	Avatar      string
	Score       *int
}

// MatchProvider finds a partner. FindMatch blocks until a match is found or
// ctx is done, in which case it returns ctx.Err().
type MatchProvider interface {
	FindMatch(ctx context.Context, kind Kind) (MatchResult, error)
}

// Score bounds, inclusive.
const (
	MinScore = 80
	MaxScore = 100
)

// DefaultNames is the partner pool used by RandomProvider.
var DefaultNames = []string{
	"김지민", "이서윤", "박하준", "최예은", "정우진",
	"강수빈", "조민서", "윤도현", "장하린", "임시우",
}

// RandomProvider produces a local stand-in match after a randomized delay.
type RandomProvider struct {
	clock clockwork.Clock
	names []string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomProvider creates a provider. A nil rng uses a randomly seeded one.
func NewRandomProvider(clock clockwork.Clock, rng *rand.Rand) *RandomProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomProvider{clock: clock, names: DefaultNames, rng: rng}
}

// WithNames replaces the partner pool. An empty pool is ignored.
func (p *RandomProvider) WithNames(names []string) *RandomProvider {
	if len(names) > 0 {
		p.names = append([]string(nil), names...)
	}
	return p
}

// Delay draws the wait before a match: 3-8s for chat, 5-10s for video.
func (p *RandomProvider) Delay(kind Kind) time.Duration {
	base := 3000.0
	if kind == KindVideo {
		base = 5000.0
	}
	p.mu.Lock()
	jitter := p.rng.Float64() * 5000
	p.mu.Unlock()
	return time.Duration((base + jitter) * float64(time.Millisecond))
}

// Score draws a compatibility score uniformly from [MinScore, MaxScore].
func (p *RandomProvider) Score() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return MinScore + p.rng.IntN(MaxScore-MinScore+1)
}

func (p *RandomProvider) pickName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.names[p.rng.IntN(len(p.names))]
}

// FindMatch waits for the drawn delay on the provider's clock and returns a
// partner from the pool. Video matches carry no score.
func (p *RandomProvider) FindMatch(ctx context.Context, kind Kind) (MatchResult, error) {
	timer := p.clock.NewTimer(p.Delay(kind))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return MatchResult{}, ctx.Err()
	case <-timer.Chan():
	}

	name := p.pickName()
	res := MatchResult{PartnerName: name, Avatar: Avatar(name)}
	if kind == KindChat {
		score := p.Score()
		res.Score = &score
	}
	return res, nil
}

// Avatar is the first two characters of name.
func Avatar(name string) string {
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}
