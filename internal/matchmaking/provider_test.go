package matchmaking

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestDelayRanges(t *testing.T) {
	p := NewRandomProvider(clockwork.NewFakeClock(), seeded())

	for i := 0; i < 1000; i++ {
		d := p.Delay(KindChat)
		require.GreaterOrEqual(t, d, 3*time.Second)
		require.Less(t, d, 8*time.Second)

		d = p.Delay(KindVideo)
		require.GreaterOrEqual(t, d, 5*time.Second)
		require.Less(t, d, 10*time.Second)
	}
}

func TestScoreDistributionIsUniform(t *testing.T) {
	p := NewRandomProvider(clockwork.NewFakeClock(), seeded())
	counts := make(map[int]int)

	const runs = 1000
	for i := 0; i < runs; i++ {
		score := p.Score()
		require.GreaterOrEqual(t, score, MinScore)
		require.LessOrEqual(t, score, MaxScore)
		counts[score]++
	}

	// 21 buckets, about 47.6 expected each.
	require.Len(t, counts, MaxScore-MinScore+1)
	for score, n := range counts {
		require.GreaterOrEqual(t, n, 20, "score %d underrepresented", score)
		require.LessOrEqual(t, n, 80, "score %d overrepresented", score)
	}
}

func findMatchAsync(p *RandomProvider, ctx context.Context, kind Kind) <-chan matchOutcome {
	out := make(chan matchOutcome, 1)
	go func() {
		res, err := p.FindMatch(ctx, kind)
		out <- matchOutcome{res: res, err: err}
	}()
	return out
}

func TestFindMatchChatFiresWithinWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := NewRandomProvider(clock, seeded())
	ctx := context.Background()

	done := findMatchAsync(p, ctx, KindChat)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(3*time.Second - time.Millisecond)
	select {
	case <-done:
		t.Fatal("match arrived before the minimum delay")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(5 * time.Second)
	var out matchOutcome
	select {
	case out = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("match did not arrive within the maximum delay")
	}

	require.NoError(t, out.err)
	require.True(t, slices.Contains(DefaultNames, out.res.PartnerName))
	require.Equal(t, Avatar(out.res.PartnerName), out.res.Avatar)
	require.NotNil(t, out.res.Score)
	require.GreaterOrEqual(t, *out.res.Score, MinScore)
	require.LessOrEqual(t, *out.res.Score, MaxScore)
}

func TestFindMatchVideoHasNoScore(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := NewRandomProvider(clock, seeded()).WithNames([]string{"정우진"})
	ctx := context.Background()

	done := findMatchAsync(p, ctx, KindVideo)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(10 * time.Second)

	out := <-done
	require.NoError(t, out.err)
	require.Nil(t, out.res.Score)
	require.Equal(t, "정우진", out.res.PartnerName)
	require.Equal(t, "정우", out.res.Avatar)
}

func TestFindMatchHonorsCancellation(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := NewRandomProvider(clock, seeded())
	ctx, cancel := context.WithCancel(context.Background())

	done := findMatchAsync(p, ctx, KindChat)
	require.NoError(t, clock.BlockUntilContext(context.Background(), 1))
	cancel()

	out := <-done
	require.ErrorIs(t, out.err, context.Canceled)
}
