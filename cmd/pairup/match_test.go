package main

import (
	"context"
	"errors"
	"testing"

	"github.com/cristianoliveira/pairup/internal/matchmaking"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcProvider adapts a function to matchmaking.MatchProvider.
type funcProvider func(ctx context.Context, kind matchmaking.Kind) (matchmaking.MatchResult, error)

func (f funcProvider) FindMatch(ctx context.Context, kind matchmaking.Kind) (matchmaking.MatchResult, error) {
	return f(ctx, kind)
}

type fakeMatchClient struct {
	sim      *matchmaking.Simulator
	kinds    []matchmaking.Kind
	recorded []matchmaking.SessionParams
}

func newFakeMatchClient(p matchmaking.MatchProvider) *fakeMatchClient {
	return &fakeMatchClient{
		sim: matchmaking.NewSimulator(p, matchmaking.WithClock(clockwork.NewFakeClock())),
	}
}

func (f *fakeMatchClient) StartSearch(ctx context.Context, kind matchmaking.Kind) (*matchmaking.Search, error) {
	f.kinds = append(f.kinds, kind)
	return f.sim.Start(ctx, kind), nil
}

func (f *fakeMatchClient) RecordMatch(ctx context.Context, session matchmaking.SessionParams) (int, error) {
	f.recorded = append(f.recorded, session)
	return 5, nil
}

func TestMatchPrintsSession(t *testing.T) {
	score := 97
	client := newFakeMatchClient(funcProvider(func(ctx context.Context, kind matchmaking.Kind) (matchmaking.MatchResult, error) {
		return matchmaking.MatchResult{PartnerName: "김지민", Avatar: "김지", Score: &score}, nil
	}))

	out, err := execute(t, NewMatchCmd(client))
	require.NoError(t, err)

	assert.Equal(t, []matchmaking.Kind{matchmaking.KindChat}, client.kinds)
	require.Len(t, client.recorded, 1)
	assert.True(t, client.recorded[0].IsRandom)
	assert.Contains(t, out, "매칭 성공! [김지] 김지민 (chat)")
	assert.Contains(t, out, "궁합 97% · "+matchmaking.RatingBest)
	assert.Contains(t, out, "Matched with 김지민 (5 unread)")
}

func TestMatchVideoHasNoScore(t *testing.T) {
	client := newFakeMatchClient(funcProvider(func(ctx context.Context, kind matchmaking.Kind) (matchmaking.MatchResult, error) {
		return matchmaking.MatchResult{PartnerName: "윤도현", Avatar: "윤도"}, nil
	}))

	out, err := execute(t, NewMatchCmd(client), "--video")
	require.NoError(t, err)
	assert.Equal(t, []matchmaking.Kind{matchmaking.KindVideo}, client.kinds)
	assert.Contains(t, out, "(video)")
	assert.NotContains(t, out, "궁합")
}

func TestMatchProviderFailure(t *testing.T) {
	client := newFakeMatchClient(funcProvider(func(ctx context.Context, kind matchmaking.Kind) (matchmaking.MatchResult, error) {
		return matchmaking.MatchResult{}, errors.New("queue offline")
	}))

	_, err := execute(t, NewMatchCmd(client))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue offline")
	assert.Empty(t, client.recorded)
}

func TestMatchTimeout(t *testing.T) {
	client := newFakeMatchClient(funcProvider(func(ctx context.Context, kind matchmaking.Kind) (matchmaking.MatchResult, error) {
		<-ctx.Done()
		return matchmaking.MatchResult{}, ctx.Err()
	}))

	_, err := execute(t, NewMatchCmd(client), "--timeout=20ms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no partner found within 20ms")
	assert.Empty(t, client.recorded)
}

func TestNewMatchCmdPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewMatchCmd(nil) })
}
