package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/matchmaking"
	"github.com/spf13/cobra"
)

type matchClient interface {
	StartSearch(ctx context.Context, kind matchmaking.Kind) (*matchmaking.Search, error)
	RecordMatch(ctx context.Context, session matchmaking.SessionParams) (int, error)
}

// NewMatchCmd creates the match command with explicit dependencies.
func NewMatchCmd(client matchClient) *cobra.Command {
	if client == nil {
		panic("NewMatchCmd: client dependency cannot be nil")
	}

	var (
		videoFlag   bool
		timeoutFlag time.Duration
	)

	matchCmd := &cobra.Command{
		Use:   "match",
		Short: "Search for a random partner",
		Long: `Run a random matchmaking search, printing the waiting time and queue
size every second until a partner is found. Ctrl+C cancels the search.

USAGE:
    pairup match [--video] [--timeout=<duration>]

OPTIONS:
    --video              Search for a video call instead of a chat
    --timeout=<d>        Give up after this long (default: no limit)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := matchmaking.KindChat
			if videoFlag {
				kind = matchmaking.KindVideo
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if timeoutFlag > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeoutFlag)
				defer cancel()
			}

			search, err := client.StartSearch(ctx, kind)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			defer search.Cancel()

			return awaitMatch(ctx, cmd.OutOrStdout(), client, search, timeoutFlag)
		},
	}

	matchCmd.Flags().BoolVar(&videoFlag, "video", false, "Search for a video call partner")
	matchCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "Give up after this long")
	return matchCmd
}

// awaitMatch consumes search events until a match, a failure or cancellation.
func awaitMatch(ctx context.Context, w io.Writer, client matchClient, search *matchmaking.Search, timeout time.Duration) error {
	stopped := func() error {
		search.Cancel()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("match: no partner found within %s", timeout)
		}
		colors.Info("Search cancelled")
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return stopped()
		case ev, ok := <-search.Events():
			if !ok {
				return stopped()
			}
			switch ev := ev.(type) {
			case matchmaking.TickEvent:
				fmt.Fprintf(w, "%s · 현재 %d명이 대기 중\n", matchmaking.FormatElapsed(ev.Elapsed), ev.Queue)
			case matchmaking.MatchEvent:
				search.Cancel()
				unread, err := client.RecordMatch(context.WithoutCancel(ctx), ev.Session)
				if err != nil {
					return fmt.Errorf("match: %w", err)
				}
				printSession(w, ev.Session)
				colors.Success(fmt.Sprintf("Matched with %s (%d unread)", ev.Session.PartnerName, unread))
				return nil
			case matchmaking.FailedEvent:
				return fmt.Errorf("match: %w", ev.Err)
			}
		}
	}
}

func printSession(w io.Writer, s matchmaking.SessionParams) {
	fmt.Fprintf(w, "매칭 성공! [%s] %s (%s)\n", s.Avatar, s.PartnerName, s.Kind)
	if s.Score != nil {
		fmt.Fprintf(w, "궁합 %d%% · %s\n", *s.Score, s.Rating)
	}
}

var matchCmd = NewMatchCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(matchCmd)
}
