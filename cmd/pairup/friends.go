package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/engagement"
	"github.com/spf13/cobra"
)

type friendsClient interface {
	PendingRequests(ctx context.Context) ([]engagement.FriendRequest, error)
	Friends(ctx context.Context) ([]engagement.Friend, error)
	RemoveFriend(ctx context.Context, id int64) (bool, error)
}

// NewFriendsCmd creates the friends command and its remove subcommand.
func NewFriendsCmd(client friendsClient) *cobra.Command {
	if client == nil {
		panic("NewFriendsCmd: client dependency cannot be nil")
	}

	friendsCmd := &cobra.Command{
		Use:   "friends",
		Short: "List friends and pending requests",
		Long: `List pending outgoing friend requests and accepted friends.

USAGE:
    pairup friends
    pairup friends remove <id>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pending, err := client.PendingRequests(ctx)
			if err != nil {
				return fmt.Errorf("friends: %w", err)
			}
			friends, err := client.Friends(ctx)
			if err != nil {
				return fmt.Errorf("friends: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "PENDING REQUESTS")
			if len(pending) == 0 {
				fmt.Fprintln(w, "  (none)")
			}
			for _, r := range pending {
				fmt.Fprintf(w, "  %d\t[%s] %s\t%s\n", r.ID, r.AvatarText, r.UserName, r.Status)
			}
			fmt.Fprintln(w, "FRIENDS")
			if len(friends) == 0 {
				fmt.Fprintln(w, "  (none)")
			}
			for _, f := range friends {
				fmt.Fprintf(w, "  %d\t%s\n", f.ID, f.Name)
			}
			return nil
		},
	}

	friendsCmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a friend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("friends remove: invalid id %q", args[0])
			}
			removed, err := client.RemoveFriend(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("friends remove: %w", err)
			}
			if !removed {
				return fmt.Errorf("friends remove: no friend with id %d", id)
			}
			colors.Success(fmt.Sprintf("Friend %d removed", id))
			return nil
		},
	})

	return friendsCmd
}

var friendsCmd = NewFriendsCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(friendsCmd)
}
