package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/engagement"
	"github.com/spf13/cobra"
)

type friendRequestClient interface {
	SendFriendRequest(ctx context.Context, userName, avatar string) (engagement.FriendRequest, engagement.EnqueueResult, error)
}

// NewFriendRequestCmd creates the friend-request command with explicit dependencies.
func NewFriendRequestCmd(client friendRequestClient) *cobra.Command {
	if client == nil {
		panic("NewFriendRequestCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "friend-request <user> [avatar]",
		Short: "Send a friend request",
		Long: `Queue a friend request to a user. A second request to a user with a
pending request is not queued again.

USAGE:
    pairup friend-request <user> [avatar]

EXAMPLES:
    pairup friend-request 한소희
    pairup friend-request alice AL`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			avatar := ""
			if len(args) == 2 {
				avatar = args[1]
			}
			req, res, err := client.SendFriendRequest(cmd.Context(), args[0], avatar)
			if err != nil {
				return fmt.Errorf("friend-request: %w", err)
			}
			if res == engagement.AlreadyPending {
				colors.Info(fmt.Sprintf("Friend request to %s is already pending", req.UserName))
				return nil
			}
			colors.Success(fmt.Sprintf("Friend request sent to %s (id %d)", req.UserName, req.ID))
			return nil
		},
	}
}

var friendRequestCmd = NewFriendRequestCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(friendRequestCmd)
}
