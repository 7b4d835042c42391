package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/spf13/cobra"
)

type resetUnreadClient interface {
	ResetUnread(ctx context.Context) error
}

// NewResetUnreadCmd creates the reset-unread command with explicit dependencies.
func NewResetUnreadCmd(client resetUnreadClient) *cobra.Command {
	if client == nil {
		panic("NewResetUnreadCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "reset-unread",
		Short: "Mark all notifications as read",
		Long: `Reset the unread notification count to zero.

USAGE:
    pairup reset-unread`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.ResetUnread(cmd.Context()); err != nil {
				return fmt.Errorf("reset-unread: %w", err)
			}
			colors.Success("Unread count reset")
			return nil
		},
	}
}

var resetUnreadCmd = NewResetUnreadCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(resetUnreadCmd)
}
