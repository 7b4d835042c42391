package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/spf13/cobra"
)

type markReadClient interface {
	MarkChatRead(ctx context.Context, chatID int) error
}

// NewMarkReadCmd marks one or more chat threads as read.
func NewMarkReadCmd(client markReadClient) *cobra.Command {
	if client == nil {
		panic("NewMarkReadCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "mark-read <chat-id>...",
		Short: "Mark chats as read",
		Long: `Mark chat threads as read by ID. Read chats show no unread badge.
All IDs are validated before any chat is marked.

USAGE:
    pairup mark-read 1 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseChatIDs(args)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if err := client.MarkChatRead(cmd.Context(), id); err != nil {
					return fmt.Errorf("mark-read %d: %w", id, err)
				}
				colors.Success(fmt.Sprintf("Chat %d marked as read", id))
			}
			return nil
		},
	}
}

func parseChatIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("mark-read: invalid chat id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func init() {
	cmd.RootCmd.AddCommand(NewMarkReadCmd(coreClient))
}
