package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/spf13/cobra"
)

type clearClient interface {
	Clear(ctx context.Context) error
}

// NewClearCmd creates the clear command with explicit dependencies.
func NewClearCmd(client clearClient) *cobra.Command {
	if client == nil {
		panic("NewClearCmd: client dependency cannot be nil")
	}

	var yesFlag bool

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all persisted state",
		Long: `Remove the unread count, read chats, friend requests, friends and
settings from the store. The next run starts from the defaults.

USAGE:
    pairup clear [--yes]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yesFlag && !confirmClear(cmd.InOrStdin(), cmd.OutOrStdout()) {
				colors.Info("Operation cancelled")
				return nil
			}
			if err := client.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			colors.Success("State cleared")
			return nil
		},
	}

	clearCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	return clearCmd
}

// confirmClear asks the user for confirmation before clearing state.
func confirmClear(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Are you sure you want to clear all pairup state? (y/N): ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

var clearCmd = NewClearCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(clearCmd)
}
