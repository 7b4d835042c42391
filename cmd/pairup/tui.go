package main

import (
	"fmt"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/tui/app"
	"github.com/cristianoliveira/pairup/internal/tui/state"
	"github.com/spf13/cobra"
)

type tuiClient interface {
	TUIBackend() (state.Backend, error)
}

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client tuiClient, runner app.ProgramRunner) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}
	if runner == nil {
		panic("NewTUICmd: runner dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive app",
		Long: `Open the interactive terminal app with chats, notifications, ranking,
random chat, random video and settings tabs.

KEYS:
    1-6, tab        Switch tabs
    ↑/↓, j/k        Move
    enter           Open, start or toggle
    esc             Cancel search or leave a room
    q, ctrl+c       Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := client.TUIBackend()
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}

			colors.DisableStructuredLogging()
			defer colors.EnableStructuredLogging()

			model := state.NewModel(cmd.Context(), backend)
			defer model.Shutdown()
			if err := runner.Run(model); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}

var tuiCmd = NewTUICmd(coreClient, app.NewDefaultProgramRunner())

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
}
