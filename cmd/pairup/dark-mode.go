package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/spf13/cobra"
)

type darkModeClient interface {
	Theme(ctx context.Context) (settings.Theme, error)
	SetDarkMode(ctx context.Context, on bool) error
}

// NewDarkModeCmd creates the dark-mode command with explicit dependencies.
func NewDarkModeCmd(client darkModeClient) *cobra.Command {
	if client == nil {
		panic("NewDarkModeCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "dark-mode [on|off]",
		Short: "Show or set the dark mode override",
		Long: `Show the current theme override, or turn dark mode on or off.
Changing it notifies every open screen.

USAGE:
    pairup dark-mode
    pairup dark-mode on|off`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				theme, err := client.Theme(ctx)
				if err != nil {
					return fmt.Errorf("dark-mode: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme.String())
				return nil
			}

			on, err := parseOnOff(args[0])
			if err != nil {
				return fmt.Errorf("dark-mode: %w", err)
			}
			if err := client.SetDarkMode(ctx, on); err != nil {
				return fmt.Errorf("dark-mode: %w", err)
			}
			if on {
				colors.Success("Dark mode enabled")
			} else {
				colors.Success("Dark mode disabled")
			}
			return nil
		},
	}
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

var darkModeCmd = NewDarkModeCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(darkModeCmd)
}
