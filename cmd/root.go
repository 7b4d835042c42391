// Package cmd holds the root command shared by the pairup binary.
package cmd

import (
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/storage"
	"github.com/cristianoliveira/pairup/internal/version"
	"github.com/spf13/cobra"
)

var (
	backendFlag   string
	ephemeralFlag bool
	debugFlag     bool
	quietFlag     bool
)

// RootCmd is the base command. Subcommands register themselves from cmd/pairup.
var RootCmd = &cobra.Command{
	Use:           "pairup",
	Short:         "Engagement core of a dating app, in the terminal.",
	Long:          `Chats, ranking, friend requests and random matchmaking backed by a local key-value store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			colors.SetDebug(true)
		}
		if quietFlag {
			colors.SetQuiet(true)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// Backend returns the storage backend selected with --backend or
// --ephemeral, or "" to use the configured default.
func Backend() string {
	if ephemeralFlag {
		return storage.BackendMemory
	}
	return backendFlag
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Storage backend: memory, file, sqlite or redis (default from config)")
	RootCmd.PersistentFlags().BoolVar(&ephemeralFlag, "ephemeral", false, "Keep state in memory for this run only")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print debug output")
	RootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			PrintCommandHelp(cmd)
			return
		}
		PrintHelp(cmd)
	})
}
