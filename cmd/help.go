package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/pairup/internal/version"
	"github.com/spf13/cobra"
)

// outputWriter overrides the help destination in tests.
var outputWriter io.Writer

var commandOrder = []string{
	"tui",
	"status",
	"mark-read",
	"reset-unread",
	"friend-request",
	"friends",
	"dark-mode",
	"language",
	"match",
	"clear",
	"version",
}

func helpOutput(cmd *cobra.Command) io.Writer {
	if outputWriter != nil {
		return outputWriter
	}
	if cmd != nil {
		return cmd.OutOrStdout()
	}
	return os.Stdout
}

// PrintHelp prints the top-level help listing commands in a fixed order.
func PrintHelp(cmd *cobra.Command) {
	var lines []string
	for _, name := range commandOrder {
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				lines = append(lines, fmt.Sprintf("    %-28s %s", c.Use, c.Short))
				break
			}
		}
	}

	fmt.Fprintf(helpOutput(cmd), `pairup %s

%s

USAGE:
    pairup [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --backend <name>    Storage backend: memory, file, sqlite or redis
    --ephemeral         Keep state in memory for this run only
    --debug             Print debug output
    -q, --quiet         Suppress informational output
    -h, --help          Show help message
`, version.String(), cmd.Short, strings.Join(lines, "\n"))
}

// PrintCommandHelp prints a subcommand's long description, falling back to
// the short one.
func PrintCommandHelp(cmd *cobra.Command) {
	text := cmd.Long
	if text == "" {
		text = cmd.Short
	}
	fmt.Fprintln(helpOutput(cmd), strings.TrimRight(text, "\n"))
}
