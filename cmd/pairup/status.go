package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/core"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/spf13/cobra"
)

type statusClient interface {
	Status(ctx context.Context) (core.Status, error)
}

type statusJSON struct {
	Backend         string `json:"backend"`
	Unread          int    `json:"unread"`
	ReadChats       int    `json:"readChats"`
	TotalChats      int    `json:"totalChats"`
	ChatBadges      int    `json:"chatBadges"`
	PendingRequests int    `json:"pendingRequests"`
	Friends         int    `json:"friends"`
	Theme           string `json:"theme"`
	Language        string `json:"language"`
}

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(client statusClient) *cobra.Command {
	if client == nil {
		panic("NewStatusCmd: client dependency cannot be nil")
	}

	var formatFlag string

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show engagement status summary",
		Long: `Show the persisted engagement state: unread count, read chats,
pending friend requests, theme and language.

USAGE:
    pairup status [OPTIONS]

OPTIONS:
    --format=<format>    Output format: text or json (default: text)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := client.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}
			switch formatFlag {
			case "text", "":
				printStatusText(cmd.OutOrStdout(), st)
				return nil
			case "json":
				return printStatusJSON(cmd.OutOrStdout(), st)
			default:
				return fmt.Errorf("status: unknown format %q", formatFlag)
			}
		},
	}

	statusCmd.Flags().StringVar(&formatFlag, "format", "text", "Output format: text or json")
	return statusCmd
}

func printStatusText(w io.Writer, st core.Status) {
	fmt.Fprintf(w, "Unread notifications: %d\n", st.Unread)
	fmt.Fprintf(w, "Chats read:           %d/%d (%d unread messages)\n", st.ReadChats, st.TotalChats, st.ChatBadges)
	fmt.Fprintf(w, "Pending requests:     %d\n", st.PendingRequests)
	fmt.Fprintf(w, "Friends:              %d\n", st.Friends)
	fmt.Fprintf(w, "Theme:                %s\n", st.Theme)
	fmt.Fprintf(w, "Language:             %s (%s)\n", settings.LanguageName(st.Language), st.Language)
	fmt.Fprintf(w, "Backend:              %s\n", st.Backend)
}

func printStatusJSON(w io.Writer, st core.Status) error {
	data, err := json.MarshalIndent(statusJSON{
		Backend:         st.Backend,
		Unread:          st.Unread,
		ReadChats:       st.ReadChats,
		TotalChats:      st.TotalChats,
		ChatBadges:      st.ChatBadges,
		PendingRequests: st.PendingRequests,
		Friends:         st.Friends,
		Theme:           st.Theme.String(),
		Language:        st.Language,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

var statusCmd = NewStatusCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(statusCmd)
}
