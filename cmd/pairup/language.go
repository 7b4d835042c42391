package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/spf13/cobra"
)

type languageClient interface {
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, code string) error
}

// NewLanguageCmd creates the language command with explicit dependencies.
func NewLanguageCmd(client languageClient) *cobra.Command {
	if client == nil {
		panic("NewLanguageCmd: client dependency cannot be nil")
	}

	var listFlag bool

	languageCmd := &cobra.Command{
		Use:   "language [code]",
		Short: "Show or set the display language",
		Long: `Show the current display language, or set it by code.

USAGE:
    pairup language
    pairup language <code>
    pairup language --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			if listFlag {
				for _, code := range settings.Languages() {
					fmt.Fprintf(w, "%s\t%s\n", code, settings.LanguageName(code))
				}
				return nil
			}
			if len(args) == 0 {
				code, err := client.Language(ctx)
				if err != nil {
					return fmt.Errorf("language: %w", err)
				}
				fmt.Fprintf(w, "%s (%s)\n", settings.LanguageName(code), code)
				return nil
			}
			if err := client.SetLanguage(ctx, args[0]); err != nil {
				return fmt.Errorf("language: %w", err)
			}
			colors.Success(fmt.Sprintf("Language set to %s", settings.LanguageName(args[0])))
			return nil
		},
	}

	languageCmd.Flags().BoolVar(&listFlag, "list", false, "List supported languages")
	return languageCmd
}

var languageCmd = NewLanguageCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(languageCmd)
}
