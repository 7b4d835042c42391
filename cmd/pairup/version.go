package main

import (
	"fmt"

	"github.com/cristianoliveira/pairup/cmd"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
}

// NewVersionCmd prints the running build's version.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	var short bool
	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := client.Version()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pairup version %s\n", v)
			return nil
		},
	}
	c.Flags().BoolVar(&short, "short", false, "print only the version string")
	return c
}

func init() {
	cmd.RootCmd.AddCommand(NewVersionCmd(coreClient))
}
