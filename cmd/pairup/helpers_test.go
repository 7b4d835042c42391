package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/spf13/cobra"
)

// execute runs c with args and returns everything written to stdout,
// stderr and the colors package.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	colors.SetOutput(&buf, &buf)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })

	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetIn(strings.NewReader(""))
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}
