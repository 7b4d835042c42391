package main

import (
	"testing"

	"github.com/cristianoliveira/pairup/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVersionClient struct{ v string }

func (f fakeVersionClient) Version() string { return f.v }

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, NewVersionCmd(fakeVersionClient{v: "1.2.3+abc"}))
	require.NoError(t, err)
	assert.Equal(t, "pairup version 1.2.3+abc\n", out)
}

func TestVersionCommandShort(t *testing.T) {
	out, err := execute(t, NewVersionCmd(fakeVersionClient{v: "1.2.3"}), "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestLazyCoreVersionIncludesCommit(t *testing.T) {
	origVersion, origCommit := version.Version, version.Commit
	defer func() { version.Version, version.Commit = origVersion, origCommit }()

	version.Version = "0.5.0"
	version.Commit = "def5678"
	assert.Equal(t, "0.5.0+def5678", newLazyCore().Version())
}

func TestNewVersionCmdPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewVersionCmd(nil) })
}
