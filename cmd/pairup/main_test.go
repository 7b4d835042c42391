package main

import (
	"errors"
	"io"
	"testing"

	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/stretchr/testify/assert"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PAIRUP_CONFIG_DIR", t.TempDir())
	t.Setenv("PAIRUP_STATE_DIR", t.TempDir())
	colors.SetOutput(io.Discard, io.Discard)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
}

func TestRunSuccess(t *testing.T) {
	setupEnv(t)
	called := false
	code := run(func() error {
		called = true
		return nil
	})
	assert.True(t, called)
	assert.Equal(t, 0, code)
}

func TestRunFailure(t *testing.T) {
	setupEnv(t)
	assert.Equal(t, 1, run(func() error { return errors.New("boom") }))
}
