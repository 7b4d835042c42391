// Package app provides TUI application adapters for command wiring.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner wraps tea.NewProgram with the alternate screen.
type DefaultProgramRunner struct {
	opts []tea.ProgramOption
}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner(opts ...tea.ProgramOption) *DefaultProgramRunner {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &DefaultProgramRunner{opts: opts}
}

// Run starts a bubbletea program with the given model and blocks until it exits.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	_, err := tea.NewProgram(model, r.opts...).Run()
	return err
}
