package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/cristianoliveira/pairup/internal/config"
)

const (
	FileModeDir  os.FileMode = 0755
	FileModeFile os.FileMode = 0644
)

var errNoStateDir = errors.New("state_dir not configured")

// stateRoot remembers the resolved state directory for the process.
type stateRoot struct {
	mu       sync.Mutex
	resolved bool
	dir      string
	err      error
}

var root stateRoot

func (r *stateRoot) resolve() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved {
		return r.dir, r.err
	}

	config.Load()
	r.dir = config.Get("state_dir", "")
	colors.Debug("state_dir: " + r.dir)
	if r.dir == "" {
		r.err = fmt.Errorf("storage init: %w", errNoStateDir)
	} else if err := os.MkdirAll(r.dir, FileModeDir); err != nil {
		r.err = fmt.Errorf("storage init: create state directory: %w", err)
	}
	r.resolved = true
	return r.dir, r.err
}

func (r *stateRoot) current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved && r.dir != "" {
		return r.dir
	}
	return config.Get("state_dir", "")
}

func (r *stateRoot) forget() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved, r.dir, r.err = false, "", nil
}

// Init loads configuration and creates the state directory. The outcome is
// cached until Reset.
func Init() error {
	start := time.Now()
	_, err := root.resolve()

	fields := map[string]interface{}{"duration_seconds": time.Since(start).Seconds()}
	if err != nil {
		colors.StructuredError("storage", "init", "failed", err, "", fields)
		return err
	}
	colors.StructuredDebug("storage", "init", "completed", nil, "", fields)
	return nil
}

// GetStateDir returns the directory resolved by Init, or the configured one
// if Init has not run.
func GetStateDir() string { return root.current() }

// Reset drops the cached Init outcome.
func Reset() { root.forget() }
