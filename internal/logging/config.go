package logging

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/pairup/internal/config"
)

// filePrefix starts every log file name so rotation never touches foreign files.
const filePrefix = "pairup_"

// Config controls file logging.
type Config struct {
	Enabled  bool
	Level    string
	MaxFiles int
	// Dir overrides LogDir when set.
	Dir     string
	Command string
	PID     int
}

// DefaultConfig describes a disabled info-level logger for this process.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig reads the logging_* keys. debug wins over quiet; quiet
// raises the level to error.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", cfg.Enabled)
	cfg.MaxFiles = config.GetInt("logging_max_files", cfg.MaxFiles)

	cfg.Level = config.Get("logging_level", cfg.Level)
	if config.GetBool("quiet", false) {
		cfg.Level = "error"
	}
	if config.GetBool("debug", false) {
		cfg.Level = "debug"
	}
	return cfg
}

// LogDir picks the first writable candidate out of state_dir/logs and a
// directory under os.TempDir.
func LogDir() (string, error) {
	var candidates []string
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		candidates = append(candidates, filepath.Join(stateDir, "logs"))
	}
	candidates = append(candidates, filepath.Join(os.TempDir(), "pairup", "logs"))

	var errs []error
	for _, dir := range candidates {
		if err := ensureWritable(dir); err != nil {
			errs = append(errs, err)
			continue
		}
		return dir, nil
	}
	return "", errors.Join(errs...)
}

func ensureWritable(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
