package config

import (
	"os"
	"path/filepath"
)

// keySpec describes one configuration key.
type keySpec struct {
	name     string
	doc      string
	def      func() string
	validate Validator
}

func fixed(v string) func() string { return func() string { return v } }

// xdgDir returns $<env>/pairup, falling back to $HOME/<fallback>/pairup.
func xdgDir(env string, fallback ...string) func() string {
	return func() string {
		base := os.Getenv(env)
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(append([]string{home}, fallback...)...)
		}
		return filepath.Join(base, "pairup")
	}
}

var schema = []keySpec{
	{name: "config_dir", doc: "Directory holding config.toml.", def: xdgDir("XDG_CONFIG_HOME", ".config")},
	{name: "state_dir", doc: "Directory for state.json, state.db, the lock and logs.", def: xdgDir("XDG_STATE_HOME", ".local", "state")},
	{name: "storage_backend", doc: "memory, file, sqlite or redis.", def: fixed("file"),
		validate: oneOf("memory", "file", "sqlite", "redis")},
	{name: "redis_url", doc: "Redis connection URL for the redis backend.", def: fixed("redis://localhost:6379/0")},
	{name: "redis_prefix", doc: "Namespace prepended to every redis key.", def: fixed("pairup:"), validate: keyPrefix()},
	{name: "unread_seed", doc: "Unread notification count on first run.", def: fixed("4"), validate: intAtLeast(0)},
	{name: "match_queue_chat", doc: "Initial waiting count shown for random chat.", def: fixed("12"), validate: intAtLeast(1)},
	{name: "match_queue_video", doc: "Initial waiting count shown for random video.", def: fixed("7"), validate: intAtLeast(1)},
	{name: "logging_enabled", doc: "Write JSON logs under state_dir/logs.", def: fixed("false"), validate: boolean()},
	{name: "logging_level", doc: "debug, info, warn or error.", def: fixed("info"),
		validate: oneOf("debug", "info", "warn", "error")},
	{name: "logging_max_files", doc: "Log files kept before the oldest is removed.", def: fixed("10"), validate: intAtLeast(1)},
	{name: "debug", doc: "Print debug output and structured entries.", def: fixed("false"), validate: boolean()},
	{name: "quiet", doc: "Suppress informational output.", def: fixed("false"), validate: boolean()},
}

func lookupSpec(key string) (keySpec, bool) {
	for _, s := range schema {
		if s.name == key {
			return s, true
		}
	}
	return keySpec{}, false
}
