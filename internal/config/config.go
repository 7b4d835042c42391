// Package config loads pairup's settings from defaults, an optional TOML file
// and PAIRUP_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/pairup/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// FileModeDir is the permission for created directories.
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for written files.
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the config file extension.
	FileExtTOML = ".toml"

	// EnvPrefix is the prefix of environment variables that override config keys.
	// PAIRUP_CONFIG_PATH names an explicit config file.
	EnvPrefix = "PAIRUP_"
)

var (
	mu       sync.RWMutex
	values   map[string]string
	defaults map[string]string
)

// Load rebuilds the configuration. Safe to call repeatedly; tests call it
// after changing the environment.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	defaults = make(map[string]string, len(schema))
	for _, s := range schema {
		defaults[s.name] = s.def()
	}
	values = make(map[string]string, len(defaults))
	for k, v := range defaults {
		values[k] = v
	}

	env := envOverrides()
	// config_dir may itself come from the environment.
	if dir, ok := env["config_dir"]; ok {
		values["config_dir"] = dir
	}
	path := configFilePath()
	if path != "" {
		for k, v := range readFile(path) {
			values[k] = v
		}
	}
	for k, v := range env {
		values[k] = v
	}

	for k, v := range values {
		values[k] = normalize(k, v)
	}
	if path == "" {
		writeSample()
	}
}

func envOverrides() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		if key == "config_path" {
			continue
		}
		out[key] = value
	}
	return out
}

// configFilePath returns PAIRUP_CONFIG_PATH, or config_dir/config.toml if it
// exists, or "".
func configFilePath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG_PATH"); p != "" {
		return p
	}
	p := filepath.Join(values["config_dir"], "config"+FileExtTOML)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func readFile(path string) map[string]string {
	if !strings.EqualFold(filepath.Ext(path), FileExtTOML) {
		colors.Warning(fmt.Sprintf("ignoring config file %s: not a %s file", path, FileExtTOML))
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", path, err))
		return nil
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", path, err))
		return nil
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		key := strings.ToLower(k)
		switch t := v.(type) {
		case string:
			out[key] = t
		case int64:
			out[key] = strconv.FormatInt(t, 10)
		case float64:
			out[key] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[key] = strconv.FormatBool(t)
		default:
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
		}
	}
	return out
}

// normalize runs key's validator, falling back to the default on rejection.
// Keys outside the schema pass through.
func normalize(key, value string) string {
	spec, ok := lookupSpec(key)
	if !ok || spec.validate == nil {
		return value
	}
	if strings.TrimSpace(value) == "" {
		return defaults[key]
	}
	v, err := spec.validate(value)
	if err != nil {
		colors.Warning(fmt.Sprintf("invalid %s value %q: %v; using default %q", key, value, err, defaults[key]))
		return defaults[key]
	}
	return v
}

// writeSample writes a commented config.toml listing every key and its
// default, unless one exists.
func writeSample() {
	dir := values["config_dir"]
	if dir == "" {
		return
	}
	path := filepath.Join(dir, "config"+FileExtTOML)
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", dir, err))
		return
	}

	var b strings.Builder
	b.WriteString("# pairup configuration\n# This file is in TOML format.\n# Uncomment and edit values as needed.\n")
	for _, s := range schema {
		line, err := toml.Marshal(map[string]any{s.name: typed(defaults[s.name])})
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n# %s\n# %s", s.doc, line)
	}
	if err := os.WriteFile(path, []byte(b.String()), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", path, err))
	}
}

// typed converts a string default back to the TOML type it represents.
func typed(v string) any {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

// Get returns a configuration value or defaultValue if unset.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if v, ok := values[key]; ok {
		return v
	}
	return defaultValue
}

// GetInt returns a configuration value as an int, or defaultValue if unset or
// not a number.
func GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as a bool, or defaultValue if unset
// or not a boolean.
func GetBool(key string, defaultValue bool) bool {
	b, ok := parseBool(Get(key, ""))
	if !ok {
		return defaultValue
	}
	return b
}

// Set overrides a value in memory, applying the key's validator.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if values == nil {
		values = make(map[string]string)
		defaults = make(map[string]string)
	}
	values[key] = normalize(key, value)
}
