package colors

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// structuredOff is set while the TUI owns the terminal.
var structuredOff atomic.Bool

// StructuredLogLevel is the level field of a structured entry.
type StructuredLogLevel string

const (
	LevelDebug StructuredLogLevel = "debug"
	LevelInfo  StructuredLogLevel = "info"
	LevelWarn  StructuredLogLevel = "warn"
	LevelError StructuredLogLevel = "error"
)

// StructuredLogEntry is one JSON line on stderr. ID names the subject of the
// action, such as a storage key or a search id.
type StructuredLogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     StructuredLogLevel     `json:"level"`
	Component string                 `json:"component"`
	Action    string                 `json:"action"`
	Status    string                 `json:"status"`
	Error     string                 `json:"error,omitempty"`
	ID        string                 `json:"id,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// DisableStructuredLogging stops structured entries, e.g. under the TUI's
// alternate screen.
func DisableStructuredLogging() { structuredOff.Store(true) }

// EnableStructuredLogging resumes structured entries.
func EnableStructuredLogging() { structuredOff.Store(false) }

// StructuredLog writes entry-per-line JSON to stderr. It is silent unless
// debug output is on.
func StructuredLog(level StructuredLogLevel, component, action, status string, err error, id string, fields map[string]interface{}) {
	if !debugEnabled || structuredOff.Load() {
		return
	}

	entry := StructuredLogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: component,
		Action:    action,
		Status:    status,
		ID:        id,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	outMu.Lock()
	defer outMu.Unlock()
	if encErr := json.NewEncoder(stderr).Encode(entry); encErr != nil {
		// Unencodable fields: retry without them.
		entry.Fields = map[string]interface{}{"encode_error": encErr.Error()}
		_ = json.NewEncoder(stderr).Encode(entry)
	}
}

// StructuredDebug logs at debug level.
func StructuredDebug(component, action, status string, err error, id string, fields map[string]interface{}) {
	StructuredLog(LevelDebug, component, action, status, err, id, fields)
}

// StructuredInfo logs at info level.
func StructuredInfo(component, action, status string, err error, id string, fields map[string]interface{}) {
	StructuredLog(LevelInfo, component, action, status, err, id, fields)
}

// StructuredWarn logs at warn level.
func StructuredWarn(component, action, status string, err error, id string, fields map[string]interface{}) {
	StructuredLog(LevelWarn, component, action, status, err, id, fields)
}

// StructuredError logs at error level.
func StructuredError(component, action, status string, err error, id string, fields map[string]interface{}) {
	StructuredLog(LevelError, component, action, status, err, id, fields)
}
