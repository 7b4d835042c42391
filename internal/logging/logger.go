// Package logging writes structured JSON logs for pairup through
// charmbracelet/log. Sensitive fields are masked before they are written.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/pairup/internal/colors"
)

// Logger is the structured logger used across pairup.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a child logger that adds args to every entry.
	With(args ...any) Logger
	// Shutdown closes the underlying log file. Children share it.
	Shutdown() error
}

// sink owns the destination shared by a logger and its children.
type sink struct {
	mu     sync.Mutex
	closer io.Closer
	path   string
}

func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

type jsonLogger struct {
	out   *clog.Logger
	sink  *sink
	redac *redactor
}

// Init builds a logger from cfg. A disabled cfg yields a no-op logger.
// Old files are rotated out before a new one is opened.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}

	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = LogDir(); err != nil {
			return nil, fmt.Errorf("logging: resolve log directory: %w", err)
		}
	}
	if err := rotate(dir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}

	path := filepath.Join(dir, logFileName(cfg, time.Now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return newJSONLogger(f, cfg, &sink{closer: f, path: path}), nil
}

// logFileName yields pairup_<timestamp>_PID<pid>_<command>.log.
func logFileName(cfg Config, now time.Time) string {
	command := strings.Join(strings.Fields(cfg.Command), "_")
	return fmt.Sprintf("%s%s_PID%d_%s.log", filePrefix, now.Format("20060102_150405"), cfg.PID, command)
}

// NewWriterLogger logs JSON to w at the given level.
func NewWriterLogger(w io.Writer, level string) Logger {
	cfg := DefaultConfig()
	cfg.Level = level
	return newJSONLogger(w, cfg, &sink{})
}

func newJSONLogger(w io.Writer, cfg Config, s *sink) *jsonLogger {
	out := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       clog.JSONFormatter,
	})
	return &jsonLogger{
		out:   out.With("pid", cfg.PID, "command", cfg.Command),
		sink:  s,
		redac: newRedactor(),
	}
}

var levelNames = map[string]clog.Level{
	"debug":   clog.DebugLevel,
	"info":    clog.InfoLevel,
	"warn":    clog.WarnLevel,
	"warning": clog.WarnLevel,
	"error":   clog.ErrorLevel,
}

// parseLevel maps a level name to clog.Level, defaulting to info.
func parseLevel(name string) clog.Level {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lvl
	}
	return clog.InfoLevel
}

func (l *jsonLogger) Debug(msg string, args ...any) { l.emit(clog.DebugLevel, msg, args) }
func (l *jsonLogger) Info(msg string, args ...any)  { l.emit(clog.InfoLevel, msg, args) }
func (l *jsonLogger) Warn(msg string, args ...any)  { l.emit(clog.WarnLevel, msg, args) }
func (l *jsonLogger) Error(msg string, args ...any) { l.emit(clog.ErrorLevel, msg, args) }

func (l *jsonLogger) emit(level clog.Level, msg string, args []any) {
	l.out.Log(level, msg, l.redac.redact(args)...)
}

func (l *jsonLogger) With(args ...any) Logger {
	return &jsonLogger{
		out:   l.out.With(l.redac.redact(args)...),
		sink:  l.sink,
		redac: l.redac,
	}
}

func (l *jsonLogger) Shutdown() error { return l.sink.close() }

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

// Noop returns a logger that discards everything.
func Noop() Logger { return noopLogger{} }

// global is the process-wide logger installed by InitGlobal.
var global struct {
	mu     sync.RWMutex
	once   sync.Once
	logger Logger
}

// InitGlobal installs the process logger from the global config and routes
// colors' structured entries to it. Only the first call has any effect.
func InitGlobal() error {
	var err error
	global.once.Do(func() {
		var l Logger
		if l, err = Init(FromGlobalConfig()); err != nil {
			return
		}
		global.mu.Lock()
		global.logger = l
		global.mu.Unlock()

		colors.SetLogger(l)
		if path := CurrentLogFile(); path != "" {
			colors.Debug("Logging to file:", path)
		}
	})
	return err
}

// GetGlobal returns the process logger, or a no-op logger before InitGlobal.
func GetGlobal() Logger {
	global.mu.RLock()
	defer global.mu.RUnlock()
	if global.logger == nil {
		return noopLogger{}
	}
	return global.logger
}

func Debug(msg string, args ...any) { GetGlobal().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetGlobal().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetGlobal().Warn(msg, args...) }
func Error(msg string, args ...any) { GetGlobal().Error(msg, args...) }

// With returns a child of the process logger.
func With(args ...any) Logger { return GetGlobal().With(args...) }

// ShutdownGlobal closes the process log file, if any.
func ShutdownGlobal() error { return GetGlobal().Shutdown() }

// CurrentLogFile returns the active process log file, or "".
func CurrentLogFile() string {
	if l, ok := GetGlobal().(*jsonLogger); ok {
		return l.sink.path
	}
	return ""
}
