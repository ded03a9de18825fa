// Package log provides the categorized file logger used across regexlab.
//
// The terminal UI owns stdout, so log output only ever goes to a file. Until
// Init is called every logging call is a no-op.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the upper-case label written to the log file.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a config string ("debug", "info", "warn", "error") to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Category tags a log line with the subsystem that produced it.
type Category string

const (
	CatConfig  Category = "config"
	CatHistory Category = "history"
	CatMatch   Category = "match"
	CatUI      Category = "ui"
	CatRepl    Category = "repl"
)

type logger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
	runID string
	now   func() time.Time
}

var std = &logger{level: LevelInfo, now: time.Now}

// Init opens (or creates) the log file at path and routes all logging there.
// The returned cleanup closes the file and turns logging back into a no-op.
func Init(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	std.mu.Lock()
	std.out = f
	std.runID = uuid.NewString()
	std.mu.Unlock()

	Info(CatConfig, "Logging started", "path", path)

	return func() {
		std.mu.Lock()
		defer std.mu.Unlock()
		std.out = nil
		_ = f.Close()
	}, nil
}

// SetOutput routes logging to w. Passing nil disables logging.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.out = w
	if w != nil && std.runID == "" {
		std.runID = uuid.NewString()
	}
}

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = l
}

// RunID returns the identifier stamped on every line of the current run.
func RunID() string {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.runID
}

// Debug logs at debug level.
func Debug(cat Category, msg string, kv ...any) { std.write(LevelDebug, cat, msg, kv) }

// Info logs at info level.
func Info(cat Category, msg string, kv ...any) { std.write(LevelInfo, cat, msg, kv) }

// Warn logs at warn level.
func Warn(cat Category, msg string, kv ...any) { std.write(LevelWarn, cat, msg, kv) }

// Error logs at error level.
func Error(cat Category, msg string, kv ...any) { std.write(LevelError, cat, msg, kv) }

// ErrorErr logs err at error level under the "error" key.
func ErrorErr(cat Category, msg string, err error, kv ...any) {
	std.write(LevelError, cat, msg, append([]any{"error", err}, kv...))
}

func (l *logger) write(level Level, cat Category, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out == nil || level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(l.now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		var val any = "(MISSING)"
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		fmt.Fprintf(&b, " %s=%s", key, formatValue(val))
	}
	if l.runID != "" {
		fmt.Fprintf(&b, " run=%s", l.runID)
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.out, b.String())
}

func formatValue(v any) string {
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
