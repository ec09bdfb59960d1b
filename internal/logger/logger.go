// Package logger writes structured JSON logs to a rotating file. The
// terminal belongs to the editor, so nothing is ever logged to stdout or
// stderr once the logger is initialised.
package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// counter tallies warnings and errors for the status bar in debug mode.
type counter struct {
	mu         sync.Mutex
	warnCount  int
	errorCount int
}

func (c *counter) add(level slog.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if level >= slog.LevelError {
		c.errorCount++
	} else if level >= slog.LevelWarn {
		c.warnCount++
	}
}

func (c *counter) get() (warn, err int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warnCount, c.errorCount
}

// countingHandler wraps another handler to count WARN and ERROR records.
type countingHandler struct {
	inner   slog.Handler
	counter *counter
}

func (h *countingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *countingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.counter.add(r.Level)
	}
	return h.inner.Handle(ctx, r)
}

func (h *countingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &countingHandler{inner: h.inner.WithAttrs(attrs), counter: h.counter}
}

func (h *countingHandler) WithGroup(name string) slog.Handler {
	return &countingHandler{inner: h.inner.WithGroup(name), counter: h.counter}
}

var (
	// Log is the global structured logger
	Log *slog.Logger
	// logWriter is the rotating log writer
	logWriter *lumberjack.Logger
	// LogPath is the path to the current log file
	LogPath string
	// Session identifies this run in the log file
	Session string

	counts       *counter
	debugEnabled bool
)

// DefaultPath returns ~/.config/tedit/tedit.log, or a file in the temp
// directory when there is no home directory.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}
	return filepath.Join(homeDir, ".config", "tedit", "tedit.log")
}

// InitLogger initializes the global logger at level, writing to logPath.
// If logPath is empty, DefaultPath is used. Debug mode enables debug
// records and the warning counters shown in the status bar.
func InitLogger(level slog.Level, logPath string, debug bool) error {
	debugEnabled = debug
	if debug {
		level = slog.LevelDebug
	}

	if logPath == "" {
		logPath = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return err
	}
	LogPath = logPath

	// Use lumberjack for log rotation
	logWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}

	counts = &counter{}
	jsonHandler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: level})

	Session = uuid.NewString()
	Log = slog.New(&countingHandler{inner: jsonHandler, counter: counts}).With("session", Session)
	slog.SetDefault(Log)
	return nil
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		logWriter.Close()
	}
}

// getLogger returns the global logger, or the default slog logger if not initialized.
func getLogger() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	getLogger().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}

// With creates a new logger with additional attributes
func With(args ...any) *slog.Logger {
	return getLogger().With(args...)
}

// GetCounts returns the number of warnings and errors logged so far.
func GetCounts() (warn, err int) {
	if counts == nil {
		return 0, 0
	}
	return counts.get()
}

// IsDebugEnabled returns true if debug mode is active.
func IsDebugEnabled() bool {
	return debugEnabled
}
