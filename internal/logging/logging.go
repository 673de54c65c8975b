// Package logging configures the application's slog logger. The
// console owns the terminal, so diagnostics go to a rotating file
// rather than stderr; anomalies like edit/delete on a stale id are
// invisible to the user but recoverable from the log.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
type Options struct {
	Level string // debug|info|warn|error, default info
	File  string // log file path; empty disables file logging
}

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// DefaultPath returns the default rotating log file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".otify", "console.log")
}

// Init configures the global logger. With an empty File all output is
// discarded, which keeps tests and non-interactive runs quiet.
func Init(opts Options) {
	var w io.Writer = io.Discard
	if strings.TrimSpace(opts.File) != "" {
		w = &lj.Logger{Filename: opts.File, MaxSize: 5, MaxBackups: 2, MaxAge: 14}
	}
	l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(opts.Level)}))
	mu.Lock()
	logger = l
	mu.Unlock()
	slog.SetDefault(l)
}

// L returns the configured application logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// WithComponent returns a logger tagged with a component attribute.
func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
