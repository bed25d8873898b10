// Package logger writes the client's log to a file. The terminal belongs to
// the TUI, so nothing is ever printed to stdout or stderr from here.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

var (
	levelVar = new(slog.LevelVar)
	out      = slog.New(slog.NewTextHandler(io.Discard, nil))
	session  = uuid.NewString()
)

// Init opens path for appending and routes all further logging there.
func Init(path string, debug bool) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	mu.Lock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	mu.Unlock()

	SetOutput(f, debug)
	Info("logger initialized at %s", path)
	return nil
}

// SetOutput routes logging to w. Tests use it with a buffer.
func SetOutput(w io.Writer, debug bool) {
	mu.Lock()
	defer mu.Unlock()

	if debug {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar})
	out = slog.New(handler).With("session", session)
}

// Session is the id attached to every line written by this process.
func Session() string {
	return session
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	l := out
	mu.Unlock()

	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }
func Info(format string, args ...any)  { logf(slog.LevelInfo, format, args...) }
func Warn(format string, args ...any)  { logf(slog.LevelWarn, format, args...) }
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// Close flushes and closes the log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	out = slog.New(slog.NewTextHandler(io.Discard, nil))
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
