// Package logging routes slog output to a file. The TUI owns the terminal,
// so nothing is logged to stdout or stderr while it runs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup opens path for appending and installs a text handler at level as
// the default logger. The returned closer restores a discarding logger and
// closes the file.
func Setup(path string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(New(f, level))
	slog.Debug("logging started", "pid", os.Getpid())
	return closer{f}, nil
}

// New builds a logger writing text records to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard installs a logger that drops everything.
func Discard() {
	slog.SetDefault(New(io.Discard, slog.LevelError))
}

type closer struct{ f *os.File }

func (c closer) Close() error {
	Discard()
	return c.f.Close()
}
