package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

const prefix = "daytally"

// NewLogger writes to path, or discards output when path is empty; the
// terminal belongs to the UI.
func NewLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(path) == "" {
		return newLogger(io.Discard, lvl), nopCloser{}, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, lvl), f, nil
}

// NewStderrLogger is used by the one-shot CLI subcommands.
func NewStderrLogger(level string) *log.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return newLogger(os.Stderr, lvl)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return newLogger(io.Discard, log.FatalLevel)
}

func ParseLevel(level string) (log.Level, error) {
	raw := strings.TrimSpace(strings.ToLower(level))
	if raw == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(raw)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}

func newLogger(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           lvl,
		ReportTimestamp: true,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
