package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerWritesAtOrAboveLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "daytally.log")
	logger, closer, err := NewLogger(path, "warn")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("hidden detail")
	logger.Warn("could not save", "namespace", "calendar-theme-2025")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "could not save") || !strings.Contains(out, "calendar-theme-2025") {
		t.Fatalf("expected warning in log: %q", out)
	}
	if strings.Contains(out, "hidden detail") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, prefix) {
		t.Fatalf("expected prefix in log: %q", out)
	}
}

func TestNewLoggerWithoutPathDiscards(t *testing.T) {
	logger, closer, err := NewLogger("", "")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	defer closer.Close()
	if logger.GetLevel() != log.WarnLevel {
		t.Fatalf("expected default warn level, got %v", logger.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel(" DEBUG ")
	if err != nil || lvl != log.DebugLevel {
		t.Fatalf("unexpected parse result: %v %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, _, err := NewLogger("", "loud"); err == nil {
		t.Fatal("expected NewLogger to reject unknown level")
	}
}
