package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/daytally/internal/storage"
	"github.com/sandeepkv93/daytally/internal/telemetry"
	"github.com/sandeepkv93/daytally/internal/tracker"
	"github.com/sandeepkv93/daytally/internal/update"
)

// session is one opened backend plus the tracker reading from it.
type session struct {
	backend storage.Backend
	tracker *tracker.Tracker
	logger  *log.Logger
	logs    io.Closer
}

// openSession resolves the data dir, opens the backend and loads the year.
// The TUI owns the terminal, so it only logs to a file; the CLI may log to
// stderr.
func openSession(cfg update.RuntimeConfig, stderrLogs bool) (*session, error) {
	if !cfg.Store.IsValid() {
		return nil, fmt.Errorf("unknown store %q (want sqlite, file or memory)", cfg.Store)
	}
	var (
		logger *log.Logger
		logs   io.Closer = nopCloser{}
	)
	if cfg.LogFile == "" && stderrLogs {
		logger = telemetry.NewStderrLogger(cfg.LogLevel)
	} else {
		l, closer, err := telemetry.NewLogger(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logger, logs = l, closer
	}

	dataDir := cfg.DataDir
	if cfg.Store != storage.KindMemory {
		dir, err := storage.ResolveDataDir(cfg.DataDir)
		if err != nil {
			_ = logs.Close()
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		dataDir = dir
	}
	backend, err := storage.OpenBackend(cfg.Store, dataDir)
	if err != nil {
		_ = logs.Close()
		return nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	opts := cfg.TrackerOptions()
	opts.Logger = logger
	tr := tracker.New(backend, opts)
	if n := tr.Dropped(); n > 0 {
		logger.Info("ignored stored days outside the year", "year", tr.Year(), "dropped", n)
	}
	logger.Debug("session opened", "store", cfg.Store, "dir", dataDir, "year", tr.Year())
	return &session{backend: backend, tracker: tr, logger: logger, logs: logs}, nil
}

func (s *session) Close() error {
	return errors.Join(s.backend.Close(), s.logs.Close())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
