// Package logging builds the per-run file logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options configures the run logger.
type Options struct {
	// Dir is the directory for log files; created if missing.
	Dir string

	// RunID names the log file: provision-<RunID>.log.
	RunID string

	// Echo, when non-nil, receives a copy of every log line (typically
	// stderr when --verbose is set).
	Echo io.Writer

	// Level is the minimum level written. Defaults to Info.
	Level slog.Level
}

// New creates a logger writing to a per-run log file. The logger is handed
// to callers explicitly; nothing here touches the process-wide default.
// The returned closer flushes and closes the log file.
func New(opts Options) (*slog.Logger, func() error, string, error) {
	if opts.Dir == "" {
		opts.Dir = DefaultDir()
	}
	if opts.RunID == "" {
		return nil, nil, "", fmt.Errorf("logging: run ID is required")
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, nil, "", fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(opts.Dir, "provision-"+opts.RunID+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to open log file: %w", err)
	}

	var w io.Writer = f
	if opts.Echo != nil {
		w = io.MultiWriter(f, opts.Echo)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.Level})
	logger := slog.New(handler).With("run_id", opts.RunID)

	return logger, f.Close, path, nil
}

// DefaultDir returns the default log directory for provisioning runs.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "vm-setup", "logs")
	}
	return filepath.Join(home, ".local", "state", "vm-setup", "logs")
}
