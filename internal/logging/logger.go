package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"datclean/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	// Level is debug, info, warn, or error. Unknown values fall back to info.
	Level string
	// Format is "console" (default) or "json".
	Format string
	// OutputPaths lists "stdout", "stderr", or file paths. Empty means stderr.
	OutputPaths []string
	// RunID, when set, is attached to every record as run_id.
	RunID string
	// Development forces source locations on regardless of level.
	Development bool
	// Stderr replaces os.Stderr for the "stderr" output path.
	Stderr io.Writer
}

// New constructs a slog logger using the provided options. The returned
// close func releases any log files New opened; call it once logging is done.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := parseLevel(opts.Level)
	source := opts.Development || level <= slog.LevelDebug

	out, closeOutputs, err := resolveOutputs(opts.OutputPaths, opts.Stderr)
	if err != nil {
		return nil, nil, err
	}

	var handler slog.Handler
	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "", "console":
		handler = newConsoleHandler(out, level, source)
	case "json":
		handler = newJSONHandler(out, level, source)
	default:
		_ = closeOutputs()
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	if id := strings.TrimSpace(opts.RunID); id != "" {
		handler = newRunIDHandler(handler, id)
	}
	return slog.New(handler), closeOutputs, nil
}

// NewFromConfig builds the logger described by cfg.Logging. stderr, when
// non-nil, receives records routed to the "stderr" output path.
func NewFromConfig(cfg *config.Config, runID string, stderr io.Writer) (*slog.Logger, func() error, error) {
	opts := Options{Level: "info", RunID: runID, Stderr: stderr}
	if cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
		opts.OutputPaths = cfg.Logging.OutputPaths
	}
	return New(opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// resolveOutputs opens every distinct output path and fans records out to
// all of them. The close func closes the files it opened, never stdout or
// stderr.
func resolveOutputs(paths []string, stderr io.Writer) (io.Writer, func() error, error) {
	if stderr == nil {
		stderr = os.Stderr
	}

	var (
		writers []io.Writer
		opened  []string
		files   []*os.File
	)
	closeFiles := func() error {
		var errs []error
		for _, file := range files {
			errs = append(errs, file.Close())
		}
		files = nil
		return errors.Join(errs...)
	}
	for _, raw := range paths {
		path := strings.TrimSpace(raw)
		if path == "" || slices.Contains(opened, path) {
			continue
		}
		opened = append(opened, path)

		switch path {
		case "stderr":
			writers = append(writers, stderr)
		case "stdout":
			writers = append(writers, os.Stdout)
		default:
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					_ = closeFiles()
					return nil, nil, fmt.Errorf("create log directory %s: %w", dir, err)
				}
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				_ = closeFiles()
				return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
			}
			files = append(files, file)
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return stderr, closeFiles, nil
	case 1:
		return writers[0], closeFiles, nil
	default:
		return io.MultiWriter(writers...), closeFiles, nil
	}
}
