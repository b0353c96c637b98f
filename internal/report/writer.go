package report

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"datclean/internal/fileutil"
	"datclean/internal/logging"
	"datclean/internal/matcher"
)

// Paths names the three artifacts a run produces.
type Paths struct {
	Kept     string `json:"kept"`
	Rejected string `json:"rejected"`
	Missing  string `json:"missing"`
}

// Writer persists a matcher.Result as newline-terminated lists.
type Writer struct {
	paths   Paths
	lockDir string
	logger  *slog.Logger
}

// NewWriter builds a Writer. lockDir is guarded against concurrent runs along
// with the directory of every artifact; empty means the working directory.
func NewWriter(paths Paths, lockDir string, logger *slog.Logger) *Writer {
	return &Writer{
		paths:   paths,
		lockDir: lockDir,
		logger:  logging.NewComponentLogger(logger, "report"),
	}
}

// Write publishes kept URLs, rejected URLs, and unmatched catalog names. Every
// file is written even when its list is empty.
func (w *Writer) Write(res matcher.Result) error {
	var locks []*fileutil.DirLock
	defer func() {
		for _, lock := range locks {
			if err := lock.Unlock(); err != nil {
				w.logger.Warn("failed to release output lock", logging.String(logging.FieldPath, lock.Path()), logging.Error(err))
			}
		}
	}()
	for _, dir := range w.lockDirs() {
		lock, err := fileutil.LockDir(dir)
		if err != nil {
			return err
		}
		locks = append(locks, lock)
	}

	artifacts := []struct {
		label string
		path  string
		lines []string
	}{
		{"kept", w.paths.Kept, res.Kept},
		{"rejected", w.paths.Rejected, res.Rejected},
		{"missing", w.paths.Missing, res.Remaining},
	}
	for _, a := range artifacts {
		if err := writeList(a.path, a.lines); err != nil {
			return fmt.Errorf("write %s list: %w", a.label, err)
		}
		w.logger.Info("wrote list",
			logging.String("list", a.label),
			logging.String(logging.FieldPath, a.path),
			logging.Int("count", len(a.lines)),
		)
	}
	return nil
}

// lockDirs returns each distinct directory the run writes into, sorted.
func (w *Writer) lockDirs() []string {
	candidates := []string{
		w.lockDir,
		filepath.Dir(w.paths.Kept),
		filepath.Dir(w.paths.Rejected),
		filepath.Dir(w.paths.Missing),
	}
	dirs := make([]string, 0, len(candidates))
	for _, dir := range candidates {
		if dir == "" {
			dir = "."
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		dir = filepath.Clean(dir)
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	slices.Sort(dirs)
	return dirs
}

func writeList(path string, lines []string) error {
	if err := fileutil.EnsureParent(path); err != nil {
		return err
	}
	return fileutil.WriteLinesAtomic(path, lines, 0o644)
}
