package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"datclean/internal/config"
)

// ConfigOption customizes the configuration returned by NewConfig.
type ConfigOption func(*config.Config)

// NewConfig returns the default configuration with its log directory moved
// into a per-test temp directory, then applies opts in order.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Output.LogDir = filepath.Join(t.TempDir(), "logs")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithExtensions replaces the archive extension list.
func WithExtensions(exts ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.Extensions = config.NormalizeExtensions(exts)
	}
}

// WithRecordTags replaces the catalog record element names.
func WithRecordTags(tags ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.RecordTags = tags
	}
}

// WithProgressInterval overrides the progress logging cadence.
func WithProgressInterval(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Progress.Interval = n
	}
}

// WithLogging sets the log format and level.
func WithLogging(format, level string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Format = format
		cfg.Logging.Level = level
	}
}

// BaseDir returns the temp directory that holds cfg's log directory.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Output.LogDir)
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	writeFile(t, path, data)
}
