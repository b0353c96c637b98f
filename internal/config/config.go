package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Matching contains the substring-matching knobs.
type Matching struct {
	// Extensions are tried in order after each catalog name.
	Extensions []string `toml:"extensions"`
}

// Catalog contains dat file parsing settings.
type Catalog struct {
	RecordTags []string `toml:"record_tags"`
}

// Input contains URL list settings.
type Input struct {
	Format  string `toml:"format"`
	BaseURL string `toml:"base_url"`
}

// Output contains result file settings.
type Output struct {
	Extension   string `toml:"extension"`
	LogDir      string `toml:"log_dir"`
	RejectedLog string `toml:"rejected_log"`
	MissingLog  string `toml:"missing_log"`
}

// Progress contains progress reporting cadence.
type Progress struct {
	Interval int `toml:"interval"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format      string   `toml:"format"`
	Level       string   `toml:"level"`
	OutputPaths []string `toml:"output_paths"`
}

// Config encapsulates all configuration values for datclean.
type Config struct {
	Matching Matching `toml:"matching"`
	Catalog  Catalog  `toml:"catalog"`
	Input    Input    `toml:"input"`
	Output   Output   `toml:"output"`
	Progress Progress `toml:"progress"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the per-user configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load resolves, decodes, normalizes, and validates the configuration.
//
// With an explicit path only that file is considered. Otherwise the per-user
// file is tried, then datclean.toml in the working directory. A missing file
// is not an error: defaults are returned, exists is false, and the returned
// path is the location that would have been read.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		if err := decodeFile(resolved, &cfg); err != nil {
			return nil, "", false, err
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// decodeFile overlays the TOML at path onto cfg. Keys that do not map to a
// field are rejected so typos surface instead of silently using defaults.
func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parse config %s: %s", path, strict.String())
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	candidates, err := configCandidates(path)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, fmt.Errorf("stat config %s: %w", candidate, err)
		}
	}
	return candidates[0], false, nil
}

func configCandidates(path string) ([]string, error) {
	if strings.TrimSpace(path) != "" {
		explicit, err := expandPath(strings.TrimSpace(path))
		if err != nil {
			return nil, err
		}
		return []string{explicit}, nil
	}
	user, err := expandPath(defaultConfigPath)
	if err != nil {
		return nil, err
	}
	project, err := filepath.Abs(projectConfigName)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", projectConfigName, err)
	}
	return []string{user, project}, nil
}

// RejectedLogPath is where URLs without a catalog match are listed.
func (c *Config) RejectedLogPath() string {
	return filepath.Join(c.Output.LogDir, c.Output.RejectedLog)
}

// MissingLogPath is where unmatched catalog names are listed.
func (c *Config) MissingLogPath() string {
	return filepath.Join(c.Output.LogDir, c.Output.MissingLog)
}

// KeptPath returns the kept-URL list path for an output basename.
func (c *Config) KeptPath(basename string) string {
	return basename + c.Output.Extension
}

// expandPath resolves a leading "~" to the home directory and returns an
// absolute, cleaned path. Empty input stays empty.
func expandPath(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if value == "~" || strings.HasPrefix(value, "~/") || strings.HasPrefix(value, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		value = filepath.Join(home, value[1:])
	}
	abs, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", value, err)
	}
	return abs, nil
}

// ExpandPath applies the same "~" and absolute-path rules as config loading.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the commented sample configuration to path, creating
// parent directories.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the commented sample configuration.
func Sample() string {
	return sampleConfig
}
