package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Progress.Interval <= 0 {
		return errors.New("progress.interval must be positive")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if len(c.Matching.Extensions) == 0 {
		return errors.New("matching.extensions must include at least one extension")
	}
	for _, ext := range c.Matching.Extensions {
		if strings.ContainsAny(ext, "/\\") {
			return fmt.Errorf("matching.extensions: %q must not contain path separators", ext)
		}
	}
	return nil
}

func (c *Config) validateInput() error {
	switch c.Input.Format {
	case "auto", "lines", "html":
		return nil
	default:
		return fmt.Errorf("input.format must be one of auto, lines, html (got %q)", c.Input.Format)
	}
}

func (c *Config) validateOutput() error {
	for key, name := range map[string]string{
		"output.rejected_log": c.Output.RejectedLog,
		"output.missing_log":  c.Output.MissingLog,
	} {
		if filepath.Base(name) != name {
			return fmt.Errorf("%s must be a file name, not a path (got %q); use output.log_dir for the directory", key, name)
		}
	}
	if c.Output.RejectedLog == c.Output.MissingLog {
		return errors.New("output.rejected_log and output.missing_log must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}
