package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeMatching()
	c.normalizeCatalog()
	c.normalizeInput()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeMatching() {
	c.Matching.Extensions = NormalizeExtensions(c.Matching.Extensions)
	if len(c.Matching.Extensions) == 0 {
		c.Matching.Extensions = defaultExtensions()
	}
}

// NormalizeExtensions lowercases each extension, ensures a leading dot, and
// drops blanks and duplicates while keeping the first-seen order.
func NormalizeExtensions(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, ext := range values {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimLeft(ext, ".")
		if ext == "" {
			continue
		}
		ext = "." + ext
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

func (c *Config) normalizeCatalog() {
	tags := make([]string, 0, len(c.Catalog.RecordTags))
	seen := make(map[string]struct{}, len(c.Catalog.RecordTags))
	for _, tag := range c.Catalog.RecordTags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = defaultRecordTags()
	}
	c.Catalog.RecordTags = tags
}

func (c *Config) normalizeInput() {
	c.Input.Format = strings.ToLower(strings.TrimSpace(c.Input.Format))
	if c.Input.Format == "" {
		c.Input.Format = defaultInputFormat
	}
	c.Input.BaseURL = strings.TrimSpace(c.Input.BaseURL)
}

func (c *Config) normalizeOutput() error {
	c.Output.Extension = strings.TrimSpace(c.Output.Extension)
	if c.Output.Extension == "" {
		c.Output.Extension = defaultOutputExtension
	} else if !strings.HasPrefix(c.Output.Extension, ".") {
		c.Output.Extension = "." + c.Output.Extension
	}
	if strings.TrimSpace(c.Output.LogDir) != "" {
		var err error
		if c.Output.LogDir, err = expandPath(strings.TrimSpace(c.Output.LogDir)); err != nil {
			return fmt.Errorf("output.log_dir: %w", err)
		}
	}
	c.Output.RejectedLog = strings.TrimSpace(c.Output.RejectedLog)
	if c.Output.RejectedLog == "" {
		c.Output.RejectedLog = defaultRejectedLog
	}
	c.Output.MissingLog = strings.TrimSpace(c.Output.MissingLog)
	if c.Output.MissingLog == "" {
		c.Output.MissingLog = defaultMissingLog
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if len(c.Logging.OutputPaths) == 0 {
		c.Logging.OutputPaths = []string{"stderr"}
	}
}
