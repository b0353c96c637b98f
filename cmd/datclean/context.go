package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"datclean/internal/config"
)

// commandContext carries state shared by every command of one invocation.
// The configuration is loaded at most once.
type commandContext struct {
	configFlag *string

	once         sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configPath, c.configExists, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

// shouldSkipConfig reports whether cmd or an ancestor opted out of the
// config load in PersistentPreRunE.
func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
