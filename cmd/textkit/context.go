package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"textkit/internal/config"
	"textkit/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	runOnce sync.Once
	runID   string
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		fallback := config.Default()
		return &fallback
	}
	return cfg
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// commandLogger returns a logger tagged with the command's component name
// and this invocation's run ID. Logging must never block a command, so
// construction failures degrade to a no-op logger.
func (c *commandContext) commandLogger(component string) *slog.Logger {
	logger, err := c.ensureLogger()
	if err != nil || logger == nil {
		logger = logging.NewNop()
	}
	return logging.NewComponentLogger(logger, component).With(
		logging.String(logging.FieldRunID, c.ensureRunID()),
	)
}

func (c *commandContext) ensureRunID() string {
	c.runOnce.Do(func() {
		c.runID = uuid.NewString()
	})
	return c.runID
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
