package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeAnalysis()
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeAnalysis() {
	// Stop words are compared against normalized words, so they must be
	// lowercase themselves.
	cleaned := make([]string, 0, len(c.Analysis.StopWords))
	for _, word := range c.Analysis.StopWords {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		cleaned = append(cleaned, word)
	}
	c.Analysis.StopWords = cleaned
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultOutputColor
	}
	c.Output.Sort = strings.ToLower(strings.TrimSpace(c.Output.Sort))
	if c.Output.Sort == "" {
		c.Output.Sort = defaultOutputSort
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		expanded, err := expandPath(c.Logging.File)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
