package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.DefaultWindow < 1 {
		return fmt.Errorf("analysis.default_window must be at least 1, got %d", c.Analysis.DefaultWindow)
	}
	if c.Analysis.MinWordLength < 0 {
		return fmt.Errorf("analysis.min_word_length must not be negative, got %d", c.Analysis.MinWordLength)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "auto", "table", "plain", "json":
	default:
		return fmt.Errorf("output.format: unsupported value %q (want auto, table, plain, or json)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unsupported value %q (want auto, always, or never)", c.Output.Color)
	}
	switch c.Output.Sort {
	case "count", "word":
	default:
		return fmt.Errorf("output.sort: unsupported value %q (want count or word)", c.Output.Sort)
	}
	if c.Output.MaxRows < 0 {
		return fmt.Errorf("output.max_rows must not be negative, got %d", c.Output.MaxRows)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn, or error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	return nil
}
