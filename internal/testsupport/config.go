package testsupport

import (
	"testing"

	"textkit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config with quiet logging and deterministic plain
// output, suitable for driving commands from tests. Options are applied
// on top of the repository defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Output.Format = "plain"
	cfg.Output.Color = "never"
	cfg.Logging.Level = "error"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithOutputFormat sets the output format on the test config.
func WithOutputFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Format = format
	}
}

// WithStopWords sets the configured stop words on the test config.
func WithStopWords(words ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Analysis.StopWords = words
	}
}
