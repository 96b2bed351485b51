package config

const (
	defaultWindow        = 2
	defaultMinWordLength = 0
	defaultOutputFormat  = "auto"
	defaultOutputColor   = "auto"
	defaultOutputSort    = "count"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			DefaultWindow: defaultWindow,
			MinWordLength: defaultMinWordLength,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  defaultOutputColor,
			Sort:   defaultOutputSort,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
