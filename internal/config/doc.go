// Package config loads, normalizes, and validates textkit configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every
// knob the CLI needs: analysis defaults (window size, word filters),
// output rendering (format, color, sorting, row caps), and logging.
//
// Always obtain settings through this package so downstream code
// receives sanitized values, canonical log formats, and clear validation
// errors.
package config
