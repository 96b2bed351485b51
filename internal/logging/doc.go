// Package logging assembles structured slog loggers and formatting helpers
// used across textkit commands.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and exposes attribute helpers so command code tags log
// lines with component names, run identifiers, and input sources in a
// uniform shape. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new commands emit
// data with the same shape as the rest of the tool.
package logging
