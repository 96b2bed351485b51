// Package main hosts the textkit CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls
// against the textkit analysis library: word-frequency reports, unique-word
// listings, co-occurrence tuples, line streaming, and configuration
// scaffolding. It centralizes configuration resolution, output-mode
// detection, and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality to the analysis library
// first, then surface it through dedicated commands or flags here.
package main
