package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"textkit/internal/config"
)

// outputMode selects how an analysis command renders its result.
type outputMode int

const (
	modeTable outputMode = iota
	modePlain
	modeJSON
)

// resolveOutputMode applies the precedence --json flag, then the
// configured format, with "auto" picking a table for terminals and
// tab-separated plain text for pipes.
func resolveOutputMode(cfg *config.Config, jsonFlag bool, out io.Writer) outputMode {
	if jsonFlag {
		return modeJSON
	}
	switch cfg.Output.Format {
	case "table":
		return modeTable
	case "plain":
		return modePlain
	case "json":
		return modeJSON
	default:
		if isTerminal(out) {
			return modeTable
		}
		return modePlain
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldColorize(cfg *config.Config, out io.Writer) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(out)
	}
}

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func printSectionHeader(out io.Writer, title string, colorize bool) {
	if strings.TrimSpace(title) == "" {
		return
	}
	for _, line := range renderSectionHeader(title, colorize) {
		fmt.Fprintln(out, line)
	}
}
