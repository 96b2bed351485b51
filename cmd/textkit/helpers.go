package main

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"textkit"
	"textkit/internal/config"
)

// sourceFlags carries the explicit-mode input flags shared by the
// analysis commands.
type sourceFlags struct {
	text string
	file string
}

func addSourceFlags(cmd *cobra.Command, flags *sourceFlags) {
	cmd.Flags().StringVar(&flags.text, "text", "", "Treat the value as literal text")
	cmd.Flags().StringVar(&flags.file, "file", "", "Treat the value as a text file path")
}

// resolveSource turns flags and the optional positional argument into a
// Source. Explicit flags win over the positional argument; a bare
// argument goes through auto-detection, so literal text that matches an
// existing path is read as a file.
func resolveSource(flags sourceFlags, args []string) (textkit.Source, error) {
	file := strings.TrimSpace(flags.file)
	if file != "" {
		expanded, err := config.ExpandPath(file)
		if err != nil {
			return textkit.Source{}, err
		}
		return textkit.File(expanded), nil
	}
	if flags.text != "" {
		return textkit.Text(flags.text), nil
	}
	if len(args) > 0 {
		return textkit.Detect(args[0]), nil
	}
	return textkit.Source{}, errors.New("input is required: pass text or a file path, or use --text/--file")
}

// reportTitle derives a human-readable table caption from a file
// source's base name. Literal text gets no caption.
func reportTitle(src textkit.Source) string {
	if src.Kind() != textkit.SourceFile {
		return ""
	}
	base := filepath.Base(src.Value())
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled"
	}
	return cases.Title(language.Und).String(title)
}
