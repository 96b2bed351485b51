package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"textkit"
	"textkit/internal/logging"
)

func newUniqueCommand(ctx *commandContext) *cobra.Command {
	var flags sourceFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "unique [input]",
		Short: "List the distinct words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			src, err := resolveSource(flags, args)
			if err != nil {
				return err
			}

			logger := ctx.commandLogger("unique")
			logger.Debug("unique word extraction starting",
				logging.String(logging.FieldSource, src.Kind().String()),
				logging.String(logging.FieldPath, sourcePath(src)),
			)

			set, err := textkit.UniqueWords(src)
			if err != nil {
				return err
			}

			words := make([]string, 0, len(set))
			for word := range set {
				words = append(words, word)
			}
			sort.Strings(words)
			logger.Debug("unique word extraction complete", logging.Int(logging.FieldWords, len(words)))

			out := cmd.OutOrStdout()
			switch resolveOutputMode(cfg, jsonOut, out) {
			case modeJSON:
				return writeJSON(cmd, map[string]any{"words": words, "count": len(words)})
			case modeTable:
				printUniqueTable(out, reportTitle(src), words, shouldColorize(cfg, out))
			default:
				printUniquePlain(out, words)
			}
			return nil
		},
	}

	addSourceFlags(cmd, &flags)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func printUniqueTable(out io.Writer, title string, words []string, colorize bool) {
	if len(words) == 0 {
		fmt.Fprintln(out, "No words found")
		return
	}
	printSectionHeader(out, title, colorize)

	rows := make([][]string, 0, len(words))
	for _, word := range words {
		rows = append(rows, []string{word})
	}
	fmt.Fprintln(out, renderTable([]string{"Word"}, rows))
	fmt.Fprintf(out, "%d distinct words\n", len(words))
}

func printUniquePlain(out io.Writer, words []string) {
	for _, word := range words {
		fmt.Fprintln(out, word)
	}
}
