package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"textkit"
	"textkit/internal/logging"
)

func newCooccurCommand(ctx *commandContext) *cobra.Command {
	var flags sourceFlags
	var window int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "cooccur [input]",
		Short: "Pair adjacent words into fixed-size tuples",
		Long:  "Cooccur slides a window over the normalized words and prints every tuple in\norder of appearance. In files the window never crosses a line boundary.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			src, err := resolveSource(flags, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("window") {
				window = cfg.Analysis.DefaultWindow
			}

			logger := ctx.commandLogger("cooccur")
			logger.Debug("co-occurrence analysis starting",
				logging.String(logging.FieldSource, src.Kind().String()),
				logging.String(logging.FieldPath, sourcePath(src)),
				logging.Int(logging.FieldWindow, window),
			)

			tuples, err := textkit.CoOccurrence(src, window)
			if err != nil {
				return err
			}
			logger.Debug("co-occurrence analysis complete", logging.Int("tuples", len(tuples)))

			out := cmd.OutOrStdout()
			switch resolveOutputMode(cfg, jsonOut, out) {
			case modeJSON:
				return writeJSON(cmd, map[string]any{"window": window, "tuples": tuples})
			case modeTable:
				printCooccurTable(out, reportTitle(src), window, tuples, shouldColorize(cfg, out))
			default:
				printCooccurPlain(out, tuples)
			}
			return nil
		},
	}

	addSourceFlags(cmd, &flags)
	cmd.Flags().IntVar(&window, "window", 2, "Words per tuple (defaults to analysis.default_window)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func printCooccurTable(out io.Writer, title string, window int, tuples [][]string, colorize bool) {
	if len(tuples) == 0 {
		fmt.Fprintln(out, "No tuples found")
		return
	}
	printSectionHeader(out, title, colorize)

	headers := make([]string, 0, window+1)
	headers = append(headers, "#")
	for i := 1; i <= window; i++ {
		headers = append(headers, "Word "+strconv.Itoa(i))
	}

	rows := make([][]string, 0, len(tuples))
	for i, tuple := range tuples {
		row := make([]string, 0, window+1)
		row = append(row, strconv.Itoa(i+1))
		row = append(row, tuple...)
		rows = append(rows, row)
	}
	fmt.Fprintln(out, renderTable(headers, rows, 0))
	fmt.Fprintf(out, "%d tuples of %d words\n", len(tuples), window)
}

func printCooccurPlain(out io.Writer, tuples [][]string) {
	for _, tuple := range tuples {
		fmt.Fprintln(out, strings.Join(tuple, " "))
	}
}
