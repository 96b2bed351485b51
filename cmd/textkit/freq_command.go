package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"textkit"
	"textkit/internal/config"
	"textkit/internal/logging"
)

type freqEntry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func newFreqCommand(ctx *commandContext) *cobra.Command {
	var flags sourceFlags
	var minLength int
	var exclude []string
	var top int
	var sortOrder string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "freq [input]",
		Short: "Count how often each word occurs",
		Long:  "Freq normalizes the input (ASCII letters and digits kept, lowercased) and\ncounts every word. Files are read line by line, so large corpora are fine.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			src, err := resolveSource(flags, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("min-length") {
				minLength = cfg.Analysis.MinWordLength
			}
			if !cmd.Flags().Changed("sort") {
				sortOrder = cfg.Output.Sort
			}
			if sortOrder != "count" && sortOrder != "word" {
				return fmt.Errorf("invalid sort order %q (expected count or word)", sortOrder)
			}

			logger := ctx.commandLogger("freq")
			logger.Debug("frequency analysis starting",
				logging.String(logging.FieldSource, src.Kind().String()),
				logging.String(logging.FieldPath, sourcePath(src)),
			)

			filter := buildWordFilter(minLength, cfg.Analysis.StopWords, exclude)
			freq, err := textkit.WordFrequency(src, filter)
			if err != nil {
				return err
			}

			entries, total := sortFrequencies(freq, sortOrder)
			distinct := len(entries)
			logger.Debug("frequency analysis complete",
				logging.Int(logging.FieldWords, total),
				logging.Int("distinct", distinct),
			)

			if top > 0 && len(entries) > top {
				entries = entries[:top]
			}

			out := cmd.OutOrStdout()
			switch resolveOutputMode(cfg, jsonOut, out) {
			case modeJSON:
				return writeJSON(cmd, map[string]any{"words": entries, "total": total})
			case modeTable:
				printFreqTable(out, reportTitle(src), entries, total, distinct, cfg, shouldColorize(cfg, out))
			default:
				printFreqPlain(out, entries)
			}
			return nil
		},
	}

	addSourceFlags(cmd, &flags)
	cmd.Flags().IntVar(&minLength, "min-length", 0, "Drop words shorter than this many characters")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Words to leave out of the count (repeatable)")
	cmd.Flags().IntVar(&top, "top", 0, "Keep only the N most frequent words (0 keeps all)")
	cmd.Flags().StringVar(&sortOrder, "sort", "count", "Order rows by count or word")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

// buildWordFilter folds the length floor, configured stop words, and
// ad-hoc exclusions into one predicate. Stop words are matched after
// normalization, so casing and punctuation in the flag values are
// irrelevant.
func buildWordFilter(minLength int, stopLists ...[]string) textkit.WordFilter {
	stops := make(map[string]struct{})
	for _, list := range stopLists {
		for _, word := range list {
			for _, normalized := range textkit.Words(word) {
				stops[normalized] = struct{}{}
			}
		}
	}
	if minLength <= 0 && len(stops) == 0 {
		return nil
	}
	return func(word string) bool {
		if len(word) < minLength {
			return false
		}
		_, stopped := stops[word]
		return !stopped
	}
}

// sortFrequencies flattens the count map into stable display order:
// descending count with lexical tie-breaks, or plain lexical order.
// It also reports the token total across all entries.
func sortFrequencies(freq map[string]int, order string) ([]freqEntry, int) {
	entries := make([]freqEntry, 0, len(freq))
	total := 0
	for word, count := range freq {
		entries = append(entries, freqEntry{Word: word, Count: count})
		total += count
	}
	if order == "word" {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })
	} else {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].Word < entries[j].Word
		})
	}
	return entries, total
}

func printFreqTable(out io.Writer, title string, entries []freqEntry, total, distinct int, cfg *config.Config, colorize bool) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No words found")
		return
	}
	printSectionHeader(out, title, colorize)

	rows := entries
	truncated := 0
	if cfg.Output.MaxRows > 0 && len(rows) > cfg.Output.MaxRows {
		truncated = len(rows) - cfg.Output.MaxRows
		rows = rows[:cfg.Output.MaxRows]
	}

	tableRows := make([][]string, 0, len(rows))
	for _, entry := range rows {
		tableRows = append(tableRows, []string{entry.Word, strconv.Itoa(entry.Count)})
	}
	fmt.Fprintln(out, renderTable([]string{"Word", "Count"}, tableRows, 1))
	if truncated > 0 {
		fmt.Fprintf(out, "(%d more rows hidden; raise output.max_rows or use --top)\n", truncated)
	}
	fmt.Fprintf(out, "%d words, %d distinct\n", total, distinct)
}

func printFreqPlain(out io.Writer, entries []freqEntry) {
	for _, entry := range entries {
		fmt.Fprintf(out, "%s\t%d\n", entry.Word, entry.Count)
	}
}

func sourcePath(src textkit.Source) string {
	if src.Kind() == textkit.SourceFile {
		return src.Value()
	}
	return ""
}
