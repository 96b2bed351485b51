package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textkit"
	"textkit/internal/logging"
)

func newLinesCommand(ctx *commandContext) *cobra.Command {
	var flags sourceFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "lines [input]",
		Short: "Stream the input one line at a time",
		Long:  "Lines walks the input lazily: literal text is normalized and split on\nnewlines, files are streamed verbatim without loading them whole. Read\nfailures are logged and end the stream instead of aborting the command.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			src, err := resolveSource(flags, args)
			if err != nil {
				return err
			}

			logger := ctx.commandLogger("lines")
			logger.Debug("line streaming starting",
				logging.String(logging.FieldSource, src.Kind().String()),
				logging.String(logging.FieldPath, sourcePath(src)),
			)

			seq, err := textkit.Lines(src, textkit.WithLogger(logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			emitJSON := resolveOutputMode(cfg, jsonOut, out) == modeJSON
			enc := newLineEncoder(out)

			count := 0
			for line := range seq {
				count++
				if emitJSON {
					// NDJSON consumers want the content, not the terminator.
					record := map[string]any{"line": strings.TrimRight(line, "\r\n"), "n": count}
					if err := enc.Encode(record); err != nil {
						return err
					}
					continue
				}
				if strings.HasSuffix(line, "\n") {
					fmt.Fprint(out, line)
				} else {
					fmt.Fprintln(out, line)
				}
			}

			logger.Debug("line streaming complete", logging.Int("lines", count))
			return nil
		},
	}

	addSourceFlags(cmd, &flags)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit one JSON object per line (NDJSON)")
	return cmd
}
