package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newLineEncoder returns an encoder for newline-delimited JSON, one
// compact object per record, so streaming commands stay lazy.
func newLineEncoder(out io.Writer) *json.Encoder {
	return json.NewEncoder(out)
}
