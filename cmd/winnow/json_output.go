package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"winnow/internal/reflow"
	"winnow/internal/subtitles"
)

// cleanResult is the machine-readable outcome of one srt invocation.
type cleanResult struct {
	Input  string          `json:"input"`
	Output string          `json:"output"`
	Stats  subtitles.Stats `json:"stats"`
}

// reflowResult is the machine-readable outcome of one text invocation.
type reflowResult struct {
	Input  string       `json:"input"`
	Output string       `json:"output"`
	Stats  reflow.Stats `json:"stats"`
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
