package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"winnow/internal/errkind"
	"winnow/internal/fileutil"
	"winnow/internal/logging"
	"winnow/internal/reflow"
)

func newTextCommand(ctx *commandContext) *cobra.Command {
	var showSummary bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "text <input> [output]",
		Short: "Reflow hard-wrapped text into paragraphs, keeping headings",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return fmt.Errorf("provide the text file to reflow. Example: winnow text /path/to/notes.md\nRun winnow text --help for more details")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(args[0])
			if input == "" {
				return errkind.Wrap(errkind.ErrUsage, "text", "run", "input path is required", nil)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			output := ""
			if len(args) == 2 {
				output = strings.TrimSpace(args[1])
			}
			if output == "" {
				output = fileutil.DeriveOutputPath(input, cfg.Output.Suffix, "")
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return errkind.Wrap(errkind.ErrConfiguration, "text", "logging", "init logger", err)
			}
			log := logging.NewComponentLogger(logger, "text").
				With(logging.String(logging.FieldRunID, uuid.NewString()))

			started := time.Now()
			content, err := fileutil.ReadText(input)
			if err != nil {
				return errkind.Wrap(errkind.ErrInput, "text", "read", input, err)
			}

			doc, stats := reflow.Reflow([]byte(content))

			if err := fileutil.WriteText(output, doc.Bytes()); err != nil {
				return errkind.Wrap(errkind.ErrOutput, "text", "write", output, err)
			}

			log.Info("reflowed text file",
				logging.String(logging.FieldInput, input),
				logging.String(logging.FieldOutput, output),
				logging.Int("lines_read", stats.LinesRead),
				logging.Int("headings", stats.Headings),
				logging.Int("paragraphs", stats.Paragraphs),
				logging.Duration("elapsed", time.Since(started)),
			)

			if jsonOutput {
				return writeJSON(cmd, reflowResult{Input: input, Output: output, Stats: stats})
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "Reflowed text: %s (paragraphs: %d, headings: %d, source: %s)\n",
				output, stats.Paragraphs, stats.Headings, input)
			if showSummary {
				colorize := shouldColorize(stdout)
				for _, line := range renderSectionHeader("Reflow summary", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintln(stdout, renderCountTable([]countRow{
					{"Lines read", stats.LinesRead},
					{"Headings", stats.Headings},
					{"Blank lines", stats.Blanks},
					{"Body lines", stats.BodyLines},
					{"Paragraphs", stats.Paragraphs},
				}))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSummary, "summary", false, "Show a per-rule accounting table after reflowing")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON instead of human-readable text")

	return cmd
}
