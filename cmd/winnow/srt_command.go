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
	"winnow/internal/subtitles"
)

func newSRTCommand(ctx *commandContext) *cobra.Command {
	var showSummary bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "srt <input> [output]",
		Short: "Clean an SRT subtitle file into paragraph text",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return fmt.Errorf("provide the subtitle file to clean. Example: winnow srt /path/to/movie.srt\nRun winnow srt --help for more details")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(args[0])
			if input == "" {
				return errkind.Wrap(errkind.ErrUsage, "srt", "run", "input path is required", nil)
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
				output = fileutil.DeriveOutputPath(input, cfg.Output.Suffix, ".txt")
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return errkind.Wrap(errkind.ErrConfiguration, "srt", "logging", "init logger", err)
			}
			log := logging.NewComponentLogger(logger, "srt").
				With(logging.String(logging.FieldRunID, uuid.NewString()))

			started := time.Now()
			content, err := fileutil.ReadText(input)
			if err != nil {
				return errkind.Wrap(errkind.ErrInput, "srt", "read", input, err)
			}

			lexicon := subtitles.NewLexicon(cfg.Lexicon.ExtraPhrases, cfg.Lexicon.ExtraPrefixes)
			doc, stats := subtitles.NewCleaner(lexicon).Clean([]byte(content))

			if err := fileutil.WriteText(output, doc.Bytes()); err != nil {
				return errkind.Wrap(errkind.ErrOutput, "srt", "write", output, err)
			}

			log.Info("cleaned subtitle file",
				logging.String(logging.FieldInput, input),
				logging.String(logging.FieldOutput, output),
				logging.Int("lines_read", stats.LinesRead),
				logging.Int("fragments", stats.Fragments),
				logging.Int("paragraphs", stats.Paragraphs),
				logging.Duration("elapsed", time.Since(started)),
			)

			if jsonOutput {
				return writeJSON(cmd, cleanResult{Input: input, Output: output, Stats: stats})
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "Cleaned subtitles: %s (paragraphs: %d, source: %s)\n",
				output, stats.Paragraphs, input)
			if showSummary {
				colorize := shouldColorize(stdout)
				for _, line := range renderSectionHeader("Cleaning summary", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintln(stdout, renderCountTable([]countRow{
					{"Lines read", stats.LinesRead},
					{"Sequence lines", stats.Sequences},
					{"Timestamp lines", stats.Timestamps},
					{"Blank lines", stats.Blanks},
					{"Sound cues", stats.SoundCues},
					{"Noise lines", stats.Noise},
					{"Fragments", stats.Fragments},
					{"Paragraphs", stats.Paragraphs},
				}))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSummary, "summary", false, "Show a per-rule accounting table after cleaning")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON instead of human-readable text")

	return cmd
}
