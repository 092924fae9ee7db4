package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/summarizer"
)

func newRenderCmd() *cobra.Command {
	var lexiconPath string
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON summary as text",
		Long: `Render a structured summary (as printed by "summarize --json" or returned
by the HTTP API) in the plain-text layout.

Examples:
  notesum summarize notes.txt --json > summary.json
  notesum render summary.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var sum entities.Summary
			if err := json.Unmarshal(input, &sum); err != nil {
				return fmt.Errorf("decode summary: %w", err)
			}

			var opts []summarizer.Option
			if lexiconPath != "" {
				lex, err := summarizer.LoadLexiconFile(lexiconPath)
				if err != nil {
					return err
				}
				opts = append(opts, summarizer.WithLexicon(lex))
			}
			s, err := summarizer.New(opts...)
			if err != nil {
				return err
			}

			sum.Normalize()
			fmt.Fprintln(cmd.OutOrStdout(), s.Render(sum))
			return nil
		},
	}
	cmd.Flags().StringVar(&lexiconPath, "lexicon", "", "YAML lexicon override file")
	return cmd
}
