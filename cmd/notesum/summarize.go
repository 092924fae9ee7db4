package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-summarizer/internal/summarizer"
)

type summarizeOptions struct {
	asJSON        bool
	lexiconPath   string
	referenceDate string
	budget        int
}

func newSummarizeCmd() *cobra.Command {
	opts := &summarizeOptions{}
	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Summarize meeting notes from a file or stdin",
		Long: `Summarize meeting notes from a file or stdin.

Notes with section markers ("Decisions:", "결정 사항") are summarized per
section; other notes are summarized by keyword. Relative due dates such as
"tomorrow" or "Friday" are resolved only when --reference-date is given.

Examples:
  # Summarize a file as text
  notesum summarize notes.txt

  # Summarize stdin as JSON
  cat notes.txt | notesum summarize - --json

  # Resolve relative due dates against a meeting day
  notesum summarize notes.txt --reference-date 2024-05-06`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the structured summary as JSON")
	cmd.Flags().StringVar(&opts.lexiconPath, "lexicon", "", "YAML lexicon override file")
	cmd.Flags().StringVar(&opts.referenceDate, "reference-date", "", "Date relative due dates resolve against (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.budget, "budget", summarizer.DefaultBudget, "Input budget in characters before truncation")
	return cmd
}

func runSummarize(cmd *cobra.Command, args []string, opts *summarizeOptions) error {
	s, err := buildSummarizer(opts)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	res := s.Analyze(string(input))
	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Summary)
	}
	fmt.Fprintln(cmd.OutOrStdout(), s.Render(res.Summary))
	return nil
}

func buildSummarizer(opts *summarizeOptions) (*summarizer.Summarizer, error) {
	var sopts []summarizer.Option
	if opts.lexiconPath != "" {
		lex, err := summarizer.LoadLexiconFile(opts.lexiconPath)
		if err != nil {
			return nil, err
		}
		sopts = append(sopts, summarizer.WithLexicon(lex))
	}
	if opts.referenceDate != "" {
		ref, err := time.Parse("2006-01-02", opts.referenceDate)
		if err != nil {
			return nil, fmt.Errorf("invalid --reference-date %q: want YYYY-MM-DD", opts.referenceDate)
		}
		sopts = append(sopts, summarizer.WithReferenceDate(ref))
	}
	if opts.budget <= 0 {
		return nil, fmt.Errorf("--budget must be positive, got %d", opts.budget)
	}
	sopts = append(sopts, summarizer.WithBudget(opts.budget))
	return summarizer.New(sopts...)
}
