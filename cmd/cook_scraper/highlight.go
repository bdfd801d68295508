package main

import (
	"fmt"

	"github.com/jonathan/cook-scraper/internal/matching"
	"github.com/jonathan/cook-scraper/internal/textutil"
	"github.com/jonathan/cook-scraper/internal/types"
	"github.com/spf13/cobra"
)

type highlightOptions struct {
	textPath string
	start    int
	end      int
	phrase   string
	radius   int
}

func newHighlightCmd(a *app) *cobra.Command {
	opts := &highlightOptions{}

	cmd := &cobra.Command{
		Use:   "highlight",
		Short: "Print a match with surrounding context to stderr",
		Long: "Prints the matched region of a text with surrounding context, framed by \"...\", and a caret " +
			"line under the match. The match is given either as rune offsets (--start/--end) or as a phrase to locate.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHighlight(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.textPath, "text", "t", "", "Text file, or - for stdin (required)")
	cmd.Flags().IntVar(&opts.start, "start", 0, "Match start (rune offset)")
	cmd.Flags().IntVar(&opts.end, "end", 0, "Match end (rune offset, exclusive)")
	cmd.Flags().StringVarP(&opts.phrase, "phrase", "p", "", "Phrase to locate instead of --start/--end")
	cmd.Flags().IntVar(&opts.radius, "radius", 0, "Context runes on each side (default: config context_radius)")

	if err := cmd.MarkFlagRequired("text"); err != nil {
		panic(fmt.Sprintf("failed to mark text flag as required: %v", err))
	}
	cmd.MarkFlagsRequiredTogether("start", "end")
	cmd.MarkFlagsMutuallyExclusive("phrase", "start")
	cmd.MarkFlagsMutuallyExclusive("phrase", "end")
	cmd.MarkFlagsOneRequired("phrase", "start")

	return cmd
}

func (a *app) runHighlight(cmd *cobra.Command, opts *highlightOptions) error {
	data, err := readInput(cmd, opts.textPath)
	if err != nil {
		return err
	}
	text := string(data)

	span := types.MatchSpan{Start: opts.start, End: opts.end}
	if opts.phrase != "" {
		var found bool
		span, found = matching.FindPhrase(text, opts.phrase)
		if a.cfg.Verbose {
			a.printer.PrintMatch(opts.phrase, span, found, text)
		}
		if !found {
			return fmt.Errorf("phrase %q not found in %s", opts.phrase, opts.textPath)
		}
	}

	radius := opts.radius
	if radius <= 0 {
		radius = a.cfg.ContextRadius
	}

	a.log.Debug().
		Int("start", span.Start).
		Int("end", span.End).
		Int("radius", radius).
		Msg("highlighting match")

	return textutil.HighlightRadius(cmd.ErrOrStderr(), text, span.Start, span.End, radius)
}
