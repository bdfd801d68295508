package main

import (
	"fmt"

	"github.com/jonathan/cook-scraper/internal/cookfile"
	"github.com/jonathan/cook-scraper/internal/schemas"
	"github.com/spf13/cobra"
)

type writeOptions struct {
	recipePath string
	source     string
	outputDir  string
}

func newWriteCmd(a *app) *cobra.Command {
	opts := &writeOptions{}

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write a scraped recipe to <title>.cook",
		Long: "Reads a recipe JSON document (title, link, total_time, image, instructions) and writes it " +
			"to <title>.cook with source, time and image header lines followed by the instructions.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWrite(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.recipePath, "recipe", "r", "", "Recipe JSON file, or - for stdin (required)")
	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Source attribution, usually the scraped URL (default: config source, then recipe link)")
	cmd.Flags().StringVarP(&opts.outputDir, "out", "o", "", "Output directory (default: config output_dir, then working directory)")

	if err := cmd.MarkFlagRequired("recipe"); err != nil {
		panic(fmt.Sprintf("failed to mark recipe flag as required: %v", err))
	}

	return cmd
}

func (a *app) runWrite(cmd *cobra.Command, opts *writeOptions) error {
	data, err := readInput(cmd, opts.recipePath)
	if err != nil {
		return err
	}

	recipe, err := schemas.DecodeRecipe(data)
	if err != nil {
		return fmt.Errorf("invalid recipe document: %w", err)
	}

	source := opts.source
	if source == "" {
		source = a.cfg.Source
	}
	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = a.cfg.OutputDir
	}

	if cookfile.SourceFor(source, recipe) == "" {
		a.log.Warn().Str("title", recipe.Title).Msg("no source or link; source line will be empty")
	}

	a.log.Debug().
		Str("title", recipe.Title).
		Str("dir", outputDir).
		Msg("writing recipe")

	path, err := cookfile.WriteRecipe(outputDir, source, recipe)
	if err != nil {
		return fmt.Errorf("failed to write recipe: %w", err)
	}

	a.log.Info().Str("path", path).Msg("recipe written")

	if a.cfg.Verbose {
		a.printer.PrintRecipe(recipe, cookfile.SourceFor(source, recipe), path)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
