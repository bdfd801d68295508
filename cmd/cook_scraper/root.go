package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/cook-scraper/internal/config"
	"github.com/jonathan/cook-scraper/internal/logging"
	"github.com/jonathan/cook-scraper/internal/observability"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg     config.Config
	log     logging.Logger
	printer *observability.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "cook_scraper",
		Short: "Recipe scraping helpers",
		Long: "cook_scraper writes scraped recipes to .cook files and helps locate text in recipe " +
			"instructions by printing highlighted context to stderr.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(newWriteCmd(a))
	rootCmd.AddCommand(newHighlightCmd(a))
	rootCmd.AddCommand(newSublistsCmd(a))

	return rootCmd
}

// setup resolves configuration (file, then environment, then defaults) and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Config{}
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Config{})

	if a.verbose {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Writer:  cmd.ErrOrStderr(),
		Command: cmd.Name(),
	})
	a.printer = observability.NewPrinter(cmd.OutOrStdout())

	a.log.Debug().
		Str("config", a.configPath).
		Str("output_dir", cfg.OutputDir).
		Int("context_radius", cfg.ContextRadius).
		Msg("configuration loaded")

	return nil
}

// readInput reads a whole file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
