package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/cook-scraper/internal/textutil"
	"github.com/spf13/cobra"
)

func newSublistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sublists [item...]",
		Short: "Print every contiguous sublist of the arguments",
		Long:  "Prints every contiguous sublist of the given items as one JSON array per line, starting with the empty list.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := textutil.Sublists(args)
			a.log.Debug().Int("items", len(args)).Int("sublists", len(lists)).Msg("enumerated sublists")

			out := cmd.OutOrStdout()
			for _, list := range lists {
				line, err := json.Marshal(list)
				if err != nil {
					return fmt.Errorf("failed to encode sublist: %w", err)
				}
				if _, err := fmt.Fprintln(out, string(line)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
