package main

import (
	"fmt"

	"github.com/drakos74/load-profiles/internal/pipeline"
	"github.com/drakos74/load-profiles/internal/plot"
	"github.com/spf13/cobra"
)

func newWalkthroughCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walkthrough",
		Short: "Run every representation of the load profile walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			ds, err := opts.loadDataset(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			store, history, err := stores(cfg, ds.Name)
			if err != nil {
				return err
			}
			reports, err := pipeline.Walkthrough(cmd.Context(), ds, cfg, store, history)
			for _, r := range reports {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d x %d\n", r.Method, r.Rows, r.Dim)
				plot.Table(cmd.OutOrStdout(), r.Scores, r.K)
			}
			return err
		},
	}
	return cmd
}
