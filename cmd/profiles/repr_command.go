package main

import (
	"fmt"

	"github.com/drakos74/load-profiles/internal/plot"
	"github.com/drakos74/load-profiles/internal/repr"
	"github.com/spf13/cobra"
)

func newReprCommand(opts *options) *cobra.Command {
	var method string
	var norm string
	var show int

	cmd := &cobra.Command{
		Use:   "repr",
		Short: "Compute a representation of every series and print its dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if method != "" {
				cfg.Method = repr.Config{Name: method, Norm: cfg.Method.Norm}
			}
			if norm != "" {
				cfg.Method.Norm = norm
			}
			ds, err := opts.loadDataset(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			m, err := repr.Parse(cfg.Method, ds.Freq)
			if err != nil {
				return err
			}
			n, err := repr.Norm(cfg.Method.Norm)
			if err != nil {
				return err
			}
			rep, err := repr.Matrix(cmd.Context(), ds, m, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d x %d\n", rep.Method, len(rep.Vectors), rep.Dim())
			if show > 0 {
				plot.Vectors(cmd.OutOrStdout(), ds.IDs(), repr.Header(m, rep.Dim()), rep.Vectors, show)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "Representation method: seasonal, gam, dft, feaclip or feaclip-window")
	cmd.Flags().StringVarP(&norm, "norm", "n", "", "Normalisation: z, minmax or none, the config one when empty")
	cmd.Flags().IntVarP(&show, "show", "s", 0, "Number of vectors to print")
	return cmd
}
