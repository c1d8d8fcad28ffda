package main

import (
	"fmt"
	"os"

	"github.com/drakos74/load-profiles/internal/dataset"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newGenerateCommand(opts *options) *cobra.Command {
	var seed uint64
	var out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the bundled electricity load dataset as csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := dataset.ElecLoad(seed)
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("could not create '%s': %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := dataset.SaveCSV(w, ds); err != nil {
				return err
			}
			log.Info().
				Str("out", out).
				Int("series", ds.Len()).
				Int("length", ds.Length()).
				Msg("generated dataset")
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", dataset.ElecSeed, "Seed of the generated dataset")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output csv path, stdout when empty")
	return cmd
}
