package main

import (
	"fmt"

	"github.com/drakos74/load-profiles/internal/dataset"
	"github.com/drakos74/load-profiles/internal/pipeline"
	"github.com/drakos74/load-profiles/internal/repr"
	"github.com/drakos74/load-profiles/internal/storage"
	json_storage "github.com/drakos74/load-profiles/internal/storage/file/json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *options) *cobra.Command {
	var method string
	var k int
	var out string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster the series of the dataset and render the typical profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if method != "" {
				cfg.Method = repr.Config{Name: method, Norm: cfg.Method.Norm}
			}
			if cmd.Flags().Changed("k") {
				cfg.K = k
			}
			if cmd.Flags().Changed("out") {
				cfg.Output = out
			}
			ds, err := opts.loadDataset(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			p, err := pipeline.FromConfig(ds, cfg)
			if err != nil {
				return err
			}
			store, history, err := stores(cfg, ds.Name)
			if err != nil {
				return err
			}
			report, err := p.
				WithStore(store).
				WithHistory(history).
				WithWriter(cmd.OutOrStdout()).
				Run(cmd.Context())
			if err != nil {
				return err
			}
			if opts.bundled(cfg) {
				for c, composition := range dataset.Composition(report.Assignment) {
					l := log.Info().Int("cluster", c+1)
					for _, a := range dataset.Archetypes() {
						if count := composition[a]; count > 0 {
							l = l.Int(a.String(), count)
						}
					}
					l.Msg("archetypes")
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %s k=%d charts=%v\n", report.ID, report.Method, report.K, report.Charts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", "Representation method, overrides the config")
	cmd.Flags().IntVarP(&k, "k", "k", 0, "Number of clusters, the best scoring one when 0")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Charts output directory, no charts when empty")
	return cmd
}

// stores returns the report storage of the dataset and the run history for the config.
func stores(cfg pipeline.Config, name string) (storage.Persistence, storage.Persistence, error) {
	shard := storage.VoidShard()
	history := storage.Persistence(storage.NewVoidStorage())
	if cfg.Store != "" {
		shard = json_storage.BlobShard(cfg.Store, storage.ReportDir)
		history = json_storage.NewLogger("history").WithRoot(cfg.Store)
	}
	store, err := shard(name)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create storage for '%s': %w", name, err)
	}
	return store, history, nil
}
