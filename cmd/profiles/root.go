package main

import (
	"context"
	"fmt"
	"os"

	"github.com/drakos74/load-profiles/infra/config"
	"github.com/drakos74/load-profiles/internal/dataset"
	"github.com/drakos74/load-profiles/internal/metrics"
	"github.com/drakos74/load-profiles/internal/model"
	"github.com/drakos74/load-profiles/internal/pipeline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	configPath string
	dataPath   string
	debug      bool
	metrics    string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "profiles",
		Short:         "Extract typical electricity load profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			if opts.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if opts.metrics != "" {
				srv := metrics.Observer.Serve(opts.metrics)
				go func() {
					<-cmd.Context().Done()
					_ = srv.Close()
				}()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Pipeline configuration file path")
	rootCmd.PersistentFlags().StringVarP(&opts.dataPath, "data", "d", "", "Csv dataset path, the bundled dataset is used when empty")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.metrics, "metrics", "", "Address to expose prometheus metrics on e.g. :6021")

	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newReprCommand(opts))
	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newWalkthroughCommand(opts))
	rootCmd.AddCommand(newHistoryCommand(opts))

	return rootCmd
}

// loadConfig returns the config file settings.
// Without a config flag the default config file is used if present, the built-in defaults otherwise.
func (o *options) loadConfig() (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	path := o.configPath
	if path == "" {
		if _, err := os.Stat(config.File("pipeline")); err != nil {
			return cfg, nil
		}
		path = config.File("pipeline")
	}
	if err := config.Load(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// datasetPath returns the csv dataset path of the flag or the config, empty for the bundled dataset.
func (o *options) datasetPath(cfg pipeline.Config) string {
	if o.dataPath != "" {
		return o.dataPath
	}
	return cfg.Dataset
}

// bundled returns true if the run uses the generated dataset.
func (o *options) bundled(cfg pipeline.Config) bool {
	return o.datasetPath(cfg) == ""
}

// loadDataset reads the dataset from the flag, then the config, falling back to the bundled one.
func (o *options) loadDataset(_ context.Context, cfg pipeline.Config) (model.Dataset, error) {
	path := o.datasetPath(cfg)
	if path == "" {
		ds := dataset.ElecLoad(cfg.Seed)
		log.Info().
			Str("dataset", ds.Name).
			Uint64("seed", cfg.Seed).
			Int("series", ds.Len()).
			Int("length", ds.Length()).
			Msg("generated bundled dataset")
		return ds, nil
	}
	ds, err := dataset.LoadFile(path, cfg.Freq)
	if err != nil {
		return ds, fmt.Errorf("could not load dataset: %w", err)
	}
	if ds.Freq == 0 {
		freq, err := dataset.DetectFreq(ds)
		if err != nil {
			return ds, fmt.Errorf("could not detect frequency: %w", err)
		}
		log.Info().Int("freq", freq).Msg("detected frequency")
		ds.Freq = freq
	}
	return ds, nil
}
