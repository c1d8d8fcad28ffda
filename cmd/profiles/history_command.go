package main

import (
	"fmt"
	"strconv"

	"github.com/drakos74/load-profiles/internal/dataset"
	"github.com/drakos74/load-profiles/internal/pipeline"
	json_storage "github.com/drakos74/load-profiles/internal/storage/file/json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newHistoryCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the past runs over the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store == "" {
				return fmt.Errorf("no store configured: %w", pipeline.ErrConfig)
			}
			name := dataset.ElecName
			if path := opts.datasetPath(cfg); path != "" {
				name = dataset.NameOf(path)
			}
			runs, err := pipeline.History(json_storage.NewLogger("history").WithRoot(cfg.Store), name)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"time", "id", "method", "dim", "k", "score"})
			for _, r := range runs {
				table.Append([]string{
					r.Time.Format("2006-01-02 15:04:05"),
					r.ID,
					r.Method,
					strconv.Itoa(r.Dim),
					strconv.Itoa(r.K),
					strconv.FormatFloat(r.Score, 'f', 4, 64),
				})
			}
			table.Render()
			return nil
		},
	}
	return cmd
}
