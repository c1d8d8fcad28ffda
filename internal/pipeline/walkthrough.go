package pipeline

import (
	"context"
	"fmt"

	"github.com/drakos74/load-profiles/internal/model"
	"github.com/drakos74/load-profiles/internal/repr"
	"github.com/drakos74/load-profiles/internal/storage"
	"github.com/rs/zerolog/log"
)

// Walkthrough runs the pipeline once for every representation of the load profile walkthrough,
// seasonal profile, GAM, DFT and windowed feaclip, in that order.
// Every run shares the cluster range, index, output and stores of the given config.
func Walkthrough(ctx context.Context, ds model.Dataset, cfg Config, store, history storage.Persistence) ([]Report, error) {
	reports := make([]Report, 0)
	for _, method := range repr.Walkthrough(ds.Freq) {
		c := cfg
		c.Method = method
		c.K = 0
		p, err := FromConfig(ds, c)
		if err != nil {
			return reports, fmt.Errorf("could not create pipeline for '%s': %w", method.Name, err)
		}
		report, err := p.WithStore(store).WithHistory(history).Run(ctx)
		if err != nil {
			return reports, fmt.Errorf("could not run '%s': %w", method.Name, err)
		}
		log.Info().
			Str("method", report.Method).
			Int("dim", report.Dim).
			Int("k", report.K).
			Msg("walkthrough step")
		reports = append(reports, report)
	}
	return reports, nil
}
