package pipeline

import (
	"fmt"

	"github.com/drakos74/load-profiles/internal/cluster"
	"github.com/drakos74/load-profiles/internal/dataset"
	"github.com/drakos74/load-profiles/internal/repr"
)

// Config holds the settings of a pipeline run.
type Config struct {
	// Dataset is the path to a csv dataset, the bundled one is used when empty.
	Dataset string `json:"dataset"`
	Seed    uint64 `json:"seed"`
	// Freq is detected from the dataset when 0.
	Freq   int         `json:"freq"`
	Method repr.Config `json:"method"`
	KMin   int         `json:"k_min"`
	KMax   int         `json:"k_max"`
	// K fixes the number of clusters, the best scoring one is used when 0.
	K      int    `json:"k"`
	Index  string `json:"index"`
	Output string `json:"output"`
	Store  string `json:"store"`
}

// DefaultConfig returns the settings of the load profile walkthrough.
func DefaultConfig() Config {
	return Config{
		Seed: dataset.ElecSeed,
		Freq: dataset.ElecFreq,
		Method: repr.Config{
			Name: repr.SeasonalMethod,
			Func: repr.AggMean,
			Norm: repr.NormZScore,
		},
		KMin:   2,
		KMax:   7,
		Index:  cluster.DaviesBouldinIndex,
		Output: "charts",
	}
}

// Validate checks the config for inconsistent settings.
func (c Config) Validate() error {
	if c.Freq < 0 {
		return fmt.Errorf("frequency %d: %w", c.Freq, ErrConfig)
	}
	if c.KMin < 2 || c.KMax < c.KMin {
		return fmt.Errorf("cluster range [%d,%d]: %w", c.KMin, c.KMax, ErrConfig)
	}
	if c.K != 0 && (c.K < c.KMin || c.K > c.KMax) {
		return fmt.Errorf("k=%d outside [%d,%d]: %w", c.K, c.KMin, c.KMax, ErrConfig)
	}
	return nil
}
