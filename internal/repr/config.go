package repr

import (
	"fmt"
)

const (
	SeasonalMethod = "seasonal"
	GAMMethod      = "gam"
	DFTMethod      = "dft"
	FeaClipMethod  = "feaclip"
	// FeaClipWindowMethod applies feaclip on every window of Win measurements.
	FeaClipWindowMethod = "feaclip-window"
)

// Config describes a representation method and its parameters.
type Config struct {
	Name   string  `json:"name"`
	Freq   []int   `json:"freq,omitempty"`
	Func   string  `json:"func,omitempty"`
	Coef   int     `json:"coef,omitempty"`
	Win    int     `json:"win,omitempty"`
	Lambda float64 `json:"lambda,omitempty"`
	Norm   string  `json:"norm,omitempty"`
}

// Parse creates the method described by the config.
// freq is the default daily frequency, used when the config does not specify one.
func Parse(cfg Config, freq int) (Method, error) {
	f := freq
	if len(cfg.Freq) > 0 {
		f = cfg.Freq[0]
	}
	switch cfg.Name {
	case SeasonalMethod:
		return SeasonalProfile{Freq: f, Func: cfg.Func}, nil
	case GAMMethod:
		g := GAM{Freq: [2]int{f, 0}, Lambda: cfg.Lambda}
		if len(cfg.Freq) > 1 {
			g.Freq[1] = cfg.Freq[1]
		} else if len(cfg.Freq) == 0 {
			g.Freq[1] = 7 * f
		}
		return g, nil
	case DFTMethod:
		coef := cfg.Coef
		if coef == 0 {
			coef = f
		}
		return DFT{Coef: coef}, nil
	case FeaClipMethod:
		return FeaClip{}, nil
	case FeaClipWindowMethod:
		win := cfg.Win
		if win == 0 {
			win = f
		}
		return Windowing{Win: win, Method: FeaClip{}}, nil
	}
	return nil, fmt.Errorf("method '%s': %w", cfg.Name, ErrUnknown)
}

// Walkthrough returns the sequence of representations used to extract typical load profiles
// for a dataset of the given daily frequency.
func Walkthrough(freq int) []Config {
	return []Config{
		{Name: SeasonalMethod, Freq: []int{freq}, Func: AggMean, Norm: NormZScore},
		{Name: GAMMethod, Freq: []int{freq, 7 * freq}, Norm: NormZScore},
		{Name: DFTMethod, Coef: freq, Norm: NormZScore},
		{Name: FeaClipWindowMethod, Win: freq},
	}
}
