package repr

import (
	"fmt"

	"github.com/drakos74/load-profiles/internal/buffer"
)

// Normaliser rescales a series before its representation is computed.
type Normaliser func(x []float64) []float64

const (
	// NormNone leaves the series untouched.
	NormNone = ""
	// NormZScore is the z-score normalisation.
	NormZScore = "z"
	// NormMinMax is the min-max normalisation.
	NormMinMax = "minmax"
)

// Norm returns the normaliser for the given name.
func Norm(name string) (Normaliser, error) {
	switch name {
	case NormNone, "none":
		return nil, nil
	case NormZScore:
		return NormZ, nil
	case NormMinMax:
		return NormMinMaxRange, nil
	}
	return nil, fmt.Errorf("unknown normalisation '%s': %w", name, ErrUnknown)
}

// NormZ subtracts the mean and divides by the sample standard deviation.
// A constant series maps to zeros.
func NormZ(x []float64) []float64 {
	stats := buffer.NewStats().Push(x...)
	sd := 0.0
	if stats.Count() > 1 {
		sd = stats.SampleStDev()
	}
	y := make([]float64, len(x))
	if sd == 0 {
		return y
	}
	for i, v := range x {
		y[i] = (v - stats.Avg()) / sd
	}
	return y
}

// NormMinMaxRange maps the series into [0,1].
// A constant series maps to zeros.
func NormMinMaxRange(x []float64) []float64 {
	stats := buffer.NewStats().Push(x...)
	y := make([]float64, len(x))
	r := stats.Range()
	if r == 0 {
		return y
	}
	for i, v := range x {
		y[i] = (v - stats.Min()) / r
	}
	return y
}
