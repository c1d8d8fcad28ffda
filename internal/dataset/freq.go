package dataset

import (
	"fmt"
	"math"

	lmath "github.com/drakos74/load-profiles/internal/math"
	"github.com/drakos74/load-profiles/internal/model"
	"gonum.org/v1/gonum/floats"
)

// periodicTolerance is the amplitude, relative to the series mass, below which a frequency is numerical noise.
const periodicTolerance = 1e-9

// DetectFreq estimates the number of measurements per cycle
// out of the dominant frequency of the average series of the dataset.
func DetectFreq(ds model.Dataset) (int, error) {
	if err := ds.Validate(); err != nil {
		return 0, err
	}
	n := ds.Length()
	avg := make([]float64, n)
	for _, s := range ds.Series {
		floats.Add(avg, s.Values)
	}
	floats.Scale(1/float64(ds.Len()), avg)

	spectrum := lmath.FFT(avg)
	dominant := spectrum.Dominant(1)
	if len(dominant) == 0 || spectrum.AmplitudeOf(dominant[0]) <= periodicTolerance*math.Max(floats.Norm(avg, 1), 1) {
		return 0, fmt.Errorf("no periodic component in %d measurements: %w", n, model.ErrInvalidValue)
	}
	return int(math.Round(float64(n) / float64(dominant[0]))), nil
}

// Composition counts the archetypes of the bundled dataset within every cluster.
func Composition(a model.Assignment) []map[Archetype]int {
	cc := make([]map[Archetype]int, a.K)
	for c := range cc {
		cc[c] = make(map[Archetype]int)
	}
	for i, l := range a.Labels {
		cc[l][ArchetypeOf(i)]++
	}
	return cc
}
