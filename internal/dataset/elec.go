package dataset

import (
	"fmt"
	"math"

	lmath "github.com/drakos74/load-profiles/internal/math"
	"github.com/drakos74/load-profiles/internal/model"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// ElecName is the name of the bundled dataset.
	ElecName = "elec_load"
	// ElecConsumers is the number of consumers in the bundled dataset.
	ElecConsumers = 50
	// ElecFreq is the number of half-hourly measurements per day.
	ElecFreq = 48
	// ElecDays is the number of days covered by each consumer.
	ElecDays = 14
	// ElecSeed is the default seed of the bundled dataset.
	ElecSeed = 1234
)

// Archetype is a typical consumption shape.
type Archetype int

const (
	Residential Archetype = iota
	Office
	NightStorage
	Industrial
	Retail
)

var archetypes = []Archetype{Residential, Office, NightStorage, Industrial, Retail}

// Archetypes returns all archetypes in generation order.
func Archetypes() []Archetype {
	return append([]Archetype(nil), archetypes...)
}

func (a Archetype) String() string {
	switch a {
	case Residential:
		return "residential"
	case Office:
		return "office"
	case NightStorage:
		return "night-storage"
	case Industrial:
		return "industrial"
	case Retail:
		return "retail"
	}
	return fmt.Sprintf("archetype(%d)", int(a))
}

// shape returns the noiseless relative load at step i for a consumer shifted by the given steps.
func (a Archetype) shape(i int, shift float64) float64 {
	day := (i / ElecFreq) % 7
	weekend := day >= 5
	switch a {
	case Residential:
		v := 0.3 + 0.5*lmath.Bump(i, ElecFreq, 15+shift, 2) + 1.0*lmath.Bump(i, ElecFreq, 38+shift, 3)
		if weekend {
			v += 0.4 * lmath.Bump(i, ElecFreq, 26+shift, 5)
		}
		return v
	case Office:
		if weekend {
			return 0.2
		}
		return 0.2 + plateau(i, 16+shift, 35+shift)
	case NightStorage:
		return 0.2 + 1.2*plateau(i, 0, 12+shift) + 0.2*lmath.Bump(i, ElecFreq, 38+shift, 3)
	case Industrial:
		if weekend {
			return 0.8
		}
		return 1.0
	case Retail:
		v := 0.15 + 0.8*plateau(i, 18+shift, 40+shift) + 0.3*lmath.Bump(i, ElecFreq, 30+shift, 4)
		if day == 6 {
			v *= 0.6
		}
		return v
	}
	return 0
}

// plateau is a smooth step up at from and down at to within the day.
func plateau(i int, from, to float64) float64 {
	x := math.Mod(float64(i), ElecFreq)
	up := 1 / (1 + math.Exp(-(x-from)*1.5))
	down := 1 / (1 + math.Exp((x-to)*1.5))
	return up * down
}

// ElecLoad generates the bundled electricity load dataset for the given seed.
// It holds ElecConsumers series of ElecDays * ElecFreq half-hourly measurements.
// Consumers cycle through the archetypes, each with its own level, peak shift and noise.
func ElecLoad(seed uint64) model.Dataset {
	src := rand.NewSource(seed)
	level := distuv.LogNormal{Mu: 0, Sigma: 0.5, Src: src}
	shift := distuv.Uniform{Min: -2, Max: 2, Src: src}
	noise := distuv.Normal{Mu: 1, Sigma: 0.08, Src: src}

	n := ElecDays * ElecFreq
	series := make([]model.Series, ElecConsumers)
	for c := 0; c < ElecConsumers; c++ {
		a := archetypes[c%len(archetypes)]
		l := 10 * level.Rand()
		s := shift.Rand()
		values := make([]float64, n)
		for i := 0; i < n; i++ {
			v := l * a.shape(i, s) * noise.Rand()
			values[i] = math.Max(v, 0.01)
		}
		series[c] = model.Series{
			ID:     fmt.Sprintf("consumer-%02d", c+1),
			Values: values,
		}
	}
	return model.Dataset{
		Name:   ElecName,
		Freq:   ElecFreq,
		Series: series,
	}
}

// ArchetypeOf returns the archetype the consumer at the given index of the bundled dataset was generated from.
func ArchetypeOf(index int) Archetype {
	return archetypes[index%len(archetypes)]
}
