package cluster

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/drakos74/load-profiles/internal/model"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidK    = errors.New("invalid number of clusters")
	ErrNoData      = errors.New("no data")
	ErrUnknown     = errors.New("unknown")
	ErrDimensions  = errors.New("inconsistent dimensions")
	ErrDegenerate  = errors.New("degenerate clustering")
	improveEpsilon = 1e-10
)

// Distances computes the symmetric euclidean distance matrix of the vectors.
func Distances(vectors [][]float64) ([][]float64, error) {
	n := len(vectors)
	if n == 0 {
		return nil, ErrNoData
	}
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		if len(vectors[i]) != len(vectors[0]) {
			return nil, fmt.Errorf("vector %d has %d values instead of %d: %w", i, len(vectors[i]), len(vectors[0]), ErrDimensions)
		}
		for j := i + 1; j < n; j++ {
			v := floats.Distance(vectors[i], vectors[j], 2)
			d[i][j] = v
			d[j][i] = v
		}
	}
	return d, nil
}

// PAM partitions the entities of the distance matrix around k medoids.
// The initial medoids are chosen greedily (BUILD) and then improved by the best swap
// of a medoid with a non-medoid until no swap lowers the total distance (SWAP).
// Ties resolve to the lowest entity index, so the result is deterministic.
// Clusters are numbered by the entity index of their medoid.
func PAM(d [][]float64, k int) (model.Assignment, error) {
	n := len(d)
	if n == 0 {
		return model.Assignment{}, ErrNoData
	}
	if k < 1 || k > n {
		return model.Assignment{}, fmt.Errorf("k=%d for %d entities: %w", k, n, ErrInvalidK)
	}

	medoids := build(d, k)
	cost := total(d, medoids)
	for {
		bestCost, bestM, bestO := cost, -1, -1
		for m := range medoids {
			for o := 0; o < n; o++ {
				if contains(medoids, o) {
					continue
				}
				previous := medoids[m]
				medoids[m] = o
				c := total(d, medoids)
				medoids[m] = previous
				if c < bestCost-improveEpsilon {
					bestCost, bestM, bestO = c, m, o
				}
			}
		}
		if bestM < 0 {
			break
		}
		medoids[bestM] = bestO
		cost = bestCost
	}

	sort.Ints(medoids)
	return assign(d, medoids), nil
}

// build selects k initial medoids.
// The first one minimises the total distance,
// every next one maximises the decrease of the distance to the nearest medoid.
func build(d [][]float64, k int) []int {
	n := len(d)
	medoids := make([]int, 0, k)

	first, best := 0, math.Inf(1)
	for i := 0; i < n; i++ {
		if s := floats.Sum(d[i]); s < best {
			first, best = i, s
		}
	}
	medoids = append(medoids, first)

	nearest := make([]float64, n)
	copy(nearest, d[first])
	for len(medoids) < k {
		candidate, gain := -1, -1.0
		for i := 0; i < n; i++ {
			if contains(medoids, i) {
				continue
			}
			g := 0.0
			for j := 0; j < n; j++ {
				if diff := nearest[j] - d[i][j]; diff > 0 {
					g += diff
				}
			}
			if g > gain {
				candidate, gain = i, g
			}
		}
		medoids = append(medoids, candidate)
		for j := 0; j < n; j++ {
			nearest[j] = math.Min(nearest[j], d[candidate][j])
		}
	}
	return medoids
}

// total is the sum of distances of every entity to its nearest medoid.
func total(d [][]float64, medoids []int) float64 {
	var t float64
	for j := range d {
		best := math.Inf(1)
		for _, m := range medoids {
			if d[m][j] < best {
				best = d[m][j]
			}
		}
		t += best
	}
	return t
}

// assign labels every entity with its nearest medoid. Medoids always belong to their own cluster.
func assign(d [][]float64, medoids []int) model.Assignment {
	labels := make([]int, len(d))
	var cost float64
	for j := range d {
		label, best := 0, math.Inf(1)
		for c, m := range medoids {
			if m == j {
				label, best = c, 0
				break
			}
			if d[m][j] < best {
				label, best = c, d[m][j]
			}
		}
		labels[j] = label
		cost += best
	}
	return model.Assignment{
		K:       len(medoids),
		Labels:  labels,
		Medoids: medoids,
		Cost:    cost,
	}
}

func contains(ii []int, i int) bool {
	for _, v := range ii {
		if v == i {
			return true
		}
	}
	return false
}
