package cluster

import (
	"fmt"
	"math"

	"github.com/drakos74/load-profiles/internal/model"
	"gonum.org/v1/gonum/floats"
)

const (
	// DaviesBouldinIndex is the Davies-Bouldin index, lower is better.
	DaviesBouldinIndex = "davies-bouldin"
	// SilhouetteIndex is the mean silhouette width, higher is better.
	SilhouetteIndex = "silhouette"
)

// Index computes an internal validity score of a clustering.
type Index func(vectors [][]float64, d [][]float64, a model.Assignment) (float64, error)

// Worst returns the worst finite value of an index.
func Worst(lowerBetter bool) float64 {
	if lowerBetter {
		return math.MaxFloat64
	}
	return -1
}

// Lookup returns the index for the given name and whether lower values are better.
func Lookup(name string) (Index, bool, error) {
	switch name {
	case DaviesBouldinIndex, "":
		return func(vectors [][]float64, _ [][]float64, a model.Assignment) (float64, error) {
			return DaviesBouldin(vectors, a)
		}, true, nil
	case SilhouetteIndex:
		return func(_ [][]float64, d [][]float64, a model.Assignment) (float64, error) {
			return Silhouette(d, a)
		}, false, nil
	}
	return nil, false, fmt.Errorf("index '%s': %w", name, ErrUnknown)
}

// Centroids returns the mean vector of every cluster.
func Centroids(vectors [][]float64, a model.Assignment) [][]float64 {
	dim := len(vectors[0])
	centroids := make([][]float64, a.K)
	counts := make([]float64, a.K)
	for c := range centroids {
		centroids[c] = make([]float64, dim)
	}
	for i, v := range vectors {
		floats.Add(centroids[a.Labels[i]], v)
		counts[a.Labels[i]]++
	}
	for c := range centroids {
		if counts[c] > 0 {
			floats.Scale(1/counts[c], centroids[c])
		}
	}
	return centroids
}

// DaviesBouldin computes the Davies-Bouldin index.
// The scatter of a cluster is the mean distance of its members to the centroid,
// the index is the mean over clusters of the worst ratio of summed scatters to centroid distance.
// Coinciding centroids make the index undefined and return ErrDegenerate.
func DaviesBouldin(vectors [][]float64, a model.Assignment) (float64, error) {
	if err := check(vectors, a); err != nil {
		return 0, err
	}
	centroids := Centroids(vectors, a)
	scatter := make([]float64, a.K)
	counts := make([]float64, a.K)
	for i, v := range vectors {
		c := a.Labels[i]
		scatter[c] += floats.Distance(v, centroids[c], 2)
		counts[c]++
	}
	for c := range scatter {
		if counts[c] > 0 {
			scatter[c] /= counts[c]
		}
	}

	var db float64
	for i := 0; i < a.K; i++ {
		worst := 0.0
		for j := 0; j < a.K; j++ {
			if i == j {
				continue
			}
			m := floats.Distance(centroids[i], centroids[j], 2)
			if m == 0 {
				return 0, fmt.Errorf("clusters %d and %d share their centroid: %w", i, j, ErrDegenerate)
			}
			worst = math.Max(worst, (scatter[i]+scatter[j])/m)
		}
		db += worst
	}
	return db / float64(a.K), nil
}

// Silhouette computes the mean silhouette width over all entities.
// Entities in singleton clusters have a width of 0.
func Silhouette(d [][]float64, a model.Assignment) (float64, error) {
	if err := check(d, a); err != nil {
		return 0, err
	}
	sizes := a.Sizes()
	var total float64
	for i := range d {
		own := a.Labels[i]
		if sizes[own] <= 1 {
			continue
		}
		sums := make([]float64, a.K)
		for j := range d {
			if i != j {
				sums[a.Labels[j]] += d[i][j]
			}
		}
		in := sums[own] / float64(sizes[own]-1)
		out := math.Inf(1)
		for c := 0; c < a.K; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			out = math.Min(out, sums[c]/float64(sizes[c]))
		}
		if math.IsInf(out, 1) {
			continue
		}
		if m := math.Max(in, out); m > 0 {
			total += (out - in) / m
		}
	}
	return total / float64(len(d)), nil
}

func check(rows [][]float64, a model.Assignment) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	if len(rows) != len(a.Labels) {
		return fmt.Errorf("%d rows for %d labels: %w", len(rows), len(a.Labels), ErrDimensions)
	}
	if a.K < 2 {
		return fmt.Errorf("validity needs at least 2 clusters, got %d: %w", a.K, ErrInvalidK)
	}
	return nil
}
