package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyDataset  = errors.New("empty dataset")
	ErrUnequalLength = errors.New("unequal series length")
	ErrInvalidValue  = errors.New("invalid value")
)

// Series is the load measurements of a single consumer.
type Series struct {
	ID     string    `json:"id"`
	Values []float64 `json:"values"`
}

// Dataset is a collection of equally sized series.
// Freq is the number of measurements per day.
type Dataset struct {
	Name   string   `json:"name"`
	Freq   int      `json:"freq"`
	Series []Series `json:"series"`
}

// Len returns the number of series.
func (d Dataset) Len() int {
	return len(d.Series)
}

// Length returns the common length of the series.
func (d Dataset) Length() int {
	if len(d.Series) == 0 {
		return 0
	}
	return len(d.Series[0].Values)
}

// Matrix returns the values of the dataset one row per series.
// The rows are shared with the dataset.
func (d Dataset) Matrix() [][]float64 {
	m := make([][]float64, len(d.Series))
	for i, s := range d.Series {
		m[i] = s.Values
	}
	return m
}

// IDs returns the series identifiers in order.
func (d Dataset) IDs() []string {
	ids := make([]string, len(d.Series))
	for i, s := range d.Series {
		ids[i] = s.ID
	}
	return ids
}

// Validate checks the dataset is non-empty, rectangular and finite.
func (d Dataset) Validate() error {
	if len(d.Series) == 0 || d.Length() == 0 {
		return fmt.Errorf("dataset '%s': %w", d.Name, ErrEmptyDataset)
	}
	n := d.Length()
	for i, s := range d.Series {
		if len(s.Values) != n {
			return fmt.Errorf("series %d '%s' has %d values instead of %d: %w", i, s.ID, len(s.Values), n, ErrUnequalLength)
		}
		for j, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("series %d '%s' at %d: %v: %w", i, s.ID, j, v, ErrInvalidValue)
			}
		}
	}
	return nil
}

// Representation is the outcome of applying a representation method on every series of a dataset.
type Representation struct {
	Method  string      `json:"method"`
	Vectors [][]float64 `json:"vectors"`
}

// Dim returns the length of the representation vectors.
func (r Representation) Dim() int {
	if len(r.Vectors) == 0 {
		return 0
	}
	return len(r.Vectors[0])
}

// Assignment is a partition of the dataset entities into K clusters.
// Labels holds the cluster of each entity, Medoids the entity index representing each cluster.
type Assignment struct {
	K       int     `json:"k"`
	Labels  []int   `json:"labels"`
	Medoids []int   `json:"medoids"`
	Cost    float64 `json:"cost"`
}

// Members returns the entity indexes of cluster c.
func (a Assignment) Members(c int) []int {
	mm := make([]int, 0)
	for i, l := range a.Labels {
		if l == c {
			mm = append(mm, i)
		}
	}
	return mm
}

// Sizes returns the number of members per cluster.
func (a Assignment) Sizes() []int {
	ss := make([]int, a.K)
	for _, l := range a.Labels {
		ss[l]++
	}
	return ss
}

// Score is the value of an internal validity index for a clustering of K clusters.
// A degenerate score carries the worst finite value of the index.
type Score struct {
	K          int     `json:"k"`
	Index      string  `json:"index"`
	Value      float64 `json:"value"`
	Degenerate bool    `json:"degenerate,omitempty"`
}
