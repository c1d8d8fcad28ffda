package cluster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/drakos74/load-profiles/internal/metrics"
	"github.com/drakos74/load-profiles/internal/model"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of clustering for a range of cluster counts.
type Result struct {
	Index       string             `json:"index"`
	LowerBetter bool               `json:"lower_better"`
	Scores      []model.Score      `json:"scores"`
	Assignments []model.Assignment `json:"assignments"`
}

// Sweep clusters the vectors with PAM for every k in [kMin, kMax]
// and scores every clustering with the given validity index.
func Sweep(ctx context.Context, vectors [][]float64, kMin, kMax int, index string) (Result, error) {
	score, lower, err := Lookup(index)
	if err != nil {
		return Result{}, err
	}
	if index == "" {
		index = DaviesBouldinIndex
	}
	if kMin < 2 || kMax < kMin || kMax > len(vectors) {
		return Result{}, fmt.Errorf("range [%d,%d] for %d entities: %w", kMin, kMax, len(vectors), ErrInvalidK)
	}
	d, err := Distances(vectors)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Index:       index,
		LowerBetter: lower,
		Scores:      make([]model.Score, 0, kMax-kMin+1),
		Assignments: make([]model.Assignment, 0, kMax-kMin+1),
	}
	for k := kMin; k <= kMax; k++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		start := time.Now()
		a, err := PAM(d, k)
		if err != nil {
			return result, fmt.Errorf("could not cluster for k=%d: %w", k, err)
		}
		s := model.Score{K: k, Index: index}
		v, err := score(vectors, d, a)
		switch {
		case errors.Is(err, ErrDegenerate):
			log.Warn().Err(err).Int("k", k).Str("index", index).Msg("degenerate clustering")
			v = Worst(lower)
			s.Degenerate = true
		case err != nil:
			return result, fmt.Errorf("could not score k=%d: %w", k, err)
		}
		s.Value = v
		metrics.Observer.Clustering(index, k, time.Since(start))
		log.Debug().
			Int("k", k).
			Str("index", index).
			Float64("score", v).
			Float64("cost", a.Cost).
			Ints("sizes", a.Sizes()).
			Msg("clustered")
		result.Scores = append(result.Scores, s)
		result.Assignments = append(result.Assignments, a)
	}
	return result, nil
}

// Best returns the position of the best score.
// Degenerate scores are only picked when all scores are degenerate.
// Ties resolve to the smallest k.
func (r Result) Best() int {
	best := -1
	for i, s := range r.Scores {
		switch {
		case s.Degenerate:
		case best < 0:
			best = i
		case r.LowerBetter && s.Value < r.Scores[best].Value:
			best = i
		case !r.LowerBetter && s.Value > r.Scores[best].Value:
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// For returns the assignment for the given k.
func (r Result) For(k int) (model.Assignment, bool) {
	for _, a := range r.Assignments {
		if a.K == k {
			return a, true
		}
	}
	return model.Assignment{}, false
}
