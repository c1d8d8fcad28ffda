package repr

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

const (
	AggMean   = "mean"
	AggMedian = "median"
)

// SeasonalProfile is the average day of a series.
// The series is folded into rows of Freq measurements and every column is aggregated.
type SeasonalProfile struct {
	Freq int
	Func string
}

func (s SeasonalProfile) Name() string {
	return fmt.Sprintf("seasonal(freq=%d,func=%s)", s.Freq, s.agg())
}

func (s SeasonalProfile) agg() string {
	if s.Func == "" {
		return AggMean
	}
	return s.Func
}

func (s SeasonalProfile) Len(n int) (int, error) {
	if s.Freq <= 0 {
		return 0, fmt.Errorf("frequency %d: %w", s.Freq, ErrInvalidParams)
	}
	if a := s.agg(); a != AggMean && a != AggMedian {
		return 0, fmt.Errorf("aggregation '%s': %w", a, ErrUnknown)
	}
	if n < s.Freq || n%s.Freq != 0 {
		return 0, fmt.Errorf("length %d is not a multiple of %d: %w", n, s.Freq, ErrLength)
	}
	return s.Freq, nil
}

func (s SeasonalProfile) Apply(x []float64) ([]float64, error) {
	if _, err := s.Len(len(x)); err != nil {
		return nil, err
	}
	rows := len(x) / s.Freq
	profile := make([]float64, s.Freq)
	column := make([]float64, rows)
	for j := 0; j < s.Freq; j++ {
		for r := 0; r < rows; r++ {
			column[r] = x[r*s.Freq+j]
		}
		switch s.agg() {
		case AggMedian:
			profile[j] = median(column)
		default:
			profile[j] = stat.Mean(column, nil)
		}
	}
	return profile, nil
}

// median averages the two middle elements for an even count.
func median(x []float64) float64 {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
