package repr

import (
	"fmt"

	lmath "github.com/drakos74/load-profiles/internal/math"
	"gonum.org/v1/gonum/mat"
)

// DefaultLambda is the smoothing parameter used when none is given.
const DefaultLambda = 1.0

// GAM fits an additive model with a daily and an optional weekly smooth term
// and returns the coefficients of the smooth terms.
// Each term is a penalised cubic regression spline (P-spline) with as many basis functions
// as the distinct positions in its cycle, Freq[0] for the day and Freq[1]/Freq[0] for the week.
// One basis function per term is absorbed by the intercept,
// so a series covering the weekly cycle yields (Freq[0]-1) + (Freq[1]/Freq[0]-1) coefficients.
// Shorter series only fit the daily term.
type GAM struct {
	Freq   [2]int
	Lambda float64
}

func (g GAM) Name() string {
	if g.Freq[1] > 0 {
		return fmt.Sprintf("gam(freq=%d/%d)", g.Freq[0], g.Freq[1])
	}
	return fmt.Sprintf("gam(freq=%d)", g.Freq[0])
}

func (g GAM) lambda() float64 {
	if g.Lambda <= 0 {
		return DefaultLambda
	}
	return g.Lambda
}

// terms returns the number of basis functions of the daily and weekly term for a series of length n.
func (g GAM) terms(n int) (int, int, error) {
	day := g.Freq[0]
	if day < 2 {
		return 0, 0, fmt.Errorf("daily frequency %d: %w", day, ErrInvalidParams)
	}
	if n < day {
		return 0, 0, fmt.Errorf("length %d shorter than a day of %d: %w", n, day, ErrLength)
	}
	week := g.Freq[1]
	if week <= 0 || n < week {
		return day, 0, nil
	}
	if week%day != 0 || week/day < 2 {
		return 0, 0, fmt.Errorf("weekly frequency %d is not a multiple of %d: %w", week, day, ErrInvalidParams)
	}
	return day, week / day, nil
}

func (g GAM) Len(n int) (int, error) {
	day, week, err := g.terms(n)
	if err != nil {
		return 0, err
	}
	l := day - 1
	if week > 0 {
		l += week - 1
	}
	return l, nil
}

func (g GAM) Apply(x []float64) ([]float64, error) {
	day, week, err := g.terms(len(x))
	if err != nil {
		return nil, err
	}
	n := len(x)

	daily := make([]float64, n)
	weekly := make([]float64, n)
	for i := 0; i < n; i++ {
		daily[i] = float64(i % day)
		if week > 0 {
			weekly[i] = float64((i / day) % week)
		}
	}

	blocks := make([]*mat.Dense, 0, 2)
	penalties := make([]*mat.Dense, 0, 2)
	b, err := term(daily, day)
	if err != nil {
		return nil, fmt.Errorf("daily term: %w", err)
	}
	blocks = append(blocks, b)
	penalties = append(penalties, lmath.Difference(day-1, 2))
	if week > 0 {
		b, err := term(weekly, week)
		if err != nil {
			return nil, fmt.Errorf("weekly term: %w", err)
		}
		blocks = append(blocks, b)
		penalties = append(penalties, lmath.Difference(week-1, 2))
	}

	design, penalty := stack(n, blocks, penalties)
	cc, err := lmath.PenalisedLeastSquares(design, penalty, x, g.lambda())
	if err != nil {
		return nil, fmt.Errorf("could not fit '%s': %w", g.Name(), err)
	}
	// drop the intercept
	return cc[1:], nil
}

// term returns the basis of a smooth term without its first column.
func term(x []float64, k int) (*mat.Dense, error) {
	degree := 3
	if k-1 < degree {
		degree = k - 1
	}
	b, err := lmath.BSpline(x, 0, float64(k), k, degree)
	if err != nil {
		return nil, err
	}
	r, _ := b.Dims()
	return mat.DenseCopyOf(b.Slice(0, r, 1, k)), nil
}

// stack builds the design matrix [1 | B1 | B2 ...] and the block diagonal penalty matrix,
// leaving the intercept unpenalised.
func stack(n int, blocks, penalties []*mat.Dense) (*mat.Dense, *mat.Dense) {
	cols := 1
	rows := 0
	for i, b := range blocks {
		_, c := b.Dims()
		cols += c
		if p := penalties[i]; p != nil {
			pr, _ := p.Dims()
			rows += pr
		}
	}

	design := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
	}
	var penalty *mat.Dense
	if rows > 0 {
		penalty = mat.NewDense(rows, cols, nil)
	}

	col, row := 1, 0
	for i, b := range blocks {
		_, c := b.Dims()
		design.Slice(0, n, col, col+c).(*mat.Dense).Copy(b)
		if p := penalties[i]; p != nil {
			pr, _ := p.Dims()
			penalty.Slice(row, row+pr, col, col+c).(*mat.Dense).Copy(p)
			row += pr
		}
		col += c
	}
	return design, penalty
}
