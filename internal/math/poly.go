package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LeastSquares solves the over-determined system a * c = y through a QR decomposition.
func LeastSquares(a *mat.Dense, y []float64) ([]float64, error) {
	r, cols := a.Dims()
	if r != len(y) {
		return nil, fmt.Errorf("inconsistent dimensions %d vs %d", r, len(y))
	}
	if r < cols {
		return nil, fmt.Errorf("under-determined system %d x %d", r, cols)
	}

	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(cols, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	err := qr.SolveTo(c, false, b)

	v := c.ColView(0)
	cc := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		cc[i] = v.AtVec(i)
	}
	return cc, err
}

// PenalisedLeastSquares minimises |a * c - y|^2 + lambda * |p * c|^2
// by stacking the penalty below the design matrix.
func PenalisedLeastSquares(a, p *mat.Dense, y []float64, lambda float64) ([]float64, error) {
	if p == nil || lambda == 0 {
		return LeastSquares(a, y)
	}
	r, c := a.Dims()
	pr, pc := p.Dims()
	if pc != c {
		return nil, fmt.Errorf("inconsistent penalty dimensions %d vs %d", pc, c)
	}

	aug := mat.NewDense(r+pr, c, nil)
	aug.Slice(0, r, 0, c).(*mat.Dense).Copy(a)
	scaled := aug.Slice(r, r+pr, 0, c).(*mat.Dense)
	scaled.Scale(math.Sqrt(lambda), p)

	yy := make([]float64, r+pr)
	copy(yy, y)

	return LeastSquares(aug, yy)
}
