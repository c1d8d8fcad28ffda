package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// BSpline evaluates k equally spaced B-spline basis functions of the given degree over [lo, hi)
// at each of the points in x. The result has one row per point and one column per basis function.
func BSpline(x []float64, lo, hi float64, k, degree int) (*mat.Dense, error) {
	if hi <= lo {
		return nil, fmt.Errorf("invalid range [%v,%v)", lo, hi)
	}
	if degree < 0 || k < degree+1 {
		return nil, fmt.Errorf("need at least %d basis functions for degree %d, got %d", degree+1, degree, k)
	}
	segments := k - degree
	dx := (hi - lo) / float64(segments)
	knots := make([]float64, k+degree+1)
	for j := range knots {
		knots[j] = lo + float64(j-degree)*dx
	}

	b := mat.NewDense(len(x), k, nil)
	for i, v := range x {
		// the right edge belongs to the last segment
		if v >= hi {
			v = math.Nextafter(hi, lo)
		}
		row := basis(v, knots, degree)
		for j := 0; j < k; j++ {
			b.Set(i, j, row[j])
		}
	}
	return b, nil
}

// basis runs the Cox-de Boor recursion for a single point.
func basis(x float64, knots []float64, degree int) []float64 {
	n := len(knots) - 1
	b := make([]float64, n)
	for j := 0; j < n; j++ {
		if knots[j] <= x && x < knots[j+1] {
			b[j] = 1
		}
	}
	for d := 1; d <= degree; d++ {
		for j := 0; j < n-d; j++ {
			var left, right float64
			if w := knots[j+d] - knots[j]; w > 0 {
				left = (x - knots[j]) / w * b[j]
			}
			if w := knots[j+d+1] - knots[j+1]; w > 0 {
				right = (knots[j+d+1] - x) / w * b[j+1]
			}
			b[j] = left + right
		}
	}
	return b[:n-degree]
}

// Difference returns the difference penalty matrix of the given order for k coefficients.
// The order is reduced when there are not enough coefficients.
func Difference(k, order int) *mat.Dense {
	if order >= k {
		order = k - 1
	}
	if order <= 0 {
		return nil
	}
	// coefficients of the order-th difference e.g. [1 -2 1]
	w := []float64{1}
	for o := 0; o < order; o++ {
		next := make([]float64, len(w)+1)
		for i, c := range w {
			next[i] += c
			next[i+1] -= c
		}
		w = next
	}
	d := mat.NewDense(k-order, k, nil)
	for i := 0; i < k-order; i++ {
		for j, c := range w {
			d.Set(i, i+j, c)
		}
	}
	return d
}
