package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

func TestLeastSquares(t *testing.T) {

	x := []float64{0, 1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 1 + 2*v + 3*v*v
	}

	cc, err := LeastSquares(vandermonde(x, 2), y)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(cc, []float64{1, 2, 3}, 1e-9), "%v", cc)

}

func TestLeastSquares_Dimensions(t *testing.T) {
	_, err := LeastSquares(mat.NewDense(2, 3, nil), []float64{1, 2})
	assert.Error(t, err)
	_, err = LeastSquares(mat.NewDense(3, 1, []float64{1, 1, 1}), []float64{1, 2})
	assert.Error(t, err)
}

func TestPenalisedLeastSquares(t *testing.T) {

	a := mat.NewDense(4, 2, []float64{
		1, 0,
		1, 1,
		1, 2,
		1, 3,
	})
	y := []float64{1, 3, 5, 7}

	free, err := PenalisedLeastSquares(a, nil, y, 0)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(free, []float64{1, 2}, 1e-9), "%v", free)

	// penalising the slope shrinks it towards zero
	p := mat.NewDense(1, 2, []float64{0, 1})
	shrunk, err := PenalisedLeastSquares(a, p, y, 100)
	require.NoError(t, err)
	assert.Less(t, shrunk[1], free[1])
}

func TestBSpline(t *testing.T) {

	x := make([]float64, 48)
	for i := range x {
		x[i] = float64(i)
	}

	b, err := BSpline(x, 0, 48, 10, 3)
	require.NoError(t, err)

	r, c := b.Dims()
	assert.Equal(t, 48, r)
	assert.Equal(t, 10, c)

	// partition of unity
	for i := 0; i < r; i++ {
		assert.InDelta(t, 1.0, floats.Sum(mat.Row(nil, i, b)), 1e-9)
	}

	_, err = BSpline(x, 0, 48, 3, 3)
	assert.Error(t, err)
}

func TestDifference(t *testing.T) {

	d := Difference(4, 2)
	assert.Equal(t, []float64{
		1, -2, 1, 0,
		0, 1, -2, 1,
	}, d.RawMatrix().Data)

	assert.Nil(t, Difference(1, 2))

	d = Difference(2, 2)
	assert.Equal(t, []float64{1, -1}, d.RawMatrix().Data)
}
