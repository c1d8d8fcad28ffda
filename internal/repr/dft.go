package repr

import (
	"fmt"

	lmath "github.com/drakos74/load-profiles/internal/math"
)

// DFT keeps the first Coef fourier coefficients of the series,
// transformed back into the time domain.
// Coef is capped at half of the series length.
type DFT struct {
	Coef int
}

func (d DFT) Name() string {
	return fmt.Sprintf("dft(coef=%d)", d.Coef)
}

func (d DFT) Len(n int) (int, error) {
	if d.Coef <= 0 {
		return 0, fmt.Errorf("coefficients %d: %w", d.Coef, ErrInvalidParams)
	}
	if n < 2 {
		return 0, fmt.Errorf("length %d: %w", n, ErrLength)
	}
	if d.Coef > n/2 {
		return n / 2, nil
	}
	return d.Coef, nil
}

func (d DFT) Apply(x []float64) ([]float64, error) {
	coef, err := d.Len(len(x))
	if err != nil {
		return nil, err
	}
	return lmath.LowPass(x, coef), nil
}
