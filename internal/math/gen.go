package math

import "math"

// Bump is a gaussian bump centered at the given position of a cycle of the given period.
// Distances wrap around the cycle, so that a bump close to midnight leaks into the next day.
func Bump(i, period int, center, width float64) float64 {
	x := math.Mod(float64(i), float64(period))
	d := math.Abs(x - center)
	if w := float64(period) - d; w < d {
		d = w
	}
	return math.Exp(-(d * d) / (2 * width * width))
}
