package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBump(t *testing.T) {

	type test struct {
		i      int
		center float64
		output float64
	}

	tests := map[string]test{
		"peak": {
			i:      10,
			center: 10,
			output: 1,
		},
		"next-cycle": {
			i:      58,
			center: 10,
			output: 1,
		},
		"wrap": {
			// 47 is one step away from 0 on a cycle of 48
			i:      47,
			center: 0,
			output: Bump(1, 48, 0, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.output, Bump(tt.i, 48, tt.center, 2), 1e-12)
		})
	}
}

func TestBump_Width(t *testing.T) {
	// one width away from the center
	assert.InDelta(t, math.Exp(-0.5), Bump(12, 48, 10, 2), 1e-12)
	// wider bumps decay slower
	assert.Greater(t, Bump(20, 48, 10, 4), Bump(20, 48, 10, 2))
	// the far side of the cycle is the same distance both ways
	assert.InDelta(t, Bump(34, 48, 10, 3), Bump(34+48, 48, 10, 3), 1e-12)
}
