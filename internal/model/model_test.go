package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_Validate(t *testing.T) {

	type test struct {
		dataset Dataset
		err     error
	}

	tests := map[string]test{
		"valid": {
			dataset: Dataset{Series: []Series{
				{ID: "a", Values: []float64{1, 2}},
				{ID: "b", Values: []float64{3, 4}},
			}},
		},
		"empty": {
			dataset: Dataset{},
			err:     ErrEmptyDataset,
		},
		"unequal": {
			dataset: Dataset{Series: []Series{
				{ID: "a", Values: []float64{1, 2}},
				{ID: "b", Values: []float64{3}},
			}},
			err: ErrUnequalLength,
		},
		"nan": {
			dataset: Dataset{Series: []Series{
				{ID: "a", Values: []float64{1, math.NaN()}},
			}},
			err: ErrInvalidValue,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.dataset.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestAssignment_Members(t *testing.T) {
	a := Assignment{
		K:       2,
		Labels:  []int{0, 1, 1, 0, 1},
		Medoids: []int{0, 2},
	}
	assert.Equal(t, []int{0, 3}, a.Members(0))
	assert.Equal(t, []int{1, 2, 4}, a.Members(1))
	assert.Equal(t, []int{2, 3}, a.Sizes())
}
