package dataset

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/drakos74/load-profiles/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElecLoad(t *testing.T) {

	ds := ElecLoad(ElecSeed)

	require.NoError(t, ds.Validate())
	assert.Equal(t, ElecName, ds.Name)
	assert.Equal(t, 50, ds.Len())
	assert.Equal(t, 672, ds.Length())
	assert.Equal(t, 48, ds.Freq)

	for _, s := range ds.Series {
		for _, v := range s.Values {
			assert.Greater(t, v, 0.0)
		}
	}

	// same seed , same data
	assert.Equal(t, ds, ElecLoad(ElecSeed))
	other := uint64(ElecSeed + 1)
	assert.NotEqual(t, ds.Series[0].Values, ElecLoad(other).Series[0].Values)
}

func TestArchetype(t *testing.T) {
	assert.Equal(t, Residential, ArchetypeOf(0))
	assert.Equal(t, Retail, ArchetypeOf(4))
	assert.Equal(t, Residential, ArchetypeOf(5))
	assert.Equal(t, "night-storage", NightStorage.String())
}

func TestCSV(t *testing.T) {

	ds := ElecLoad(ElecSeed)

	var buf bytes.Buffer
	require.NoError(t, SaveCSV(&buf, ds))

	loaded, err := LoadCSV(&buf, ElecName, ElecFreq)
	require.NoError(t, err)
	assert.Equal(t, ds, loaded)
}

func TestLoadCSV_Errors(t *testing.T) {

	type test struct {
		input string
		err   error
	}

	tests := map[string]test{
		"not-a-number": {
			input: "id,t1,t2\na,1,x\n",
			err:   model.ErrInvalidValue,
		},
		"unequal": {
			input: "id,t1,t2\na,1,2\nb,1\n",
			err:   model.ErrUnequalLength,
		},
		"empty": {
			input: "id,t1,t2\n",
			err:   model.ErrEmptyDataset,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.input), name, 2)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDetectFreq(t *testing.T) {

	daily := make([]float64, 480)
	for i := range daily {
		daily[i] = 5 + math.Sin(2*math.Pi*float64(i)/48)
	}
	ds := model.Dataset{Series: []model.Series{{ID: "a", Values: daily}, {ID: "b", Values: daily}}}

	freq, err := DetectFreq(ds)
	require.NoError(t, err)
	assert.Equal(t, 48, freq)

	single := model.Dataset{Series: []model.Series{{ID: "a", Values: []float64{1}}}}
	_, err = DetectFreq(single)
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	constant := make([]float64, 480)
	for i := range constant {
		constant[i] = 5
	}
	flat := model.Dataset{Series: []model.Series{{ID: "a", Values: constant}}}
	_, err = DetectFreq(flat)
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	_, err = DetectFreq(model.Dataset{})
	assert.ErrorIs(t, err, model.ErrEmptyDataset)
}

func TestComposition(t *testing.T) {
	a := model.Assignment{K: 2, Labels: []int{0, 1, 0, 1, 1, 0}}
	cc := Composition(a)
	assert.Equal(t, map[Archetype]int{Residential: 2, NightStorage: 1}, cc[0])
	assert.Equal(t, map[Archetype]int{Office: 1, Industrial: 1, Retail: 1}, cc[1])
}
