package repr

import (
	"context"
	"math"
	"testing"

	"github.com/drakos74/load-profiles/internal/dataset"
	"github.com/drakos74/load-profiles/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNorm(t *testing.T) {

	type test struct {
		name   string
		input  []float64
		output []float64
	}

	tests := map[string]test{
		"z": {
			name:   NormZScore,
			input:  []float64{1, 2, 3},
			output: []float64{-1, 0, 1},
		},
		"z-constant": {
			name:   NormZScore,
			input:  []float64{5, 5, 5},
			output: []float64{0, 0, 0},
		},
		"minmax": {
			name:   NormMinMax,
			input:  []float64{2, 4, 6},
			output: []float64{0, 0.5, 1},
		},
		"minmax-constant": {
			name:   NormMinMax,
			input:  []float64{5, 5},
			output: []float64{0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			norm, err := Norm(tt.name)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.output, norm(tt.input), 1e-12)
		})
	}

	norm, err := Norm(NormNone)
	assert.NoError(t, err)
	assert.Nil(t, norm)

	_, err = Norm("log")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestSeasonalProfile(t *testing.T) {

	x := []float64{1, 2, 3, 3, 4, 5, 100, 100, 100}

	mean, err := SeasonalProfile{Freq: 3}.Apply(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{104.0 / 3, 106.0 / 3, 108.0 / 3}, mean, 1e-12)

	median, err := SeasonalProfile{Freq: 3, Func: AggMedian}.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, median)

	even, err := SeasonalProfile{Freq: 2, Func: AggMedian}.Apply([]float64{1, 10, 3, 20})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 15}, even)

	_, err = SeasonalProfile{Freq: 4}.Apply(x)
	assert.ErrorIs(t, err, ErrLength)

	_, err = SeasonalProfile{Freq: 3, Func: "max"}.Apply(x)
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestFeaClip(t *testing.T) {

	type test struct {
		input  []float64
		output []float64
	}

	tests := map[string]test{
		"mixed": {
			// bits 0 0 1 1 1 0 1 0
			input:  []float64{1, 1, 5, 5, 5, 1, 5, 1},
			output: []float64{3, 4, 2, 4, 2, 1, 0, 0},
		},
		"starts-high": {
			// bits 1 0 0 1
			input:  []float64{4, 1, 1, 4},
			output: []float64{1, 2, 2, 2, 0, 0, 1, 1},
		},
		"constant": {
			// nothing is above the mean
			input:  []float64{2, 2, 2},
			output: []float64{0, 0, 3, 0, 3, 3, 0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ff, err := FeaClip{}.Apply(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.output, ff)
		})
	}

	_, err := FeaClip{}.Apply([]float64{})
	assert.ErrorIs(t, err, ErrLength)
}

func TestRLE(t *testing.T) {
	runs := RLE([]bool{true, true, false, true})
	assert.Equal(t, []Run{{Bit: true, Len: 2}, {Bit: false, Len: 1}, {Bit: true, Len: 1}}, runs)
}

func TestWindowing(t *testing.T) {

	w := Windowing{Win: 4, Method: FeaClip{}}

	l, err := w.Len(8)
	require.NoError(t, err)
	assert.Equal(t, 16, l)

	ff, err := w.Apply([]float64{4, 1, 1, 4, 2, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 2, 0, 0, 1, 1, 0, 0, 4, 0, 4, 4, 0, 0}, ff)

	_, err = w.Len(10)
	assert.ErrorIs(t, err, ErrLength)
}

func TestDFT(t *testing.T) {

	d := DFT{Coef: 48}
	l, err := d.Len(672)
	require.NoError(t, err)
	assert.Equal(t, 48, l)

	// capped at half the length
	l, err = d.Len(60)
	require.NoError(t, err)
	assert.Equal(t, 30, l)

	_, err = DFT{}.Len(672)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestGAM_Len(t *testing.T) {

	type test struct {
		gam    GAM
		n      int
		output int
		err    error
	}

	tests := map[string]test{
		"two-seasonalities": {
			gam: GAM{Freq: [2]int{48, 48 * 7}},
			n:   672,
			// 47 for the day and 6 for the week
			output: 53,
		},
		"shorter-than-week": {
			gam:    GAM{Freq: [2]int{48, 48 * 7}},
			n:      48 * 3,
			output: 47,
		},
		"daily": {
			gam:    GAM{Freq: [2]int{24, 0}},
			n:      24 * 10,
			output: 23,
		},
		"invalid-week": {
			gam: GAM{Freq: [2]int{48, 50}},
			n:   672,
			err: ErrInvalidParams,
		},
		"too-short": {
			gam: GAM{Freq: [2]int{48, 0}},
			n:   10,
			err: ErrLength,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l, err := tt.gam.Len(tt.n)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.output, l)
		})
	}
}

func TestGAM_Apply(t *testing.T) {

	g := GAM{Freq: [2]int{48, 48 * 7}}

	constant := make([]float64, 672)
	for i := range constant {
		constant[i] = 7
	}
	cc, err := g.Apply(constant)
	require.NoError(t, err)
	assert.Equal(t, 53, len(cc))
	for _, c := range cc {
		// the intercept absorbs everything
		assert.InDelta(t, 0, c, 1e-8)
	}

	daily := make([]float64, 672)
	for i := range daily {
		daily[i] = math.Sin(2 * math.Pi * float64(i%48) / 48)
	}
	cc, err = g.Apply(daily)
	require.NoError(t, err)
	// no weekly pattern
	for _, c := range cc[47:] {
		assert.InDelta(t, 0, c, 1e-6)
	}

	again, err := g.Apply(daily)
	require.NoError(t, err)
	assert.Equal(t, cc, again)
}

func TestParse(t *testing.T) {

	type test struct {
		cfg  Config
		name string
		err  error
	}

	tests := map[string]test{
		"seasonal": {
			cfg:  Config{Name: SeasonalMethod},
			name: "seasonal(freq=48,func=mean)",
		},
		"gam-default-week": {
			cfg:  Config{Name: GAMMethod},
			name: "gam(freq=48/336)",
		},
		"gam-daily": {
			cfg:  Config{Name: GAMMethod, Freq: []int{48}},
			name: "gam(freq=48)",
		},
		"dft": {
			cfg:  Config{Name: DFTMethod},
			name: "dft(coef=48)",
		},
		"feaclip": {
			cfg:  Config{Name: FeaClipMethod},
			name: "feaclip",
		},
		"feaclip-window": {
			cfg:  Config{Name: FeaClipWindowMethod},
			name: "window(win=48,feaclip)",
		},
		"unknown": {
			cfg: Config{Name: "paa"},
			err: ErrUnknown,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Parse(tt.cfg, 48)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, m.Name())
		})
	}
}

func TestMatrix_Walkthrough(t *testing.T) {

	ds := dataset.ElecLoad(dataset.ElecSeed)

	dims := map[string]int{
		SeasonalMethod:      48,
		GAMMethod:           53,
		DFTMethod:           48,
		FeaClipWindowMethod: 14 * FeaClipLen,
	}

	for _, cfg := range Walkthrough(ds.Freq) {
		t.Run(cfg.Name, func(t *testing.T) {
			method, err := Parse(cfg, ds.Freq)
			require.NoError(t, err)
			norm, err := Norm(cfg.Norm)
			require.NoError(t, err)

			rep, err := Matrix(context.Background(), ds, method, norm)
			require.NoError(t, err)
			assert.Equal(t, 50, len(rep.Vectors))
			assert.Equal(t, dims[cfg.Name], rep.Dim())

			again, err := Matrix(context.Background(), ds, method, norm)
			require.NoError(t, err)
			assert.Equal(t, rep, again)
		})
	}
}

func TestMatrix_Errors(t *testing.T) {

	_, err := Matrix(context.Background(), model.Dataset{}, FeaClip{}, nil)
	assert.ErrorIs(t, err, model.ErrEmptyDataset)

	ds := model.Dataset{Series: []model.Series{{ID: "a", Values: []float64{1, 2, 3}}}}
	_, err = Matrix(context.Background(), ds, SeasonalProfile{Freq: 2}, nil)
	assert.ErrorIs(t, err, ErrLength)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Matrix(ctx, dataset.ElecLoad(1), FeaClip{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHeader(t *testing.T) {

	type test struct {
		method Method
		dim    int
		names  []string
	}

	tests := map[string]test{
		"feaclip": {
			method: FeaClip{},
			dim:    8,
			names:  FeaClipNames[:],
		},
		"window": {
			method: Windowing{Win: 4, Method: FeaClip{}},
			dim:    16,
			names: []string{
				"max_1_w1", "sum_1_w1", "max_0_w1", "crossings_w1", "f_0_w1", "l_0_w1", "f_1_w1", "l_1_w1",
				"max_1_w2", "sum_1_w2", "max_0_w2", "crossings_w2", "f_0_w2", "l_0_w2", "f_1_w2", "l_1_w2",
			},
		},
		"seasonal": {
			method: SeasonalProfile{Freq: 3, Func: AggMean},
			dim:    3,
			names:  []string{"v1", "v2", "v3"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.names, Header(tt.method, tt.dim))
		})
	}
}

func TestWindowing_NoMethod(t *testing.T) {
	w := Windowing{Win: 4}
	assert.Equal(t, "window(win=4,none)", w.Name())

	_, err := Matrix(context.Background(), dataset.ElecLoad(1), w, nil)
	assert.ErrorIs(t, err, ErrInvalidParams)
}
