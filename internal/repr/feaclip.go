package repr

import (
	"fmt"

	"github.com/drakos74/load-profiles/internal/buffer"
)

// FeaClipLen is the number of features extracted from a clipped series.
const FeaClipLen = 8

// FeaClipNames are the names of the extracted features in order.
var FeaClipNames = [FeaClipLen]string{"max_1", "sum_1", "max_0", "crossings", "f_0", "l_0", "f_1", "l_1"}

// FeaClip clips the series into a bit sequence around its mean
// and describes the runs of the sequence with FeaClipLen features.
type FeaClip struct{}

func (f FeaClip) Name() string {
	return "feaclip"
}

func (f FeaClip) Len(n int) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("length %d: %w", n, ErrLength)
	}
	return FeaClipLen, nil
}

func (f FeaClip) Apply(x []float64) ([]float64, error) {
	if _, err := f.Len(len(x)); err != nil {
		return nil, err
	}
	return clipFeatures(Clip(x)), nil
}

// Clip maps every value above the series mean to 1 and the rest to 0.
func Clip(x []float64) []bool {
	mean := buffer.NewStats().Push(x...).Avg()
	bits := make([]bool, len(x))
	for i, v := range x {
		bits[i] = v > mean
	}
	return bits
}

// Run is a sequence of equal bits.
type Run struct {
	Bit bool
	Len int
}

// RLE run-length encodes the bits.
func RLE(bits []bool) []Run {
	runs := make([]Run, 0)
	for _, b := range bits {
		if len(runs) > 0 && runs[len(runs)-1].Bit == b {
			runs[len(runs)-1].Len++
			continue
		}
		runs = append(runs, Run{Bit: b, Len: 1})
	}
	return runs
}

func clipFeatures(bits []bool) []float64 {
	runs := RLE(bits)
	var max1, sum1, max0 int
	for _, r := range runs {
		if r.Bit {
			sum1 += r.Len
			if r.Len > max1 {
				max1 = r.Len
			}
		} else if r.Len > max0 {
			max0 = r.Len
		}
	}

	first, last := runs[0], runs[len(runs)-1]
	var f0, l0, f1, l1 int
	if first.Bit {
		f1 = first.Len
	} else {
		f0 = first.Len
	}
	if last.Bit {
		l1 = last.Len
	} else {
		l0 = last.Len
	}

	return []float64{
		float64(max1),
		float64(sum1),
		float64(max0),
		float64(len(runs) - 1),
		float64(f0),
		float64(l0),
		float64(f1),
		float64(l1),
	}
}
