package math

import (
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

// FFT computes the spectrum of the given real series.
// Only the first half of the coefficients is kept, sorted by decreasing amplitude.
func FFT(xx []float64) *Spectrum {
	cc := fft.FFTReal(xx)

	ss := newSpectrum()
	for i, n := range cc {
		if i > len(cc)/2 {
			continue
		}
		ss.add(RNum{
			Amplitude: cmplx.Abs(n),
			Frequency: i,
			Phase:     cmplx.Phase(n),
		})
	}

	sort.Stable(sort.Reverse(spectrums(ss.Values)))

	return ss
}

// LowPass keeps the first coef fourier coefficients of the series and transforms them back
// into coef real values. The result is scaled by the length of the original series,
// so that it matches the un-normalised inverse transform divided by len(xx).
func LowPass(xx []float64, coef int) []float64 {
	if coef <= 0 {
		return []float64{}
	}
	cc := fft.FFTReal(xx)
	if coef > len(cc) {
		coef = len(cc)
	}
	// fft.IFFT already divides by coef
	inv := fft.IFFT(cc[:coef])
	scale := float64(coef) / float64(len(xx))
	ff := make([]float64, coef)
	for i, c := range inv {
		ff[i] = real(c) * scale
	}
	return ff
}

// Spectrum is a collection of spectra
type Spectrum struct {
	Values    []RNum
	Amplitude float64
}

func newSpectrum() *Spectrum {
	return &Spectrum{
		Values: make([]RNum, 0),
	}
}

func (s *Spectrum) add(r RNum) {
	s.Values = append(s.Values, r)
	s.Amplitude += r.Amplitude
}

// Dominant returns the n frequencies with the highest amplitude, excluding the mean component.
func (s *Spectrum) Dominant(n int) []int {
	ff := make([]int, 0, n)
	for _, v := range s.Values {
		if len(ff) == n {
			break
		}
		if v.Frequency == 0 {
			continue
		}
		ff = append(ff, v.Frequency)
	}
	return ff
}

// AmplitudeOf returns the amplitude of the given frequency, 0 if it is not part of the spectrum.
func (s *Spectrum) AmplitudeOf(f int) float64 {
	for _, v := range s.Values {
		if v.Frequency == f {
			return v.Amplitude
		}
	}
	return 0
}

// RNum defines a complex number attributes
type RNum struct {
	Amplitude float64
	Frequency int
	Phase     float64
}

type spectrums []RNum

func (s spectrums) Len() int           { return len(s) }
func (s spectrums) Less(i, j int) bool { return s[i].Amplitude < s[j].Amplitude }
func (s spectrums) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
