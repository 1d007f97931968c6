package testutil

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-epicycle/dsp/core"
)

// UniformSamples evaluates f at n evenly spaced instants k*period/n.
func UniformSamples(f core.Func, period float64, n int) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = f(float64(k) * period / float64(n))
	}
	return out
}

// DFTCoefficients returns the cosine/sine series weights of one period of
// uniformly sampled data, using the same scaling as a quadrature
// decomposition: cosine[0] is twice the mean.
func DFTCoefficients(samples []float64, harmonics int) (cosine, sine []float64) {
	spectrum := fft.FFTReal(samples)
	scale := 2 / float64(len(samples))

	cosine = make([]float64, harmonics)
	sine = make([]float64, harmonics)
	for n := 0; n < harmonics && n < len(spectrum); n++ {
		cosine[n] = scale * real(spectrum[n])
		sine[n] = -scale * imag(spectrum[n])
	}
	return cosine, sine
}

// Circle returns n points of a circle of radius r around (cx, cy), starting
// at angle zero and running counter-clockwise without closing.
func Circle(cx, cy, r float64, n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for k := range n {
		theta := 2 * math.Pi * float64(k) / float64(n)
		xs[k] = cx + r*math.Cos(theta)
		ys[k] = cy + r*math.Sin(theta)
	}
	return xs, ys
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
