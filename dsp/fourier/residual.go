package fourier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-epicycle/dsp/core"
)

// Residual summarizes the pointwise error between an approximation and its reference.
type Residual struct {
	// L1 is the total absolute error.
	L1 float64
	// Mean is the mean absolute error.
	Mean float64
	// Max is the largest absolute error.
	Max float64
	// RMS is the root-mean-square error.
	RMS float64
}

// Compare measures approx against reference sample by sample.
func Compare(approx, reference []float64) (Residual, error) {
	if len(approx) != len(reference) {
		return Residual{}, fmt.Errorf("residual lengths must match: %d vs %d: %w",
			len(approx), len(reference), core.ErrDomain)
	}
	if len(approx) == 0 {
		return Residual{}, nil
	}

	diff := make([]float64, len(approx))
	floats.SubTo(diff, approx, reference)
	sq := make([]float64, len(diff))
	floats.MulTo(sq, diff, diff)
	for i, d := range diff {
		diff[i] = math.Abs(d)
	}

	return Residual{
		L1:   floats.Sum(diff),
		Mean: stat.Mean(diff, nil),
		Max:  floats.Max(diff),
		RMS:  math.Sqrt(stat.Mean(sq, nil)),
	}, nil
}

// Reference samples f at the same instants ApproximateCurve uses.
func Reference(f core.Func, period float64, opts ...core.Option) ([]float64, error) {
	cfg := core.ApplyOptions(opts...)
	times, err := SampleTimes(period, cfg.SampleStep)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(times))
	for k, t := range times {
		out[k] = f(t)
	}
	return out, nil
}
