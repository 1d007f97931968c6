package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/interp"
)

// sampleTolerance absorbs rounding when period is a whole multiple of dt.
const sampleTolerance = 1e-9

// SampleTimes returns t_k = k*dt for every k with t_k < period.
func SampleTimes(period, dt float64) ([]float64, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	if !(dt > 0) || math.IsInf(dt, 1) {
		return nil, fmt.Errorf("sample step must be > 0: %v: %w", dt, core.ErrDomain)
	}

	n := int(math.Ceil(period/dt - sampleTolerance))
	times := make([]float64, n)
	for k := range times {
		times[k] = float64(k) * dt
	}
	return times, nil
}

// ApproximateCurve resynthesizes c at every SampleTimes instant. The sample
// step defaults to 0.1 and is set with core.WithSampleStep.
func ApproximateCurve(c Coeffs, period float64, opts ...core.Option) ([]float64, error) {
	return ApproximateCurveInto(nil, c, period, opts...)
}

// ApproximateCurveInto is ApproximateCurve writing into dst, reusing its capacity.
func ApproximateCurveInto(dst []float64, c Coeffs, period float64, opts ...core.Option) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("approximate curve: %w", err)
	}

	cfg := core.ApplyOptions(opts...)
	times, err := SampleTimes(period, cfg.SampleStep)
	if err != nil {
		return nil, fmt.Errorf("approximate curve: %w", err)
	}

	omega := core.AngularFrequency(period)
	dst = core.EnsureLen(dst, len(times))
	for k, t := range times {
		dst[k] = sum(c, omega, t)
	}
	return dst, nil
}

// Series returns the continuous truncated series of c as a callable.
func Series(c Coeffs, period float64) (core.Func, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	if err := validatePeriod(period); err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}

	c = c.Clone()
	omega := core.AngularFrequency(period)
	return func(t float64) float64 {
		return sum(c, omega, t)
	}, nil
}

// ApproximateFunc samples c with ApproximateCurve and returns a callable
// over [0, period) that reads the nearest sample. The callable repeats with
// the given period outside that range.
func ApproximateFunc(c Coeffs, period float64, opts ...core.Option) (core.Func, error) {
	curve, err := ApproximateCurve(c, period, opts...)
	if err != nil {
		return nil, err
	}

	reader, err := interp.VectorToFunc(curve)
	if err != nil {
		return nil, fmt.Errorf("approximate func: %w", err)
	}
	periodic := interp.Periodic(reader)
	return func(t float64) float64 {
		return periodic(t / period)
	}, nil
}

func sum(c Coeffs, omega, t float64) float64 {
	if len(c.Cosine) == 0 {
		return 0
	}

	acc := c.Cosine[0] / 2
	for n := 1; n < len(c.Cosine); n++ {
		w := float64(n) * omega
		acc += c.Sine[n]*math.Sin(w*t) + c.Cosine[n]*math.Cos(w*t)
	}
	return acc
}
