package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/fourier"
)

// Sine returns amplitude*sin(2*pi*t/period).
func Sine(amplitude, period float64) core.Func {
	omega := core.AngularFrequency(period)
	return func(t float64) float64 {
		return amplitude * math.Sin(omega*t)
	}
}

// Square returns a wave of height amplitude that follows the sign of the
// sine with the same period. It is zero where the sine is.
func Square(amplitude, period float64) core.Func {
	omega := core.AngularFrequency(period)
	return func(t float64) float64 {
		s := math.Sin(omega * t)
		switch {
		case math.IsNaN(s), s == 0:
			return s
		case s < 0:
			return -amplitude
		}
		return amplitude
	}
}

// Sawtooth rises linearly from 0 to amplitude over each period.
func Sawtooth(amplitude, period float64) core.Func {
	return func(t float64) float64 {
		u := t / period
		return amplitude * (u - math.Floor(u))
	}
}

// Triangle rises from -amplitude to amplitude over the first half period
// and falls back over the second.
func Triangle(amplitude, period float64) core.Func {
	return func(t float64) float64 {
		u := t / period
		u -= math.Floor(u)
		return amplitude * (1 - 4*math.Abs(u-0.5))
	}
}

// Sample evaluates f at the resynthesis instants of one period, so the
// result lines up index for index with fourier.ApproximateCurve.
func Sample(f core.Func, period, dt float64) ([]float64, error) {
	times, err := fourier.SampleTimes(period, dt)
	if err != nil {
		return nil, fmt.Errorf("sample signal: %w", err)
	}

	out := make([]float64, len(times))
	for k, t := range times {
		out[k] = f(t)
	}
	return out, nil
}
