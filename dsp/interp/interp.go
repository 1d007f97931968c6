package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-epicycle/dsp/core"
)

// Mode selects how a sample vector is read between sample positions.
type Mode int

const (
	// ModeNearest returns the sample whose position is closest to x.
	ModeNearest Mode = iota
	// ModeLinear blends the two samples surrounding x.
	ModeLinear
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNearest:
		return "nearest"
	case ModeLinear:
		return "linear"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// New returns a reader over a private copy of samples.
func New(mode Mode, samples []float64) (core.Func, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("interp samples must not be empty: %w", core.ErrDomain)
	}

	s := make([]float64, len(samples))
	copy(s, samples)

	switch mode {
	case ModeNearest:
		return nearest(s), nil
	case ModeLinear:
		return linear(s), nil
	default:
		return nil, fmt.Errorf("interp mode %v not supported: %w", mode, core.ErrDomain)
	}
}

// VectorToFunc returns a nearest-index reader over samples.
func VectorToFunc(samples []float64) (core.Func, error) {
	return New(ModeNearest, samples)
}

// Linear returns a linearly interpolating reader over samples.
func Linear(samples []float64) (core.Func, error) {
	return New(ModeLinear, samples)
}

// Periodic extends f with period 1 by folding x outside [0, 1] into range.
func Periodic(f core.Func) core.Func {
	return func(x float64) float64 {
		if !(x >= 0 && x <= 1) {
			x -= math.Floor(x)
		}
		return f(x)
	}
}

// Linear2 computes 2-point linear interpolation from x0 to x1 at fraction t.
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

func nearest(s []float64) core.Func {
	n := float64(len(s))
	last := float64(len(s) - 1)
	return func(x float64) float64 {
		if math.IsNaN(x) {
			return x
		}
		i := core.Clamp(math.Floor(x*n+0.5), 0, last)
		return s[int(i)]
	}
}

func linear(s []float64) core.Func {
	n := float64(len(s))
	last := len(s) - 1
	return func(x float64) float64 {
		if math.IsNaN(x) {
			return x
		}
		pos := x * n
		if pos <= 0 {
			return s[0]
		}
		if pos >= float64(last) {
			return s[last]
		}
		i := int(pos)
		return Linear2(pos-float64(i), s[i], s[i+1])
	}
}
