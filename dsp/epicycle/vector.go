package epicycle

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/curve"
	"github.com/cwbudde/algo-epicycle/dsp/fourier"
)

// Vector is one rotating term of a Fourier series.
type Vector struct {
	// Harmonic is the index of the term in its coefficient set.
	Harmonic int
	// Radius is the term amplitude. Only the constant term may be negative.
	Radius float64
	// Phase lies in (-pi, pi].
	Phase float64
	// Freq is the angular frequency in radians per unit time.
	Freq float64
}

// Angle returns the vector direction at time t.
func (v Vector) Angle(t float64) float64 {
	return v.Freq*t - v.Phase
}

// Offset returns the vector itself at time t, relative to its centre.
func (v Vector) Offset(t float64) curve.Point {
	theta := v.Angle(t)
	return curve.Point{
		X: v.Radius * math.Cos(theta),
		Y: v.Radius * math.Sin(theta),
	}
}

// Rotate returns v turned counter-clockwise by angle at every instant.
func (v Vector) Rotate(angle float64) Vector {
	v.Phase = core.WrapPhase(v.Phase - angle)
	return v
}

// Evaluate returns the tip of v at time t when its tail sits at center.
func Evaluate(center curve.Point, v Vector, t float64) curve.Point {
	return center.Add(v.Offset(t))
}

// ToPolar converts every harmonic of c into a Vector, in harmonic order.
//
// Torn coefficient sets fail with core.ErrInvariant and a zero, negative or
// non-finite period with core.ErrDomain.
func ToPolar(c fourier.Coeffs, period float64) ([]Vector, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("to polar: %w", err)
	}
	if period == 0 || period < 0 || !core.IsFinite(period) {
		return nil, fmt.Errorf("to polar: period must be finite and > 0: %v: %w", period, core.ErrDomain)
	}

	n := c.Len()
	if n == 0 {
		return []Vector{}, nil
	}

	radii := make([]float64, n)
	vecmath.Magnitude(radii, c.Cosine, c.Sine)

	omega := core.AngularFrequency(period)
	out := make([]Vector, n)
	out[0] = Vector{Radius: c.Cosine[0] / 2}
	for i := 1; i < n; i++ {
		out[i] = Vector{
			Harmonic: i,
			Radius:   radii[i],
			Phase:    core.WrapPhase(math.Atan2(c.Sine[i], c.Cosine[i])),
			Freq:     float64(i) * omega,
		}
	}
	return out, nil
}

// SortByRadius returns a chain of vs ordered by descending radius magnitude.
// Equal magnitudes keep harmonic order.
func SortByRadius(vs []Vector) Chain {
	out := make(Chain, len(vs))
	copy(out, vs)
	slices.SortStableFunc(out, func(a, b Vector) int {
		return cmp.Compare(math.Abs(b.Radius), math.Abs(a.Radius))
	})
	return out
}

// ToChain converts c to vectors and orders them for rendering.
func ToChain(c fourier.Coeffs, period float64) (Chain, error) {
	vs, err := ToPolar(c, period)
	if err != nil {
		return nil, err
	}
	return SortByRadius(vs), nil
}
