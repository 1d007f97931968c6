package fourier

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/quad"
)

// Decompose returns the first harmonics Fourier coefficients of f, which
// must span exactly one period.
//
// Each coefficient is one trapezoidal integral over the same node grid, so f
// is evaluated once per node and reused for every harmonic. harmonics <= 0
// yields an empty set. A zero, negative or non-finite period fails with
// core.ErrDomain. Non-finite values of f propagate into the coefficients.
func Decompose(f core.Func, harmonics int, period float64, opts ...core.Option) (Coeffs, error) {
	if err := validatePeriod(period); err != nil {
		return Coeffs{}, fmt.Errorf("decompose: %w", err)
	}
	if harmonics <= 0 {
		return Coeffs{Cosine: []float64{}, Sine: []float64{}}, nil
	}

	cfg := core.ApplyOptions(opts...)
	nodes, err := quad.Grid(0, period, cfg.Step)
	if err != nil {
		return Coeffs{}, fmt.Errorf("decompose: %w", err)
	}

	p := projector{
		nodes:     nodes,
		values:    quad.Sample(nil, f, nodes),
		basis:     make([]float64, len(nodes)),
		integrand: make([]float64, len(nodes)),
		omega:     core.AngularFrequency(period),
		scale:     2 / period,
	}

	out := Coeffs{
		Cosine: make([]float64, harmonics),
		Sine:   make([]float64, harmonics),
	}
	for n := range harmonics {
		out.Cosine[n] = p.project(math.Cos, n)
		out.Sine[n] = p.project(math.Sin, n)
	}
	return out, nil
}

// projector holds the sampled signal and scratch buffers shared by all
// harmonics of one decomposition.
type projector struct {
	nodes     []float64
	values    []float64
	basis     []float64
	integrand []float64
	omega     float64
	scale     float64
}

func (p *projector) project(fn func(float64) float64, n int) float64 {
	w := float64(n) * p.omega
	for i, t := range p.nodes {
		p.basis[i] = fn(w * t)
	}
	vecmath.MulBlock(p.integrand, p.values, p.basis)
	return p.scale * quad.Trapezoid(p.nodes, p.integrand)
}
