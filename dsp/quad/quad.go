package quad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-epicycle/dsp/core"
)

// DefaultStep is the trapezoid width used when callers have no better value.
const DefaultStep = 0.01

// snapTolerance is the fraction of a step below which a trailing remainder
// is treated as rounding noise rather than an extra sub-interval.
const snapTolerance = 1e-9

// Grid returns the quadrature nodes from, from+step, ... covering [from, to].
// The last node is always exactly to.
func Grid(from, to, step float64) ([]float64, error) {
	if err := validate(from, to, step); err != nil {
		return nil, err
	}
	if from == to {
		return []float64{from}, nil
	}

	n := int(math.Floor((to-from)/step + snapTolerance))
	nodes := make([]float64, n+1, n+2)
	for i := range nodes {
		nodes[i] = from + float64(i)*step
	}

	if to-nodes[n] > step*snapTolerance {
		nodes = append(nodes, to)
	} else {
		nodes[n] = to
	}
	return nodes, nil
}

// Sample evaluates f at every node into dst, reusing its capacity.
func Sample(dst []float64, f core.Func, nodes []float64) []float64 {
	dst = core.EnsureLen(dst, len(nodes))
	for i, x := range nodes {
		dst[i] = f(x)
	}
	return dst
}

// Trapezoid sums the trapezoid areas of the samples ys taken at nodes xs.
// Fewer than two nodes enclose no area.
func Trapezoid(xs, ys []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return integrate.Trapezoidal(xs, ys)
}

// Integrate computes the definite integral of f over [from, to] with the
// trapezoidal rule at a fixed step.
func Integrate(f core.Func, from, to, step float64) (float64, error) {
	nodes, err := Grid(from, to, step)
	if err != nil {
		return 0, err
	}
	if len(nodes) < 2 {
		return 0, nil
	}
	return Trapezoid(nodes, Sample(nil, f, nodes)), nil
}

func validate(from, to, step float64) error {
	if !(step > 0) || math.IsInf(step, 1) {
		return fmt.Errorf("quadrature step must be > 0: %v: %w", step, core.ErrDomain)
	}
	if !core.IsFinite(from) || !core.IsFinite(to) {
		return fmt.Errorf("quadrature bounds must be finite: [%v, %v]: %w", from, to, core.ErrDomain)
	}
	if from > to {
		return fmt.Errorf("quadrature bounds must satisfy from <= to: [%v, %v]: %w", from, to, core.ErrDomain)
	}
	return nil
}
