package epicycle

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/curve"
	"github.com/cwbudde/algo-epicycle/dsp/fourier"
	"github.com/cwbudde/algo-epicycle/dsp/interp"
)

// Drawing traces a 2-D curve with two chains: X reproduces x(t) in its X
// coordinate, Y reproduces y(t) in its Y coordinate.
type Drawing struct {
	X, Y             Chain
	XCoeffs, YCoeffs fourier.Coeffs
	Period           float64
}

// FromCurve decomposes the x and y projections of c into harmonics terms
// each. The curve order is its time axis, mapped onto one unit period.
func FromCurve(c curve.Curve, harmonics int, opts ...core.Option) (Drawing, error) {
	if len(c) == 0 {
		return Drawing{}, fmt.Errorf("drawing needs at least one point: %w", core.ErrDomain)
	}

	xs, ys := c.Split()
	xc, err := decomposeSamples(xs, harmonics, opts...)
	if err != nil {
		return Drawing{}, fmt.Errorf("drawing x: %w", err)
	}
	yc, err := decomposeSamples(ys, harmonics, opts...)
	if err != nil {
		return Drawing{}, fmt.Errorf("drawing y: %w", err)
	}
	return NewDrawing(xc, yc, core.DefaultPeriod)
}

// NewDrawing builds the chains for a pair of coefficient sets.
func NewDrawing(xc, yc fourier.Coeffs, period float64) (Drawing, error) {
	xChain, err := ToChain(xc, period)
	if err != nil {
		return Drawing{}, err
	}
	yChain, err := ToChain(yc, period)
	if err != nil {
		return Drawing{}, err
	}

	return Drawing{
		X:       xChain,
		Y:       yChain.Rotate(math.Pi / 2),
		XCoeffs: xc,
		YCoeffs: yc,
		Period:  period,
	}, nil
}

// Truncate returns the drawing rebuilt from the first n harmonics of each
// projection.
func (d Drawing) Truncate(n int) (Drawing, error) {
	return NewDrawing(d.XCoeffs.Truncate(n), d.YCoeffs.Truncate(n), d.Period)
}

// Point returns the reconstructed curve position at time t.
func (d Drawing) Point(t float64) curve.Point {
	return curve.Point{
		X: d.X.Tip(curve.Point{}, t).X,
		Y: d.Y.Tip(curve.Point{}, t).Y,
	}
}

// Overlay resynthesizes the whole curve with sample step dt.
func (d Drawing) Overlay(dt float64) (curve.Curve, error) {
	xs, err := fourier.ApproximateCurve(d.XCoeffs, d.Period, core.WithSampleStep(dt))
	if err != nil {
		return nil, fmt.Errorf("overlay x: %w", err)
	}
	ys, err := fourier.ApproximateCurve(d.YCoeffs, d.Period, core.WithSampleStep(dt))
	if err != nil {
		return nil, fmt.Errorf("overlay y: %w", err)
	}
	return curve.Join(xs, ys), nil
}

func decomposeSamples(samples []float64, harmonics int, opts ...core.Option) (fourier.Coeffs, error) {
	f, err := interp.VectorToFunc(samples)
	if err != nil {
		return fourier.Coeffs{}, err
	}
	return fourier.Decompose(f, harmonics, core.DefaultPeriod, opts...)
}
