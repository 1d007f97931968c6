package plot

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-epicycle/dsp/core"
	"github.com/cwbudde/algo-epicycle/dsp/curve"
)

// Option configures a Graph.
type Option func(*Graph)

// WithDomain sets the x window. Empty or reversed windows are ignored.
func WithDomain(lo, hi float64) Option {
	return func(g *Graph) {
		if lo < hi {
			g.domain = [2]float64{lo, hi}
		}
	}
}

// WithRange sets the y window. Empty or reversed windows are ignored.
func WithRange(lo, hi float64) Option {
	return func(g *Graph) {
		if lo < hi {
			g.rng = [2]float64{lo, hi}
		}
	}
}

// WithDX sets the x distance between samples.
func WithDX(dx float64) Option {
	return func(g *Graph) {
		if dx > 0 {
			g.dx = dx
		}
	}
}

// WithScale sets canvas units per data unit on each axis.
func WithScale(x, y float64) Option {
	return func(g *Graph) {
		if x > 0 {
			g.xScale = x
		}
		if y > 0 {
			g.yScale = y
		}
	}
}

// WithCenter places the data origin on the canvas.
func WithCenter(p curve.Point) Option {
	return func(g *Graph) {
		g.center = p
		g.hasCenter = true
	}
}

// Graph maps function plots onto a width x height canvas. The canvas y axis
// points down.
type Graph struct {
	width, height  float64
	domain, rng    [2]float64
	dx             float64
	xScale, yScale float64
	center         curve.Point
	hasCenter      bool

	plots []entry
}

type entry struct {
	plot   Plot
	stroke string
	cache  Cache
}

// New returns an empty graph. Unset options derive from the canvas size:
// the windows default to [0, 1], the scales stretch them over the canvas,
// dx is one canvas unit and the origin sits at (width/2, 2*height/3).
func New(width, height float64, opts ...Option) (*Graph, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("graph size must be finite and > 0: %vx%v: %w", width, height, core.ErrDomain)
	}

	g := &Graph{
		width:  width,
		height: height,
		domain: [2]float64{0, 1},
		rng:    [2]float64{0, 1},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	if g.dx == 0 {
		g.dx = (g.domain[1] - g.domain[0]) / width
	}
	if g.xScale == 0 {
		g.xScale = width / (g.domain[1] - g.domain[0])
	}
	if g.yScale == 0 {
		g.yScale = height / (g.rng[1] - g.rng[0])
	}
	if !g.hasCenter {
		g.center = curve.Point{X: width / 2, Y: 2 * height / 3}
	}
	return g, nil
}

// Size returns the canvas dimensions.
func (g *Graph) Size() (width, height float64) {
	return g.width, g.height
}

// Domain returns the x window.
func (g *Graph) Domain() (lo, hi float64) {
	return g.domain[0], g.domain[1]
}

// Range returns the y window.
func (g *Graph) Range() (lo, hi float64) {
	return g.rng[0], g.rng[1]
}

// Scale returns canvas units per data unit.
func (g *Graph) Scale() (x, y float64) {
	return g.xScale, g.yScale
}

// Center returns the canvas position of the data origin.
func (g *Graph) Center() curve.Point {
	return g.center
}

// SetScale changes the axis scales and drops every cached point set.
func (g *Graph) SetScale(x, y float64) error {
	if !(x > 0) || !(y > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return fmt.Errorf("graph scale must be finite and > 0: %v, %v: %w", x, y, core.ErrDomain)
	}
	g.xScale, g.yScale = x, y
	g.invalidate()
	return nil
}

// Add registers p and returns its index.
func (g *Graph) Add(p Plot) (int, error) {
	if p.Func == nil {
		return 0, fmt.Errorf("plot has no function: %w", core.ErrDomain)
	}
	g.invalidate()
	g.plots = append(g.plots, entry{plot: p, stroke: p.Stroke()})
	return len(g.plots) - 1, nil
}

// Len returns the number of registered plots.
func (g *Graph) Len() int {
	return len(g.plots)
}

// Stroke returns the color of plot i.
func (g *Graph) Stroke(i int) (string, error) {
	e, err := g.entry(i)
	if err != nil {
		return "", err
	}
	return e.stroke, nil
}

// Cached reports whether plot i has valid canvas points.
func (g *Graph) Cached(i int) bool {
	if i < 0 || i >= len(g.plots) {
		return false
	}
	return g.plots[i].cache.Valid()
}

// ToCanvas maps a data point to canvas coordinates.
func (g *Graph) ToCanvas(p curve.Point) curve.Point {
	return curve.Point{
		X: g.center.X + p.X*g.xScale,
		Y: g.center.Y - p.Y*g.yScale,
	}
}

// FromCanvas maps a canvas point back to data coordinates.
func (g *Graph) FromCanvas(p curve.Point) curve.Point {
	return curve.Point{
		X: (p.X - g.center.X) / g.xScale,
		Y: (g.center.Y - p.Y) / g.yScale,
	}
}

// Xs returns the sample positions across the domain. The upper bound is
// excluded.
func (g *Graph) Xs() []float64 {
	n := int(math.Ceil((g.domain[1]-g.domain[0])/g.dx - 1e-9))
	if n < 0 {
		n = 0
	}
	xs := make([]float64, n)
	for k := range xs {
		xs[k] = g.domain[0] + float64(k)*g.dx
	}
	return xs
}

// Sample evaluates plot i at Xs in data coordinates. It is not cached.
func (g *Graph) Sample(i int) (xs, ys []float64, err error) {
	e, err := g.entry(i)
	if err != nil {
		return nil, nil, err
	}
	xs = g.Xs()
	ys = make([]float64, len(xs))
	for k, x := range xs {
		ys[k] = e.plot.Func(x)
	}
	return xs, ys, nil
}

// Points returns the canvas polyline of plot i, computing it on first use.
// The result is shared with the cache and must not be modified.
func (g *Graph) Points(i int) (curve.Curve, error) {
	e, err := g.entry(i)
	if err != nil {
		return nil, err
	}

	in := g.layout()
	if pts, ok := e.cache.lookup(in); ok {
		return pts, nil
	}

	xs := g.Xs()
	pts := make(curve.Curve, len(xs))
	for k, x := range xs {
		pts[k] = g.ToCanvas(curve.Point{X: x, Y: e.plot.Func(x)})
	}
	e.cache.store(in, pts)
	return pts, nil
}

// Axes returns the vertical and horizontal lines through the origin,
// clipped to the canvas.
func (g *Graph) Axes() (vertical, horizontal [2]curve.Point) {
	o := g.center
	vertical = [2]curve.Point{{X: o.X, Y: 0}, {X: o.X, Y: g.height}}
	horizontal = [2]curve.Point{{X: 0, Y: o.Y}, {X: g.width, Y: o.Y}}
	return vertical, horizontal
}

func (g *Graph) entry(i int) (*entry, error) {
	if i < 0 || i >= len(g.plots) {
		return nil, fmt.Errorf("plot index %d out of range [0,%d): %w", i, len(g.plots), core.ErrDomain)
	}
	return &g.plots[i], nil
}

func (g *Graph) layout() layout {
	return layout{
		domain: g.domain,
		dx:     g.dx,
		xScale: g.xScale,
		yScale: g.yScale,
		center: g.center,
	}
}

func (g *Graph) invalidate() {
	for i := range g.plots {
		g.plots[i].cache.Invalidate()
	}
}
