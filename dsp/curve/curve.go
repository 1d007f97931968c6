package curve

import "math"

// Curve is an ordered sequence of points.
type Curve []Point

// Split returns the x and y projections of c.
func (c Curve) Split() (xs, ys []float64) {
	xs = make([]float64, len(c))
	ys = make([]float64, len(c))
	for i, p := range c {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// Join builds a curve from x and y projections, truncated to the shorter one.
func Join(xs, ys []float64) Curve {
	n := min(len(xs), len(ys))
	out := make(Curve, n)
	for i := range out {
		out[i] = Point{X: xs[i], Y: ys[i]}
	}
	return out
}

// Bounds returns the lower-left and upper-right corners of the bounding box.
// An empty curve has zero bounds.
func (c Curve) Bounds() (lo, hi Point) {
	if len(c) == 0 {
		return Point{}, Point{}
	}

	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range c {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// Length returns the polyline length of c.
func (c Curve) Length() float64 {
	total := 0.0
	for i := 1; i < len(c); i++ {
		total += c[i].Dist(c[i-1])
	}
	return total
}

// Clone returns a copy of c.
func (c Curve) Clone() Curve {
	if c == nil {
		return nil
	}
	out := make(Curve, len(c))
	copy(out, c)
	return out
}
