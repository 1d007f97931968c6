package curve

import "math"

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Slope returns the slope of the line through a and b.
// A vertical or degenerate segment has slope +Inf.
func Slope(a, b Point) float64 {
	if b.X == a.X {
		return math.Inf(1)
	}
	return (b.Y - a.Y) / (b.X - a.X)
}
