package epicycle

import (
	"math"

	"github.com/cwbudde/algo-epicycle/dsp/curve"
)

// Chain is an ordered sequence of vectors added head to tail.
type Chain []Vector

// Accumulator is the running vector sum of a partially evaluated chain.
// It is passed and returned by value.
type Accumulator struct {
	Point curve.Point
	Terms int
}

// Accumulate adds v at time t to acc.
func Accumulate(acc Accumulator, v Vector, t float64) Accumulator {
	return Accumulator{
		Point: Evaluate(acc.Point, v, t),
		Terms: acc.Terms + 1,
	}
}

// Tip returns the end of the chain at time t with its first vector at center.
func (c Chain) Tip(center curve.Point, t float64) curve.Point {
	acc := Accumulator{Point: center}
	for _, v := range c {
		acc = Accumulate(acc, v, t)
	}
	return acc.Point
}

// Joints writes center followed by the tip of every vector into dst and
// returns it; joint i is the centre of circle i and the last joint is the tip.
func (c Chain) Joints(dst []curve.Point, center curve.Point, t float64) []curve.Point {
	dst = append(dst[:0], center)
	acc := Accumulator{Point: center}
	for _, v := range c {
		acc = Accumulate(acc, v, t)
		dst = append(dst, acc.Point)
	}
	return dst
}

// Rotate returns a copy of c with every vector turned by angle.
func (c Chain) Rotate(angle float64) Chain {
	out := make(Chain, len(c))
	for i, v := range c {
		out[i] = v.Rotate(angle)
	}
	return out
}

// Reach returns the sum of all radius magnitudes, the farthest the tip can get from the pivot.
func (c Chain) Reach() float64 {
	total := 0.0
	for _, v := range c {
		total += math.Abs(v.Radius)
	}
	return total
}
