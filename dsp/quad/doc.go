// Package quad provides fixed-step trapezoidal quadrature.
//
// [Integrate] evaluates a callable on a uniform node grid from [Grid] and sums
// the trapezoid areas between neighbouring nodes. When the interval is not a
// whole number of steps the final trapezoid is narrower, ending exactly at the
// upper bound. Non-finite function values are not filtered: a NaN or Inf at
// any node propagates into the result.
package quad
