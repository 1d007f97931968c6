// Package fourier computes truncated Fourier series by direct quadrature and
// resynthesizes signals from the resulting coefficients.
//
// [Decompose] projects a signal spanning exactly one period T onto the
// cosine/sine basis:
//
//	a_n = (2/T) * integral over [0, T] of f(t) cos(n*w*t) dt
//	b_n = (2/T) * integral over [0, T] of f(t) sin(n*w*t) dt,  w = 2*pi/T
//
// Resynthesis ([ApproximateCurve], [Series], [ApproximateFunc]) sums
//
//	a_0/2 + sum over n >= 1 of a_n cos(n*w*t) + b_n sin(n*w*t)
//
// The DC coefficient a_0 holds twice the signal average, so every
// resynthesis path halves it. Sine[0] is carried for symmetry and ignored.
//
// Accuracy degrades predictably with the harmonic count: near
// discontinuities the truncated series overshoots and rings (Gibbs
// phenomenon) no matter how many terms are used.
package fourier
