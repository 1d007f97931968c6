// Package epicycle expresses a Fourier coefficient set as a chain of
// rotating vectors.
//
// Harmonic i >= 1 with coefficients (a, b) becomes a vector of radius
// sqrt(a^2+b^2), phase atan2(b, a) and angular frequency i*2*pi/T, so that
//
//	radius * cos(freq*t - phase) = a*cos(freq*t) + b*sin(freq*t)
//
// The DC term becomes a fixed vector of radius a_0/2. Adding the vectors
// head to tail ([Chain.Tip]) therefore reproduces the resynthesized series in
// the X coordinate; [Vector.Rotate] by pi/2 moves it into Y, which is how a
// [Drawing] traces both projections of a 2-D curve.
//
// Chains are ordered by descending radius so the largest circle sits at
// the pivot. The order only affects presentation, not the tip position.
package epicycle
