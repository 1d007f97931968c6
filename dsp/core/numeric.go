package core

import "math"

const defaultEpsilon = 1e-12

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// WrapPhase folds an angle into (-pi, pi].
func WrapPhase(angle float64) float64 {
	if !IsFinite(angle) {
		return angle
	}

	wrapped := math.Remainder(angle, 2*math.Pi)
	if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	}

	return wrapped
}

// AngularFrequency returns 2*pi/period, the fundamental of a signal with the given period.
func AngularFrequency(period float64) float64 {
	return 2 * math.Pi / period
}
