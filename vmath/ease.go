package vmath

import (
	"math"
)

// DampFactor converts a half-life constant into a per-step lerp fraction
// After halfLife seconds, half the remaining distance to target is covered,
// independent of the tick rate slicing the interval
func DampFactor(halfLife, dt float64) float64 {
	if halfLife <= 0 {
		return 1
	}
	return 1 - math.Exp2(-dt/halfLife)
}

// Lerp interpolates linearly, t unclamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInOutCubic maps normalized progress [0,1] onto a symmetric
// accelerate/decelerate curve
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
