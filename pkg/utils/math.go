// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp performs linear interpolation between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// SmoothStep eases t from 0 to 1 with zero slope at both ends.
func SmoothStep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// FloorInt truncates toward negative infinity, tolerating float noise just below an integer.
func FloorInt(v float64) int {
	return int(math.Floor(v + 1e-9))
}
