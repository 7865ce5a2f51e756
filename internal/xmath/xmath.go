// Package xmath holds the small generic numeric helpers that sim/core's
// stats, player and spell code need and that the standard library doesn't
// provide.
package xmath

import "golang.org/x/exp/constraints"

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round4 rounds v to 4 decimal places, matching the cast-time rounding rule
// used throughout the original source (round(x * 10000) / 10000).
func Round4(v float64) float64 {
	return roundN(v, 10000)
}

// Round2 rounds v to 2 decimal places.
func Round2(v float64) float64 {
	return roundN(v, 100)
}

func roundN(v float64, scale float64) float64 {
	if v < 0 {
		return -roundN(-v, scale)
	}
	return float64(int64(v*scale+0.5)) / scale
}
