package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float64 spiral math; all functions are pure and allocation-free unless they return slices

const (
	TwoPi = 2 * math.Pi

	// MinGrowthB is the floor for the spiral growth coefficient b
	// Keeps theta inversion finite when growth per turn approaches zero (path becomes a near-circle)
	MinGrowthB = 0.0001
)

// --- Modulo ---

// PosMod wraps x into [0, m), correct for negative x
// Returns 0 for m <= 0
func PosMod(x, m float64) float64 {
	if m <= 0 {
		return 0
	}
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// -tiny + m can round up to m
	if r >= m {
		r = 0
	}
	return r
}

// PosModInt wraps x into [0, m) for any integer type
// Returns 0 for m <= 0
func PosModInt[T constraints.Integer](x, m T) T {
	if m <= 0 {
		return 0
	}
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// --- Scalar helpers ---

// Clamp limits v to [lo, hi]
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
