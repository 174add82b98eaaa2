package vmath

import (
	"math"
)

// NormalizeAngle wraps angle to [0, 2π)
func NormalizeAngle(angle float64) float64 {
	return PosMod(angle, TwoPi)
}

// AngleDelta returns the smallest signed rotation from prev to next, in [-π, π]
// Crossing the atan2 branch cut (+π ↔ -π) yields the short way round, never a ~2π jump
func AngleDelta(prev, next float64) float64 {
	d := math.Remainder(next-prev, TwoPi)
	if d > math.Pi {
		d -= TwoPi
	} else if d < -math.Pi {
		d += TwoPi
	}
	return d
}

// AngleAccumulator integrates successive atan2 samples into an unwrapped total rotation
type AngleAccumulator struct {
	last  float64
	total float64
	valid bool
}

// Reset starts a new accumulation at angle
func (a *AngleAccumulator) Reset(angle float64) {
	a.last = angle
	a.total = 0
	a.valid = true
}

// Push records a new sample and returns the normalized delta from the previous one
// Returns 0 if no anchor has been set
func (a *AngleAccumulator) Push(angle float64) float64 {
	if !a.valid {
		a.Reset(angle)
		return 0
	}
	d := AngleDelta(a.last, angle)
	a.last = angle
	a.total += d
	return d
}

// Last returns the most recent sample
func (a *AngleAccumulator) Last() float64 { return a.last }

// Total returns the unwrapped rotation since Reset
func (a *AngleAccumulator) Total() float64 { return a.total }

// Valid reports whether an anchor is set
func (a *AngleAccumulator) Valid() bool { return a.valid }

// Clear drops the anchor
func (a *AngleAccumulator) Clear() {
	*a = AngleAccumulator{}
}
