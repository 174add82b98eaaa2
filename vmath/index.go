package vmath

import (
	"math"
)

// Circular indexing along a finite path of n slots spaced evenly in arc length
// The path wraps with period n*spacing; offset translates every slot along it

// TotalPathLength returns n*spacing, 0 for degenerate input
func TotalPathLength(n int, spacing float64) float64 {
	if n <= 0 || spacing <= 0 {
		return 0
	}
	return float64(n) * spacing
}

// CenterIndex returns the slot currently at the path terminus (arc length == total)
// start = ceil(PosMod(total-offset, total) / spacing) mod n
func CenterIndex(n int, spacing, offset float64) int {
	if n <= 0 || spacing <= 0 {
		return 0
	}
	total := float64(n) * spacing
	norm := PosMod(total-offset, total)
	start := int(math.Ceil(norm / spacing))
	return PosModInt(start, n)
}

// TailIndex returns the slot immediately behind CenterIndex
func TailIndex(n int, spacing, offset float64) int {
	if n <= 0 || spacing <= 0 {
		return 0
	}
	return PosModInt(CenterIndex(n, spacing, offset)-1, n)
}

// ItemArcPosition returns the wrapped arc-length coordinate of slot index in [0, total)
func ItemArcPosition(index, n int, spacing, offset float64) float64 {
	return PosMod(float64(index)*spacing+offset, TotalPathLength(n, spacing))
}

// ItemPosition returns the 2D point of slot index on the spiral
func ItemPosition(index, n int, spacing, offset float64, center Vec2, s Spiral) Vec2 {
	return s.PointAtArc(ItemArcPosition(index, n, spacing, offset), center)
}

// EdgeFade returns a [0,1] opacity that falls linearly to 0 within fadeRange of either path end
func EdgeFade(arc, total, fadeRange float64) float64 {
	if fadeRange <= 0 || total <= 0 {
		return 1
	}
	switch {
	case arc <= fadeRange:
		return math.Max(0, arc/fadeRange)
	case arc >= total-fadeRange:
		return math.Max(0, (total-arc)/fadeRange)
	default:
		return 1
	}
}
