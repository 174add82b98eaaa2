package vmath

import (
	"math"
)

// Vec2 is a float64 2D point/vector in viewport space
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Len returns Euclidean length
func V2Len(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2Angle returns atan2 angle of p relative to center, in (-π, π]
func V2Angle(p, center Vec2) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

// HalfDiagonal returns half of the diagonal of a w×h rectangle
func HalfDiagonal(w, h float64) float64 {
	return 0.5 * math.Hypot(w, h)
}
