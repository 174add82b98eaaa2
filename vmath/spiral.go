package vmath

import (
	"math"
)

// Spiral describes an Archimedean spiral r(θ) = a + bθ
// InnerRadius is a; GrowthPerTurn is the radius increase per full 2π turn
type Spiral struct {
	InnerRadius   float64
	GrowthPerTurn float64
}

// B returns the growth coefficient per radian, floored at MinGrowthB
func (s Spiral) B() float64 {
	return math.Max(s.GrowthPerTurn/TwoPi, MinGrowthB)
}

// Radius returns r(θ) = a + bθ
func (s Spiral) Radius(theta float64) float64 {
	return s.InnerRadius + s.B()*theta
}

// ArcLength returns s(θ) = (b/2)θ² + aθ, the integral of r along the curve parameter
func (s Spiral) ArcLength(theta float64) float64 {
	return 0.5*s.B()*theta*theta + s.InnerRadius*theta
}

// ThetaFromArcLength inverts ArcLength via the quadratic formula
// Negative arc lengths and negative discriminants from cancellation clamp to zero
// Monotonic in s, returns 0 at s = 0
func (s Spiral) ThetaFromArcLength(arc float64) float64 {
	a := s.InnerRadius
	b := s.B()
	disc := math.Max(0, a*a+2*b*math.Max(0, arc))
	return (-a + math.Sqrt(disc)) / b
}

// PointAt returns the cartesian point at θ around center
func (s Spiral) PointAt(theta float64, center Vec2) Vec2 {
	r := s.Radius(theta)
	return Vec2{
		X: center.X + r*math.Cos(theta),
		Y: center.Y + r*math.Sin(theta),
	}
}

// PointAtArc returns the cartesian point at arc length arc
func (s Spiral) PointAtArc(arc float64, center Vec2) Vec2 {
	return s.PointAt(s.ThetaFromArcLength(arc), center)
}

// VisibleThetaEnd solves r(θ) = halfDiagonal + overscan for θ
// Returns 0 when the bound lies inside the inner radius
func (s Spiral) VisibleThetaEnd(halfDiagonal, overscan float64) float64 {
	a := math.Max(0, s.InnerRadius)
	rMax := halfDiagonal + overscan
	if rMax <= a {
		return 0
	}
	return (rMax - a) / s.B()
}

// TurnsArcLength returns the arc length covered by the given number of full turns
func (s Spiral) TurnsArcLength(turns int) float64 {
	if turns <= 0 {
		return 0
	}
	return s.ArcLength(float64(turns) * TwoPi)
}
