package vmath

import (
	"math"
)

// PathSampling bounds the polyline resolution of a sampled guide curve
type PathSampling struct {
	PointSpacing float64 // Target arc-length distance between samples
	MinPoints    int
	MaxPoints    int
	Reverse      bool // Emit from the outer end toward the center
}

// SamplePath returns a polyline following the spiral from arc length 0 to drawLength
// Sample count is drawLength/PointSpacing clamped to [MinPoints, MaxPoints]
func (s Spiral) SamplePath(drawLength float64, center Vec2, ps PathSampling) []Vec2 {
	if drawLength <= 0 || ps.MaxPoints < 2 {
		return nil
	}
	spacing := math.Max(ps.PointSpacing, 0.25)
	count := int(math.Round(drawLength / spacing))
	if count < ps.MinPoints {
		count = ps.MinPoints
	}
	if count > ps.MaxPoints {
		count = ps.MaxPoints
	}
	if count < 2 {
		count = 2
	}

	points := make([]Vec2, count)
	last := float64(count - 1)
	for i := 0; i < count; i++ {
		arc := float64(i) / last * drawLength
		if ps.Reverse {
			arc = drawLength - arc
		}
		points[i] = s.PointAtArc(arc, center)
	}
	return points
}
