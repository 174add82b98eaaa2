package carousel

import (
	"github.com/lixenwraith/spiral-carousel/parameter"
	"github.com/lixenwraith/spiral-carousel/vmath"
)

// GuideLength returns the arc length the guide curve covers
// At least the item path, and never fewer than Tuned.Curves full turns
func (c *Carousel) GuideLength() float64 {
	t := c.Tuned()
	return max(t.TotalPathLength(), t.Spiral().TurnsArcLength(t.Curves))
}

// VisibleGuideLength is GuideLength cut where the spiral radius passes halfDiagonal + overscan
// Zero when the whole viewport lies inside the inner radius
func (c *Carousel) VisibleGuideLength(halfDiagonal, overscan float64) float64 {
	s := c.Tuned().Spiral()
	return min(c.GuideLength(), s.ArcLength(s.VisibleThetaEnd(halfDiagonal, overscan)))
}

// GuidePath samples the whole guide curve from the outer end toward the center
// pointSpacing <= 0 uses parameter.GuidePointSpacing
func (c *Carousel) GuidePath(center vmath.Vec2, pointSpacing float64) []vmath.Vec2 {
	return c.GuidePathTo(center, pointSpacing, c.GuideLength())
}

// GuidePathTo samples the first length units of the guide curve, outer end first
func (c *Carousel) GuidePathTo(center vmath.Vec2, pointSpacing, length float64) []vmath.Vec2 {
	if pointSpacing <= 0 {
		pointSpacing = parameter.GuidePointSpacing
	}
	t := c.Tuned()
	return t.Spiral().SamplePath(length, center, vmath.PathSampling{
		PointSpacing: pointSpacing,
		MinPoints:    parameter.GuideMinPoints,
		MaxPoints:    parameter.GuideMaxPoints,
		Reverse:      true,
	})
}
