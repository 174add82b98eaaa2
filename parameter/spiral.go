package parameter

// Base spiral layout, in viewport distance units (points)
const (
	// SpiralItemCount is the default number of items placed on the path
	SpiralItemCount = 100

	// SpiralItemSpacing is the arc-length distance between consecutive item centers
	SpiralItemSpacing = 120.0

	// SpiralCircleSpacing is the radius growth per full 2π turn
	SpiralCircleSpacing = 120.0

	// SpiralInnerRadius is the radius at θ = 0 (the path terminus around the center item)
	SpiralInnerRadius = 80.0

	// SpiralItemSize is the diameter of a regular item
	SpiralItemSize = 90.0

	// SpiralCenterItemSize is the diameter of the centered item
	SpiralCenterItemSize = 200.0

	// SpiralMinCurves is the minimum number of turns the guide curve always draws
	SpiralMinCurves = 1

	// SpiralFadeSpans is the fade range at each path end, in item spacings
	SpiralFadeSpans = 2.0
)

// Guide path sampling
const (
	// GuidePointSpacing is the target arc-length distance between guide polyline points
	GuidePointSpacing = 2.0

	// GuideMinPoints keeps short paths smooth
	GuideMinPoints = 200

	// GuideMaxPoints caps polyline size for long paths
	GuideMaxPoints = 5000

	// GuideOverscan extends the viewer's guide past the viewport corner radius
	GuideOverscan = SpiralItemSize
)
