package parameter

// Zoom level bounds and per-level increments
const (
	ZoomLevelMin = -3
	ZoomLevelMax = 3

	// ZoomStep is added to every size/spacing field per zoom level
	ZoomStep = 10.0

	// ZoomCurveStep is the guide curve count change per level (inverse to zoom)
	ZoomCurveStep = 2
)
