package parameter

import "time"

// Linear drag
const (
	// DragSensitivity scales finger translation into path offset
	DragSensitivity = 0.3

	// LinearFlickFactor scales the predicted-minus-current translation on release
	LinearFlickFactor = 0.1
)

// Angular drag
const (
	// RadiansToOffset maps one radian of pointer rotation to path offset
	// Increase for faster looping, decrease for finer control
	RadiansToOffset = 240.0

	// RotationSpeed is an extra multiplier on angular contributions
	RotationSpeed = 0.55

	// FlickBoost scales the predicted angular tail on release
	FlickBoost = 1.0
)

// Release prediction
const (
	// FlickHorizon converts a one-shot flick distance into a launch velocity (distance / horizon)
	FlickHorizon = 0.25 // seconds

	// PredictFrames extrapolates the last pointer motion this many samples beyond release
	PredictFrames = 4.0
)

// Pinch thresholds
const (
	// PinchInThreshold fires a zoom-out step when the released scale falls below it
	PinchInThreshold = 0.95

	// PinchOutThreshold fires a zoom-in step when the released scale exceeds it
	PinchOutThreshold = 1.05

	// PinchLiveInThreshold fires a step mid-gesture when scale/anchor drops to it
	PinchLiveInThreshold = 0.96

	// PinchLiveOutThreshold fires a step mid-gesture when scale/anchor rises to it
	PinchLiveOutThreshold = 1.04

	// WheelPinchFactor is the synthetic pinch scale change per wheel notch
	WheelPinchFactor = 1.021

	// PinchIdleTimeout ends a synthetic wheel pinch after no wheel input
	PinchIdleTimeout = 300 * time.Millisecond
)
