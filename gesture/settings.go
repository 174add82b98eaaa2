package gesture

import (
	"github.com/lixenwraith/spiral-carousel/parameter"
)

// Settings tunes the gesture-to-offset mapping
type Settings struct {
	Mode      DragMode
	Direction SwipeDirection
	Release   ReleaseMode
	Pinch     PinchPolicy

	// Linear drag
	Sensitivity       float64
	LinearFlickFactor float64

	// Angular drag
	RadiansToOffset float64
	RotationSpeed   float64
	FlickBoost      float64

	// FlickHorizon converts flick distance to momentum launch velocity (seconds)
	FlickHorizon float64

	// Pinch thresholds
	PinchIn      float64
	PinchOut     float64
	PinchLiveIn  float64
	PinchLiveOut float64

	// Momentum
	DecayRate float64
	Floor     float64
}

// DefaultSettings returns the stock tuning from the parameter package
func DefaultSettings() Settings {
	return Settings{
		Mode:      DragLinear,
		Direction: TopToBottom,
		Release:   ReleaseFlick,
		Pinch:     PinchOnRelease,

		Sensitivity:       parameter.DragSensitivity,
		LinearFlickFactor: parameter.LinearFlickFactor,

		RadiansToOffset: parameter.RadiansToOffset,
		RotationSpeed:   parameter.RotationSpeed,
		FlickBoost:      parameter.FlickBoost,
		FlickHorizon:    parameter.FlickHorizon,

		PinchIn:      parameter.PinchInThreshold,
		PinchOut:     parameter.PinchOutThreshold,
		PinchLiveIn:  parameter.PinchLiveInThreshold,
		PinchLiveOut: parameter.PinchLiveOutThreshold,

		DecayRate: parameter.MomentumDecayRate,
		Floor:     parameter.MomentumFloor,
	}
}

// angularScale converts normalized radians to offset, before sign
func (s Settings) angularScale() float64 {
	return s.RadiansToOffset * s.RotationSpeed
}
