package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Center change tick
const (
	TickSoundFreq     = 1320.0
	TickSoundDuration = 18 * time.Millisecond
	TickSoundVolume   = 0.18
)

// Zoom step chirp
const (
	StepSoundFreqLow  = 440.0
	StepSoundFreqHigh = 880.0
	StepSoundDuration = 70 * time.Millisecond
	StepSoundVolume   = 0.2

	// MinSoundGap drops ticks closer together than this
	MinSoundGap = 25 * time.Millisecond
)
