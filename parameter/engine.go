package parameter

import "time"

// Front-end loop timing
const (
	// FrameInterval is the rendering and momentum tick interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// FramesPerSecond matches FrameInterval for spring integration
	FramesPerSecond = 60

	// EventQueueSize is the buffered capacity between the terminal poller and the main loop
	EventQueueSize = 256
)
