package gesture

import (
	"fmt"
	"strings"
)

// State is the rotation state machine: Idle → Dragging → Idle, or Dragging → Settling → Idle with momentum
type State uint8

const (
	StateIdle     State = iota // No active interaction
	StateDragging              // Pointer down, offset tracks the pointer
	StateSettling              // Released, momentum decaying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// DragMode selects how pointer motion maps to offset
type DragMode uint8

const (
	DragLinear  DragMode = iota // Vertical translation scaled by sensitivity
	DragAngular                 // Rotation around the viewport center
)

func (m DragMode) String() string {
	if m == DragAngular {
		return "angular"
	}
	return "linear"
}

// SwipeDirection flips the sign of every drag contribution
type SwipeDirection uint8

const (
	TopToBottom SwipeDirection = iota // +1
	BottomToTop                       // -1
)

// Sign returns +1 or -1
func (d SwipeDirection) Sign() float64 {
	if d == BottomToTop {
		return -1
	}
	return 1
}

func (d SwipeDirection) String() string {
	if d == BottomToTop {
		return "bottom-to-top"
	}
	return "top-to-bottom"
}

// ReleaseMode selects what a drag release does with the predicted tail
type ReleaseMode uint8

const (
	ReleaseFlick    ReleaseMode = iota // One-shot offset addition, eased by the presentation layer
	ReleaseMomentum                    // Launch velocity decayed by physics.Momentum
)

func (r ReleaseMode) String() string {
	if r == ReleaseMomentum {
		return "momentum"
	}
	return "flick"
}

// PinchPolicy selects the zoom stepping state machine
type PinchPolicy uint8

const (
	PinchOnRelease PinchPolicy = iota // One step at gesture end from the total scale
	PinchLive                         // Re-arming steps during the gesture
)

func (p PinchPolicy) String() string {
	if p == PinchLive {
		return "live"
	}
	return "release"
}

// ParseDragMode accepts "linear" or "angular"
func ParseDragMode(s string) (DragMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return DragLinear, nil
	case "angular", "circular":
		return DragAngular, nil
	}
	return 0, fmt.Errorf("unknown drag mode %q", s)
}

// ParseSwipeDirection accepts "top-to-bottom" or "bottom-to-top"
func ParseSwipeDirection(s string) (SwipeDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-to-bottom", "down", "":
		return TopToBottom, nil
	case "bottom-to-top", "up":
		return BottomToTop, nil
	}
	return 0, fmt.Errorf("unknown swipe direction %q", s)
}

// ParseReleaseMode accepts "flick" or "momentum"
func ParseReleaseMode(s string) (ReleaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flick", "":
		return ReleaseFlick, nil
	case "momentum":
		return ReleaseMomentum, nil
	}
	return 0, fmt.Errorf("unknown release mode %q", s)
}

// ParsePinchPolicy accepts "release" or "live"
func ParsePinchPolicy(s string) (PinchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "release", "":
		return PinchOnRelease, nil
	case "live":
		return PinchLive, nil
	}
	return 0, fmt.Errorf("unknown pinch policy %q", s)
}
