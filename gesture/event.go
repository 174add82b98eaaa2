package gesture

import (
	"time"

	"github.com/lixenwraith/spiral-carousel/vmath"
)

// EventType tags an input Event
type EventType uint8

const (
	EventNone EventType = iota
	EventDragBegin
	EventDragChanged
	EventDragEnded
	EventPinchChanged
	EventPinchEnded
	EventTick
)

func (t EventType) String() string {
	switch t {
	case EventDragBegin:
		return "DragBegin"
	case EventDragChanged:
		return "DragChanged"
	case EventDragEnded:
		return "DragEnded"
	case EventPinchChanged:
		return "PinchChanged"
	case EventPinchEnded:
		return "PinchEnded"
	case EventTick:
		return "Tick"
	default:
		return "None"
	}
}

// Event is one input from the gesture recognizer or scheduler
type Event struct {
	Type      EventType
	Location  vmath.Vec2 // Drag events
	Predicted vmath.Vec2 // DragEnded only
	Scale     float64    // Pinch events, relative to gesture start
	Time      time.Time  // DragEnded and Tick; zero means now
}

// Process dispatches ev to the matching handler
// Returns true if engine state may have changed
func (c *Controller) Process(ev Event) bool {
	if ev.Time.IsZero() && (ev.Type == EventDragEnded || ev.Type == EventTick) {
		ev.Time = time.Now()
	}

	switch ev.Type {
	case EventDragBegin:
		return c.DragBegin(ev.Location)
	case EventDragChanged:
		if c.state != StateDragging {
			return false
		}
		c.DragChanged(ev.Location)
		// A coordinator takeover cancels the drag without touching the offset
		return c.state == StateDragging
	case EventDragEnded:
		if c.state != StateDragging {
			return false
		}
		c.DragEnded(ev.Location, ev.Predicted, ev.Time)
		return true
	case EventPinchChanged:
		return c.PinchChanged(ev.Scale) != 0
	case EventPinchEnded:
		return c.PinchEnded(ev.Scale) != 0
	case EventTick:
		return c.Tick(ev.Time) != 0
	}
	return false
}
