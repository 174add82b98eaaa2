package gesture

// PinchTracker turns a stream of pinch scale values into discrete zoom steps
// Scale is relative to the gesture start (1.0 = unchanged)
type PinchTracker struct {
	Policy PinchPolicy

	In      float64 // Release: total scale below fires -1
	Out     float64 // Release: total scale above fires +1
	LiveIn  float64 // Live: scale/anchor at or below fires -1
	LiveOut float64 // Live: scale/anchor at or above fires +1

	anchor float64
	active bool
}

// NewPinchTracker builds a tracker from gesture settings
func NewPinchTracker(s Settings) *PinchTracker {
	return &PinchTracker{
		Policy:  s.Pinch,
		In:      s.PinchIn,
		Out:     s.PinchOut,
		LiveIn:  s.PinchLiveIn,
		LiveOut: s.PinchLiveOut,
		anchor:  1,
	}
}

// Active reports whether a pinch gesture is in progress
func (p *PinchTracker) Active() bool { return p.active }

// Anchor returns the live-mode rolling anchor
func (p *PinchTracker) Anchor() float64 { return p.anchor }

// Changed feeds an in-progress scale; returns -1, 0, or +1
// Release policy only records activity and never steps here
func (p *PinchTracker) Changed(scale float64) int {
	if !p.active {
		p.active = true
		p.anchor = 1
	}
	if p.Policy != PinchLive || scale <= 0 || p.anchor <= 0 {
		return 0
	}

	ratio := scale / p.anchor
	switch {
	case ratio <= p.LiveIn:
		p.anchor = scale
		return -1
	case ratio >= p.LiveOut:
		p.anchor = scale
		return 1
	}
	return 0
}

// Ended finishes the gesture with its final total scale; returns -1, 0, or +1
// Live policy already stepped during the gesture and returns 0
func (p *PinchTracker) Ended(scale float64) int {
	p.active = false
	p.anchor = 1
	if p.Policy != PinchOnRelease {
		return 0
	}
	switch {
	case scale < p.In:
		return -1
	case scale > p.Out:
		return 1
	}
	return 0
}

// Reset abandons the gesture without stepping
func (p *PinchTracker) Reset() {
	p.active = false
	p.anchor = 1
}
