package physics

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring eases a displayed value toward a target with a damped harmonic spring
// The engine jumps its offset to the target; the presentation layer draws Position
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSpring creates a spring stepped at fps with the given angular frequency and damping ratio
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Update advances one frame toward target and returns the new position
func (s *Spring) Update(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Snap jumps to value with zero velocity (drags track the finger directly)
func (s *Spring) Snap(value float64) {
	s.pos = value
	s.vel = 0
}

// Shift translates position without touching velocity
// Used when the target is re-based so the eased motion continues seamlessly
func (s *Spring) Shift(delta float64) {
	s.pos += delta
}

// Position returns the current eased value
func (s *Spring) Position() float64 { return s.pos }

// Settled reports whether position is within tol of target and nearly at rest
func (s *Spring) Settled(target, tol float64) bool {
	return math.Abs(s.pos-target) <= tol && math.Abs(s.vel) <= tol
}
