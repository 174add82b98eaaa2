package physics

import (
	"math"
	"time"
)

// Momentum keeps a scalar position moving after release with exponentially decaying velocity
// Velocity decay is the exact ODE solution v(t) = v0·e^(-k·t), so it is independent of tick rate
type Momentum struct {
	DecayRate float64 // k, per second
	Floor     float64 // |v| below this snaps to 0

	velocity float64
	lastTick time.Time
}

// NewMomentum creates an idle integrator
func NewMomentum(decayRate, floor float64) *Momentum {
	return &Momentum{DecayRate: decayRate, Floor: floor}
}

// Launch sets the release velocity (units/second) and anchors the tick clock at now
// A zero now leaves the clock unanchored until the first Tick
func (m *Momentum) Launch(velocity float64, now time.Time) {
	m.velocity = velocity
	m.lastTick = now
	m.settle()
}

// Stop zeroes velocity immediately (a new drag interrupts momentum)
func (m *Momentum) Stop() {
	m.velocity = 0
}

// Velocity returns the current velocity
func (m *Momentum) Velocity() float64 { return m.velocity }

// Active reports whether velocity is non-zero
func (m *Momentum) Active() bool { return m.velocity != 0 }

// Tick advances by the wall time elapsed since the previous tick or launch
// Returns the position delta to apply; non-positive elapsed time is ignored
// The first tick after an unanchored launch only anchors the clock
func (m *Momentum) Tick(now time.Time) float64 {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return 0
	}
	dt := now.Sub(m.lastTick).Seconds()
	if dt <= 0 {
		return 0
	}
	m.lastTick = now
	return m.Step(dt)
}

// Step advances by dt seconds and returns the position delta
// delta = v·dt; v *= e^(-k·dt); |v| < floor ⇒ v = 0
func (m *Momentum) Step(dt float64) float64 {
	if dt <= 0 || m.velocity == 0 {
		return 0
	}
	delta := m.velocity * dt
	m.velocity *= math.Exp(-m.DecayRate * dt)
	m.settle()
	return delta
}

func (m *Momentum) settle() {
	if math.Abs(m.velocity) < m.Floor {
		m.velocity = 0
	}
}
