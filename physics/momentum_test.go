package physics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMomentumDecayMatchesExponential(t *testing.T) {
	tests := []struct {
		name  string
		ticks int
	}{
		{"60fps", 60},
		{"30fps", 30},
		{"uneven 7 ticks", 7},
		{"single step", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMomentum(6, 0.01)
			m.Launch(100, time.Time{})
			dt := 1.0 / float64(tt.ticks)
			for i := 0; i < tt.ticks; i++ {
				m.Step(dt)
			}
			assert.InDelta(t, 100*math.Exp(-6), m.Velocity(), 1e-9)
			assert.InDelta(t, 0.248, m.Velocity(), 1e-3)
		})
	}
}

func TestMomentumFloorIsSticky(t *testing.T) {
	m := NewMomentum(6, 1)
	m.Launch(100, time.Time{})

	steps := 0
	for m.Active() && steps < 10000 {
		m.Step(1.0 / 60)
		steps++
	}
	assert.False(t, m.Active())
	assert.Equal(t, 0.0, m.Velocity())

	// Idempotent once settled
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0.0, m.Step(0.5))
	}
	assert.Equal(t, 0.0, m.Velocity())
}

func TestMomentumStepDelta(t *testing.T) {
	m := NewMomentum(6, 1)
	m.Launch(100, time.Time{})
	assert.InDelta(t, 10, m.Step(0.1), 1e-12, "delta uses velocity before decay")
	assert.InDelta(t, 100*math.Exp(-0.6), m.Velocity(), 1e-9)

	assert.Equal(t, 0.0, m.Step(0))
	assert.Equal(t, 0.0, m.Step(-1))
}

func TestMomentumTick(t *testing.T) {
	base := time.Unix(1000, 0)
	m := NewMomentum(6, 1)
	m.Launch(-50, base)

	assert.Equal(t, 0.0, m.Tick(base), "zero elapsed")
	assert.Equal(t, 0.0, m.Tick(base.Add(-time.Second)), "clock went backwards")

	d := m.Tick(base.Add(100 * time.Millisecond))
	assert.InDelta(t, -5, d, 1e-9)
	assert.InDelta(t, -50*math.Exp(-0.6), m.Velocity(), 1e-9)
}

func TestMomentumTickUnanchoredLaunch(t *testing.T) {
	now := time.Now()
	m := NewMomentum(6, 1)
	m.Launch(40, time.Time{})

	assert.Equal(t, 0.0, m.Tick(now), "first tick anchors the clock")
	assert.Equal(t, 40.0, m.Velocity(), "anchoring does not decay")

	d := m.Tick(now.Add(100 * time.Millisecond))
	assert.InDelta(t, 4, d, 1e-9)
	assert.InDelta(t, 40*math.Exp(-0.6), m.Velocity(), 1e-9)
}

func TestMomentumStopAndLaunchBelowFloor(t *testing.T) {
	m := NewMomentum(6, 1)
	m.Launch(80, time.Time{})
	m.Stop()
	assert.False(t, m.Active())
	assert.Equal(t, 0.0, m.Step(1))

	m.Launch(0.5, time.Time{})
	assert.False(t, m.Active(), "launch below floor settles immediately")
}

func TestSpringConverges(t *testing.T) {
	s := NewSpring(60, 7, 0.7)
	for i := 0; i < 600; i++ {
		s.Update(100)
	}
	assert.True(t, s.Settled(100, 0.01))

	s.Snap(-3)
	assert.Equal(t, -3.0, s.Position())
	s.Shift(3)
	assert.Equal(t, 0.0, s.Position())
}
