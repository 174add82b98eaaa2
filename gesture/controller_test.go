package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/spiral-carousel/carousel"
	"github.com/lixenwraith/spiral-carousel/vmath"
)

// fakeTarget records offset and zoom with fixed bounds
type fakeTarget struct {
	offset float64
	level  int
	min    int
	max    int
}

func newFakeTarget() *fakeTarget { return &fakeTarget{min: -3, max: 3} }

func (f *fakeTarget) Offset() float64         { return f.offset }
func (f *fakeTarget) SetOffset(v float64)     { f.offset = v }
func (f *fakeTarget) AdvanceOffset(d float64) { f.offset += d }

func (f *fakeTarget) StepZoom(dir int) bool {
	next := vmath.Clamp(f.level+dir, f.min, f.max)
	changed := next != f.level
	f.level = next
	return changed
}

func TestLinearDragScenario(t *testing.T) {
	target := newFakeTarget()
	c := NewController(target, DefaultSettings())

	require.True(t, c.DragBegin(vmath.V2(100, 100)))
	assert.Equal(t, StateDragging, c.State())

	c.DragChanged(vmath.V2(100, 150))
	assert.InDelta(t, 15, target.offset, 1e-12, "50 * 0.3 from anchor 0")

	// Live offset is absolute from the anchor, not cumulative
	c.DragChanged(vmath.V2(130, 150))
	assert.InDelta(t, 15, target.offset, 1e-12)
	c.DragChanged(vmath.V2(100, 90))
	assert.InDelta(t, -3, target.offset, 1e-12)
}

func TestLinearDragAnchorsAtCurrentOffset(t *testing.T) {
	target := newFakeTarget()
	target.offset = 200
	c := NewController(target, DefaultSettings())

	c.DragBegin(vmath.V2(0, 0))
	c.DragChanged(vmath.V2(0, 50))
	assert.InDelta(t, 215, target.offset, 1e-12)
}

func TestSwipeDirectionFlipsSign(t *testing.T) {
	s := DefaultSettings()
	s.Direction = BottomToTop
	target := newFakeTarget()
	c := NewController(target, s)

	c.DragBegin(vmath.V2(0, 0))
	c.DragChanged(vmath.V2(0, 50))
	assert.InDelta(t, -15, target.offset, 1e-12)
}

func TestLinearFlick(t *testing.T) {
	target := newFakeTarget()
	c := NewController(target, DefaultSettings())

	c.DragBegin(vmath.V2(0, 0))
	c.DragEnded(vmath.V2(0, 50), vmath.V2(0, 150), time.Now())

	// live 15 + flick (150-50) * 0.1 * 0.3 = 3
	assert.InDelta(t, 3, c.LastFlick(), 1e-12)
	assert.InDelta(t, 18, target.offset, 1e-12)
	assert.Equal(t, StateIdle, c.State())
}

func TestAngularDragCrossesBranchCut(t *testing.T) {
	s := DefaultSettings()
	s.Mode = DragAngular
	target := newFakeTarget()
	c := NewController(target, s)
	c.SetViewportCenter(vmath.V2(0, 0))

	// Just above the negative x axis (angle ≈ +3.0) to just below it (≈ -3.0)
	p := vmath.V2(math.Cos(3.0), math.Sin(3.0))
	q := vmath.V2(math.Cos(-3.0), math.Sin(-3.0))

	c.DragBegin(p)
	c.DragChanged(q)

	want := (2*math.Pi - 6) * 240 * 0.55
	assert.InDelta(t, want, target.offset, 1e-9)
	assert.Less(t, math.Abs(target.offset), math.Pi*240*0.55, "never more than half a turn per update")
}

func TestAngularDragAccumulates(t *testing.T) {
	s := DefaultSettings()
	s.Mode = DragAngular
	target := newFakeTarget()
	c := NewController(target, s)
	c.SetViewportCenter(vmath.V2(50, 50))

	// Full counter-clockwise circle in 16 steps sums to one turn
	c.DragBegin(vmath.V2(60, 50))
	for i := 1; i <= 16; i++ {
		a := float64(i) * 2 * math.Pi / 16
		c.DragChanged(vmath.V2(50+10*math.Cos(a), 50+10*math.Sin(a)))
	}
	assert.InDelta(t, 2*math.Pi*240*0.55, target.offset, 1e-9)
}

func TestAngularFlick(t *testing.T) {
	s := DefaultSettings()
	s.Mode = DragAngular
	target := newFakeTarget()
	c := NewController(target, s)

	c.DragBegin(vmath.V2(10, 0))
	c.DragEnded(vmath.V2(10, 0), vmath.V2(0, 10), time.Now())
	assert.InDelta(t, math.Pi/2*240*0.55, c.LastFlick(), 1e-9)
	assert.InDelta(t, math.Pi/2*240*0.55, target.offset, 1e-9)
}

func TestDragModeSwitchAppliesToNextDrag(t *testing.T) {
	s := DefaultSettings()
	s.Mode = DragAngular
	target := newFakeTarget()
	c := NewController(target, s)

	// Half a counter-clockwise turn around the origin
	c.DragBegin(vmath.V2(10, 0))
	c.DragChanged(vmath.V2(0, 10))
	c.DragChanged(vmath.V2(-10, 0))
	half := math.Pi * 240 * 0.55
	require.InDelta(t, half, target.offset, 1e-9)

	// Switching mid-drag keeps the angular mapping until release
	c.SetDragMode(DragLinear)
	assert.Equal(t, DragLinear, c.Settings().Mode)
	c.DragChanged(vmath.V2(-20, 0))
	assert.InDelta(t, half, target.offset, 1e-9, "radial move does not rotate")
	c.DragEnded(vmath.V2(-20, 0), vmath.V2(-20, 0), time.Now())
	assert.InDelta(t, half, target.offset, 1e-9)

	// The next drag is linear, anchored at the accumulated offset
	c.DragBegin(vmath.V2(0, 0))
	c.DragChanged(vmath.V2(0, 10))
	assert.InDelta(t, half+3, target.offset, 1e-9)
}

func TestMalformedEventsIgnored(t *testing.T) {
	target := newFakeTarget()
	c := NewController(target, DefaultSettings())

	c.DragChanged(vmath.V2(0, 500))
	c.DragEnded(vmath.V2(0, 500), vmath.V2(0, 900), time.Now())
	assert.Equal(t, 0.0, target.offset)
	assert.Equal(t, StateIdle, c.State())

	assert.False(t, c.Process(Event{Type: EventDragChanged, Location: vmath.V2(1, 1)}))
	assert.False(t, c.Process(Event{Type: EventNone}))
}

func TestMomentumRelease(t *testing.T) {
	s := DefaultSettings()
	s.Release = ReleaseMomentum
	target := newFakeTarget()
	c := NewController(target, s)

	base := time.Unix(0, 0)
	c.DragBegin(vmath.V2(0, 0))
	c.DragEnded(vmath.V2(0, 0), vmath.V2(0, 1000), base)

	// flick 1000*0.1*0.3 = 30 over a 0.25s horizon
	assert.Equal(t, StateSettling, c.State())
	assert.InDelta(t, 120, c.Momentum().Velocity(), 1e-9)
	assert.Equal(t, 0.0, target.offset, "momentum does not jump the offset")

	d := c.Tick(base.Add(100 * time.Millisecond))
	assert.InDelta(t, 12, d, 1e-9)
	assert.InDelta(t, 12, target.offset, 1e-9)

	now := base.Add(100 * time.Millisecond)
	for i := 0; i < 1000 && c.State() == StateSettling; i++ {
		now = now.Add(16 * time.Millisecond)
		c.Tick(now)
	}
	assert.Equal(t, StateIdle, c.State())
	settled := target.offset
	c.Tick(now.Add(time.Second))
	assert.Equal(t, settled, target.offset)
}

func TestDragBeginInterruptsMomentum(t *testing.T) {
	s := DefaultSettings()
	s.Release = ReleaseMomentum
	target := newFakeTarget()
	c := NewController(target, s)

	base := time.Unix(0, 0)
	c.DragBegin(vmath.V2(0, 0))
	c.DragEnded(vmath.V2(0, 0), vmath.V2(0, 1000), base)
	require.True(t, c.Momentum().Active())

	c.DragBegin(vmath.V2(0, 0))
	assert.False(t, c.Momentum().Active())
	assert.Equal(t, 0.0, c.Momentum().Velocity())
	assert.Equal(t, 0.0, c.Tick(base.Add(time.Second)), "dragging ignores ticks")
}

func TestCoordinatorSuppressesRotation(t *testing.T) {
	target := newFakeTarget()
	c := NewController(target, DefaultSettings())
	coord := NewCoordinator()
	c.SetCoordinator(coord)

	require.True(t, coord.Acquire("drop"))
	assert.False(t, c.DragBegin(vmath.V2(0, 0)))
	assert.Equal(t, StateIdle, c.State())

	coord.Release("drop")
	require.True(t, c.DragBegin(vmath.V2(0, 0)))
	c.DragChanged(vmath.V2(0, 10))
	assert.InDelta(t, 3, target.offset, 1e-12)

	// Another owner grabs exclusivity mid-drag: the drag is cancelled in place
	require.True(t, coord.Acquire("drop"))
	c.DragChanged(vmath.V2(0, 100))
	assert.Equal(t, StateIdle, c.State())
	assert.InDelta(t, 3, target.offset, 1e-12)
}

func TestHooks(t *testing.T) {
	target := newFakeTarget()
	c := NewController(target, DefaultSettings())

	var began, ended, steps int
	c.SetHooks(Hooks{
		OnDragBegin: func() { began++ },
		OnDragEnd:   func(float64) { ended++ },
		OnZoomStep:  func(int) { steps++ },
	})

	c.DragBegin(vmath.V2(0, 0))
	c.DragEnded(vmath.V2(0, 0), vmath.V2(0, 0), time.Now())
	c.PinchChanged(1.2)
	c.PinchEnded(1.2)

	assert.Equal(t, 1, began)
	assert.Equal(t, 1, ended)
	assert.Equal(t, 1, steps)
}

func TestProcessDispatch(t *testing.T) {
	target := newFakeTarget()
	c := NewController(target, DefaultSettings())

	assert.True(t, c.Process(Event{Type: EventDragBegin, Location: vmath.V2(0, 0)}))
	assert.True(t, c.Process(Event{Type: EventDragChanged, Location: vmath.V2(0, 50)}))
	assert.InDelta(t, 15, target.offset, 1e-12)
	assert.True(t, c.Process(Event{Type: EventDragEnded, Location: vmath.V2(0, 50), Predicted: vmath.V2(0, 50)}))
	assert.Equal(t, StateIdle, c.State())

	assert.False(t, c.Process(Event{Type: EventPinchChanged, Scale: 0.9}))
	assert.True(t, c.Process(Event{Type: EventPinchEnded, Scale: 0.9}))
	assert.Equal(t, -1, target.level)
}

func TestProcessMomentumReleaseWithoutTime(t *testing.T) {
	s := DefaultSettings()
	s.Release = ReleaseMomentum
	target := newFakeTarget()
	c := NewController(target, s)

	require.True(t, c.Process(Event{Type: EventDragBegin}))
	require.True(t, c.Process(Event{Type: EventDragEnded, Predicted: vmath.V2(0, 100)}))
	require.Equal(t, StateSettling, c.State())
	assert.InDelta(t, 3, c.LastFlick(), 1e-12)

	// Release was stamped with the wall clock, so the next tick covers only real elapsed time
	c.Process(Event{Type: EventTick, Time: time.Now()})
	c.Process(Event{Type: EventTick})
	assert.GreaterOrEqual(t, target.offset, 0.0)
	assert.Less(t, target.offset, 1.0)
}

func TestProcessDragChangedAfterTakeover(t *testing.T) {
	target := newFakeTarget()
	c := NewController(target, DefaultSettings())
	coord := NewCoordinator()
	c.SetCoordinator(coord)

	require.True(t, c.Process(Event{Type: EventDragBegin}))
	require.True(t, c.Process(Event{Type: EventDragChanged, Location: vmath.V2(0, 10)}))

	require.True(t, coord.Acquire("drop"))
	assert.False(t, c.Process(Event{Type: EventDragChanged, Location: vmath.V2(0, 100)}), "cancelled drag reports no change")
	assert.Equal(t, StateIdle, c.State())
	assert.InDelta(t, 3, target.offset, 1e-12)
}

func TestControllerDrivesCarousel(t *testing.T) {
	cfg := carousel.DefaultConfig()
	cfg.ItemCount = 12
	cfg.ItemSpacing = 10
	cfg.Seed = 1
	car, err := carousel.New(cfg)
	require.NoError(t, err)

	c := NewController(car, DefaultSettings())
	c.DragBegin(vmath.V2(0, 0))
	c.DragChanged(vmath.V2(0, 50))
	assert.InDelta(t, 15, car.Offset(), 1e-12)
	assert.Equal(t, 11, car.CenterIndex())
}
