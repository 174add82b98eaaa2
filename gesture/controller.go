// Package gesture maps raw pointer and pinch input onto the layout engine:
// drag sessions become path offset changes, pinches become zoom steps.
//
// Every call mutates the target immediately and in arrival order. Malformed
// sequences (a change or release with no drag in progress) are ignored.
package gesture

import (
	"time"

	"github.com/lixenwraith/spiral-carousel/physics"
	"github.com/lixenwraith/spiral-carousel/vmath"
)

// OwnerRotation is the Coordinator owner name used by drag sessions
const OwnerRotation = "rotation"

// Target is the engine state a Controller steers
// Implemented by *carousel.Carousel
type Target interface {
	Offset() float64
	SetOffset(offset float64)
	AdvanceOffset(delta float64)
	StepZoom(dir int) bool
}

// Hooks are optional callbacks fired after the corresponding state change
type Hooks struct {
	OnDragBegin func()
	OnDragEnd   func(flick float64)
	OnZoomStep  func(dir int)
}

// Controller is the rotation/zoom gesture state machine
type Controller struct {
	target   Target
	settings Settings
	coord    *Coordinator
	hooks    Hooks

	momentum *physics.Momentum
	pinch    *PinchTracker

	state  State
	center vmath.Vec2 // Viewport center for angular drags

	// Drag session
	dragMode     DragMode // Mode latched at DragBegin
	anchorOffset float64
	start        vmath.Vec2
	last         vmath.Vec2
	angle        vmath.AngleAccumulator

	lastFlick float64
}

// NewController creates an idle controller steering target
func NewController(target Target, s Settings) *Controller {
	return &Controller{
		target:   target,
		settings: s,
		momentum: physics.NewMomentum(s.DecayRate, s.Floor),
		pinch:    NewPinchTracker(s),
	}
}

// SetCoordinator attaches an exclusive-interaction coordinator; nil detaches
func (c *Controller) SetCoordinator(coord *Coordinator) { c.coord = coord }

// SetHooks replaces the callbacks
func (c *Controller) SetHooks(h Hooks) { c.hooks = h }

// SetViewportCenter sets the pivot for angular drags
func (c *Controller) SetViewportCenter(center vmath.Vec2) { c.center = center }

// State returns the current state
func (c *Controller) State() State { return c.state }

// Settings returns the active settings
func (c *Controller) Settings() Settings { return c.settings }

// LastFlick returns the offset addition produced by the most recent release
func (c *Controller) LastFlick() float64 { return c.lastFlick }

// Momentum exposes the integrator for inspection
func (c *Controller) Momentum() *physics.Momentum { return c.momentum }

// Pinch exposes the pinch tracker for inspection
func (c *Controller) Pinch() *PinchTracker { return c.pinch }

// SetDragMode switches mode; a drag in progress keeps the mode it began with
func (c *Controller) SetDragMode(m DragMode) { c.settings.Mode = m }

// SetSwipeDirection switches the sign convention
func (c *Controller) SetSwipeDirection(d SwipeDirection) { c.settings.Direction = d }

// SetReleaseMode switches between flick and momentum release
func (c *Controller) SetReleaseMode(r ReleaseMode) { c.settings.Release = r }

// SetPinchPolicy switches the zoom state machine; abandons any pinch in progress
func (c *Controller) SetPinchPolicy(p PinchPolicy) {
	c.settings.Pinch = p
	c.pinch.Policy = p
	c.pinch.Reset()
}

// --- Drag ---

// DragBegin anchors a new drag session at loc
// Zeroes momentum synchronously; refused while another owner holds the coordinator
func (c *Controller) DragBegin(loc vmath.Vec2) bool {
	if c.coord != nil && c.coord.BlockedFor(OwnerRotation) {
		return false
	}
	c.momentum.Stop()

	c.state = StateDragging
	c.dragMode = c.settings.Mode
	c.anchorOffset = c.target.Offset()
	c.start = loc
	c.last = loc
	c.angle.Reset(vmath.V2Angle(loc, c.center))

	if c.hooks.OnDragBegin != nil {
		c.hooks.OnDragBegin()
	}
	return true
}

// DragChanged applies the pointer's new location
func (c *Controller) DragChanged(loc vmath.Vec2) {
	if !c.dragActive() {
		return
	}
	sign := c.settings.Direction.Sign()

	switch c.dragMode {
	case DragLinear:
		translation := loc.Y - c.start.Y
		c.target.SetOffset(c.anchorOffset + sign*translation*c.settings.Sensitivity)
	case DragAngular:
		d := c.angle.Push(vmath.V2Angle(loc, c.center))
		c.target.AdvanceOffset(sign * d * c.settings.angularScale())
	}
	c.last = loc
}

// DragEnded applies the final location, then the predicted tail as a flick or momentum launch
// predicted is where the pointer would have come to rest if it kept moving
func (c *Controller) DragEnded(loc, predicted vmath.Vec2, now time.Time) {
	if !c.dragActive() {
		return
	}
	c.DragChanged(loc)

	flick := c.flick(loc, predicted)
	c.lastFlick = flick

	switch c.settings.Release {
	case ReleaseMomentum:
		var velocity float64
		if c.settings.FlickHorizon > 0 {
			velocity = flick / c.settings.FlickHorizon
		}
		c.momentum.Launch(velocity, now)
		if c.momentum.Active() {
			c.state = StateSettling
		} else {
			c.state = StateIdle
		}
	default:
		c.target.AdvanceOffset(flick)
		c.state = StateIdle
	}

	c.angle.Clear()
	if c.hooks.OnDragEnd != nil {
		c.hooks.OnDragEnd(flick)
	}
}

// Cancel abandons a drag in place (offset keeps its live value) and stops momentum
func (c *Controller) Cancel() {
	c.momentum.Stop()
	c.angle.Clear()
	c.state = StateIdle
}

// flick computes the one-shot release addition from the predicted tail
func (c *Controller) flick(loc, predicted vmath.Vec2) float64 {
	sign := c.settings.Direction.Sign()
	switch c.dragMode {
	case DragAngular:
		d := vmath.AngleDelta(vmath.V2Angle(loc, c.center), vmath.V2Angle(predicted, c.center))
		return sign * d * c.settings.angularScale() * c.settings.FlickBoost
	default:
		return sign * (predicted.Y - loc.Y) * c.settings.LinearFlickFactor * c.settings.Sensitivity
	}
}

// dragActive reports an ongoing drag, cancelling it if another owner took exclusivity
func (c *Controller) dragActive() bool {
	if c.state != StateDragging {
		return false
	}
	if c.coord != nil && c.coord.BlockedFor(OwnerRotation) {
		c.Cancel()
		return false
	}
	return true
}

// --- Momentum ---

// Tick advances momentum to now; returns the offset delta applied
func (c *Controller) Tick(now time.Time) float64 {
	if c.state != StateSettling {
		return 0
	}
	d := c.momentum.Tick(now)
	if d != 0 {
		c.target.AdvanceOffset(d)
	}
	if !c.momentum.Active() {
		c.state = StateIdle
	}
	return d
}

// --- Pinch ---

// PinchChanged feeds an in-progress pinch scale; returns the step fired (-1, 0, +1)
func (c *Controller) PinchChanged(scale float64) int {
	return c.applyStep(c.pinch.Changed(scale))
}

// PinchEnded finishes the pinch; returns the step fired (-1, 0, +1)
func (c *Controller) PinchEnded(scale float64) int {
	return c.applyStep(c.pinch.Ended(scale))
}

// applyStep forwards a step to the target; steps past a zoom bound are dropped and report 0
func (c *Controller) applyStep(dir int) int {
	if dir == 0 || !c.target.StepZoom(dir) {
		return 0
	}
	if c.hooks.OnZoomStep != nil {
		c.hooks.OnZoomStep(dir)
	}
	return dir
}
