package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/spiral-carousel/audio"
	"github.com/lixenwraith/spiral-carousel/carousel"
	"github.com/lixenwraith/spiral-carousel/config"
	"github.com/lixenwraith/spiral-carousel/gesture"
	"github.com/lixenwraith/spiral-carousel/parameter"
	"github.com/lixenwraith/spiral-carousel/physics"
	"github.com/lixenwraith/spiral-carousel/vmath"
)

// Viewer drives the carousel from terminal mouse, wheel and key input
type Viewer struct {
	screen tcell.Screen
	car    *carousel.Carousel
	ctl    *gesture.Controller
	spring *physics.Spring
	sound  *audio.SoundManager
	view   config.ViewSection
	theme  theme

	proj projection

	// Mouse drag, in world units
	mouseDown bool
	prevPt    vmath.Vec2
	lastPt    vmath.Vec2

	// Wheel-as-pinch
	wheelScale float64
	lastWheel  time.Time

	lastCenter int

	placements []carousel.Placement
	guide      []vmath.Vec2
	guideKey   guideKey
}

type guideKey struct {
	level         int
	width, height int
}

// NewViewer wires a controller to car; sound may be nil
func NewViewer(screen tcell.Screen, car *carousel.Carousel, settings gesture.Settings, view config.ViewSection, sound *audio.SoundManager) *Viewer {
	v := &Viewer{
		screen:     screen,
		car:        car,
		ctl:        gesture.NewController(car, settings),
		spring:     physics.NewSpring(parameter.FramesPerSecond, view.SpringFrequency, view.SpringDamping),
		sound:      sound,
		view:       view,
		theme:      newTheme(),
		wheelScale: 1,
		lastCenter: -1,
		guideKey:   guideKey{level: -1 << 31},
	}
	v.spring.Snap(car.Offset())
	v.ctl.SetViewportCenter(vmath.Vec2{})
	v.ctl.SetHooks(gesture.Hooks{
		OnZoomStep: v.onZoomStep,
		OnDragEnd: func(flick float64) {
			log.Printf("viewer: drag released, flick %.2f", flick)
		},
	})
	v.resize()
	return v
}

// Run polls terminal events and renders at the frame interval until quit
func (v *Viewer) Run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	v.update(time.Now())
	v.draw()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			v.update(now)
			v.draw()
		}
	}
}

// handleEvent returns false when the viewer should exit
func (v *Viewer) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev, now)
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.car.AdvanceOffset(parameter.NudgeOffset)
		return true
	case tcell.KeyDown:
		v.car.AdvanceOffset(-parameter.NudgeOffset)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	s := v.ctl.Settings()
	switch ev.Rune() {
	case 'q':
		return false
	case '+', '=':
		v.stepZoom(1)
	case '-', '_':
		v.stepZoom(-1)
	case 'm':
		v.ctl.SetDragMode(1 - s.Mode)
	case 'r':
		v.ctl.SetSwipeDirection(1 - s.Direction)
	case 'f':
		v.ctl.SetReleaseMode(1 - s.Release)
	case 'p':
		v.ctl.SetPinchPolicy(1 - s.Pinch)
		v.wheelScale = 1
	case 's':
		if v.sound != nil {
			v.sound.SetMuted(!v.sound.Muted())
		}
	}
	return true
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse, now time.Time) {
	x, y := ev.Position()
	pt := v.proj.toWorld(x, y)
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		v.wheel(parameter.WheelPinchFactor, now)
		return
	case buttons&tcell.WheelDown != 0:
		v.wheel(1/parameter.WheelPinchFactor, now)
		return
	}

	pressed := buttons&tcell.Button1 != 0
	switch {
	case pressed && !v.mouseDown:
		v.mouseDown = true
		v.prevPt, v.lastPt = pt, pt
		if !v.ctl.DragBegin(pt) {
			v.mouseDown = false
		}
	case pressed && v.mouseDown:
		if pt == v.lastPt {
			return
		}
		v.prevPt, v.lastPt = v.lastPt, pt
		v.ctl.DragChanged(pt)
	case !pressed && v.mouseDown:
		v.mouseDown = false
		if pt != v.lastPt {
			v.prevPt, v.lastPt = v.lastPt, pt
		}
		v.ctl.DragEnded(v.lastPt, predictEnd(v.prevPt, v.lastPt, parameter.PredictFrames), now)
	}
}

// wheel treats each notch as a pinch scale change relative to the gesture start
func (v *Viewer) wheel(factor float64, now time.Time) {
	if !v.ctl.Pinch().Active() {
		v.wheelScale = 1
	}
	v.wheelScale *= factor
	v.lastWheel = now
	v.ctl.PinchChanged(v.wheelScale)
}

func (v *Viewer) stepZoom(dir int) {
	if v.car.StepZoom(dir) {
		v.onZoomStep(dir)
	}
}

func (v *Viewer) onZoomStep(dir int) {
	log.Printf("viewer: zoom level %d", v.car.ZoomLevel())
	if v.sound != nil {
		v.sound.PlayStep(dir)
	}
}

// update advances momentum, pinch timeout and the eased display offset
func (v *Viewer) update(now time.Time) {
	if v.ctl.Pinch().Active() && now.Sub(v.lastWheel) >= parameter.PinchIdleTimeout {
		v.ctl.PinchEnded(v.wheelScale)
		v.wheelScale = 1
	}

	v.ctl.Tick(now)

	// Direct manipulation tracks the pointer; releases and nudges are eased
	switch v.ctl.State() {
	case gesture.StateDragging, gesture.StateSettling:
		v.spring.Snap(v.car.Offset())
	default:
		v.spring.Update(v.car.Offset())
	}

	if v.car.Len() == 0 {
		v.lastCenter = -1
		return
	}
	center := vmath.TailIndex(v.car.Len(), v.car.Tuned().ItemSpacing, v.spring.Position())
	if center != v.lastCenter {
		if v.lastCenter >= 0 && v.sound != nil {
			v.sound.PlayTick(now)
		}
		v.lastCenter = center
	}
}

func (v *Viewer) resize() {
	w, h := v.screen.Size()
	v.proj = projection{
		width:  w,
		height: max(h-parameter.StatusBarHeight, 0),
		scaleX: v.view.ScaleX,
		scaleY: v.view.ScaleY,
	}
}

// displayedCenter returns the item drawn at the viewport center for the eased offset
func (v *Viewer) displayedCenter() (carousel.Item, bool) {
	if v.lastCenter < 0 || v.lastCenter >= v.car.Len() {
		return carousel.Item{}, false
	}
	return v.car.Items()[v.lastCenter], true
}

func (v *Viewer) statusText() string {
	s := v.ctl.Settings()
	lo, hi := v.car.ZoomBounds()
	centerText := "none"
	if it, ok := v.displayedCenter(); ok {
		centerText = fmt.Sprintf("#%d %s %s", it.Index, it.Label(), it.Kind)
	}
	soundText := "off"
	if v.sound != nil && v.sound.Enabled() {
		soundText = "on"
	}
	return fmt.Sprintf(" center %s | zoom %d [%d,%d] | %s %s | release %s | pinch %s | %s | sound %s",
		centerText, v.car.ZoomLevel(), lo, hi, s.Mode, s.Direction, s.Release, s.Pinch, v.ctl.State(), soundText)
}
