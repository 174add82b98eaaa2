// Package config loads the optional TOML settings file and maps it onto
// engine, gesture and viewer configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/spiral-carousel/carousel"
	"github.com/lixenwraith/spiral-carousel/gesture"
	"github.com/lixenwraith/spiral-carousel/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// File is the on-disk settings layout
type File struct {
	Spiral   SpiralSection   `toml:"spiral"`
	Zoom     ZoomSection     `toml:"zoom"`
	Gesture  GestureSection  `toml:"gesture"`
	Momentum MomentumSection `toml:"momentum"`
	View     ViewSection     `toml:"view"`
}

// SpiralSection is the level-0 layout
type SpiralSection struct {
	ItemCount      int     `toml:"item_count"`
	ItemSpacing    float64 `toml:"item_spacing"`
	CircleSpacing  float64 `toml:"circle_spacing"`
	InnerRadius    float64 `toml:"inner_radius"`
	ItemSize       float64 `toml:"item_size"`
	CenterItemSize float64 `toml:"center_item_size"`
	Curves         int     `toml:"curves"`
	FadeSpans      float64 `toml:"fade_spans"`
	Seed           uint64  `toml:"seed"`
}

type ZoomSection struct {
	Min       int     `toml:"min"`
	Max       int     `toml:"max"`
	Step      float64 `toml:"step"`
	CurveStep int     `toml:"curve_step"`
}

type GestureSection struct {
	Mode              string  `toml:"mode"`      // linear | angular
	Direction         string  `toml:"direction"` // top-to-bottom | bottom-to-top
	Release           string  `toml:"release"`   // flick | momentum
	Pinch             string  `toml:"pinch"`     // release | live
	Sensitivity       float64 `toml:"sensitivity"`
	LinearFlickFactor float64 `toml:"linear_flick_factor"`
	RadiansToOffset   float64 `toml:"radians_to_offset"`
	RotationSpeed     float64 `toml:"rotation_speed"`
	FlickBoost        float64 `toml:"flick_boost"`
	FlickHorizon      float64 `toml:"flick_horizon"`
	PinchIn           float64 `toml:"pinch_in"`
	PinchOut          float64 `toml:"pinch_out"`
	PinchLiveIn       float64 `toml:"pinch_live_in"`
	PinchLiveOut      float64 `toml:"pinch_live_out"`
}

type MomentumSection struct {
	DecayRate float64 `toml:"decay_rate"`
	Floor     float64 `toml:"floor"`
}

// ViewSection tunes the terminal viewer
type ViewSection struct {
	ScaleX          float64 `toml:"scale_x"`
	ScaleY          float64 `toml:"scale_y"`
	SpringFrequency float64 `toml:"spring_frequency"`
	SpringDamping   float64 `toml:"spring_damping"`
	Sound           bool    `toml:"sound"`
}

// Default returns the built-in settings
func Default() File {
	cc := carousel.DefaultConfig()
	gs := gesture.DefaultSettings()
	return File{
		Spiral: SpiralSection{
			ItemCount:      cc.ItemCount,
			ItemSpacing:    cc.ItemSpacing,
			CircleSpacing:  cc.CircleSpacing,
			InnerRadius:    cc.InnerRadius,
			ItemSize:       cc.ItemSize,
			CenterItemSize: cc.CenterItemSize,
			Curves:         cc.Curves,
			FadeSpans:      cc.FadeSpans,
			Seed:           cc.Seed,
		},
		Zoom: ZoomSection{
			Min:       cc.ZoomMin,
			Max:       cc.ZoomMax,
			Step:      cc.ZoomStep,
			CurveStep: cc.CurveStep,
		},
		Gesture: GestureSection{
			Mode:              gs.Mode.String(),
			Direction:         gs.Direction.String(),
			Release:           gs.Release.String(),
			Pinch:             gs.Pinch.String(),
			Sensitivity:       gs.Sensitivity,
			LinearFlickFactor: gs.LinearFlickFactor,
			RadiansToOffset:   gs.RadiansToOffset,
			RotationSpeed:     gs.RotationSpeed,
			FlickBoost:        gs.FlickBoost,
			FlickHorizon:      gs.FlickHorizon,
			PinchIn:           gs.PinchIn,
			PinchOut:          gs.PinchOut,
			PinchLiveIn:       gs.PinchLiveIn,
			PinchLiveOut:      gs.PinchLiveOut,
		},
		Momentum: MomentumSection{
			DecayRate: gs.DecayRate,
			Floor:     gs.Floor,
		},
		View: ViewSection{
			ScaleX:          parameter.ViewScaleX,
			ScaleY:          parameter.ViewScaleY,
			SpringFrequency: parameter.SpringFrequency,
			SpringDamping:   parameter.SpringDamping,
			Sound:           true,
		},
	}
}

// Load reads path over Default; an empty path returns Default
// Keys absent from the file keep their default values
func Load(path string) (File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(string(data), &f); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes TOML text into f and validates the result
// Unknown keys are rejected so typos don't silently fall back to defaults
func Parse(text string, f *File) error {
	md, err := toml.Decode(text, f)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	return f.Validate()
}

// Validate checks every section
func (f File) Validate() error {
	if err := f.Carousel().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := f.Settings(); err != nil {
		return err
	}

	g := f.Gesture
	switch {
	case g.Sensitivity < 0:
		return fmt.Errorf("%w: gesture.sensitivity %v < 0", ErrInvalid, g.Sensitivity)
	case g.FlickHorizon <= 0:
		return fmt.Errorf("%w: gesture.flick_horizon %v <= 0", ErrInvalid, g.FlickHorizon)
	case g.PinchIn <= 0 || g.PinchIn >= 1:
		return fmt.Errorf("%w: gesture.pinch_in %v outside (0,1)", ErrInvalid, g.PinchIn)
	case g.PinchOut <= 1:
		return fmt.Errorf("%w: gesture.pinch_out %v <= 1", ErrInvalid, g.PinchOut)
	case g.PinchLiveIn <= 0 || g.PinchLiveIn >= 1:
		return fmt.Errorf("%w: gesture.pinch_live_in %v outside (0,1)", ErrInvalid, g.PinchLiveIn)
	case g.PinchLiveOut <= 1:
		return fmt.Errorf("%w: gesture.pinch_live_out %v <= 1", ErrInvalid, g.PinchLiveOut)
	}

	m := f.Momentum
	if m.DecayRate <= 0 {
		return fmt.Errorf("%w: momentum.decay_rate %v <= 0", ErrInvalid, m.DecayRate)
	}
	if m.Floor < 0 {
		return fmt.Errorf("%w: momentum.floor %v < 0", ErrInvalid, m.Floor)
	}

	v := f.View
	if v.ScaleX <= 0 || v.ScaleY <= 0 {
		return fmt.Errorf("%w: view scale must be positive (%v, %v)", ErrInvalid, v.ScaleX, v.ScaleY)
	}
	if v.SpringFrequency <= 0 || v.SpringDamping < 0 {
		return fmt.Errorf("%w: view spring (%v, %v)", ErrInvalid, v.SpringFrequency, v.SpringDamping)
	}
	return nil
}

// Carousel maps the spiral and zoom sections onto a layout config
func (f File) Carousel() carousel.Config {
	return carousel.Config{
		ItemCount:      f.Spiral.ItemCount,
		ItemSpacing:    f.Spiral.ItemSpacing,
		CircleSpacing:  f.Spiral.CircleSpacing,
		InnerRadius:    f.Spiral.InnerRadius,
		ItemSize:       f.Spiral.ItemSize,
		CenterItemSize: f.Spiral.CenterItemSize,
		Curves:         f.Spiral.Curves,
		ZoomMin:        f.Zoom.Min,
		ZoomMax:        f.Zoom.Max,
		ZoomStep:       f.Zoom.Step,
		CurveStep:      f.Zoom.CurveStep,
		FadeSpans:      f.Spiral.FadeSpans,
		Seed:           f.Spiral.Seed,
	}
}

// Settings maps the gesture and momentum sections onto controller settings
func (f File) Settings() (gesture.Settings, error) {
	g := f.Gesture
	s := gesture.Settings{
		Sensitivity:       g.Sensitivity,
		LinearFlickFactor: g.LinearFlickFactor,
		RadiansToOffset:   g.RadiansToOffset,
		RotationSpeed:     g.RotationSpeed,
		FlickBoost:        g.FlickBoost,
		FlickHorizon:      g.FlickHorizon,
		PinchIn:           g.PinchIn,
		PinchOut:          g.PinchOut,
		PinchLiveIn:       g.PinchLiveIn,
		PinchLiveOut:      g.PinchLiveOut,
		DecayRate:         f.Momentum.DecayRate,
		Floor:             f.Momentum.Floor,
	}

	var err error
	if s.Mode, err = gesture.ParseDragMode(g.Mode); err != nil {
		return s, fmt.Errorf("%w: gesture.mode: %w", ErrInvalid, err)
	}
	if s.Direction, err = gesture.ParseSwipeDirection(g.Direction); err != nil {
		return s, fmt.Errorf("%w: gesture.direction: %w", ErrInvalid, err)
	}
	if s.Release, err = gesture.ParseReleaseMode(g.Release); err != nil {
		return s, fmt.Errorf("%w: gesture.release: %w", ErrInvalid, err)
	}
	if s.Pinch, err = gesture.ParsePinchPolicy(g.Pinch); err != nil {
		return s, fmt.Errorf("%w: gesture.pinch: %w", ErrInvalid, err)
	}
	return s, nil
}

// Encode renders f as TOML, used to print a starting config file
func (f File) Encode() (string, error) {
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}
