package carousel

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/spiral-carousel/parameter"
	"github.com/lixenwraith/spiral-carousel/vmath"
)

// ErrInvalidConfig is wrapped by every configuration precondition failure
var ErrInvalidConfig = errors.New("invalid carousel config")

// Config is the base (zoom level 0) layout configuration
// Replaced wholesale; never mutated in place by the engine
type Config struct {
	ItemCount      int
	ItemSpacing    float64 // Arc length between consecutive item centers
	CircleSpacing  float64 // Radius growth per full turn
	InnerRadius    float64
	ItemSize       float64
	CenterItemSize float64
	Curves         int // Minimum guide curve turns at level 0

	ZoomMin   int
	ZoomMax   int
	ZoomStep  float64 // Added to every size field per level
	CurveStep int     // Subtracted from Curves per level

	FadeSpans float64 // Fade range in item spacings

	// Seed drives item kind selection; 0 picks a random seed
	Seed uint64
}

// DefaultConfig returns the stock layout tuning
func DefaultConfig() Config {
	return Config{
		ItemCount:      parameter.SpiralItemCount,
		ItemSpacing:    parameter.SpiralItemSpacing,
		CircleSpacing:  parameter.SpiralCircleSpacing,
		InnerRadius:    parameter.SpiralInnerRadius,
		ItemSize:       parameter.SpiralItemSize,
		CenterItemSize: parameter.SpiralCenterItemSize,
		Curves:         parameter.SpiralMinCurves,
		ZoomMin:        parameter.ZoomLevelMin,
		ZoomMax:        parameter.ZoomLevelMax,
		ZoomStep:       parameter.ZoomStep,
		CurveStep:      parameter.ZoomCurveStep,
		FadeSpans:      parameter.SpiralFadeSpans,
	}
}

// Validate checks construction preconditions
func (c Config) Validate() error {
	switch {
	case c.ItemCount < 0:
		return fmt.Errorf("%w: item count %d < 0", ErrInvalidConfig, c.ItemCount)
	case c.ItemSpacing <= 0:
		return fmt.Errorf("%w: item spacing %v <= 0", ErrInvalidConfig, c.ItemSpacing)
	case c.CircleSpacing < 0:
		return fmt.Errorf("%w: circle spacing %v < 0", ErrInvalidConfig, c.CircleSpacing)
	case c.InnerRadius <= 0:
		return fmt.Errorf("%w: inner radius %v <= 0", ErrInvalidConfig, c.InnerRadius)
	case c.ItemSize <= 0 || c.CenterItemSize <= 0:
		return fmt.Errorf("%w: item sizes must be positive (%v, %v)", ErrInvalidConfig, c.ItemSize, c.CenterItemSize)
	case c.ZoomMin > c.ZoomMax:
		return fmt.Errorf("%w: zoom min %d > max %d", ErrInvalidConfig, c.ZoomMin, c.ZoomMax)
	case c.ZoomStep < 0:
		return fmt.Errorf("%w: zoom step %v < 0", ErrInvalidConfig, c.ZoomStep)
	case c.CurveStep < 0:
		return fmt.Errorf("%w: curve step %d < 0", ErrInvalidConfig, c.CurveStep)
	case c.FadeSpans < 0:
		return fmt.Errorf("%w: fade spans %v < 0", ErrInvalidConfig, c.FadeSpans)
	}
	return nil
}

// ZoomBounds returns [ZoomMin, ZoomMax] tightened so every shrinking field stays > 0
// CircleSpacing is excluded: a non-positive growth degrades to a circle rather than failing
func (c Config) ZoomBounds() (lo, hi int) {
	lo, hi = c.ZoomMin, c.ZoomMax
	if c.ZoomStep <= 0 {
		return lo, hi
	}
	smallest := math.Min(math.Min(c.ItemSpacing, c.InnerRadius), math.Min(c.ItemSize, c.CenterItemSize))
	floor := 1 - int(math.Ceil(smallest/c.ZoomStep))
	if lo < floor {
		lo = floor
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Tuned is the derived parameter snapshot for one zoom level
type Tuned struct {
	Level          int
	ItemCount      int
	ItemSpacing    float64
	CircleSpacing  float64
	InnerRadius    float64
	ItemSize       float64
	CenterItemSize float64
	Curves         int
	FadeRange      float64
}

// Tuned derives the snapshot for level; pure, level is used as given
func (c Config) Tuned(level int) Tuned {
	d := float64(level) * c.ZoomStep
	t := Tuned{
		Level:          level,
		ItemCount:      c.ItemCount,
		ItemSpacing:    c.ItemSpacing + d,
		CircleSpacing:  c.CircleSpacing + d,
		InnerRadius:    c.InnerRadius + d,
		ItemSize:       c.ItemSize + d,
		CenterItemSize: c.CenterItemSize + d,
		Curves:         max(1, c.Curves-c.CurveStep*level),
	}
	t.FadeRange = c.FadeSpans * t.ItemSpacing
	return t
}

// Spiral returns the spiral geometry for this snapshot
func (t Tuned) Spiral() vmath.Spiral {
	return vmath.Spiral{InnerRadius: t.InnerRadius, GrowthPerTurn: t.CircleSpacing}
}

// TotalPathLength is the wraparound period of the whole layout
func (t Tuned) TotalPathLength() float64 {
	return vmath.TotalPathLength(t.ItemCount, t.ItemSpacing)
}
