// Package carousel holds the spiral layout engine state: the item list, the
// unbounded path offset, and the zoom level. Every read derives positions from
// that state in closed form; nothing is cached between frames.
package carousel

import (
	"log"
	"math/rand/v2"

	"github.com/lixenwraith/spiral-carousel/vmath"
)

// Placement is one item's derived layout for a single frame
type Placement struct {
	Item     Item
	Index    int
	Arc      float64 // Wrapped arc-length coordinate in [0, total)
	Theta    float64
	Position vmath.Vec2
	Fade     float64 // Edge fade opacity in [0, 1]
}

// Carousel is the layout engine
// Single-threaded: all mutators and reads must come from the same goroutine
type Carousel struct {
	cfg   Config
	items []Item
	rng   *rand.Rand

	offset  float64
	zoom    int
	zoomMin int
	zoomMax int
}

// New validates cfg and generates the initial item list
func New(cfg Config) (*Carousel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	c := &Carousel{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	c.zoomMin, c.zoomMax = cfg.ZoomBounds()
	if c.zoomMin != cfg.ZoomMin || c.zoomMax != cfg.ZoomMax {
		log.Printf("carousel: zoom bounds tightened from [%d,%d] to [%d,%d]", cfg.ZoomMin, cfg.ZoomMax, c.zoomMin, c.zoomMax)
	}
	c.zoom = vmath.Clamp(0, c.zoomMin, c.zoomMax)
	c.items = GenerateItems(cfg.ItemCount, c.rng)
	return c, nil
}

// Config returns the base configuration
func (c *Carousel) Config() Config { return c.cfg }

// Items returns a copy of the item list
func (c *Carousel) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the item count
func (c *Carousel) Len() int { return len(c.items) }

// SetItemCount regenerates the whole list when n differs from the current count
// Returns true if items were regenerated
func (c *Carousel) SetItemCount(n int) bool {
	if n < 0 {
		n = 0
	}
	if n == len(c.items) {
		return false
	}
	c.cfg.ItemCount = n
	c.items = GenerateItems(n, c.rng)
	log.Printf("carousel: regenerated %d items", n)
	return true
}

// --- Offset ---

// Offset returns the current path offset
func (c *Carousel) Offset() float64 { return c.offset }

// AdvanceOffset adds delta without bound; wraparound happens at read time
func (c *Carousel) AdvanceOffset(delta float64) {
	c.offset += delta
}

// SetOffset assigns an absolute offset (drag anchors)
func (c *Carousel) SetOffset(offset float64) {
	c.offset = offset
}

// --- Zoom ---

// ZoomLevel returns the current level
func (c *Carousel) ZoomLevel() int { return c.zoom }

// ZoomBounds returns the effective [min, max] level range
func (c *Carousel) ZoomBounds() (int, int) { return c.zoomMin, c.zoomMax }

// SetZoomLevel clamps level into bounds and returns the applied value
func (c *Carousel) SetZoomLevel(level int) int {
	c.zoom = vmath.Clamp(level, c.zoomMin, c.zoomMax)
	return c.zoom
}

// StepZoom moves the level by the sign of dir; steps past a bound are dropped
// Returns true if the level changed
func (c *Carousel) StepZoom(dir int) bool {
	switch {
	case dir > 0:
		dir = 1
	case dir < 0:
		dir = -1
	default:
		return false
	}
	prev := c.zoom
	return c.SetZoomLevel(prev+dir) != prev
}

// Tuned returns the derived parameter snapshot for the current level
func (c *Carousel) Tuned() Tuned {
	return c.cfg.Tuned(c.zoom)
}

// --- Queries ---

// CenterIndex returns the slot at the path terminus
func (c *Carousel) CenterIndex() int {
	t := c.Tuned()
	return vmath.CenterIndex(len(c.items), t.ItemSpacing, c.offset)
}

// TailIndex returns the slot immediately behind the terminus
func (c *Carousel) TailIndex() int {
	t := c.Tuned()
	return vmath.TailIndex(len(c.items), t.ItemSpacing, c.offset)
}

// CurrentCenterItem returns the item rendered at the viewport center
// The centered item is the tail slot: the last one still on the path before it wraps
func (c *Carousel) CurrentCenterItem() (Item, bool) {
	if len(c.items) == 0 {
		return Item{}, false
	}
	return c.items[c.TailIndex()], true
}

// LayoutFrame returns a fresh placement per item for the given viewport center
func (c *Carousel) LayoutFrame(center vmath.Vec2) []Placement {
	return c.LayoutFrameInto(nil, center)
}

// LayoutFrameInto reuses dst's backing array when large enough
func (c *Carousel) LayoutFrameInto(dst []Placement, center vmath.Vec2) []Placement {
	return c.LayoutFrameAt(dst, center, c.offset)
}

// LayoutFrameAt lays items out at an arbitrary offset without touching engine state
// Presentation layers use it to draw an eased offset that trails the engine's
func (c *Carousel) LayoutFrameAt(dst []Placement, center vmath.Vec2, offset float64) []Placement {
	n := len(c.items)
	dst = dst[:0]
	if n == 0 {
		return dst
	}

	t := c.Tuned()
	s := t.Spiral()
	total := t.TotalPathLength()

	for i := 0; i < n; i++ {
		arc := vmath.ItemArcPosition(i, n, t.ItemSpacing, offset)
		theta := s.ThetaFromArcLength(arc)
		dst = append(dst, Placement{
			Item:     c.items[i],
			Index:    i,
			Arc:      arc,
			Theta:    theta,
			Position: s.PointAt(theta, center),
			Fade:     vmath.EdgeFade(arc, total, t.FadeRange),
		})
	}
	return dst
}
