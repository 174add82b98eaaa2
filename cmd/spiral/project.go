package main

import (
	"math"

	"github.com/lixenwraith/spiral-carousel/vmath"
)

// projection maps world units around the origin onto terminal cells
// The world origin sits at the middle of the drawable area (status bar excluded)
type projection struct {
	width, height int // Drawable cells
	scaleX        float64
	scaleY        float64
}

func (p projection) originCell() (float64, float64) {
	return float64(p.width) / 2, float64(p.height) / 2
}

// toCell returns the cell containing world point w
func (p projection) toCell(w vmath.Vec2) (int, int) {
	ox, oy := p.originCell()
	return int(math.Floor(w.X*p.scaleX + ox)), int(math.Floor(w.Y*p.scaleY + oy))
}

// toWorld returns the world point at the center of cell (x, y)
func (p projection) toWorld(x, y int) vmath.Vec2 {
	ox, oy := p.originCell()
	return vmath.V2((float64(x)+0.5-ox)/p.scaleX, (float64(y)+0.5-oy)/p.scaleY)
}

func (p projection) inside(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// halfDiagonal is the world-space half diagonal of the drawable area
func (p projection) halfDiagonal() float64 {
	return vmath.HalfDiagonal(float64(p.width)/p.scaleX, float64(p.height)/p.scaleY)
}

// radiusCells converts a world diameter to per-axis cell radii
func (p projection) radiusCells(size float64) (float64, float64) {
	return size / 2 * p.scaleX, size / 2 * p.scaleY
}

// predictEnd extrapolates where the pointer would have come to rest
// Terminals report no velocity, so the last motion sample is carried forward frames times
func predictEnd(prev, last vmath.Vec2, frames float64) vmath.Vec2 {
	return vmath.V2Add(last, vmath.V2Scale(vmath.V2Sub(last, prev), frames))
}
