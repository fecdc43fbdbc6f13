// Package geom holds the axis-aligned rectangle every entity is positioned by.
package geom

import "math"

// Rect is an axis-aligned box: top-left corner plus size.
type Rect struct {
	X, Y float64
	W, H float64
}

// FromCenter builds a rect of size w×h centered on (cx, cy). Odd sizes
// round the half size down, keeping whole-pixel corners.
func FromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - math.Floor(w/2), Y: cy - math.Floor(h/2), W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point, half sizes rounded down like FromCenter.
func (r Rect) Center() (float64, float64) {
	return r.X + math.Floor(r.W/2), r.Y + math.Floor(r.H/2)
}

// Move returns r shifted by (dx, dy).
func (r Rect) Move(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports whether r and o overlap. Rects that only share an edge
// do not overlap, and empty rects never overlap anything.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Clamp moves r so it lies inside bounds. On an axis where r is larger than
// bounds it is centered instead.
func (r Rect) Clamp(bounds Rect) Rect {
	r.X = clampAxis(r.X, r.W, bounds.X, bounds.W)
	r.Y = clampAxis(r.Y, r.H, bounds.Y, bounds.H)
	return r
}

func clampAxis(pos, size, lo, span float64) float64 {
	switch {
	case size >= span:
		return lo + span/2 - size/2
	case pos < lo:
		return lo
	case pos+size > lo+span:
		return lo + span - size
	}
	return pos
}

// Contains reports whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}
