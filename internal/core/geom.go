// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or ebiten)
// to keep the simulation pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is an axis-aligned bounding box in field units.
// The simulation runs entirely on RectF; Rect is only used for drawing.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new float rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// BoxAround returns the bounding box of a circle.
func BoxAround(cx, cy, radius float64) RectF {
	return RectF{X: cx - radius, Y: cy - radius, W: radius * 2, H: radius * 2}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether the two boxes overlap with positive area.
// Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point is strictly inside the box.
func (r RectF) Contains(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Overlap returns the penetration depth on each axis.
// Both values are zero when the boxes do not intersect.
func (r RectF) Overlap(other RectF) (dx, dy float64) {
	if !r.Intersects(other) {
		return 0, 0
	}
	dx = math.Min(r.Right(), other.Right()) - math.Max(r.X, other.X)
	dy = math.Min(r.Bottom(), other.Bottom()) - math.Max(r.Y, other.Y)
	return dx, dy
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
