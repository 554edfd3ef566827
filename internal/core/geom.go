// Package core provides fundamental types and utilities for the arcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells, used for drawing and
// HUD layout.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in world coordinates on the ground
// plane. Games use it for continuous collision checks; the screen-space Rect
// above is for drawing only.
type Box struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// NewBoxCentered creates a box centered on (x, z) with the given full extents.
func NewBoxCentered(x, z, extentX, extentZ float64) Box {
	return Box{
		MinX: x - extentX/2,
		MinZ: z - extentZ/2,
		MaxX: x + extentX/2,
		MaxZ: z + extentZ/2,
	}
}

// Intersects returns true if the two boxes overlap. Touching edges do not
// count as overlap.
func (b Box) Intersects(other Box) bool {
	if b.MinX >= other.MaxX || other.MinX >= b.MaxX {
		return false
	}
	if b.MinZ >= other.MaxZ || other.MinZ >= b.MaxZ {
		return false
	}
	return true
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinZ + b.MaxZ) / 2
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

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
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
