// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box on the screen grid.
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

// Viewport maps continuous world coordinates onto a character grid.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// Project scales a world position to grid coordinates without clamping.
// Outline points past the world edge stay off-grid so strokes clip there.
func (v Viewport) Project(x, y float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	cx := int(math.Floor(x / v.WorldW * float64(v.Cols)))
	cy := int(math.Floor(y / v.WorldH * float64(v.Rows)))
	return cx, cy
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
