// Package ui is a small retained-mode widget toolkit meant to be driven from a
// fixed-timestep simulation loop. Widgets are placed in a normalized [0,1]
// space, stepped once per tick with the current pointer state, and report what
// happened as events tagged with a caller-supplied value.
//
// The package never draws and never performs I/O.
package ui

import "github.com/go-gl/mathgl/mgl32"

// Widget is the basic building block of the UI system.
// All widget kinds, including labels, implement it.
type Widget interface {
	ID() WidgetID
	Bounds() Rectangle
}

// Stepper is a Widget with interaction state that advances once per tick.
type Stepper interface {
	Widget
	Step(pointer mgl32.Vec2, pressed bool) (Event, bool)
}

// Rectangle represents the bounds of a Widget.
type Rectangle struct {
	Position mgl32.Vec2 // top-left corner
	Size     mgl32.Vec2
}

// Max returns the bottom-right corner.
func (r Rectangle) Max() mgl32.Vec2 {
	return r.Position.Add(r.Size)
}

// Contains reports whether p lies strictly inside the rectangle.
// Points on any edge are outside.
func (r Rectangle) Contains(p mgl32.Vec2) bool {
	br := r.Max()
	return p.X() > r.Position.X() && p.X() < br.X() &&
		p.Y() > r.Position.Y() && p.Y() < br.Y()
}
