package main

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/tickui/coords"
)

// readPointer returns the normalized pointer position and whether it is
// pressed. A touch that is held takes over the pointer until it lifts;
// otherwise the mouse is used. Only one pointer is tracked.
func (s *Sketch) readPointer() (mgl32.Vec2, bool) {
	touches := ebiten.AppendTouchIDs(make([]ebiten.TouchID, 0, 8))

	// A lifted touch releases where it was last seen
	if s.touching && !slices.Contains(touches, s.touch) {
		s.touching = false
		return s.pointer, false
	}
	if !s.touching && len(touches) > 0 {
		s.touch = touches[0]
		s.touching = true
	}

	if s.touching {
		x, y := ebiten.TouchPosition(s.touch)
		return coords.Normalize(float64(x), float64(y), s.res), true
	}

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return coords.Normalize(float64(x), float64(y), s.res), pressed
}
