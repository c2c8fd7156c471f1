package ui

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

var _ Stepper = (*Button)(nil)

type Button struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
	Color    color.RGBA
	Label    string

	id WidgetID

	// State
	hovered    bool
	pressed    bool
	wasPressed bool
}

func NewButton(ids *IDAllocator, position, size mgl32.Vec2, clr color.RGBA, label string) *Button {
	return &Button{
		Position: position,
		Size:     size,
		Color:    clr,
		Label:    label,
		id:       allocate(ids),
	}
}

func (b *Button) ID() WidgetID { return b.id }

func (b *Button) Hovered() bool { return b.hovered }

// Pressed reports whether the pointer is currently held down over the button.
func (b *Button) Pressed() bool { return b.pressed }

// Step advances the button by one tick. It reports ButtonPressed on the tick
// the pointer goes down over the button and ButtonReleased on the first tick
// the pointer is up after a press, wherever the pointer is by then.
func (b *Button) Step(pointer mgl32.Vec2, down bool) (Event, bool) {
	var ev Event
	fired := false

	if !down && b.wasPressed {
		ev, fired = Event{Kind: ButtonReleased}, true
		b.wasPressed = false
	}

	b.hovered = b.Bounds().Contains(pointer)

	if down && b.hovered {
		if !b.pressed {
			ev, fired = Event{Kind: ButtonPressed}, true
		}
		b.pressed = true
		b.wasPressed = true
	} else {
		b.pressed = false
	}

	return ev, fired
}

func (b *Button) Bounds() Rectangle {
	return Rectangle{Position: b.Position, Size: b.Size}
}
