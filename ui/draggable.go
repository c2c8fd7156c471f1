package ui

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

var _ Stepper = (*Draggable)(nil)

// preHoverTicks is how long a pointer-up hover keeps a draggable ready to be
// picked up.
const preHoverTicks = 3

// Draggable is a handle the pointer can pick up and move. It is the only
// widget whose Position the toolkit changes.
//
// A drag only starts if the pointer hovered the handle without being pressed
// shortly before the press. A pointer that is already down when it passes
// over the handle does not pick it up.
type Draggable struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
	Color    color.RGBA
	Label    string

	id WidgetID

	// Interaction state
	hovered           bool
	beingDragged      bool
	lastPointer       mgl32.Vec2
	hasLastPointer    bool
	wasPreHovered     bool
	preHoverCountdown int
}

func NewDraggable(ids *IDAllocator, position, size mgl32.Vec2, clr color.RGBA, label string) *Draggable {
	return &Draggable{
		Position: position,
		Size:     size,
		Color:    clr,
		Label:    label,
		id:       allocate(ids),
	}
}

func (d *Draggable) ID() WidgetID { return d.id }

func (d *Draggable) Bounds() Rectangle {
	return Rectangle{Position: d.Position, Size: d.Size}
}

func (d *Draggable) Hovered() bool { return d.hovered }

func (d *Draggable) BeingDragged() bool { return d.beingDragged }

// PreHovered reports whether a press over the handle would start a drag.
func (d *Draggable) PreHovered() bool { return d.wasPreHovered }

// PreHoverCountdown returns the ticks left before the pre-hover expires.
func (d *Draggable) PreHoverCountdown() int { return d.preHoverCountdown }

// LastPointer returns the pointer position recorded at the last drag update.
// ok is false until the first drag starts.
func (d *Draggable) LastPointer() (p mgl32.Vec2, ok bool) {
	return d.lastPointer, d.hasLastPointer
}

// Step advances the draggable by one tick.
//
// The checks run in a fixed order and each one that fires replaces the event
// chosen by the previous ones, so at most one event comes out per tick.
func (d *Draggable) Step(pointer mgl32.Vec2, down bool) (Event, bool) {
	var ev Event
	fired := false

	d.hovered = d.Bounds().Contains(pointer)

	// hovering with the pointer up arms the drag
	if d.hovered && !down && !d.beingDragged {
		d.wasPreHovered = true
		d.preHoverCountdown = preHoverTicks
	}

	if d.preHoverCountdown > 0 {
		d.preHoverCountdown--
	}
	if d.preHoverCountdown == 0 {
		d.wasPreHovered = false
	}

	// drag start
	if d.wasPreHovered && !d.beingDragged && down && d.hovered {
		d.beingDragged = true
		d.lastPointer, d.hasLastPointer = pointer, true
		ev, fired = Event{Kind: DraggablePressed}, true

		d.wasPreHovered = false
		d.preHoverCountdown = 0
	}

	// drag end
	if d.beingDragged && !down {
		d.beingDragged = false
		ev, fired = Event{Kind: DraggableReleased, Position: d.Position}, true
	}

	// drag move
	if d.beingDragged && pointer != d.lastPointer {
		d.Position = d.Position.Add(pointer.Sub(d.lastPointer))
		d.lastPointer = pointer
		ev, fired = Event{Kind: DraggableMoved, Position: d.Position}, true
	}

	return ev, fired
}
