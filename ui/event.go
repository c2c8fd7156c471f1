package ui

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// EventKind defines the kind of transition a widget just made.
type EventKind int

const (
	ButtonPressed EventKind = iota
	ButtonReleased
	SliderMoved
	SliderReleased
	DraggablePressed
	DraggableReleased
	DraggableMoved
)

func (k EventKind) String() string {
	switch k {
	case ButtonPressed:
		return "ButtonPressed"
	case ButtonReleased:
		return "ButtonReleased"
	case SliderMoved:
		return "SliderMoved"
	case SliderReleased:
		return "SliderReleased"
	case DraggablePressed:
		return "DraggablePressed"
	case DraggableReleased:
		return "DraggableReleased"
	case DraggableMoved:
		return "DraggableMoved"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes a single widget transition.
// Value is set for slider events, Position for DraggableReleased and
// DraggableMoved.
type Event struct {
	Kind     EventKind
	Value    float32
	Position mgl32.Vec2
}

func (e Event) String() string {
	switch e.Kind {
	case SliderMoved, SliderReleased:
		return fmt.Sprintf("%s{value: %g}", e.Kind, e.Value)
	case DraggableReleased, DraggableMoved:
		return fmt.Sprintf("%s{new_pos: (%g, %g)}", e.Kind, e.Position.X(), e.Position.Y())
	}
	return e.Kind.String()
}

// TaggedEvent is an Event together with the widget that produced it and the
// tag that widget was added with.
type TaggedEvent[T comparable] struct {
	Tag      T
	WidgetID WidgetID
	Event    Event
}
