package ui

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

var _ Widget = (*Label)(nil)

// Label is static text. It has no interaction state and is never stepped.
type Label struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
	Color    color.RGBA
	Text     string

	id WidgetID
}

func NewLabel(ids *IDAllocator, position, size mgl32.Vec2, clr color.RGBA, text string) *Label {
	return &Label{
		Position: position,
		Size:     size,
		Color:    clr,
		Text:     text,
		id:       allocate(ids),
	}
}

func (l *Label) ID() WidgetID { return l.id }

func (l *Label) Bounds() Rectangle {
	return Rectangle{Position: l.Position, Size: l.Size}
}
