package ui

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Gui owns a set of widgets, remembers the tag each one was added with and
// steps them all once per tick.
//
// Widgets are kept per kind in insertion order. Step visits buttons, then
// sliders, then vertical sliders, then draggables; labels are never stepped.
// A Gui is not safe for concurrent use.
type Gui[T comparable] struct {
	tags map[WidgetID]T

	buttons         []*Button
	sliders         []*Slider
	verticalSliders []*VerticalSlider
	draggables      []*Draggable
	labels          []*Label
}

// NewGui creates an empty Gui.
func NewGui[T comparable]() *Gui[T] {
	return &Gui[T]{
		tags: make(map[WidgetID]T),
	}
}

// Step advances every widget by one tick and returns the events they
// produced, in kind order and then insertion order.
//
// pointer should ideally be normalized to [0,1]. Positions outside that range
// simply miss every widget placed inside it.
func (g *Gui[T]) Step(pointer mgl32.Vec2, down bool) []TaggedEvent[T] {
	var events []TaggedEvent[T]
	events = stepAll(g, events, g.buttons, pointer, down)
	events = stepAll(g, events, g.sliders, pointer, down)
	events = stepAll(g, events, g.verticalSliders, pointer, down)
	events = stepAll(g, events, g.draggables, pointer, down)
	return events
}

func stepAll[T comparable, W Stepper](g *Gui[T], events []TaggedEvent[T], widgets []W, pointer mgl32.Vec2, down bool) []TaggedEvent[T] {
	for _, w := range widgets {
		ev, ok := w.Step(pointer, down)
		if !ok {
			continue
		}
		events = append(events, TaggedEvent[T]{
			Tag:      g.tags[w.ID()],
			WidgetID: w.ID(),
			Event:    ev,
		})
	}
	return events
}

// Tag returns the tag the widget with the given id was added with.
func (g *Gui[T]) Tag(id WidgetID) (T, bool) {
	tag, ok := g.tags[id]
	return tag, ok
}

// Len returns the number of widgets of all kinds.
func (g *Gui[T]) Len() int {
	return len(g.tags)
}

// IsInteracting returns true if any widget is currently held by the pointer.
func (g *Gui[T]) IsInteracting() bool {
	for _, b := range g.buttons {
		if b.pressed {
			return true
		}
	}
	for _, s := range g.sliders {
		if s.wasPressed {
			return true
		}
	}
	for _, s := range g.verticalSliders {
		if s.wasPressed {
			return true
		}
	}
	for _, d := range g.draggables {
		if d.beingDragged {
			return true
		}
	}
	return false
}

// add appends w to list and records its tag. It refuses ids that are already
// held. Callers reject nil widgets.
func add[T comparable, W Widget](g *Gui[T], list *[]W, w W, tag T) bool {
	if _, taken := g.tags[w.ID()]; taken {
		return false
	}
	*list = append(*list, w)
	g.tags[w.ID()] = tag
	return true
}

// remove deletes the widget with id from list together with its tag. The tag
// is left alone when list does not hold the id.
func remove[T comparable, W Widget](g *Gui[T], list *[]W, id WidgetID) bool {
	i := slices.IndexFunc(*list, func(w W) bool { return w.ID() == id })
	if i < 0 {
		return false
	}
	*list = slices.Delete(*list, i, i+1)
	delete(g.tags, id)
	return true
}

func find[W Widget](list []W, id WidgetID) (W, bool) {
	i := slices.IndexFunc(list, func(w W) bool { return w.ID() == id })
	if i < 0 {
		var zero W
		return zero, false
	}
	return list[i], true
}

// AddButton adds b with the given tag. It returns false if b is nil or its id
// is already in the Gui.
func (g *Gui[T]) AddButton(b *Button, tag T) bool {
	return b != nil && add(g, &g.buttons, b, tag)
}

// RemoveButton removes the button with id and its tag.
func (g *Gui[T]) RemoveButton(id WidgetID) bool { return remove(g, &g.buttons, id) }

// Button returns the button with id. The returned pointer may be used to move
// or restyle the button.
func (g *Gui[T]) Button(id WidgetID) (*Button, bool) { return find(g.buttons, id) }

// Buttons returns the buttons in insertion order. The slice must not be
// modified.
func (g *Gui[T]) Buttons() []*Button { return g.buttons }

func (g *Gui[T]) AddSlider(s *Slider, tag T) bool {
	return s != nil && add(g, &g.sliders, s, tag)
}

func (g *Gui[T]) RemoveSlider(id WidgetID) bool { return remove(g, &g.sliders, id) }

func (g *Gui[T]) Slider(id WidgetID) (*Slider, bool) { return find(g.sliders, id) }

func (g *Gui[T]) Sliders() []*Slider { return g.sliders }

func (g *Gui[T]) AddVerticalSlider(s *VerticalSlider, tag T) bool {
	return s != nil && add(g, &g.verticalSliders, s, tag)
}

func (g *Gui[T]) RemoveVerticalSlider(id WidgetID) bool {
	return remove(g, &g.verticalSliders, id)
}

func (g *Gui[T]) VerticalSlider(id WidgetID) (*VerticalSlider, bool) {
	return find(g.verticalSliders, id)
}

func (g *Gui[T]) VerticalSliders() []*VerticalSlider { return g.verticalSliders }

func (g *Gui[T]) AddDraggable(d *Draggable, tag T) bool {
	return d != nil && add(g, &g.draggables, d, tag)
}

func (g *Gui[T]) RemoveDraggable(id WidgetID) bool { return remove(g, &g.draggables, id) }

func (g *Gui[T]) Draggable(id WidgetID) (*Draggable, bool) { return find(g.draggables, id) }

func (g *Gui[T]) Draggables() []*Draggable { return g.draggables }

func (g *Gui[T]) AddLabel(l *Label, tag T) bool {
	return l != nil && add(g, &g.labels, l, tag)
}

func (g *Gui[T]) RemoveLabel(id WidgetID) bool { return remove(g, &g.labels, id) }

func (g *Gui[T]) Label(id WidgetID) (*Label, bool) { return find(g.labels, id) }

func (g *Gui[T]) Labels() []*Label { return g.labels }
