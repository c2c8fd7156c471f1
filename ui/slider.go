package ui

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	_ Stepper = (*Slider)(nil)
	_ Stepper = (*VerticalSlider)(nil)
)

type axis int

const (
	axisX axis = iota
	axisY
)

// SliderConfig holds the construction parameters shared by Slider and
// VerticalSlider.
type SliderConfig struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
	// Thumb is the thumb width for a Slider and its height for a
	// VerticalSlider. It only affects drawing.
	Thumb float32

	Minimum  float32
	Maximum  float32
	StepSize float32
	Value    float32
	// SnapFraction pulls values near either end of the range onto that end.
	// Zero disables snapping.
	SnapFraction float32

	Color color.RGBA
	Label string
}

// track is the value logic common to both slider orientations.
type track struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2

	Minimum      float32
	Maximum      float32
	StepSize     float32
	SnapFraction float32

	Color color.RGBA
	Label string

	id    WidgetID
	axis  axis
	value float32

	hovered    bool
	wasPressed bool
}

func newTrack(ids *IDAllocator, cfg SliderConfig, a axis) track {
	return track{
		Position:     cfg.Position,
		Size:         cfg.Size,
		Minimum:      cfg.Minimum,
		Maximum:      cfg.Maximum,
		StepSize:     cfg.StepSize,
		SnapFraction: cfg.SnapFraction,
		Color:        cfg.Color,
		Label:        cfg.Label,
		id:           allocate(ids),
		axis:         a,
		value:        mgl32.Clamp(cfg.Value, cfg.Minimum, cfg.Maximum),
	}
}

func (t *track) ID() WidgetID { return t.id }

func (t *track) Bounds() Rectangle {
	return Rectangle{Position: t.Position, Size: t.Size}
}

func (t *track) Value() float32 { return t.value }

func (t *track) Hovered() bool { return t.hovered }

// Dragging reports whether the slider is being held.
func (t *track) Dragging() bool { return t.wasPressed }

// Fraction returns where the value sits in the range, 0 at Minimum and 1 at
// Maximum.
func (t *track) Fraction() float32 {
	span := t.Maximum - t.Minimum
	if span == 0 {
		return 0
	}
	return (t.value - t.Minimum) / span
}

// Step advances the slider by one tick. While the pointer is held over the
// track the value follows it along the slider's axis and SliderMoved is
// reported whenever it changes. SliderReleased is reported on the first tick
// the pointer is up after the slider was held.
func (t *track) Step(pointer mgl32.Vec2, down bool) (Event, bool) {
	var ev Event
	fired := false

	if t.wasPressed && !down {
		ev, fired = Event{Kind: SliderReleased, Value: t.value}, true
		t.wasPressed = false
	}

	if !t.Bounds().Contains(pointer) {
		t.hovered = false
		return ev, fired
	}
	t.hovered = true
	if !down {
		return ev, fired
	}

	old := t.value
	t.value = t.valueAt(pointer)
	if t.value != old {
		ev, fired = Event{Kind: SliderMoved, Value: t.value}, true
	}
	t.wasPressed = true

	return ev, fired
}

// valueAt maps a pointer position on the track to a value. The order is
// fixed: snap, then round to hundredths, then quantize to StepSize.
func (t *track) valueAt(pointer mgl32.Vec2) float32 {
	a := int(t.axis)
	total := t.Bounds().Max()[a] - t.Position[a]
	fraction := (pointer[a] - t.Position[a]) / total
	v := t.Minimum + float32(fraction*(t.Maximum-t.Minimum))

	// The upper threshold is not offset by Minimum while the lower one is
	// scaled by the span. Hosts rely on the existing behavior.
	if t.SnapFraction > 0 {
		if v > float32(t.Maximum*(1-t.SnapFraction)) {
			v = t.Maximum
		}
		if v < float32((t.Maximum-t.Minimum)*t.SnapFraction) {
			v = t.Minimum
		}
	}

	v = roundf(v*100) / 100
	if t.StepSize > 0 {
		v = roundf(v/t.StepSize) * t.StepSize
	}

	return mgl32.Clamp(v, t.Minimum, t.Maximum)
}

// roundf rounds half away from zero.
func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// Slider is a horizontal slider. Its value follows the pointer's x position.
type Slider struct {
	track
	ThumbWidth float32
}

func NewSlider(ids *IDAllocator, cfg SliderConfig) *Slider {
	return &Slider{
		track:      newTrack(ids, cfg, axisX),
		ThumbWidth: cfg.Thumb,
	}
}

// VerticalSlider is a vertical slider. Its value follows the pointer's y
// position, Minimum at the top.
type VerticalSlider struct {
	track
	ThumbHeight float32
}

func NewVerticalSlider(ids *IDAllocator, cfg SliderConfig) *VerticalSlider {
	return &VerticalSlider{
		track:       newTrack(ids, cfg, axisY),
		ThumbHeight: cfg.Thumb,
	}
}
