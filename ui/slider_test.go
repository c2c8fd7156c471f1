package ui

import (
	"math"
	"testing"
)

// temperatureSlider is a horizontal track from x=0.2 to x=0.4.
func temperatureSlider(value float32) *Slider {
	return NewSlider(NewIDAllocator(), SliderConfig{
		Position:     vec(0.2, 0.5),
		Size:         vec(0.2, 0.05),
		Thumb:        0.02,
		Minimum:      0,
		Maximum:      100,
		StepSize:     1,
		Value:        value,
		SnapFraction: 0.05,
		Color:        grey,
		Label:        "Temperature",
	})
}

func TestSliderValueFromPointer(t *testing.T) {
	tests := []struct {
		name      string
		x         float32
		wantValue float32
	}{
		{"middle", 0.3, 50},
		{"just below the upper snap", 0.39, 95},
		{"inside the upper snap", 0.399, 100},
		{"inside the lower snap", 0.2015, 0},
		{"quarter", 0.25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := temperatureSlider(42)
			ev, ok := s.Step(vec(tt.x, 0.52), true)
			if !ok || ev.Kind != SliderMoved {
				t.Fatalf("got (%v, %v); want SliderMoved", ev, ok)
			}
			if ev.Value != tt.wantValue || s.Value() != tt.wantValue {
				t.Errorf("got event %v, value %v; want %v", ev.Value, s.Value(), tt.wantValue)
			}
		})
	}
}

func TestSliderEvents(t *testing.T) {
	s := temperatureSlider(50)
	on := vec(0.3, 0.52)
	off := vec(0.9, 0.9)

	// pressing where the value already is changes nothing
	if ev, ok := s.Step(on, true); ok {
		t.Fatalf("unexpected %v", ev)
	}
	if !s.Hovered() || !s.Dragging() {
		t.Fatalf("hovered=%v dragging=%v; want both true", s.Hovered(), s.Dragging())
	}

	ev, ok := s.Step(vec(0.25, 0.52), true)
	if !ok || ev.Kind != SliderMoved || ev.Value != 25 {
		t.Fatalf("got (%v, %v); want SliderMoved{25}", ev, ok)
	}

	// leaving the track keeps the value and the hold
	if ev, ok := s.Step(off, true); ok {
		t.Fatalf("unexpected %v off the track", ev)
	}
	if s.Hovered() || s.Value() != 25 {
		t.Fatalf("hovered=%v value=%v; want false, 25", s.Hovered(), s.Value())
	}

	ev, ok = s.Step(off, false)
	if !ok || ev.Kind != SliderReleased || ev.Value != 25 {
		t.Fatalf("got (%v, %v); want SliderReleased{25}", ev, ok)
	}
	if s.Dragging() {
		t.Errorf("still dragging after release")
	}

	if ev, ok := s.Step(off, false); ok {
		t.Errorf("unexpected %v after release", ev)
	}
}

func TestSliderHoverWithoutPress(t *testing.T) {
	s := temperatureSlider(50)
	if ev, ok := s.Step(vec(0.25, 0.52), false); ok {
		t.Fatalf("unexpected %v", ev)
	}
	if !s.Hovered() || s.Value() != 50 {
		t.Errorf("hovered=%v value=%v; want true, 50", s.Hovered(), s.Value())
	}
}

func TestSliderStaysOnStepsInRange(t *testing.T) {
	configs := []SliderConfig{
		{Minimum: 0, Maximum: 10, StepSize: 0.25},
		{Minimum: 0, Maximum: 100, StepSize: 5, SnapFraction: 0.1},
		{Minimum: -20, Maximum: 20, StepSize: 0.5},
		{Minimum: 0, Maximum: 1, StepSize: 0.01, SnapFraction: 0.05},
	}

	for _, cfg := range configs {
		cfg.Position = vec(0.1, 0.1)
		cfg.Size = vec(0.5, 0.1)
		cfg.Value = cfg.Minimum
		s := NewSlider(NewIDAllocator(), cfg)

		for x := float32(0.101); x < 0.6; x += 0.0037 {
			s.Step(vec(x, 0.15), true)
			v := s.Value()
			if v < cfg.Minimum || v > cfg.Maximum {
				t.Fatalf("%+v: value %v out of range at x=%v", cfg, v, x)
			}
			steps := float64(v / cfg.StepSize)
			if math.Abs(steps-math.Round(steps)) > 1e-3 {
				t.Fatalf("%+v: value %v is not a multiple of %v", cfg, v, cfg.StepSize)
			}
		}
	}
}

func TestSliderSnapQuirks(t *testing.T) {
	// The lower threshold is (max-min)*fraction, not min+(max-min)*fraction,
	// and the upper one is max*(1-fraction). Both are kept as they are.
	tests := []struct {
		name      string
		min, max  float32
		step      float32
		x         float32
		wantValue float32
	}{
		// 50.5 is within 5% of the span above 50 but 50.5 > 2.5
		{"positive minimum never snaps low", 50, 100, 0.5, 0.202, 50.5},
		// -5 < 100*0.05 so every position snaps to the minimum
		{"negative range always snaps low", -100, 0, 1, 0.39, -100},
		{"negative range at the top", -100, 0, 1, 0.399, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(NewIDAllocator(), SliderConfig{
				Position:     vec(0.2, 0.5),
				Size:         vec(0.2, 0.05),
				Minimum:      tt.min,
				Maximum:      tt.max,
				StepSize:     tt.step,
				Value:        (tt.min + tt.max) / 2,
				SnapFraction: 0.05,
			})
			s.Step(vec(tt.x, 0.52), true)
			if s.Value() != tt.wantValue {
				t.Errorf("got %v; want %v", s.Value(), tt.wantValue)
			}
		})
	}
}

func TestSliderZeroStepSkipsQuantize(t *testing.T) {
	s := NewSlider(NewIDAllocator(), SliderConfig{
		Position: vec(0.2, 0.5),
		Size:     vec(0.2, 0.05),
		Maximum:  100,
	})
	s.Step(vec(0.3, 0.52), true)
	if v := s.Value(); v != 50 {
		t.Errorf("got %v; want 50", v)
	}
}

func TestSliderDefaultClamped(t *testing.T) {
	s := NewSlider(NewIDAllocator(), SliderConfig{Minimum: 0, Maximum: 10, StepSize: 1, Value: 30})
	if s.Value() != 10 {
		t.Errorf("got %v; want 10", s.Value())
	}
	if s.Fraction() != 1 {
		t.Errorf("fraction %v; want 1", s.Fraction())
	}
}

func TestVerticalSliderUsesY(t *testing.T) {
	s := NewVerticalSlider(NewIDAllocator(), SliderConfig{
		Position: vec(0.5, 0.2),
		Size:     vec(0.05, 0.2),
		Thumb:    0.02,
		Maximum:  100,
		StepSize: 1,
	})
	if s.ThumbHeight != 0.02 {
		t.Errorf("thumb height %v; want 0.02", s.ThumbHeight)
	}

	// x is ignored as long as the pointer is on the track
	ev, ok := s.Step(vec(0.51, 0.3), true)
	if !ok || ev.Kind != SliderMoved || ev.Value != 50 {
		t.Fatalf("got (%v, %v); want SliderMoved{50}", ev, ok)
	}
	ev, ok = s.Step(vec(0.54, 0.3), true)
	if ok {
		t.Fatalf("unexpected %v when only x moved", ev)
	}
	ev, ok = s.Step(vec(0.54, 0.25), true)
	if !ok || ev.Value != 25 {
		t.Fatalf("got (%v, %v); want SliderMoved{25}", ev, ok)
	}
	ev, ok = s.Step(vec(0.54, 0.25), false)
	if !ok || ev.Kind != SliderReleased || ev.Value != 25 {
		t.Fatalf("got (%v, %v); want SliderReleased{25}", ev, ok)
	}
}
