package coords

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalize(t *testing.T) {
	res := Resolution{Width: 1280, Height: 720}
	tests := []struct {
		name  string
		x, y  float64
		res   Resolution
		wantX float32
		wantY float32
	}{
		{
			name:  "Top-left corner",
			res:   res,
			wantX: 0,
			wantY: 0,
		},
		{
			name:  "Center",
			x:     640,
			y:     360,
			res:   res,
			wantX: 0.5,
			wantY: 0.5,
		},
		{
			name:  "Bottom-right corner",
			x:     1280,
			y:     720,
			res:   res,
			wantX: 1,
			wantY: 1,
		},
		{
			name:  "Off screen to the left",
			x:     -128,
			y:     72,
			res:   res,
			wantX: -0.1,
			wantY: 0.1,
		},
		{
			name:  "Zero-sized screen",
			x:     10,
			y:     10,
			wantX: -1,
			wantY: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.x, tt.y, tt.res)
			if math.Abs(float64(got.X()-tt.wantX)) > 1e-6 || math.Abs(float64(got.Y()-tt.wantY)) > 1e-6 {
				t.Errorf("got (%f, %f); want (%f, %f)",
					got.X(), got.Y(), tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRectRoundTrip(t *testing.T) {
	res := Resolution{Width: 1280, Height: 720}
	x, y, w, h := Rect(mgl32.Vec2{0.2, 0.2}, mgl32.Vec2{0.1, 0.05}, res)
	if math.Abs(float64(x-256)) > 1e-3 || math.Abs(float64(y-144)) > 1e-3 ||
		math.Abs(float64(w-128)) > 1e-3 || math.Abs(float64(h-36)) > 1e-3 {
		t.Fatalf("got (%f, %f, %f, %f); want (256, 144, 128, 36)", x, y, w, h)
	}

	back := Normalize(float64(x), float64(y), res)
	if !back.ApproxEqualThreshold(mgl32.Vec2{0.2, 0.2}, 1e-6) {
		t.Errorf("round trip gave %v", back)
	}
}

func BenchmarkNormalize(b *testing.B) {
	res := Resolution{Width: 1280, Height: 720}
	points := [][2]float64{
		{0, 0},
		{640, 360},
		{1279, 719},
		{-5, 800},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range points {
			Normalize(p[0], p[1], res)
		}
	}
}
