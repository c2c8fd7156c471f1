// Package coords converts between screen pixels and the normalized [0,1]
// space widgets are placed in.
package coords

import "github.com/go-gl/mathgl/mgl32"

// Resolution is a screen size in pixels.
type Resolution struct {
	Width, Height int
}

// Vec2 returns the resolution as a vector.
func (r Resolution) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{float32(r.Width), float32(r.Height)}
}

// Normalize converts screen pixel coordinates to normalized coordinates.
//
// Parameters:
//   - x, y: Position in pixels, origin at the top-left corner
//   - res: Screen size in pixels
//
// Returns:
//   - The position with (0, 0) at the top-left and (1, 1) at the bottom-right
//     corner. Pixels outside the screen map outside [0,1].
//     A zero-sized resolution yields (-1, -1), which misses every widget.
func Normalize(x, y float64, res Resolution) mgl32.Vec2 {
	if res.Width <= 0 || res.Height <= 0 {
		return mgl32.Vec2{-1, -1}
	}
	return mgl32.Vec2{
		float32(x / float64(res.Width)),
		float32(y / float64(res.Height)),
	}
}

// ToScreen converts a normalized position to pixel coordinates.
func ToScreen(p mgl32.Vec2, res Resolution) (x, y float32) {
	return p.X() * float32(res.Width), p.Y() * float32(res.Height)
}

// Scale converts a normalized size to a size in pixels.
func Scale(size mgl32.Vec2, res Resolution) (w, h float32) {
	return ToScreen(size, res)
}

// Rect converts a normalized rectangle to pixels.
func Rect(position, size mgl32.Vec2, res Resolution) (x, y, w, h float32) {
	x, y = ToScreen(position, res)
	w, h = Scale(size, res)
	return x, y, w, h
}
