// Package render draws the widgets of a ui.Gui onto an ebiten image.
//
// Widgets are drawn with a one pixel bevel: raised when idle, sunken when
// pressed. Hovered and held widgets are shaded darker.
package render

import (
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/tickui/coords"
	"github.com/OpticalFlyer/tickui/ui"
)

const (
	bevel = 1.0
	shade = 0.65
)

// Face is the font used for every caption.
var Face text.Face = text.NewGoXFace(basicfont.Face7x13)

// Draw draws every widget in g, scaled to the size of screen.
func Draw[T comparable](screen *ebiten.Image, g *ui.Gui[T]) {
	b := screen.Bounds()
	res := coords.Resolution{Width: b.Dx(), Height: b.Dy()}

	for _, l := range g.Labels() {
		Label(screen, l, res)
	}
	for _, btn := range g.Buttons() {
		Button(screen, btn, res)
	}
	for _, s := range g.Sliders() {
		Slider(screen, s, res)
	}
	for _, s := range g.VerticalSliders() {
		VerticalSlider(screen, s, res)
	}
	for _, d := range g.Draggables() {
		Draggable(screen, d, res)
	}
}

func Button(screen *ebiten.Image, b *ui.Button, res coords.Resolution) {
	x, y, w, h := coords.Rect(b.Position, b.Size, res)

	body := b.Color
	if b.Hovered() || b.Pressed() {
		body = dim(body)
	}
	box(screen, x, y, w, h, body, b.Pressed())

	offset := float32(0)
	if b.Pressed() {
		offset = bevel
	}
	centeredText(screen, b.Label, x+w/2, y+h/2+offset, colornames.Black)
}

func Slider(screen *ebiten.Image, s *ui.Slider, res coords.Resolution) {
	x, y, w, h := coords.Rect(s.Position, s.Size, res)
	box(screen, x, y, w, h, dim(s.Color), true)

	thumbW := s.ThumbWidth * float32(res.Width)
	thumbX := x + s.Fraction()*(w-thumbW)
	thumb := s.Color
	if s.Hovered() || s.Dragging() {
		thumb = dim(thumb)
	}
	box(screen, thumbX, y, thumbW, h, thumb, false)

	caption(screen, s.Label, s.Value(), x, y)
}

func VerticalSlider(screen *ebiten.Image, s *ui.VerticalSlider, res coords.Resolution) {
	x, y, w, h := coords.Rect(s.Position, s.Size, res)
	box(screen, x, y, w, h, dim(s.Color), true)

	thumbH := s.ThumbHeight * float32(res.Height)
	thumbY := y + s.Fraction()*(h-thumbH)
	thumb := s.Color
	if s.Hovered() || s.Dragging() {
		thumb = dim(thumb)
	}
	box(screen, x, thumbY, w, thumbH, thumb, false)

	caption(screen, s.Label, s.Value(), x, y)
}

func Draggable(screen *ebiten.Image, d *ui.Draggable, res coords.Resolution) {
	x, y, w, h := coords.Rect(d.Position, d.Size, res)

	body := d.Color
	if d.Hovered() || d.BeingDragged() {
		body = dim(body)
	}
	box(screen, x, y, w, h, body, d.BeingDragged())
	centeredText(screen, d.Label, x+w/2, y+h/2, colornames.Black)
}

func Label(screen *ebiten.Image, l *ui.Label, res coords.Resolution) {
	if l.Text == "" {
		return
	}
	x, y, _, h := coords.Rect(l.Position, l.Size, res)
	_, th := text.Measure(l.Text, Face, 0)
	drawText(screen, l.Text, float64(x), float64(y)+(float64(h)-th)/2, l.Color)
}

// box draws a bevelled rectangle. A sunken box swaps the shadow and
// highlight colors.
func box(screen *ebiten.Image, x, y, w, h float32, body color.RGBA, sunken bool) {
	shadow, highlight := colornames.Black, colornames.White
	if sunken {
		shadow, highlight = highlight, shadow
	}

	vector.DrawFilledRect(screen, x, y, w+bevel, h+bevel, shadow, false)
	vector.DrawFilledRect(screen, x, y, w, h, highlight, false)
	vector.DrawFilledRect(screen, x+bevel, y+bevel, w-bevel, h-bevel, body, false)
}

// caption writes "label: value" just above a slider track.
func caption(screen *ebiten.Image, label string, value float32, x, y float32) {
	str := humanize.FtoaWithDigits(float64(value), 2)
	if label != "" {
		str = label + ": " + str
	}
	_, th := text.Measure(str, Face, 0)
	drawText(screen, str, float64(x), float64(y)-th-2, colornames.White)
}

func centeredText(screen *ebiten.Image, str string, cx, cy float32, clr color.Color) {
	if str == "" {
		return
	}
	tw, th := text.Measure(str, Face, 0)
	drawText(screen, str, float64(cx)-tw/2, float64(cy)-th/2, clr)
}

func drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, Face, op)
}

// dim darkens a color, keeping its alpha.
func dim(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * shade),
		G: uint8(float32(c.G) * shade),
		B: uint8(float32(c.B) * shade),
		A: c.A,
	}
}
