package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"

	"github.com/OpticalFlyer/tickui/ui"
)

// Tag routes gui events back to what the widget is for.
type Tag int

const (
	SelectionPotato Tag = iota
	SelectionHotChip
	SetTemperature
	SetHeight
	MoveThumb
	MinimizeWindow
	CloseWindow
	Caption
)

func (t Tag) String() string {
	switch t {
	case SelectionPotato:
		return "SelectionPotato"
	case SelectionHotChip:
		return "SelectionHotChip"
	case SetTemperature:
		return "SetTemperature"
	case SetHeight:
		return "SetHeight"
	case MoveThumb:
		return "MoveThumb"
	case MinimizeWindow:
		return "MinimizeWindow"
	case CloseWindow:
		return "CloseWindow"
	case Caption:
		return "Caption"
	}
	return "Tag(?)"
}

// rowSpacing is the vertical distance between rows of the window body.
const rowSpacing = 0.1

// elements is the small movable window: a thumb with minimize and close
// buttons on its right and a body of widgets hanging below it.
type elements struct {
	thumb    ui.WidgetID
	minimize ui.WidgetID
	close    ui.WidgetID

	// body widgets are removed from the gui while the window is minimized
	caption     *ui.Label
	potato      *ui.Button
	hotChip     *ui.Button
	temperature *ui.Slider
	height      *ui.VerticalSlider
}

func defGui(ids *ui.IDAllocator) (*ui.Gui[Tag], elements) {
	defaultColor := color.RGBA{200, 200, 200, 255}
	elementDims := mgl32.Vec2{0.1, 0.05}

	gui := ui.NewGui[Tag]()
	var e elements

	thumb := ui.NewDraggable(ids, mgl32.Vec2{0.3, 0.1}, mgl32.Vec2{0.22, 0.04}, colornames.Steelblue, "Drag me")
	gui.AddDraggable(thumb, MoveThumb)
	e.thumb = thumb.ID()

	minimize := ui.NewButton(ids, mgl32.Vec2{}, mgl32.Vec2{0.025, 0.04}, defaultColor, "_")
	gui.AddButton(minimize, MinimizeWindow)
	e.minimize = minimize.ID()

	closeButton := ui.NewButton(ids, mgl32.Vec2{}, mgl32.Vec2{0.025, 0.04}, colornames.Indianred, "x")
	gui.AddButton(closeButton, CloseWindow)
	e.close = closeButton.ID()

	e.caption = ui.NewLabel(ids, mgl32.Vec2{}, mgl32.Vec2{0.2, 0.03}, colornames.White, "Food & climate")
	e.potato = ui.NewButton(ids, mgl32.Vec2{}, elementDims, defaultColor, "Potato")
	e.hotChip = ui.NewButton(ids, mgl32.Vec2{}, elementDims, defaultColor, "Hot Chip")
	e.temperature = ui.NewSlider(ids, ui.SliderConfig{
		Size:         mgl32.Vec2{0.2, 0.05},
		Thumb:        0.02,
		Minimum:      0,
		Maximum:      100,
		StepSize:     1,
		Value:        50,
		SnapFraction: 0.05,
		Color:        defaultColor,
		Label:        "Temperature",
	})
	e.height = ui.NewVerticalSlider(ids, ui.SliderConfig{
		Size:         mgl32.Vec2{0.03, 0.25},
		Thumb:        0.03,
		Minimum:      0,
		Maximum:      100,
		StepSize:     5,
		Value:        50,
		SnapFraction: 0.05,
		Color:        defaultColor,
		Label:        "Height",
	})
	e.setBodyVisible(gui, true)

	return gui, e
}

// setBodyVisible adds or removes the body widgets. Adding a widget that is
// already present and removing one that is absent are both no-ops.
func (e *elements) setBodyVisible(gui *ui.Gui[Tag], visible bool) {
	if visible {
		gui.AddLabel(e.caption, Caption)
		gui.AddButton(e.potato, SelectionPotato)
		gui.AddButton(e.hotChip, SelectionHotChip)
		gui.AddSlider(e.temperature, SetTemperature)
		gui.AddVerticalSlider(e.height, SetHeight)
		return
	}
	gui.RemoveLabel(e.caption.ID())
	gui.RemoveButton(e.potato.ID())
	gui.RemoveButton(e.hotChip.ID())
	gui.RemoveSlider(e.temperature.ID())
	gui.RemoveVerticalSlider(e.height.ID())
}

// reposition lays the window out around the thumb's current position.
// Widgets that are not in the gui are skipped.
func (e *elements) reposition(gui *ui.Gui[Tag]) {
	thumb, ok := gui.Draggable(e.thumb)
	if !ok {
		return
	}
	tl, size := thumb.Position, thumb.Size

	cursor := tl.Add(mgl32.Vec2{size.X(), 0})
	if b, ok := gui.Button(e.minimize); ok {
		b.Position = cursor
		cursor[0] += b.Size.X()
	}
	if b, ok := gui.Button(e.close); ok {
		b.Position = cursor
	}

	cursor = tl.Add(mgl32.Vec2{0, size.Y() + 0.01})
	if l, ok := gui.Label(e.caption.ID()); ok {
		l.Position = cursor
		cursor[1] += l.Size.Y() + 0.01
	}
	if b, ok := gui.Button(e.potato.ID()); ok {
		b.Position = cursor
		if hc, ok := gui.Button(e.hotChip.ID()); ok {
			hc.Position = cursor.Add(mgl32.Vec2{b.Size.X() + 0.01, 0})
		}
		cursor[1] += rowSpacing
	}
	if s, ok := gui.Slider(e.temperature.ID()); ok {
		s.Position = cursor
		cursor[1] += rowSpacing
	}
	if s, ok := gui.VerticalSlider(e.height.ID()); ok {
		s.Position = cursor.Add(mgl32.Vec2{0.24, -2 * rowSpacing})
	}
}
