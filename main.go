package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/time/rate"

	"github.com/OpticalFlyer/tickui/coords"
	"github.com/OpticalFlyer/tickui/render"
	"github.com/OpticalFlyer/tickui/ui"
)

// config holds the command-line settings of the demo.
type config struct {
	windowWidth   int
	windowHeight  int
	logicalWidth  int
	logicalHeight int
	tps           int
	fullscreen    bool
	debug         bool
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.windowWidth, "width", 1280, "window width in pixels")
	flag.IntVar(&cfg.windowHeight, "height", 720, "window height in pixels")
	flag.IntVar(&cfg.logicalWidth, "logical-width", 1280, "render resolution width")
	flag.IntVar(&cfg.logicalHeight, "logical-height", 720, "render resolution height")
	flag.IntVar(&cfg.tps, "tps", 60, "simulation ticks per second")
	flag.BoolVar(&cfg.fullscreen, "fullscreen", false, "start in fullscreen mode")
	flag.BoolVar(&cfg.debug, "debug", false, "log every gui event and start with the debug overlay on")
	flag.Parse()
	return cfg
}

// Settings is the application state the gui edits.
type Settings struct {
	Potato      bool
	HotChip     bool
	Temperature float32
	Height      float32

	DraggablePos    mgl32.Vec2
	HasDraggablePos bool
}

// Sketch implements ebiten.Game interface.
type Sketch struct {
	cfg      config
	res      coords.Resolution
	gui      *ui.Gui[Tag]
	elements elements
	settings Settings

	debugMode  bool
	minimized  bool
	closing    bool
	logLimiter *rate.Limiter

	// Pointer state
	touch    ebiten.TouchID
	touching bool
	pointer  mgl32.Vec2
	down     bool
}

func newSketch(cfg config) *Sketch {
	gui, elements := defGui(ui.DefaultIDs)
	s := &Sketch{
		cfg:      cfg,
		res:      coords.Resolution{Width: cfg.logicalWidth, Height: cfg.logicalHeight},
		gui:      gui,
		elements: elements,
		settings: Settings{
			Temperature: elements.temperature.Value(),
			Height:      elements.height.Value(),
		},
		debugMode:  cfg.debug,
		logLimiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
	}
	s.elements.reposition(s.gui)
	return s
}

func (s *Sketch) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.debugMode = !s.debugMode
	}

	s.pointer, s.down = s.readPointer()
	s.handleGuiEvents(s.gui.Step(s.pointer, s.down))

	if s.closing {
		return ebiten.Termination
	}
	return nil
}

func (s *Sketch) handleGuiEvents(events []ui.TaggedEvent[Tag]) {
	for _, te := range events {
		if s.cfg.debug {
			s.logEvent(te)
		}

		switch te.Tag {
		case SelectionPotato:
			if te.Event.Kind == ui.ButtonReleased {
				s.settings.Potato = !s.settings.Potato
				log.Printf("Potato: %v", s.settings.Potato)
			}
		case SelectionHotChip:
			if te.Event.Kind == ui.ButtonReleased {
				s.settings.HotChip = !s.settings.HotChip
				log.Printf("Hot chip: %v", s.settings.HotChip)
			}
		case SetTemperature:
			if te.Event.Kind == ui.SliderMoved {
				s.settings.Temperature = te.Event.Value
				log.Printf("Temp set to %g", te.Event.Value)
			}
		case SetHeight:
			if te.Event.Kind == ui.SliderMoved {
				s.settings.Height = te.Event.Value
				log.Printf("Height set to %g", te.Event.Value)
			}
		case MoveThumb:
			if te.Event.Kind == ui.DraggableMoved {
				s.settings.DraggablePos = te.Event.Position
				s.settings.HasDraggablePos = true
				s.elements.reposition(s.gui)
			}
		case MinimizeWindow:
			if te.Event.Kind == ui.ButtonReleased {
				s.minimized = !s.minimized
				s.elements.setBodyVisible(s.gui, !s.minimized)
				s.elements.reposition(s.gui)
			}
		case CloseWindow:
			if te.Event.Kind == ui.ButtonReleased {
				s.closing = true
			}
		}
	}
}

// logEvent writes a gui event to the log. Continuous events are throttled.
func (s *Sketch) logEvent(te ui.TaggedEvent[Tag]) {
	switch te.Event.Kind {
	case ui.SliderMoved, ui.DraggableMoved:
		if !s.logLimiter.Allow() {
			return
		}
	}
	log.Printf("%v #%d: %v", te.Tag, te.WidgetID, te.Event)
}

func (s *Sketch) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	render.Draw(screen, s.gui)

	s.drawSettings(screen)

	if s.debugMode {
		s.drawDebug(screen)
	}
}

func (s *Sketch) drawSettings(screen *ebiten.Image) {
	pos := "none"
	if s.settings.HasDraggablePos {
		pos = fmt.Sprintf("(%.3f, %.3f)", s.settings.DraggablePos.X(), s.settings.DraggablePos.Y())
	}
	items := []string{
		fmt.Sprintf("Potato: %v", s.settings.Potato),
		fmt.Sprintf("Hot chip: %v", s.settings.HotChip),
		fmt.Sprintf("Temperature: %g", s.settings.Temperature),
		fmt.Sprintf("Height: %g", s.settings.Height),
		"Draggable Pos: " + pos,
	}

	const lineHeight = 24
	y := 48
	for _, item := range items {
		ebitenutil.DebugPrintAt(screen, item, 12, y)
		y += lineHeight
	}
}

func (s *Sketch) drawDebug(screen *ebiten.Image) {
	px, py := coords.ToScreen(s.pointer, s.res)
	pointerColor := color.RGBA{G: 255, A: 255}
	if s.down {
		pointerColor = color.RGBA{R: 255, A: 255}
	}
	vector.DrawFilledCircle(screen, px, py, 6, pointerColor, true)

	debugText := fmt.Sprintf("FPS: %.2f TPS: %.2f\nPointer: (%.3f, %.3f) down=%v\nInteracting: %v\nWidgets: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.pointer.X(), s.pointer.Y(), s.down,
		s.gui.IsInteracting(), s.gui.Len())
	ebitenutil.DebugPrintAt(screen, debugText, 12, s.res.Height-72)
}

func (s *Sketch) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.res.Width, s.res.Height
}

func main() {
	cfg := parseFlags()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	app := newSketch(cfg)

	ebiten.SetWindowSize(cfg.windowWidth, cfg.windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("tickui")
	ebiten.SetTPS(cfg.tps)
	ebiten.SetFullscreen(cfg.fullscreen)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(fmt.Errorf("running game: %w", err))
	}
}
