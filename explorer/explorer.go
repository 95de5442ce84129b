// Package explorer is the interactive window around the fractal engine: it owns the
// viewport across frames, turns scroll and pointer input into zoom and orbit queries,
// and displays the rendered frames.
package explorer

import (
	"fmt"
	"image"
	"image/color"

	"MandelbrotExplorer/coordinator"
	"MandelbrotExplorer/mandelbrot"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minSide keeps the render target usable when the window is shrunk very small.
const minSide = 100

// FrameRenderer produces a frame for a viewport. Both the in-process renderer and the
// render farm coordinator satisfy it.
type FrameRenderer interface {
	RenderFrame(width uint, height uint, view mandelbrot.Viewport) (*image.RGBA, error)
}

var orbitColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// regionKeys maps the digit keys to landmark regions.
var regionKeys = map[ebiten.Key]string{
	ebiten.KeyDigit1: "seahorse-valley",
	ebiten.KeyDigit2: "elephant-valley",
	ebiten.KeyDigit3: "spiral-minibrot",
	ebiten.KeyDigit4: "triple-spiral",
	ebiten.KeyDigit5: "valley-of-the-dragon",
	ebiten.KeyDigit6: "minibrot-in-mini-spiral",
}

type Explorer struct {
	coordinator *coordinator.Coordinator
	dirty       bool
	lastSide    uint
	logger      bslogger.Logger
	orbit       []mandelbrot.Point
	renderer    FrameRenderer
	settings    Settings
	side        uint
	texture     *ebiten.Image
	view        mandelbrot.Viewport
}

// NewExplorer builds the explorer from a settings file. When the settings name a server
// address the explorer fronts a render farm at that address; otherwise it renders
// in-process.
func NewExplorer(settingsFile string) *Explorer {
	settings := NewSettings(settingsFile)
	explorer := &Explorer{
		logger:   bslogger.NewLogger("Explorer", bslogger.Normal, nil),
		settings: settings,
		view:     settings.Viewport(),
	}

	if settings.ServerAddress != "" {
		farm, err := coordinator.NewCoordinator(settings.ServerAddress, settings.RendererSettings())
		if err != nil {
			explorer.logger.Fatalf("Unable to start the render farm coordinator: %s", err)
		}
		explorer.coordinator = farm
		explorer.renderer = farm
		explorer.logger.Infof("Accepting render workers at %s", settings.ServerAddress)
	} else {
		renderer, err := mandelbrot.NewRenderer(settings.RendererSettings())
		if err != nil {
			explorer.logger.Fatalf("Unable to build the renderer: %s", err)
		}
		explorer.renderer = renderer
	}

	return explorer
}

// Run opens the window and blocks until it closes.
func (e *Explorer) Run() error {
	ebiten.SetWindowTitle("Mandelbrot Explorer")
	ebiten.SetWindowSize(e.settings.WindowWidth, e.settings.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)

	if e.coordinator != nil {
		e.coordinator.Stop()
	}
	return err
}

func (e *Explorer) Update() error {
	side := e.side
	if side == 0 {
		return nil
	}

	cursorX, cursorY := ebiten.CursorPosition()
	overImage := cursorX >= 0 && cursorY >= 0 && cursorX < int(side) && cursorY < int(side)

	// Scroll zooms, anchored at the cursor
	_, scroll := ebiten.Wheel()
	if scroll != 0 && overImage {
		e.view = e.view.Zoom(side, side, uint(cursorX), uint(cursorY), scroll)
		e.dirty = true
	}

	// Click or drag traces the orbit of the point under the cursor
	if overImage && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		px, py := mandelbrot.PixelToPlane(uint(cursorX), uint(cursorY), side, side, e.view)
		e.orbit = mandelbrot.Trace(px, py)
	}

	// Digit keys jump to landmark regions, R resets the view
	for key, name := range regionKeys {
		if inpututil.IsKeyJustPressed(key) {
			e.view = mandelbrot.Regions[name]
			e.dirty = true
			e.logger.Infof("Jumped to %s", name)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		e.view = mandelbrot.DefaultViewport
		e.dirty = true
	}

	// A stale buffer is never patched: any viewport or size change recomputes the frame
	if e.dirty || side != e.lastSide {
		img, err := e.renderer.RenderFrame(side, side, e.view)
		if err != nil {
			return err
		}
		if e.texture == nil || side != e.lastSide {
			if e.texture != nil {
				e.texture.Deallocate()
			}
			e.texture = ebiten.NewImage(int(side), int(side))
		}
		e.texture.WritePixels(img.Pix)
		e.lastSide = side
		e.dirty = false
	}

	return nil
}

func (e *Explorer) Draw(screen *ebiten.Image) {
	if e.texture != nil {
		screen.DrawImage(e.texture, nil)
	}

	// The orbit overlay: line segments between consecutive iterates, mapped back to
	// screen space under the current viewport
	if e.lastSide > 0 && len(e.orbit) > 1 {
		for i := 0; i+1 < len(e.orbit); i++ {
			x0, y0 := mandelbrot.PlaneToPixel(e.orbit[i].X, e.orbit[i].Y, e.lastSide, e.lastSide, e.view)
			x1, y1 := mandelbrot.PlaneToPixel(e.orbit[i+1].X, e.orbit[i+1].Y, e.lastSide, e.lastSide, e.view)
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, orbitColor, true)
		}
	}

	status := fmt.Sprintf("Center: (%.8f, %.8f)\nScale: %.3g\nOrbit: %d points\nTPS: %0.2f FPS: %0.2f",
		e.view.CenterX, e.view.CenterY, e.view.Scale, len(e.orbit), ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, status)
}

// Layout keeps the render target square: the image side is the shorter window dimension.
func (e *Explorer) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := outsideWidth
	if outsideHeight < side {
		side = outsideHeight
	}
	if side < minSide {
		side = minSide
	}
	e.side = uint(side)
	return side, side
}
