package explorer

import (
	"encoding/json"
	"fmt"

	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/misc"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	CenterX       float64
	CenterY       float64
	ColorScheme   string
	Region        string
	Scale         float64
	ServerAddress string
	SuperSampling int
	Workers       int
	WindowHeight  int
	WindowWidth   int
}

// NewSettings loads explorer settings from a JSON file layered over the defaults; an
// empty filename means pure defaults (the classic whole-set view, spectrum coloring,
// local rendering).
func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger:       bslogger.NewLogger("ExplorerSettings", bslogger.Normal, nil),
		CenterX:      mandelbrot.DefaultViewport.CenterX,
		CenterY:      mandelbrot.DefaultViewport.CenterY,
		Scale:        mandelbrot.DefaultViewport.Scale,
		WindowHeight: 600,
		WindowWidth:  800,
	}
	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		misc.CheckError(err, s.logger, misc.Fatal)
		misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	}
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *Settings) String() string {
	output := "\nExplorer settings\n"
	output += fmt.Sprintf("Center: (%f, %f)\n", s.CenterX, s.CenterY)
	output += fmt.Sprintf("Scale: %f\n", s.Scale)
	output += fmt.Sprintf("Region: %s\n", s.Region)
	output += fmt.Sprintf("Color Scheme: %s\n", s.ColorScheme)
	output += fmt.Sprintf("Super Sampling: %d\n", s.SuperSampling)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	output += fmt.Sprintf("Server Address: %s\n", s.ServerAddress)
	output += fmt.Sprintf("Window: %dx%d\n", s.WindowWidth, s.WindowHeight)
	return output
}

func (s *Settings) Verify() error {
	if s.Region != "" {
		view, ok := mandelbrot.Regions[s.Region]
		if ok {
			s.CenterX = view.CenterX
			s.CenterY = view.CenterY
			s.Scale = view.Scale
		} else {
			s.logger.Warningf("Unknown region %q. Keeping the configured center and scale.", s.Region)
		}
	}
	if s.CenterX > 4.0 || s.CenterX < -4.0 {
		s.CenterX = mandelbrot.DefaultViewport.CenterX
	}
	if s.CenterY > 4.0 || s.CenterY < -4.0 {
		s.CenterY = mandelbrot.DefaultViewport.CenterY
	}
	if s.Scale <= 0 {
		s.Scale = mandelbrot.DefaultViewport.Scale
	}
	if s.WindowWidth < 100 {
		s.WindowWidth = 800
	}
	if s.WindowHeight < 100 {
		s.WindowHeight = 600
	}
	// ColorScheme, SuperSampling and Workers are verified by the renderer settings
	return nil
}

// Viewport is the starting viewport these settings describe.
func (s *Settings) Viewport() mandelbrot.Viewport {
	return mandelbrot.Viewport{CenterX: s.CenterX, CenterY: s.CenterY, Scale: s.Scale}
}

// RendererSettings is the renderer portion of these settings.
func (s *Settings) RendererSettings() mandelbrot.Settings {
	return mandelbrot.Settings{
		ColorScheme:   s.ColorScheme,
		SuperSampling: s.SuperSampling,
		Workers:       s.Workers,
	}
}
