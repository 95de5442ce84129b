package mandelbrot

import (
	"runtime"

	"github.com/BrugadaSyndrome/bslogger"
)

// Settings configures a Renderer. The zero value verifies to a usable default: spectrum
// coloring, no supersampling, one render goroutine per CPU.
type Settings struct {
	logger bslogger.Logger

	ColorScheme   string
	SuperSampling int
	Workers       int
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RendererSettings", bslogger.Normal, nil)

	if s.ColorScheme == "" {
		s.ColorScheme = SchemeSpectrum
	}
	if _, err := NewColorMapper(s.ColorScheme); err != nil {
		s.logger.Warningf("Unknown color scheme %q. Using %s.", s.ColorScheme, SchemeSpectrum)
		s.ColorScheme = SchemeSpectrum
	}
	if s.SuperSampling < 1 {
		s.SuperSampling = 1
	}
	if s.Workers < 1 {
		s.Workers = runtime.NumCPU()
	}

	return nil
}
