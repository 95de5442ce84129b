package mandelbrot

import (
	"fmt"
	"image/color"
	"math"
)

// ColorMapper turns an iteration result into a pixel color. Implementations are pure
// lookups with no hidden state; pick one per rendering session so coloring stays
// consistent across frames.
type ColorMapper interface {
	ColorFor(result IterationResult) color.RGBA
}

const (
	SchemeLinear   = "linear"
	SchemeSpectrum = "spectrum"
)

// NewColorMapper returns the mapper for a scheme name.
func NewColorMapper(scheme string) (ColorMapper, error) {
	switch scheme {
	case SchemeLinear:
		return LinearScheme{}, nil
	case SchemeSpectrum:
		return SpectrumScheme{}, nil
	}
	return nil, fmt.Errorf("unknown color scheme: %s", scheme)
}

var black = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// LinearScheme fades from blue to red as points take longer to escape; bounded points
// are black.
type LinearScheme struct{}

func (LinearScheme) ColorFor(result IterationResult) color.RGBA {
	if !result.Escaped {
		return black
	}
	c := uint8(math.Round(255 * float64(result.Count) / float64(MaxIterations)))
	return color.RGBA{R: c, G: 0, B: 255 - c, A: 255}
}

// SpectrumScheme walks the full hue wheel from late escapes (red end) to immediate ones;
// bounded points are black.
type SpectrumScheme struct{}

func (SpectrumScheme) ColorFor(result IterationResult) color.RGBA {
	if !result.Escaped {
		return black
	}
	t := 1 - float64(result.Count)/float64(MaxIterations)
	return hsvToRGB(t*360, 1, 1)
}

// hsvToRGB converts via the standard sector decomposition. A hue of exactly 360 (an
// escape count of zero under the spectrum scheme) falls outside the last sector and maps
// to black.
func hsvToRGB(h float64, s float64, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch int(h) / 60 {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	case 5:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: roundChannel(r + m),
		G: roundChannel(g + m),
		B: roundChannel(b + m),
		A: 255,
	}
}

func roundChannel(component float64) uint8 {
	scaled := math.Round(component * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
