package mandelbrot

import (
	"image/color"
	"testing"
)

func TestNewColorMapper(t *testing.T) {
	if _, err := NewColorMapper(SchemeLinear); err != nil {
		t.Errorf("linear: %s", err)
	}
	if _, err := NewColorMapper(SchemeSpectrum); err != nil {
		t.Errorf("spectrum: %s", err)
	}
	if _, err := NewColorMapper("sepia"); err == nil {
		t.Error("expected an error for an unknown scheme")
	}
}

func TestBoundedIsBlack(t *testing.T) {
	diff(t, black, LinearScheme{}.ColorFor(Bounded()))
	diff(t, black, SpectrumScheme{}.ColorFor(Bounded()))
}

func TestLinearScheme(t *testing.T) {
	cases := []struct {
		count uint
		want  color.RGBA
	}{
		{count: 0, want: color.RGBA{R: 0, G: 0, B: 255, A: 255}},
		{count: 1, want: color.RGBA{R: 3, G: 0, B: 252, A: 255}},
		{count: 50, want: color.RGBA{R: 128, G: 0, B: 127, A: 255}},
		{count: 99, want: color.RGBA{R: 252, G: 0, B: 3, A: 255}},
	}
	for _, c := range cases {
		diff(t, c.want, LinearScheme{}.ColorFor(Escaped(c.count)))
	}
}

func TestSpectrumScheme(t *testing.T) {
	cases := []struct {
		count uint
		want  color.RGBA
	}{
		// Hue 360 falls outside the last sector and maps to black
		{count: 0, want: black},
		// Hue 180 is pure cyan
		{count: 50, want: color.RGBA{R: 0, G: 255, B: 255, A: 255}},
		// Hue 90 sits halfway through the second sector
		{count: 75, want: color.RGBA{R: 128, G: 255, B: 0, A: 255}},
		// Hue 3.6 is almost pure red
		{count: 99, want: color.RGBA{R: 255, G: 15, B: 0, A: 255}},
	}
	for _, c := range cases {
		diff(t, c.want, SpectrumScheme{}.ColorFor(Escaped(c.count)))
	}
}

func TestColorMappersAreDeterministic(t *testing.T) {
	mappers := []ColorMapper{LinearScheme{}, SpectrumScheme{}}
	for _, m := range mappers {
		for n := uint(0); n < MaxIterations; n++ {
			diff(t, m.ColorFor(Escaped(n)), m.ColorFor(Escaped(n)))
		}
		diff(t, m.ColorFor(Bounded()), m.ColorFor(Bounded()))
	}
}
