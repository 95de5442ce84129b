package mandelbrot

import "testing"

func TestPixelToPlaneCorners(t *testing.T) {
	v := Viewport{CenterX: -0.5, CenterY: 0, Scale: 3.0}

	x, y := PixelToPlane(0, 0, 100, 100, v)
	diff(t, -2.0, x, approx(1e-12))
	diff(t, -1.5, y, approx(1e-12))

	x, y = PixelToPlane(50, 50, 100, 100, v)
	diff(t, -0.5, x, approx(1e-12))
	diff(t, 0.0, y, approx(1e-12))
}

func TestPixelToPlaneCenterIsViewportCenter(t *testing.T) {
	v := Viewport{CenterX: 0.25, CenterY: -0.7, Scale: 0.01}
	x, y := PixelToPlane(400, 400, 800, 800, v)
	diff(t, v.CenterX, x, approx(1e-12))
	diff(t, v.CenterY, y, approx(1e-12))
}

func TestMapperRoundTrip(t *testing.T) {
	viewports := []Viewport{
		DefaultViewport,
		{CenterX: -0.75, CenterY: 0.1, Scale: 0.1},
		{CenterX: 1.5, CenterY: -2.25, Scale: 7.5},
	}
	sides := []uint{1, 2, 100, 731}

	for _, v := range viewports {
		for _, side := range sides {
			for _, px := range []uint{0, 1, side / 3, side - 1} {
				if px >= side {
					continue
				}
				for _, py := range []uint{0, side / 2, side - 1} {
					if py >= side {
						continue
					}
					x, y := PixelToPlane(px, py, side, side, v)
					gotX, gotY := PlaneToPixel(x, y, side, side, v)
					diff(t, float64(px), float64(gotX), approx(1e-3))
					diff(t, float64(py), float64(gotY), approx(1e-3))
				}
			}
		}
	}
}

func TestPlaneToPixelSubPixel(t *testing.T) {
	// A plane point halfway between two pixel centers maps to a fractional pixel
	v := Viewport{CenterX: 0, CenterY: 0, Scale: 4.0}
	x, y := PlaneToPixel(0, 0, 8, 8, v)
	diff(t, float32(4), x)
	diff(t, float32(4), y)

	x, _ = PlaneToPixel(0.25, 0, 8, 8, v)
	diff(t, float32(4.5), x)
}
