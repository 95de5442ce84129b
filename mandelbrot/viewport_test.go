package mandelbrot

import "testing"

func TestZoomScaleFactors(t *testing.T) {
	v := DefaultViewport

	in := v.Zoom(800, 800, 400, 400, 1)
	diff(t, v.Scale*0.8, in.Scale, approx(1e-12))

	out := v.Zoom(800, 800, 400, 400, -1)
	diff(t, v.Scale*1.25, out.Scale, approx(1e-12))
}

func TestZoomZeroDeltaIsNoop(t *testing.T) {
	v := Viewport{CenterX: -0.75, CenterY: 0.1, Scale: 0.25}
	diff(t, v, v.Zoom(800, 800, 123, 456, 0))
}

func TestZoomKeepsCursorPointFixed(t *testing.T) {
	cursors := []struct{ x, y uint }{
		{x: 0, y: 0},
		{x: 400, y: 400},
		{x: 799, y: 13},
		{x: 250, y: 600},
	}
	for _, cursor := range cursors {
		for _, delta := range []float64{1, -1, 2.5, -0.25} {
			v := Viewport{CenterX: -0.5, CenterY: 0, Scale: 3.0}
			beforeX, beforeY := PixelToPlane(cursor.x, cursor.y, 800, 800, v)

			zoomed := v.Zoom(800, 800, cursor.x, cursor.y, delta)
			afterX, afterY := PixelToPlane(cursor.x, cursor.y, 800, 800, zoomed)

			diff(t, beforeX, afterX, approx(1e-12))
			diff(t, beforeY, afterY, approx(1e-12))
		}
	}
}

func TestZoomDoesNotMutateReceiver(t *testing.T) {
	v := DefaultViewport
	v.Zoom(800, 800, 100, 100, 1)
	diff(t, DefaultViewport, v)
}

func TestZoomScaleStaysPositive(t *testing.T) {
	v := DefaultViewport
	for i := 0; i < 200; i++ {
		v = v.Zoom(800, 800, 200, 300, 1)
		if v.Scale <= 0 {
			t.Fatalf("scale went non-positive after %d zooms: %g", i+1, v.Scale)
		}
	}
}

func TestRegionsAreValidViewports(t *testing.T) {
	for name, v := range Regions {
		if v.Scale <= 0 {
			t.Errorf("region %s has non-positive scale %g", name, v.Scale)
		}
	}
}
