package mandelbrot

import "fmt"

// Viewport is the visible window into the complex plane: a center point and the width of
// the visible region in plane units. Square render targets use the same scale vertically,
// so the aspect ratio is preserved. A viewport is a value; Zoom returns a new one and the
// caller replaces its copy wholesale.
type Viewport struct {
	CenterX float64
	CenterY float64
	Scale   float64
}

// DefaultViewport frames the whole set: the classic -2..1 by -1.5..1.5 view.
var DefaultViewport = Viewport{CenterX: -0.5, CenterY: 0, Scale: 3.0}

func (v Viewport) String() string {
	return fmt.Sprintf("{Viewport Center: (%g, %g) Scale: %g}", v.CenterX, v.CenterY, v.Scale)
}

// Zoom applies one scroll step anchored at the given cursor pixel: the plane point under
// the cursor before the zoom is still under the cursor after it. A positive scrollDelta
// zooms in (scale shrinks by 0.8), a negative one zooms out (scale grows by 1.25), and a
// zero delta returns the viewport unchanged. The caller is responsible for only passing
// cursor pixels that are within the image bounds.
func (v Viewport) Zoom(width uint, height uint, cursorX uint, cursorY uint, scrollDelta float64) Viewport {
	if scrollDelta == 0 {
		return v
	}

	px, py := PixelToPlane(cursorX, cursorY, width, height, v)

	factor := 1.25
	if scrollDelta > 0 {
		factor = 0.8
	}
	scale := v.Scale * factor

	// Solve for the center that maps (px, py) back to the cursor pixel under the new
	// scale. fx and fy are the cursor's fractional position across the image.
	fx := float64(cursorX) / float64(width)
	fy := float64(cursorY) / float64(height)
	return Viewport{
		CenterX: px - (fx-0.5)*scale,
		CenterY: py - (fy-0.5)*scale,
		Scale:   scale,
	}
}
