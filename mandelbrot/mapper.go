package mandelbrot

/*
 * Converting between the two coordinate systems:
 *
 * - Pixels are indexed from the top left, so a pixel's fractional position across the
 *   image (x/width, y/height) has the image center at (0.5, 0.5).
 * - The viewport center sits at the image center and the image spans Scale plane units
 *   across its width (and, for the square targets the renderer produces, its height).
 *
 * Both directions assume width and height are at least 1; render entry points reject
 * zero-sized targets before ever calling in here.
 */

// PixelToPlane maps the pixel (x, y) of a width-by-height image onto the complex plane
// under the given viewport.
func PixelToPlane(x uint, y uint, width uint, height uint, v Viewport) (float64, float64) {
	return subpixelToPlane(float64(x), float64(y), width, height, v)
}

// subpixelToPlane is PixelToPlane for fractional pixel positions. The renderer uses it to
// place supersampling grid points between pixel centers.
func subpixelToPlane(x float64, y float64, width uint, height uint, v Viewport) (float64, float64) {
	fx := x / float64(width)
	fy := y / float64(height)
	px := v.CenterX + (fx-0.5)*v.Scale
	py := v.CenterY + (fy-0.5)*v.Scale
	return px, py
}

// PlaneToPixel is the exact inverse of PixelToPlane, kept at sub-pixel precision for
// overlay drawing. PlaneToPixel(PixelToPlane(x, y, ...)) recovers (x, y) up to floating
// point error.
func PlaneToPixel(px float64, py float64, width uint, height uint, v Viewport) (float32, float32) {
	fx := (px-v.CenterX)/v.Scale + 0.5
	fy := (py-v.CenterY)/v.Scale + 0.5
	return float32(fx * float64(width)), float32(fy * float64(height))
}
