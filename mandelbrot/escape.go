package mandelbrot

// MaxIterations is the iteration cap shared by the evaluator, the orbit tracer and the
// renderer. The three must agree or the traced path for a pixel will not line up with
// the color the renderer gave it.
const MaxIterations uint = 100

// escapeBoundary is the squared magnitude at which a point is considered escaped.
const escapeBoundary = 4.0

// Point is a point on the complex plane.
type Point struct {
	X float64
	Y float64
}

// IterationResult reports how a point behaved under the escape-time iteration. Escaped
// points carry the number of completed update steps before the boundary was exceeded
// (always < MaxIterations); bounded points never exceeded it within MaxIterations steps.
type IterationResult struct {
	Count   uint
	Escaped bool
}

// Escaped returns the result for a point that left the boundary after count updates.
func Escaped(count uint) IterationResult {
	return IterationResult{Count: count, Escaped: true}
}

// Bounded returns the result for a point that stayed within the boundary.
func Bounded() IterationResult {
	return IterationResult{}
}

// Evaluate runs the escape-time iteration z -> z^2 + c for c = (x, y).
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set
//
// The boundary test happens at loop entry, before the update for that step, so the
// reported count is the number of updates already applied when the bound was first seen
// exceeded. Moving the test after the update shifts every coloring band near the set
// boundary by one, so the ordering here is deliberate.
func Evaluate(x float64, y float64) IterationResult {
	zx, zy := 0.0, 0.0
	for n := uint(0); n < MaxIterations; n++ {
		if zx*zx+zy*zy >= escapeBoundary {
			return Escaped(n)
		}
		zx, zy = zx*zx-zy*zy+x, 2*zx*zy+y
	}
	return Bounded()
}
