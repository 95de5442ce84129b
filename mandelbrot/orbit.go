package mandelbrot

// Trace records the orbit of c = (x, y) under the same recurrence and boundary test as
// Evaluate: every visited z starting with (0, 0), stopping after the first out-of-bound
// iterate (which is included) or after MaxIterations points. The path is recomputed in
// full on every call.
//
// Trace and Evaluate stay consistent for any point: an Escaped(n) result pairs with a
// path of n+1 points whose last point is the out-of-bound one, and a Bounded result
// pairs with a path of exactly MaxIterations points.
func Trace(x float64, y float64) []Point {
	path := make([]Point, 0, MaxIterations)
	zx, zy := 0.0, 0.0
	for n := uint(0); n < MaxIterations; n++ {
		path = append(path, Point{X: zx, Y: zy})
		if zx*zx+zy*zy >= escapeBoundary {
			break
		}
		zx, zy = zx*zx-zy*zy+x, 2*zx*zy+y
	}
	return path
}
