package mandelbrot

import "testing"

func TestEvaluateOriginIsBounded(t *testing.T) {
	diff(t, Bounded(), Evaluate(0, 0))
}

func TestEvaluateInteriorPointsAreBounded(t *testing.T) {
	// Well-known members of the set
	points := []Point{
		{X: -0.5, Y: 0},
		{X: -1, Y: 0},
		{X: 0.25, Y: 0},
		{X: -0.1, Y: 0.1},
	}
	for _, p := range points {
		diff(t, Bounded(), Evaluate(p.X, p.Y))
	}
}

func TestEvaluateFarPointEscapesQuickly(t *testing.T) {
	// |c| > 2, so the very first iterate is already out of bounds
	diff(t, Escaped(1), Evaluate(-2.5, 0))
}

func TestEvaluateBoundTestBeforeUpdate(t *testing.T) {
	// c = (-2, 0): z1 = (-2, 0) sits exactly on the boundary |z|^2 = 4, which counts
	// as escaped, and the count is the number of updates already applied
	diff(t, Escaped(1), Evaluate(-2, 0))

	// c = (-0.5, -1.5): |z1|^2 = 2.5 stays in, z2 = (-2.5, 0) is out
	diff(t, Escaped(2), Evaluate(-0.5, -1.5))
}

func TestEvaluateIsDeterministic(t *testing.T) {
	for _, p := range []Point{{X: -2, Y: -1.5}, {X: 0.3, Y: 0.5}, {X: -0.7435, Y: 0.1314}} {
		diff(t, Evaluate(p.X, p.Y), Evaluate(p.X, p.Y))
	}
}

func TestEvaluateEscapeCountsBelowCap(t *testing.T) {
	for x := -2.2; x <= 1.0; x += 0.05 {
		for y := -1.6; y <= 1.6; y += 0.05 {
			result := Evaluate(x, y)
			if result.Escaped && result.Count >= MaxIterations {
				t.Fatalf("Evaluate(%g, %g) escaped with count %d >= cap %d", x, y, result.Count, MaxIterations)
			}
		}
	}
}
