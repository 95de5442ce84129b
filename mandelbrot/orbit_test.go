package mandelbrot

import "testing"

func TestTraceStartsAtOrigin(t *testing.T) {
	path := Trace(-0.5, -1.5)
	if len(path) == 0 {
		t.Fatal("empty orbit")
	}
	diff(t, Point{X: 0, Y: 0}, path[0])
}

func TestTraceFarPoint(t *testing.T) {
	// Escapes on the first update: the path is the origin plus the out-of-bound iterate
	diff(t, []Point{{X: 0, Y: 0}, {X: -2.5, Y: 0}}, Trace(-2.5, 0))
}

func TestTraceBoundedPointFillsCap(t *testing.T) {
	path := Trace(0, 0)
	diff(t, int(MaxIterations), len(path))
	for _, p := range path {
		diff(t, Point{X: 0, Y: 0}, p)
	}
}

// The tracer and the evaluator share the recurrence and the bound-test ordering, so for
// any point the traced path length is determined by the evaluation result.
func TestTraceMatchesEvaluate(t *testing.T) {
	for x := -2.2; x <= 1.0; x += 0.07 {
		for y := -1.6; y <= 1.6; y += 0.07 {
			result := Evaluate(x, y)
			path := Trace(x, y)

			if result.Escaped {
				if len(path) != int(result.Count)+1 {
					t.Fatalf("Trace(%g, %g) has %d points, Evaluate escaped at %d", x, y, len(path), result.Count)
				}
				last := path[len(path)-1]
				if last.X*last.X+last.Y*last.Y < 4.0 {
					t.Fatalf("Trace(%g, %g) terminal point %v is not out of bounds", x, y, last)
				}
				for _, p := range path[:len(path)-1] {
					if p.X*p.X+p.Y*p.Y >= 4.0 {
						t.Fatalf("Trace(%g, %g) has out-of-bound point %v before the terminal one", x, y, p)
					}
				}
			} else if len(path) != int(MaxIterations) {
				t.Fatalf("Trace(%g, %g) has %d points for a bounded point, want %d", x, y, len(path), MaxIterations)
			}
		}
	}
}
