package mandelbrot

// Classic regions / landmarks in the Mandelbrot set, useful as jump targets when
// exploring. Keyed by the names the explorer's settings and key bindings use.
var Regions = map[string]Viewport{
	// Seahorse Valley - dense filaments and repeating "seahorse" curls
	"seahorse-valley": {CenterX: -0.75, CenterY: 0.1, Scale: 0.1},

	// Elephant Valley - large bulb with trunk-like tendrils
	"elephant-valley": {CenterX: -1.8, CenterY: -0.06, Scale: 0.1},

	// Spiral Minibrot - small Mandelbrot copy with tight spiral arms
	"spiral-minibrot": {CenterX: -0.74275, CenterY: 0.13175, Scale: 0.0015},

	// Triple Spiral - threefold symmetric spiral structure
	"triple-spiral": {CenterX: -0.7465, CenterY: 0.0965, Scale: 0.003},

	// Valley of the Dragon - deep, highly detailed spiral filaments
	"valley-of-the-dragon": {CenterX: -0.7375, CenterY: 0.1825, Scale: 0.005},

	// Minibrot in a Mini-Spiral - self-similar copy inside a spiral arm
	"minibrot-in-mini-spiral": {CenterX: -1.73825, CenterY: -0.02275, Scale: 0.0015},
}
