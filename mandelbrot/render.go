package mandelbrot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
)

// Renderer produces pixel buffers for a viewport. Pixels have no dependency on each
// other, so rows are spread over a pool of goroutines; the output is identical for any
// worker count because every pixel is a pure function of its coordinate.
type Renderer struct {
	colors        ColorMapper
	superSampling int
	workers       int
}

func NewRenderer(settings Settings) (Renderer, error) {
	if err := settings.Verify(); err != nil {
		return Renderer{}, err
	}
	colors, err := NewColorMapper(settings.ColorScheme)
	if err != nil {
		return Renderer{}, err
	}
	return Renderer{
		colors:        colors,
		superSampling: settings.SuperSampling,
		workers:       settings.Workers,
	}, nil
}

// RenderFrame computes the full width-by-height image for the viewport. The buffer is
// regenerated from scratch; callers must not patch or reuse buffers across viewport or
// dimension changes.
func (r Renderer) RenderFrame(width uint, height uint, view Viewport) (*image.RGBA, error) {
	if width == 0 || height == 0 {
		return nil, errors.New("render target dimensions must be at least 1x1")
	}

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	r.eachRow(0, height, func(row uint) {
		for x := uint(0); x < width; x++ {
			img.SetRGBA(int(x), int(row), r.pixelColor(x, row, width, height, view))
		}
	})
	return img, nil
}

// RenderRows computes the pixels of rows [startRow, endRow) as a flat row-major slice.
// This is the unit of work the render farm hands to remote workers.
func (r Renderer) RenderRows(width uint, height uint, view Viewport, startRow uint, endRow uint) ([]color.RGBA, error) {
	if width == 0 || height == 0 {
		return nil, errors.New("render target dimensions must be at least 1x1")
	}
	if startRow >= endRow || endRow > height {
		return nil, fmt.Errorf("invalid row range [%d, %d) for height %d", startRow, endRow, height)
	}

	pixels := make([]color.RGBA, (endRow-startRow)*width)
	r.eachRow(startRow, endRow, func(row uint) {
		offset := (row - startRow) * width
		for x := uint(0); x < width; x++ {
			pixels[offset+x] = r.pixelColor(x, row, width, height, view)
		}
	})
	return pixels, nil
}

// eachRow runs fn for every row in [startRow, endRow), fanning the rows out over the
// worker pool. fn calls for distinct rows never touch the same memory.
func (r Renderer) eachRow(startRow uint, endRow uint, fn func(row uint)) {
	rows := make(chan uint, endRow-startRow)
	for row := startRow; row < endRow; row++ {
		rows <- row
	}
	close(rows)

	var wait sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for row := range rows {
				fn(row)
			}
		}()
	}
	wait.Wait()
}

func (r Renderer) pixelColor(x uint, y uint, width uint, height uint, view Viewport) color.RGBA {
	if r.superSampling == 1 {
		px, py := PixelToPlane(x, y, width, height, view)
		return r.colors.ColorFor(Evaluate(px, py))
	}

	// Grid supersampling: evaluate a superSampling x superSampling grid of sub-pixel
	// points and average the mapped colors.
	offsets := make([]float64, r.superSampling)
	for i := 0; i < r.superSampling; i++ {
		offsets[i] = (0.5+float64(i))/float64(r.superSampling) - 0.5
	}

	var red, green, blue int
	for _, ox := range offsets {
		for _, oy := range offsets {
			px, py := subpixelToPlane(float64(x)+ox, float64(y)+oy, width, height, view)
			sample := r.colors.ColorFor(Evaluate(px, py))
			red += int(sample.R)
			green += int(sample.G)
			blue += int(sample.B)
		}
	}
	divisor := r.superSampling * r.superSampling
	return color.RGBA{
		R: uint8(red / divisor),
		G: uint8(green / divisor),
		B: uint8(blue / divisor),
		A: 255,
	}
}
