// Package task holds the wire types the render farm passes between the coordinator and
// its workers over gob.
package task

import (
	"fmt"
	"image/color"

	"MandelbrotExplorer/mandelbrot"
)

// Chunk asks a worker to render the rows [StartRow, EndRow) of a Width x Height frame of
// the given viewport. The color scheme and supersampling ride along so every worker
// produces pixels identical to a local render.
type Chunk struct {
	ID            uint
	Width         uint
	Height        uint
	StartRow      uint
	EndRow        uint
	View          mandelbrot.Viewport
	ColorScheme   string
	SuperSampling int
}

// NewChunk fills in a chunk for one contiguous row range of a frame.
func NewChunk(id uint, width uint, height uint, startRow uint, endRow uint, view mandelbrot.Viewport) Chunk {
	return Chunk{
		ID:       id,
		Width:    width,
		Height:   height,
		StartRow: startRow,
		EndRow:   endRow,
		View:     view,
	}
}

// Rows is the number of rows this chunk covers.
func (c *Chunk) Rows() uint {
	if c.EndRow < c.StartRow {
		return 0
	}
	return c.EndRow - c.StartRow
}

func (c *Chunk) String() string {
	output := "{Chunk "
	output += fmt.Sprintf("ID: %d ", c.ID)
	output += fmt.Sprintf("Rows: [%d, %d) ", c.StartRow, c.EndRow)
	output += fmt.Sprintf("Size: %dx%d ", c.Width, c.Height)
	output += fmt.Sprintf("View: %s}", c.View)
	return output
}

// Result carries the rendered pixels of one chunk back, row-major from StartRow.
type Result struct {
	ID       uint
	StartRow uint
	Pixels   []color.RGBA
}

func (r *Result) String() string {
	output := "{Result "
	output += fmt.Sprintf("ID: %d ", r.ID)
	output += fmt.Sprintf("StartRow: %d ", r.StartRow)
	output += fmt.Sprintf("Pixel Count: %d}", len(r.Pixels))
	return output
}
