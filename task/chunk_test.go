package task

import (
	"testing"

	"MandelbrotExplorer/mandelbrot"

	"github.com/google/go-cmp/cmp"
)

func TestNewChunk(t *testing.T) {
	view := mandelbrot.Viewport{CenterX: -0.75, CenterY: 0.1, Scale: 0.5}
	chunk := NewChunk(7, 640, 480, 120, 240, view)

	want := Chunk{
		ID:       7,
		Width:    640,
		Height:   480,
		StartRow: 120,
		EndRow:   240,
		View:     view,
	}
	if diff := cmp.Diff(want, chunk); diff != "" {
		t.Errorf("chunk mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkRows(t *testing.T) {
	chunk := NewChunk(0, 100, 100, 25, 75, mandelbrot.DefaultViewport)
	if got := chunk.Rows(); got != 50 {
		t.Errorf("Rows() = %d, want 50", got)
	}

	empty := NewChunk(0, 100, 100, 40, 40, mandelbrot.DefaultViewport)
	if got := empty.Rows(); got != 0 {
		t.Errorf("Rows() = %d for an empty range, want 0", got)
	}

	reversed := NewChunk(0, 100, 100, 60, 20, mandelbrot.DefaultViewport)
	if got := reversed.Rows(); got != 0 {
		t.Errorf("Rows() = %d for a reversed range, want 0", got)
	}
}
