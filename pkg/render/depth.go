package render

// DepthBuffer is a per-pixel float buffer indexed by absolute screen
// coordinates. The pipeline orders triangles by sorting and never reads it;
// cameras clear their viewport region every frame.
type DepthBuffer struct {
	Width, Height int
	Data          []float32
}

// NewDepthBuffer allocates a cleared buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	return &DepthBuffer{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height),
	}
}

// Clear zeroes the half-open region [x1, x2) × [y1, y2), clamped to the
// buffer.
func (d *DepthBuffer) Clear(x1, y1, x2, y2 int) {
	x1, x2 = max(x1, 0), min(x2, d.Width)
	y1, y2 = max(y1, 0), min(y2, d.Height)
	if x1 >= x2 {
		return
	}
	for y := y1; y < y2; y++ {
		clear(d.Data[y*d.Width+x1 : y*d.Width+x2])
	}
}

// At returns the value at (x, y), or 0 outside the buffer.
func (d *DepthBuffer) At(x, y int) float32 {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return 0
	}
	return d.Data[y*d.Width+x]
}

// Set stores v at (x, y). Out-of-range writes are ignored.
func (d *DepthBuffer) Set(x, y int, v float32) {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return
	}
	d.Data[y*d.Width+x] = v
}
