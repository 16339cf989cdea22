package raster

import "github.com/chewxy/math32"

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float32 // NDC depth per pixel, len = W*H, +Inf when empty
}

// NewFrameBuffer allocates a zeroed color buffer and a +Inf depth buffer.
// The +Inf sentinel means any valid NDC depth in [-1,1] wins the first test.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float32, n)
	far := math32.Inf(1)
	for i := range depth {
		depth[i] = far
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}

// Clear fills every pixel with the given color at full opacity and resets
// the depth buffer to +Inf. Must run before each frame's draws or stale
// depth values from the previous frame occlude new geometry.
func (fb *FrameBuffer) Clear(c Color) {
	far := math32.Inf(1)
	for i := 0; i < fb.Width*fb.Height; i++ {
		idx := i * 4
		fb.Color[idx] = c.R
		fb.Color[idx+1] = c.G
		fb.Color[idx+2] = c.B
		fb.Color[idx+3] = 255
		fb.Depth[i] = far
	}
}

// SetPixel writes color and depth at (x, y) if the fragment is nearer than
// what is already stored. Out-of-bounds coordinates and non-finite or
// out-of-range depths are dropped silently; a bad fragment never aborts a
// frame.
func (fb *FrameBuffer) SetPixel(x, y int, c Color, depth float32) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	if math32.IsNaN(depth) || math32.IsInf(depth, 0) || depth < -1 || depth > 1 {
		return
	}

	index := y*fb.Width + x
	if depth < fb.Depth[index] {
		fb.Depth[index] = depth
		idx := index * 4
		fb.Color[idx] = c.R
		fb.Color[idx+1] = c.G
		fb.Color[idx+2] = c.B
		fb.Color[idx+3] = 255
	}
}

// Bytes exposes the raw RGBA buffer for presentation.
func (fb *FrameBuffer) Bytes() []uint8 {
	return fb.Color
}
