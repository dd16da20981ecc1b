package renderer

import (
	"github.com/df07/go-drt-raytracer/pkg/core"
)

// ChannelCount is the number of float32 channels stored per pixel (RGBA)
const ChannelCount = 4

// FrameBuffer is a flat RGBA float buffer. Pixels are stored in the order
// Walk produces them: the top image row (y = Height-1) first, left to right.
type FrameBuffer struct {
	Width  int
	Height int
	Data   []float32
}

// NewFrameBuffer allocates a zeroed buffer of the given size
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height*ChannelCount),
	}
}

// Index returns the offset of the first channel of pixel (x, y).
// y grows upward, matching camera pixel coordinates.
func (fb *FrameBuffer) Index(x, y int) int {
	return ChannelCount * (x + (fb.Height-1-y)*fb.Width)
}

// Walk calls handler for every pixel, rows from y = Height-1 down to 0 and
// x ascending within a row, storing each result at the next sequential slot.
func (fb *FrameBuffer) Walk(handler func(x, y int) core.Vec3) {
	offset := 0
	for y := fb.Height - 1; y >= 0; y-- {
		for x := 0; x < fb.Width; x++ {
			fb.store(offset, handler(x, y))
			offset += ChannelCount
		}
	}
}

// Pixel returns the stored color at (x, y)
func (fb *FrameBuffer) Pixel(x, y int) core.Vec3 {
	i := fb.Index(x, y)
	return core.NewVec3(float64(fb.Data[i]), float64(fb.Data[i+1]), float64(fb.Data[i+2]))
}

// Set stores color at (x, y). Tiles rendered in parallel write disjoint slots.
func (fb *FrameBuffer) Set(x, y int, color core.Vec3) {
	fb.store(fb.Index(x, y), color)
}

// InBounds reports whether (x, y) addresses a pixel of the buffer
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

func (fb *FrameBuffer) store(offset int, color core.Vec3) {
	fb.Data[offset] = float32(color.X)
	fb.Data[offset+1] = float32(color.Y)
	fb.Data[offset+2] = float32(color.Z)
	fb.Data[offset+3] = 1
}
