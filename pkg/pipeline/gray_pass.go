package pipeline

import (
	"context"
	"time"

	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/renderer"
)

// GrayPass converts the Source buffer to luminance
type GrayPass struct {
	Source Key
}

func (p GrayPass) Name() string    { return "gray" }
func (p GrayPass) Requires() []Key { return []Key{p.Source} }
func (p GrayPass) Produces() []Key { return []Key{KeyGray} }

// Process writes 0.3·R + 0.59·G + 0.11·B of every source pixel to all three channels
func (p GrayPass) Process(_ context.Context, in Uniforms) (Uniforms, error) {
	source := in.Buffer(p.Source)
	if source == nil {
		return Uniforms{}, ErrMissingInput
	}

	start := time.Now()
	fb := renderer.NewFrameBuffer(source.Width, source.Height)
	fb.Walk(func(x, y int) core.Vec3 {
		gray := source.Pixel(x, y).Luminance()
		return core.NewVec3(gray, gray, gray)
	})

	return output(KeyGray, fb, walkStats(fb, start)), nil
}
