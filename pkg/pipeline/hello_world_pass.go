package pipeline

import (
	"context"
	"time"

	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/renderer"
)

// HelloWorldPass fills a buffer with a red/green gradient
type HelloWorldPass struct {
	Width  int
	Height int
}

func (p HelloWorldPass) Name() string    { return "hello-world" }
func (p HelloWorldPass) Requires() []Key { return nil }
func (p HelloWorldPass) Produces() []Key { return []Key{KeyHelloWorld} }

// Process sets r = x/width, g = y/height and b = 0.5 for every pixel
func (p HelloWorldPass) Process(_ context.Context, _ Uniforms) (Uniforms, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return Uniforms{}, renderer.ErrInvalidSize
	}

	start := time.Now()
	fb := renderer.NewFrameBuffer(p.Width, p.Height)
	fb.Walk(func(x, y int) core.Vec3 {
		return core.NewVec3(float64(x)/float64(p.Width), float64(y)/float64(p.Height), 0.5)
	})

	return output(KeyHelloWorld, fb, walkStats(fb, start)), nil
}
