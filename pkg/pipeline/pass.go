package pipeline

import (
	"context"
	"time"

	"github.com/df07/go-drt-raytracer/pkg/integrator"
	"github.com/df07/go-drt-raytracer/pkg/log"
	"github.com/df07/go-drt-raytracer/pkg/renderer"
)

var logger = log.New("pipeline")

// Pass is one stage of a flow. It reads only the keys it requires and
// returns a record holding exactly the keys it produces.
type Pass interface {
	Name() string
	Requires() []Key
	Produces() []Key
	Process(ctx context.Context, in Uniforms) (Uniforms, error)
}

// Options configures the frame and the tracing work done by scene passes
type Options struct {
	Width      int
	Height     int
	Sampling   renderer.SamplingConfig
	Integrator integrator.Config
}

// DefaultOptions returns the default 512×256 frame with default sampling
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     256,
		Sampling:   renderer.DefaultSamplingConfig(),
		Integrator: integrator.DefaultConfig(),
	}
}

// newRaytracer binds the scene of in to a distributed integrator
func (o Options) newRaytracer(in Uniforms) *renderer.Raytracer {
	return renderer.NewRaytracer(in.Scene, integrator.NewDistributedIntegrator(o.Integrator), o.Sampling)
}

// walkStats describes a single-threaded Walk over fb
func walkStats(fb *renderer.FrameBuffer, start time.Time) renderer.RenderStats {
	pixels := fb.Width * fb.Height
	return renderer.RenderStats{
		TotalPixels:      pixels,
		Tiles:            1,
		Workers:          1,
		Duration:         time.Since(start),
		AverageLuminance: renderer.CalculateAverageLuminance(fb),
	}
}
