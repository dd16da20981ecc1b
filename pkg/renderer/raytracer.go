package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/integrator"
	"github.com/df07/go-drt-raytracer/pkg/log"
	"github.com/df07/go-drt-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// PixelShader computes the color of pixel (x, y) of a width×height frame.
// random belongs to the calling tile and must not be retained.
type PixelShader func(x, y, width, height int, random *rand.Rand) core.Vec3

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Jittered rays averaged by SupersamplePixel
	Seed            int64 // Base seed for per-tile generators
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	TileRows        int   // Rows per tile (0 = whole frame in one tile)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 4,
		Seed:            42,
		NumWorkers:      0,
		TileRows:        16,
	}
}

// Raytracer renders frames of a scene with an integrator
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     SamplingConfig
	rays       atomic.Int64 // Primary rays traced by the current render
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, config SamplingConfig) *Raytracer {
	return &Raytracer{
		scene:      s,
		integrator: integ,
		config:     config,
	}
}

// Render fills fb by running shader for every pixel on the worker pool.
// The output depends only on the seed, never on the number of workers.
// Render must not be called concurrently on the same Raytracer.
func (rt *Raytracer) Render(ctx context.Context, fb *FrameBuffer, shader PixelShader) (RenderStats, error) {
	if fb == nil || fb.Width <= 0 || fb.Height <= 0 {
		return RenderStats{}, ErrInvalidSize
	}
	if shader == nil {
		return RenderStats{}, ErrNoShader
	}

	start := time.Now()
	rt.rays.Store(0)

	tiles := NewTileGrid(fb.Width, fb.Height, rt.config.TileRows, rt.config.Seed)
	pool := NewWorkerPool(ctx, rt.config.NumWorkers, len(tiles))
	pool.Start()

	logger.Debugf("rendering %dx%d frame in %d tiles on %d workers", fb.Width, fb.Height, len(tiles), pool.GetNumWorkers())

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: i,
			Frame:  fb,
			Shader: shader,
		})
	}

	stats := RenderStats{
		Tiles:   len(tiles),
		Workers: pool.GetNumWorkers(),
	}
	var renderErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.TotalPixels += result.Pixels
		stats.TileTime += result.Duration
		logger.Debugf("tile %d: %d pixels on worker %d in %s", result.TaskID, result.Pixels, result.WorkerID, result.Duration)
	}
	pool.Stop()

	if renderErr != nil {
		logger.Warningf("render aborted after %d of %d pixels: %v", stats.TotalPixels, fb.Width*fb.Height, renderErr)
		return stats, fmt.Errorf("%w: %w", ErrRenderCancelled, renderErr)
	}

	stats.TotalSamples = int(rt.rays.Load())
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	stats.Duration = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(fb)

	logger.Infof("rendered %d pixels (%d rays) in %s", stats.TotalPixels, stats.TotalSamples, stats.Duration)
	return stats, nil
}

// ShadePixel traces a single ray through the centre of the pixel
func (rt *Raytracer) ShadePixel(x, y, width, height int, random *rand.Rand) core.Vec3 {
	rt.rays.Add(1)
	ray := rt.scene.Camera.GenerateRay(x, y, width, height)
	return rt.integrator.RayColor(ray, rt.scene, random)
}

// SupersamplePixel averages SamplesPerPixel rays jittered uniformly inside the pixel
func (rt *Raytracer) SupersamplePixel(x, y, width, height int, random *rand.Rand) core.Vec3 {
	n := max(1, rt.config.SamplesPerPixel)
	rt.rays.Add(int64(n))

	var colorAccum core.Vec3
	for _, ray := range rt.scene.Camera.GenerateMultiRay(x, y, width, height, n, random) {
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, random))
	}
	return colorAccum.Multiply(1.0 / float64(n))
}
