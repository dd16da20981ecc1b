package integrator

import (
	"math/rand"

	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a camera ray.
	// random must not be shared between goroutines.
	RayColor(ray core.Ray, scene *scene.Scene, random *rand.Rand) core.Vec3
}

// Config controls recursion and the distributed sample counts
type Config struct {
	MaxDepth       int     // Deepest reflection level traced; the camera ray is depth 0
	ShadowSamples  int     // Shadow rays per hit for area lights
	GlossySamples  int     // Reflection rays averaged for rough surfaces
	DiffuseRateCap float64 // Upper bound of the glossy jitter per unit roughness
	ShadowBias     float64 // Offset of secondary ray origins off the surface
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:       10,
		ShadowSamples:  16,
		GlossySamples:  8,
		DiffuseRateCap: 0.5,
		ShadowBias:     1e-4,
	}
}
