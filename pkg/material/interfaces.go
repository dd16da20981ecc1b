package material

import (
	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/lights"
)

// Material interface for surfaces that can be shaded
type Material interface {
	// Shade returns the local color at position for the given illumination
	Shade(ray core.Ray, illum lights.Illumination, position, normal core.Vec3) core.Vec3

	// Reflectivity returns the reflection blend weight, if the surface reflects
	Reflectivity() (float64, bool)

	// Roughness returns the glossy jitter amount, if the reflection is not a perfect mirror
	Roughness() (float64, bool)
}

// Finish holds the optional reflective properties shared by all materials.
// The zero value is an opaque surface.
type Finish struct {
	reflectivity    float64
	roughness       float64
	hasReflectivity bool
	hasRoughness    bool
}

// Option configures a Finish
type Option func(*Finish)

// WithReflectivity makes the surface reflective. The weight is clamped to [0, 1].
func WithReflectivity(r float64) Option {
	return func(f *Finish) {
		f.reflectivity = max(0, min(1, r))
		f.hasReflectivity = true
	}
}

// WithRoughness makes reflections glossy. Negative values are clamped to 0.
func WithRoughness(r float64) Option {
	return func(f *Finish) {
		f.roughness = max(0, r)
		f.hasRoughness = true
	}
}

func newFinish(opts []Option) Finish {
	var f Finish
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Reflectivity implements Material. A zero weight counts as absent.
func (f Finish) Reflectivity() (float64, bool) {
	return f.reflectivity, f.hasReflectivity && f.reflectivity > 0
}

// Roughness implements Material
func (f Finish) Roughness() (float64, bool) {
	return f.roughness, f.hasRoughness
}
