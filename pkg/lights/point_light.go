package lights

import (
	"math/rand"

	"github.com/df07/go-drt-raytracer/pkg/core"
)

// PointLight is a point source with pluggable decay. A positive Radius turns
// it into a spherical area light for soft shadows.
type PointLight struct {
	Pos    core.Vec3
	Color  core.Vec3
	Decay  DecayFunc // nil means no falloff
	Radius float64   // emission radius, 0 for a hard point light
}

// NewPointLight creates a point light without emission radius
func NewPointLight(position, color core.Vec3, decay DecayFunc) *PointLight {
	return &PointLight{Pos: position, Color: color, Decay: decay}
}

// NewAreaPointLight creates a point light that samples emission over a sphere of the given radius
func NewAreaPointLight(position, color core.Vec3, decay DecayFunc, radius float64) *PointLight {
	return &PointLight{Pos: position, Color: color, Decay: decay, Radius: radius}
}

// At returns the light color scaled by decay and the direction from the light to point
func (l *PointLight) At(point core.Vec3) Illumination {
	dir := point.Subtract(l.Pos)
	multiplier := 1.0
	if l.Decay != nil {
		multiplier = l.Decay(dir.Length())
	}
	return NewIllumination(l.Color.Multiply(multiplier), dir)
}

// Position returns the light centre
func (l *PointLight) Position() core.Vec3 {
	return l.Pos
}

// IsArea reports whether the light has an emission radius
func (l *PointLight) IsArea() bool {
	return l.Radius > 0
}

// SampleEmission returns a uniform point on the emission sphere
func (l *PointLight) SampleEmission(random *rand.Rand) core.Vec3 {
	return core.RandomOnSphere(random, l.Pos, l.Radius)
}
