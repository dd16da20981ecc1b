package lights

import (
	"math/rand"

	"github.com/df07/go-drt-raytracer/pkg/core"
)

// Illumination is the light arriving at a single point
type Illumination struct {
	Color     core.Vec3 // Light color after decay
	Direction core.Vec3 // Unit direction from the light toward the point
}

// NewIllumination creates an illumination value, normalizing the direction
func NewIllumination(color, direction core.Vec3) Illumination {
	return Illumination{Color: color, Direction: direction.Normalize()}
}

// WithColor returns a copy of the illumination carrying a different color
func (i Illumination) WithColor(color core.Vec3) Illumination {
	return Illumination{Color: color, Direction: i.Direction}
}

// Light interface for sources that can illuminate a point
type Light interface {
	// At evaluates the unoccluded illumination arriving at point
	At(point core.Vec3) Illumination

	// Position returns the nominal light position used for hard shadows
	Position() core.Vec3
}

// EmissionSampler is implemented by lights that can stand in for an area
// light by sampling points on their surface.
type EmissionSampler interface {
	// IsArea reports whether sampling is meaningful for this light
	IsArea() bool

	// SampleEmission returns a uniformly distributed emission point
	SampleEmission(random *rand.Rand) core.Vec3
}
