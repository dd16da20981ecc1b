package material

import (
	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/lights"
)

// Unlit is a constant color that ignores lighting
type Unlit struct {
	Finish
	Color core.Vec3
}

// NewUnlit creates a new unlit material
func NewUnlit(color core.Vec3, opts ...Option) *Unlit {
	return &Unlit{Finish: newFinish(opts), Color: color}
}

// Shade returns the fixed color
func (u *Unlit) Shade(core.Ray, lights.Illumination, core.Vec3, core.Vec3) core.Vec3 {
	return u.Color
}
