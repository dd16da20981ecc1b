package material

import (
	"math"

	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/lights"
)

// BlinnPhong is an ambient + diffuse + specular reflection model
type BlinnPhong struct {
	Finish
	Diffuse   core.Vec3
	Specular  core.Vec3
	Shininess float64 // Specular exponent
	Ambient   core.Vec3
}

// NewBlinnPhong creates a new Blinn-Phong material
func NewBlinnPhong(diffuse, specular core.Vec3, shininess float64, ambient core.Vec3, opts ...Option) *BlinnPhong {
	return &BlinnPhong{
		Finish:    newFinish(opts),
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
		Ambient:   ambient,
	}
}

// Shade evaluates ambient + light ⊙ (diffuse + specular).
// illum.Direction points from the light toward the surface.
func (m *BlinnPhong) Shade(ray core.Ray, illum lights.Illumination, position, normal core.Vec3) core.Vec3 {
	n := normal.Normalize()
	l := illum.Direction

	nDotL := n.Dot(l.Negate())
	diffuse := m.Diffuse.Multiply(math.Max(0, nDotL))

	h := l.Add(ray.Direction.Normalize()).Negate().Normalize()
	nDotH := n.Dot(h)
	specular := m.Specular.Multiply(math.Pow(math.Max(0, nDotH), m.Shininess))

	return m.Ambient.Add(illum.Color.MultiplyVec(diffuse.Add(specular)))
}
