package geometry

import (
	"math"

	"github.com/df07/go-drt-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect tests the ray against the near side of the sphere.
//
// With v = O-C the ray/sphere equation reduces to t² + 2bt + a0 = 0 where
// b = D·v and a0 = |v|² - r². Rays moving away from the center (b > 0) never
// hit, and only the near root -b - sqrt(b² - a0) is reported, so a ray that
// starts inside the sphere yields a negative distance.
func (s *Sphere) Intersect(ray core.Ray) (Hit, bool) {
	v := ray.Origin.Subtract(s.Center)
	a0 := v.LengthSquared() - s.Radius*s.Radius
	b := ray.Direction.Dot(v)

	if b > 0 {
		return Hit{}, false
	}

	discriminant := b*b - a0
	if discriminant < 0 {
		return Hit{}, false
	}

	distance := -b - math.Sqrt(discriminant)
	point := ray.At(distance)

	return Hit{
		Geometry: s,
		Index:    -1,
		Distance: distance,
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
	}, true
}

// Clone returns a copy of the sphere
func (s *Sphere) Clone() Geometry {
	return NewSphere(s.Center, s.Radius)
}
