package geometry

import "github.com/df07/go-drt-raytracer/pkg/core"

// Geometry is a surface that can be tested against rays
type Geometry interface {
	// Intersect returns the nearest hit along the ray, if any
	Intersect(ray core.Ray) (Hit, bool)

	// Clone returns an independent copy of the geometry
	Clone() Geometry
}

// Hit contains information about a ray-geometry intersection
type Hit struct {
	Geometry Geometry  // Geometry that was hit (not owned)
	Index    int       // Position in the slice given to HitMulti, -1 for single tests
	Distance float64   // Signed distance along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit surface normal, not oriented toward the ray
}

// FacingNormal returns the normal flipped, if needed, to face against direction
func (h Hit) FacingNormal(direction core.Vec3) core.Vec3 {
	if h.Normal.Dot(direction) > 0 {
		return h.Normal.Negate()
	}
	return h.Normal
}

// HitMulti tests every geometry and returns the valid hit with the smallest
// distance. Hits with a negative distance are discarded. Equal distances are
// resolved in favour of the lower index.
func HitMulti(ray core.Ray, geometries []Geometry) (Hit, bool) {
	var closest Hit
	found := false

	for i, g := range geometries {
		hit, ok := g.Intersect(ray)
		if !ok || hit.Distance < 0 {
			continue
		}
		// strict comparison keeps the first of equal distances
		if !found || hit.Distance < closest.Distance {
			hit.Index = i
			closest = hit
			found = true
		}
	}

	return closest, found
}
