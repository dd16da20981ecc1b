package core

import (
	"math"
	"math/rand"
)

// NewRandom creates a deterministic generator for one unit of work (a tile, a
// pass). The same (seed, stream) pair always yields the same sequence.
func NewRandom(seed int64, stream int) *rand.Rand {
	// splitmix64 finalizer keeps neighbouring streams uncorrelated
	z := uint64(seed) + uint64(stream+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	return rand.New(rand.NewSource(int64(z)))
}

// SampleOnUnitSphere maps two uniform numbers in [0,1) to a uniform direction on the unit sphere
func SampleOnUnitSphere(u1, u2 float64) Vec3 {
	z := 1.0 - 2.0*u1 // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * u2
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// RandomOnSphere returns a uniform point on the sphere of the given radius around center
func RandomOnSphere(random *rand.Rand, center Vec3, radius float64) Vec3 {
	return center.Add(SampleOnUnitSphere(random.Float64(), random.Float64()).Multiply(radius))
}

// JitterVec returns per-component uniform noise in [-scale, scale)
func JitterVec(random *rand.Rand, scale float64) Vec3 {
	return NewVec3(
		(2*random.Float64()-1)*scale,
		(2*random.Float64()-1)*scale,
		(2*random.Float64()-1)*scale,
	)
}
