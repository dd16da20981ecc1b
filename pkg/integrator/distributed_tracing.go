package integrator

import (
	"math/rand"

	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/geometry"
	"github.com/df07/go-drt-raytracer/pkg/lights"
	"github.com/df07/go-drt-raytracer/pkg/material"
	"github.com/df07/go-drt-raytracer/pkg/scene"
)

// DistributedIntegrator is a recursive Whitted-style tracer with distributed
// sampling: soft shadows from area lights and glossy reflections are
// estimated by averaging jittered rays.
type DistributedIntegrator struct {
	config Config

	// traceHook, when set, is called on every trace with the current depth
	traceHook func(depth int)
}

// NewDistributedIntegrator creates a new distributed ray tracing integrator
func NewDistributedIntegrator(config Config) *DistributedIntegrator {
	return &DistributedIntegrator{
		config: config,
	}
}

// RayColor computes the color for a camera ray
func (di *DistributedIntegrator) RayColor(ray core.Ray, s *scene.Scene, random *rand.Rand) core.Vec3 {
	return di.trace(ray, s, random, 0, true)
}

// trace returns the color along ray. depth only ever grows by one per
// reflection and no reflection is traced at MaxDepth, which bounds recursion.
// fanout reports whether a glossy hit on this path may still split into
// GlossySamples rays; once a path has split, each branch continues with a
// single jittered ray, so a camera ray costs at most 1 + GlossySamples·MaxDepth
// traces.
func (di *DistributedIntegrator) trace(ray core.Ray, s *scene.Scene, random *rand.Rand, depth int, fanout bool) core.Vec3 {
	if di.traceHook != nil {
		di.traceHook(depth)
	}

	hit, isHit := geometry.HitMulti(ray, s.Geometries())
	if !isHit {
		return s.Background
	}

	mat := s.MaterialAt(hit.Index)
	normal := hit.FacingNormal(ray.Direction)
	// secondary rays leave from just above the side the ray arrived on
	origin := hit.Point.Add(normal.Multiply(di.config.ShadowBias))

	illum := di.directIllumination(origin, hit.Point, s, random)
	local := mat.Shade(ray, illum, hit.Point, normal)

	if depth >= di.config.MaxDepth {
		return local
	}
	reflectivity, reflective := mat.Reflectivity()
	if !reflective {
		return local
	}

	reflected := di.reflectedColor(ray, hit.Normal, origin, mat, s, random, depth, fanout)
	return local.Multiply(1 - reflectivity).Add(reflected.Multiply(reflectivity))
}

// directIllumination evaluates the scene light at point, attenuated by the
// fraction of shadow rays from origin that reach it.
func (di *DistributedIntegrator) directIllumination(origin, point core.Vec3, s *scene.Scene, random *rand.Rand) lights.Illumination {
	illum := s.Light.At(point)
	visibility := di.Visibility(origin, s.Light, s, random)
	if visibility == 1 {
		return illum
	}
	return illum.WithColor(illum.Color.Multiply(visibility))
}

// Visibility returns the unoccluded fraction of light as seen from origin.
// Hard point lights give 0 or 1; area lights give unoccluded/ShadowSamples
// over independently sampled emission points.
func (di *DistributedIntegrator) Visibility(origin core.Vec3, light lights.Light, s *scene.Scene, random *rand.Rand) float64 {
	sampler, ok := light.(lights.EmissionSampler)
	if !ok || !sampler.IsArea() || di.config.ShadowSamples <= 0 {
		if di.reaches(origin, light.Position(), s) {
			return 1
		}
		return 0
	}

	unoccluded := 0
	for i := 0; i < di.config.ShadowSamples; i++ {
		if di.reaches(origin, sampler.SampleEmission(random), s) {
			unoccluded++
		}
	}
	return float64(unoccluded) / float64(di.config.ShadowSamples)
}

// reaches casts a shadow ray and reports whether nothing blocks it before target
func (di *DistributedIntegrator) reaches(origin, target core.Vec3, s *scene.Scene) bool {
	toTarget := target.Subtract(origin)
	distance := toTarget.Length()
	if distance == 0 {
		return true
	}

	hit, blocked := geometry.HitMulti(core.NewRay(origin, toTarget), s.Geometries())
	return !blocked || hit.Distance >= distance
}

// reflectedColor traces the mirror direction, or averages jittered copies of
// it for rough materials. Roughness 0 is a perfect mirror.
func (di *DistributedIntegrator) reflectedColor(ray core.Ray, normal, origin core.Vec3, mat material.Material, s *scene.Scene, random *rand.Rand, depth int, fanout bool) core.Vec3 {
	mirror := core.Reflect(ray.Direction, normal)

	roughness, glossy := mat.Roughness()
	if !glossy || roughness == 0 {
		return di.trace(core.NewRay(origin, mirror), s, random, depth+1, fanout)
	}

	scale := roughness * di.config.DiffuseRateCap
	if !fanout {
		dir := mirror.Add(core.JitterVec(random, scale))
		return di.trace(core.NewRay(origin, dir), s, random, depth+1, false)
	}

	samples := max(1, di.config.GlossySamples)
	var sum core.Vec3
	for i := 0; i < samples; i++ {
		dir := mirror.Add(core.JitterVec(random, scale))
		sum = sum.Add(di.trace(core.NewRay(origin, dir), s, random, depth+1, false))
	}
	return sum.Multiply(1.0 / float64(samples))
}
