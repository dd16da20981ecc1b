package pipeline

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/geometry"
	"github.com/df07/go-drt-raytracer/pkg/renderer"
)

// renderKey renders a fresh buffer with shader and wraps it as the output for key
func renderKey(ctx context.Context, rt *renderer.Raytracer, opts Options, key Key, shader renderer.PixelShader) (Uniforms, error) {
	fb := renderer.NewFrameBuffer(opts.Width, opts.Height)
	stats, err := rt.Render(ctx, fb, shader)
	if err != nil {
		return Uniforms{}, fmt.Errorf("render %s: %w", key, err)
	}
	return output(key, fb, stats), nil
}

// DepthPass visualises hit distance between the camera near and far planes
type DepthPass struct {
	Options Options
}

func (p DepthPass) Name() string    { return "depth" }
func (p DepthPass) Requires() []Key { return []Key{KeyScene} }
func (p DepthPass) Produces() []Key { return []Key{KeyDepth} }

// Process maps distance d to 1 - (d-near)/(far-near). Hits closer than near
// are white; misses and hits beyond far are black.
func (p DepthPass) Process(ctx context.Context, in Uniforms) (Uniforms, error) {
	s := in.Scene
	near, far := s.Camera.Near(), s.Camera.Far()
	geometries := s.Geometries()

	return renderKey(ctx, p.Options.newRaytracer(in), p.Options, KeyDepth, func(x, y, width, height int, _ *rand.Rand) core.Vec3 {
		hit, ok := geometry.HitMulti(s.Camera.GenerateRay(x, y, width, height), geometries)
		if !ok || hit.Distance > far {
			return core.Vec3{}
		}
		if hit.Distance < near {
			return core.NewVec3(1, 1, 1)
		}
		r := 1 - (hit.Distance-near)/(far-near)
		return core.NewVec3(r, r, r)
	})
}

// NormalPass visualises surface normals relative to the viewing direction
type NormalPass struct {
	Options Options
}

func (p NormalPass) Name() string    { return "normal" }
func (p NormalPass) Requires() []Key { return []Key{KeyScene} }
func (p NormalPass) Produces() []Key { return []Key{KeyNormal} }

// Process writes (n - front + 1)·0.5 for hits and white for misses
func (p NormalPass) Process(ctx context.Context, in Uniforms) (Uniforms, error) {
	s := in.Scene
	front := s.Camera.Front()
	geometries := s.Geometries()
	one := core.NewVec3(1, 1, 1)

	return renderKey(ctx, p.Options.newRaytracer(in), p.Options, KeyNormal, func(x, y, width, height int, _ *rand.Rand) core.Vec3 {
		hit, ok := geometry.HitMulti(s.Camera.GenerateRay(x, y, width, height), geometries)
		if !ok {
			return one
		}
		return hit.Normal.Subtract(front).Add(one).Multiply(0.5)
	})
}

// ShadePass traces one ray through each pixel centre
type ShadePass struct {
	Options Options
}

func (p ShadePass) Name() string    { return "shade" }
func (p ShadePass) Requires() []Key { return []Key{KeyScene} }
func (p ShadePass) Produces() []Key { return []Key{KeyShaded} }

func (p ShadePass) Process(ctx context.Context, in Uniforms) (Uniforms, error) {
	rt := p.Options.newRaytracer(in)
	return renderKey(ctx, rt, p.Options, KeyShaded, rt.ShadePixel)
}

// SSAAPass averages SamplesPerPixel jittered rays per pixel
type SSAAPass struct {
	Options Options
}

func (p SSAAPass) Name() string    { return "ssaa" }
func (p SSAAPass) Requires() []Key { return []Key{KeyScene} }
func (p SSAAPass) Produces() []Key { return []Key{KeyShaded} }

func (p SSAAPass) Process(ctx context.Context, in Uniforms) (Uniforms, error) {
	rt := p.Options.newRaytracer(in)
	logger.Debugf("supersampling with %d rays per pixel", max(1, p.Options.Sampling.SamplesPerPixel))
	return renderKey(ctx, rt, p.Options, KeyShaded, rt.SupersamplePixel)
}
