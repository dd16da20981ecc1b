package scene

import (
	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/geometry"
	"github.com/df07/go-drt-raytracer/pkg/lights"
	"github.com/df07/go-drt-raytracer/pkg/material"
)

// NewBaseScene creates three glossy Blinn-Phong spheres, one of them a large
// ground sphere, lit by a soft area light.
func NewBaseScene(width, height int) *Scene {
	camera := geometry.NewPerspectiveCamera(geometry.CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		Front:  core.NewVec3(0, 0, -1),
		RefUp:  core.NewVec3(0, 1, 0),
		FovY:   120,
		Aspect: float64(width) / float64(height),
		Near:   1,
		Far:    20,
	})

	white := core.NewVec3(1, 1, 1)
	brown := core.NewVec3(0.271, 0.22, 0.196)
	slate := core.NewVec3(0.325, 0.369, 0.478)
	clay := core.NewVec3(0.682, 0.498, 0.427)

	left := material.NewBlinnPhong(brown.Multiply(0.6), white, 30, brown.Multiply(0.2),
		material.WithReflectivity(0.5), material.WithRoughness(0.2))
	right := material.NewBlinnPhong(slate.Multiply(0.6), white, 50, slate.Multiply(0.2),
		material.WithReflectivity(0.8), material.WithRoughness(0.3))
	ground := material.NewBlinnPhong(clay.Multiply(0.6), white, 80, clay.Multiply(0.2),
		material.WithReflectivity(0.2), material.WithRoughness(0.5))

	light := lights.NewAreaPointLight(
		core.NewVec3(-100, 100, 100), // position
		white,                        // color
		lights.ConstantDecay(1),      // no falloff
		50,                           // emission radius
	)

	return NewScene(camera, []Node{
		{Geometry: geometry.NewSphere(core.NewVec3(-3, 0, -5), 1), Material: left},
		{Geometry: geometry.NewSphere(core.NewVec3(1, 0, -2.5), 1), Material: right},
		{Geometry: geometry.NewSphere(core.NewVec3(0, -100, -5), 99), Material: ground},
	}, light)
}

// NewMirrorScene is NewBaseScene with perfect mirrors and a hard point light
func NewMirrorScene(width, height int) *Scene {
	s := NewBaseScene(width, height)
	for i, node := range s.Nodes {
		bp := node.Material.(*material.BlinnPhong)
		r, _ := bp.Reflectivity()
		s.Nodes[i].Material = material.NewBlinnPhong(bp.Diffuse, bp.Specular, bp.Shininess, bp.Ambient,
			material.WithReflectivity(r))
	}
	s.Light = lights.NewPointLight(s.Light.Position(), core.NewVec3(1, 1, 1), lights.ConstantDecay(1))
	return s
}

// NewSingleSphereScene creates one unlit red sphere straight ahead of the camera
func NewSingleSphereScene(width, height int) *Scene {
	camera := geometry.NewPerspectiveCamera(geometry.CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		Front:  core.NewVec3(0, 0, -1),
		RefUp:  core.NewVec3(0, 1, 0),
		FovY:   60,
		Aspect: float64(width) / float64(height),
		Near:   1,
		Far:    20,
	})

	red := material.NewUnlit(core.NewVec3(1, 0, 0))
	light := lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), lights.ConstantDecay(1))

	return NewScene(camera, []Node{
		{Geometry: geometry.NewSphere(core.NewVec3(0, 0, -5), 1), Material: red},
	}, light)
}
