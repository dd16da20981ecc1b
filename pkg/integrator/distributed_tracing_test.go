package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/geometry"
	"github.com/df07/go-drt-raytracer/pkg/lights"
	"github.com/df07/go-drt-raytracer/pkg/material"
	"github.com/df07/go-drt-raytracer/pkg/scene"
)

var red = core.NewVec3(1, 0, 0)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// createSphereScene creates a single sphere at (0,0,-5) lit from above
func createSphereScene(mat material.Material) *scene.Scene {
	nodes := []scene.Node{
		{Geometry: geometry.NewSphere(core.NewVec3(0, 0, -5), 1), Material: mat},
	}
	light := lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), nil)
	return scene.NewScene(nil, nodes, light)
}

// countingIntegrator returns an integrator that records the number of traces and the deepest level reached
func countingIntegrator(config Config) (*DistributedIntegrator, *int, *int) {
	calls, deepest := 0, -1
	di := NewDistributedIntegrator(config)
	di.traceHook = func(depth int) {
		calls++
		deepest = max(deepest, depth)
	}
	return di, &calls, &deepest
}

var forward = core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

func TestDistributedIntegrator_MissReturnsBackground(t *testing.T) {
	sc := createSphereScene(material.NewUnlit(red))
	di := NewDistributedIntegrator(DefaultConfig())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	color := di.RayColor(ray, sc, rand.New(rand.NewSource(1)))
	if color != scene.DefaultBackground {
		t.Errorf("Expected background %v, got %v", scene.DefaultBackground, color)
	}
}

func TestDistributedIntegrator_UnlitHit(t *testing.T) {
	sc := createSphereScene(material.NewUnlit(red))
	di, calls, _ := countingIntegrator(DefaultConfig())

	color := di.RayColor(forward, sc, rand.New(rand.NewSource(1)))
	if color != red {
		t.Errorf("Expected %v, got %v", red, color)
	}
	if *calls != 1 {
		t.Errorf("Expected no recursion for a non-reflective surface, got %d traces", *calls)
	}
}

func TestDistributedIntegrator_ReflectionBlend(t *testing.T) {
	sc := createSphereScene(material.NewUnlit(red, material.WithReflectivity(0.5)))
	di, calls, deepest := countingIntegrator(DefaultConfig())

	// The mirror ray leaves back toward +z and sees only the background
	color := di.RayColor(forward, sc, rand.New(rand.NewSource(1)))
	expected := red.Multiply(0.5).Add(scene.DefaultBackground.Multiply(0.5))
	if !vecNear(color, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
	if *calls != 2 || *deepest != 1 {
		t.Errorf("Expected one reflection trace, got %d traces reaching depth %d", *calls, *deepest)
	}
}

func TestDistributedIntegrator_ZeroReflectivityIsOpaque(t *testing.T) {
	sc := createSphereScene(material.NewUnlit(red, material.WithReflectivity(0)))
	di, calls, _ := countingIntegrator(DefaultConfig())

	if color := di.RayColor(forward, sc, rand.New(rand.NewSource(1))); color != red {
		t.Errorf("Expected %v, got %v", red, color)
	}
	if *calls != 1 {
		t.Errorf("Expected a single trace, got %d", *calls)
	}
}

func TestDistributedIntegrator_DepthTermination(t *testing.T) {
	// Two facing mirrors bounce the ray back and forth forever
	mirror := material.NewUnlit(red, material.WithReflectivity(1))
	nodes := []scene.Node{
		{Geometry: geometry.NewSphere(core.NewVec3(3, 0, 0), 1), Material: mirror},
		{Geometry: geometry.NewSphere(core.NewVec3(-3, 0, 0), 1), Material: mirror},
	}
	light := lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), nil)
	sc := scene.NewScene(nil, nodes, light)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	tests := []struct {
		name     string
		maxDepth int
	}{
		{"no reflections", 0},
		{"single bounce", 1},
		{"default depth", 10},
		{"deep", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.MaxDepth = tt.maxDepth
			di, calls, deepest := countingIntegrator(config)

			color := di.RayColor(ray, sc, rand.New(rand.NewSource(1)))
			if *deepest != tt.maxDepth {
				t.Errorf("Expected deepest trace at depth %d, got %d", tt.maxDepth, *deepest)
			}
			if *calls != tt.maxDepth+1 {
				t.Errorf("Expected %d traces, got %d", tt.maxDepth+1, *calls)
			}
			if color != red {
				t.Errorf("Expected %v from perfect mirrors of the same color, got %v", red, color)
			}
		})
	}
}

func TestDistributedIntegrator_MaxDepthZeroIsLocalOnly(t *testing.T) {
	sc := createSphereScene(material.NewUnlit(red, material.WithReflectivity(0.5)))
	config := DefaultConfig()
	config.MaxDepth = 0
	di, calls, _ := countingIntegrator(config)

	if color := di.RayColor(forward, sc, rand.New(rand.NewSource(1))); color != red {
		t.Errorf("Expected local shading %v, got %v", red, color)
	}
	if *calls != 1 {
		t.Errorf("Expected a single trace, got %d", *calls)
	}
}

func TestDistributedIntegrator_HardShadowVisibility(t *testing.T) {
	nodes := []scene.Node{
		{Geometry: geometry.NewSphere(core.NewVec3(0, 5, 0), 1), Material: material.NewUnlit(red)},
		{Geometry: geometry.NewSphere(core.NewVec3(0, 20, 0), 1), Material: material.NewUnlit(red)},
	}
	light := lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), nil)
	sc := scene.NewScene(nil, nodes, light)
	di := NewDistributedIntegrator(DefaultConfig())
	random := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		origin   core.Vec3
		expected float64
	}{
		{"blocked by occluder", core.NewVec3(0, 0, 0), 0},
		{"clear line of sight", core.NewVec3(5, 0, 0), 1},
		{"occluder beyond the light", core.NewVec3(0, 12, 0), 1},
		{"origin at the light", core.NewVec3(0, 10, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := di.Visibility(tt.origin, light, sc, random); v != tt.expected {
				t.Errorf("Expected visibility %f, got %f", tt.expected, v)
			}
		})
	}
}

func TestDistributedIntegrator_SoftShadowConvergence(t *testing.T) {
	// Sampling points on a unit sphere around the origin, an occluder whose
	// silhouette subtends a cone of half-angle asin(0.9) blocks (1-cos)/2 of them
	nodes := []scene.Node{
		{Geometry: geometry.NewSphere(core.NewVec3(0.5, 0, 0), 0.45), Material: material.NewUnlit(red)},
	}
	light := lights.NewAreaPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), nil, 1)
	sc := scene.NewScene(nil, nodes, light)

	config := DefaultConfig()
	config.ShadowSamples = 20000
	di := NewDistributedIntegrator(config)

	cosTheta := math.Sqrt(1 - 0.9*0.9)
	expected := 1 - (1-cosTheta)/2

	v := di.Visibility(core.NewVec3(0, 0, 0), light, sc, rand.New(rand.NewSource(42)))
	if math.Abs(v-expected) > 0.02 {
		t.Errorf("Expected visibility near %f, got %f", expected, v)
	}
}

func TestDistributedIntegrator_SoftShadowFraction(t *testing.T) {
	nodes := []scene.Node{
		{Geometry: geometry.NewSphere(core.NewVec3(0, 5, 0), 0.5), Material: material.NewUnlit(red)},
	}
	light := lights.NewAreaPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), nil, 2)
	sc := scene.NewScene(nil, nodes, light)

	config := DefaultConfig()
	config.ShadowSamples = 64
	di := NewDistributedIntegrator(config)

	v := di.Visibility(core.NewVec3(0, 0, 0), light, sc, rand.New(rand.NewSource(3)))
	if v <= 0 || v >= 1 {
		t.Errorf("Expected a penumbra fraction strictly between 0 and 1, got %f", v)
	}
	if scaled := v * 64; scaled != math.Trunc(scaled) {
		t.Errorf("Expected a multiple of 1/64, got %f", v)
	}
}

func TestDistributedIntegrator_GlossyReflection(t *testing.T) {
	sc := createSphereScene(material.NewUnlit(red,
		material.WithReflectivity(0.5),
		material.WithRoughness(0.2),
	))
	config := DefaultConfig()
	config.GlossySamples = 8
	di, calls, _ := countingIntegrator(config)

	// Every jittered reflection still escapes to the background
	color := di.RayColor(forward, sc, rand.New(rand.NewSource(5)))
	expected := red.Multiply(0.5).Add(scene.DefaultBackground.Multiply(0.5))
	if !vecNear(color, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
	if *calls != 1+8 {
		t.Errorf("Expected 8 glossy reflection traces, got %d traces", *calls-1)
	}
}

func TestDistributedIntegrator_Deterministic(t *testing.T) {
	mat := material.NewBlinnPhong(core.NewVec3(0.6, 0.2, 0.2), core.NewVec3(1, 1, 1), 30, core.NewVec3(0.05, 0.05, 0.05),
		material.WithReflectivity(0.5),
		material.WithRoughness(0.3),
	)
	nodes := []scene.Node{
		{Geometry: geometry.NewSphere(core.NewVec3(0, 0, -5), 1), Material: mat},
		{Geometry: geometry.NewSphere(core.NewVec3(0, -101, -5), 100), Material: mat},
	}
	light := lights.NewAreaPointLight(core.NewVec3(-5, 10, 5), core.NewVec3(1, 1, 1), lights.ConstantDecay(1), 2)
	sc := scene.NewScene(nil, nodes, light)
	di := NewDistributedIntegrator(DefaultConfig())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.1, -0.2, -1))
	a := di.RayColor(ray, sc, rand.New(rand.NewSource(11)))
	b := di.RayColor(ray, sc, rand.New(rand.NewSource(11)))
	if a != b {
		t.Errorf("Expected identical colors for identical seeds, got %v and %v", a, b)
	}
}

func TestDistributedIntegrator_ZeroRoughnessIsMirror(t *testing.T) {
	sc := createSphereScene(material.NewUnlit(red,
		material.WithReflectivity(0.5),
		material.WithRoughness(0),
	))
	config := DefaultConfig()
	config.GlossySamples = 8
	di, calls, _ := countingIntegrator(config)

	color := di.RayColor(forward, sc, rand.New(rand.NewSource(5)))
	expected := red.Multiply(0.5).Add(scene.DefaultBackground.Multiply(0.5))
	if !vecNear(color, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
	if *calls != 2 {
		t.Errorf("Expected a single mirror trace, got %d traces", *calls-1)
	}
}

func TestDistributedIntegrator_GlossySplitsOnce(t *testing.T) {
	glossy := material.NewUnlit(red,
		material.WithReflectivity(0.5),
		material.WithRoughness(0.1),
	)
	nodes := []scene.Node{
		{Geometry: geometry.NewSphere(core.NewVec3(0, 0, -5), 1), Material: glossy},
		// behind the camera, catches every jittered reflection of the front sphere
		{Geometry: geometry.NewSphere(core.NewVec3(0, 0, 5), 1.5), Material: glossy},
	}
	sc := scene.NewScene(nil, nodes, lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), nil))

	config := DefaultConfig()
	config.MaxDepth = 2
	config.GlossySamples = 8
	di, calls, deepest := countingIntegrator(config)

	di.RayColor(forward, sc, rand.New(rand.NewSource(9)))
	if *deepest != 2 {
		t.Fatalf("Expected reflections to reach depth 2, got %d", *deepest)
	}
	// camera ray, 8 glossy rays, then one jittered ray per branch
	if *calls != 1+8+8 {
		t.Errorf("Expected 17 traces, got %d", *calls)
	}
}

func TestDistributedIntegrator_BaseSceneTraceBudget(t *testing.T) {
	const width, height = 16, 8
	sc := scene.NewBaseScene(width, height)
	config := DefaultConfig()
	di, calls, _ := countingIntegrator(config)
	random := rand.New(rand.NewSource(42))

	budget := 1 + config.GlossySamples*config.MaxDepth
	worst := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			*calls = 0
			di.RayColor(sc.Camera.GenerateRay(x, y, width, height), sc, random)
			worst = max(worst, *calls)
		}
	}
	if worst > budget {
		t.Errorf("Expected at most %d traces per camera ray, worst pixel took %d", budget, worst)
	}
}
