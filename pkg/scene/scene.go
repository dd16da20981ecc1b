package scene

import (
	"fmt"

	"github.com/df07/go-drt-raytracer/pkg/core"
	"github.com/df07/go-drt-raytracer/pkg/geometry"
	"github.com/df07/go-drt-raytracer/pkg/lights"
	"github.com/df07/go-drt-raytracer/pkg/material"
)

// DefaultBackground is the sky color returned for rays that miss everything
var DefaultBackground = core.NewVec3(0.89, 0.882, 0.831)

// Node pairs a geometry with the material it is shaded with
type Node struct {
	Geometry geometry.Geometry
	Material material.Material
}

// Scene contains all the elements needed for rendering.
// It is built once and only read while rendering.
type Scene struct {
	Camera     *geometry.PerspectiveCamera
	Nodes      []Node       // Ordered; hit indices refer to this slice
	Light      lights.Light // Single scene light
	Background core.Vec3    // Color for rays that miss every node

	geometries []geometry.Geometry
}

// NewScene creates a scene with the default background
func NewScene(camera *geometry.PerspectiveCamera, nodes []Node, light lights.Light) *Scene {
	s := &Scene{
		Camera:     camera,
		Nodes:      nodes,
		Light:      light,
		Background: DefaultBackground,
	}
	s.geometries = s.buildGeometries()
	return s
}

// AddNode appends a geometry/material pair. Not safe once rendering has started.
func (s *Scene) AddNode(g geometry.Geometry, m material.Material) {
	s.Nodes = append(s.Nodes, Node{Geometry: g, Material: m})
	s.geometries = s.buildGeometries()
}

// Validate checks the scene can be rendered and prepares the geometry list
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	if err := s.Camera.Config().Validate(); err != nil {
		return fmt.Errorf("scene camera: %w", err)
	}
	if len(s.Nodes) == 0 {
		return ErrNoGeometry
	}
	for i, node := range s.Nodes {
		if node.Geometry == nil {
			return fmt.Errorf("node %d: %w", i, ErrMissingGeometry)
		}
		if node.Material == nil {
			return fmt.Errorf("node %d: %w", i, ErrMissingMaterial)
		}
	}
	if s.Light == nil {
		return ErrNoLight
	}

	s.geometries = s.buildGeometries()
	return nil
}

// Geometries returns the node geometries in node order
func (s *Scene) Geometries() []geometry.Geometry {
	if len(s.geometries) == len(s.Nodes) {
		return s.geometries
	}
	// Scene was assembled by hand; build without caching so concurrent readers never write
	return s.buildGeometries()
}

// MaterialAt returns the material of the node at index
func (s *Scene) MaterialAt(index int) material.Material {
	return s.Nodes[index].Material
}

// GetPrimitiveCount returns the number of nodes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Nodes)
}

func (s *Scene) buildGeometries() []geometry.Geometry {
	geometries := make([]geometry.Geometry, len(s.Nodes))
	for i, node := range s.Nodes {
		geometries[i] = node.Geometry
	}
	return geometries
}
