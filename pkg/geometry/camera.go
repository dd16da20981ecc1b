package geometry

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-drt-raytracer/pkg/core"
)

// ErrDegenerateCamera is returned by CameraConfig.Validate for cameras that
// cannot produce rays.
var ErrDegenerateCamera = errors.New("geometry: degenerate camera")

// CameraConfig describes a perspective camera
type CameraConfig struct {
	Origin core.Vec3 // Eye position
	Front  core.Vec3 // Viewing direction
	RefUp  core.Vec3 // Reference up, need not be orthogonal to Front
	FovY   float64   // Vertical field of view in degrees
	Aspect float64   // Width / height
	Near   float64   // Distance to the image plane
	Far    float64   // Far plane, used by depth visualisation
}

// Validate reports configurations with a zero near-plane extent or no usable basis
func (c CameraConfig) Validate() error {
	if c.Near <= 0 {
		return fmt.Errorf("%w: near plane %v must be positive", ErrDegenerateCamera, c.Near)
	}
	if c.Far <= c.Near {
		return fmt.Errorf("%w: far plane %v must lie beyond near plane %v", ErrDegenerateCamera, c.Far, c.Near)
	}
	if c.FovY <= 0 || c.FovY >= 180 {
		return fmt.Errorf("%w: vertical fov %v out of range (0, 180)", ErrDegenerateCamera, c.FovY)
	}
	if c.Aspect <= 0 {
		return fmt.Errorf("%w: aspect ratio %v must be positive", ErrDegenerateCamera, c.Aspect)
	}

	front, ok := c.Front.TryNormalize()
	if !ok {
		return fmt.Errorf("%w: front: %w", ErrDegenerateCamera, core.ErrDegenerateVector)
	}
	refUp, ok := c.RefUp.TryNormalize()
	if !ok {
		return fmt.Errorf("%w: reference up: %w", ErrDegenerateCamera, core.ErrDegenerateVector)
	}
	if front.Cross(refUp).Length() < 1e-9 {
		return fmt.Errorf("%w: front is parallel to reference up", ErrDegenerateCamera)
	}
	return nil
}

// PerspectiveCamera generates primary rays through a near image plane
type PerspectiveCamera struct {
	config CameraConfig

	origin core.Vec3
	front  core.Vec3
	right  core.Vec3
	up     core.Vec3

	planeHeight float64 // Image plane extent at the near distance
	planeWidth  float64
}

// NewPerspectiveCamera creates a camera from the given configuration.
// Callers are expected to have validated the config.
func NewPerspectiveCamera(config CameraConfig) *PerspectiveCamera {
	front := config.Front.Normalize()
	refUp := config.RefUp.Normalize()
	right := front.Cross(refUp).Normalize()
	up := right.Cross(front).Normalize()

	planeHeight := 2 * math.Tan(config.FovY*0.5*math.Pi/180) * config.Near

	return &PerspectiveCamera{
		config:      config,
		origin:      config.Origin,
		front:       front,
		right:       right,
		up:          up,
		planeHeight: planeHeight,
		planeWidth:  config.Aspect * planeHeight,
	}
}

// Config returns the configuration the camera was built from
func (c *PerspectiveCamera) Config() CameraConfig { return c.config }

// Origin returns the eye position
func (c *PerspectiveCamera) Origin() core.Vec3 { return c.origin }

// Front returns the normalized viewing direction
func (c *PerspectiveCamera) Front() core.Vec3 { return c.front }

// Right returns the normalized right basis vector
func (c *PerspectiveCamera) Right() core.Vec3 { return c.right }

// Up returns the normalized up basis vector
func (c *PerspectiveCamera) Up() core.Vec3 { return c.up }

// Near returns the near plane distance
func (c *PerspectiveCamera) Near() float64 { return c.config.Near }

// Far returns the far plane distance
func (c *PerspectiveCamera) Far() float64 { return c.config.Far }

// FovX returns the horizontal field of view in degrees
func (c *PerspectiveCamera) FovX() float64 {
	halfY := c.config.FovY * 0.5 * math.Pi / 180
	return 2 * math.Atan(c.config.Aspect*math.Tan(halfY)) * 180 / math.Pi
}

// rayThrough builds the ray through normalized image coordinates (u, v) in [0,1]²
func (c *PerspectiveCamera) rayThrough(u, v float64) core.Ray {
	target := c.origin.
		Add(c.front.Multiply(c.config.Near)).
		Add(c.right.Multiply(c.planeWidth * (u - 0.5))).
		Add(c.up.Multiply(c.planeHeight * (v - 0.5)))
	return core.NewRayTo(c.origin, target)
}

// GenerateRay returns the ray through the centre of pixel (x, y).
// y grows upward: y = 0 is the bottom image row.
func (c *PerspectiveCamera) GenerateRay(x, y, width, height int) core.Ray {
	u := (float64(x) + 0.5) / float64(width)
	v := (float64(y) + 0.5) / float64(height)
	return c.rayThrough(u, v)
}

// GenerateMultiRay returns n rays through uniformly jittered positions inside pixel (x, y)
func (c *PerspectiveCamera) GenerateMultiRay(x, y, width, height, n int, random *rand.Rand) []core.Ray {
	rays := make([]core.Ray, n)
	for i := range rays {
		u := (float64(x) + random.Float64()) / float64(width)
		v := (float64(y) + random.Float64()) / float64(height)
		rays[i] = c.rayThrough(u, v)
	}
	return rays
}
