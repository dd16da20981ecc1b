package scene

import "errors"

var (
	ErrNoCamera        = errors.New("scene: no camera defined")
	ErrNoGeometry      = errors.New("scene: no geometry defined")
	ErrMissingGeometry = errors.New("scene: node without geometry")
	ErrMissingMaterial = errors.New("scene: node without material")
	ErrNoLight         = errors.New("scene: no light defined")
	ErrUnknownScene    = errors.New("scene: unknown scene")
	ErrInvalidSize     = errors.New("scene: invalid frame size")
)
