package renderer

import "errors"

var (
	ErrInvalidSize     = errors.New("renderer: frame buffer dimensions must be positive")
	ErrNoShader        = errors.New("renderer: no pixel shader supplied")
	ErrRenderCancelled = errors.New("renderer: render cancelled")
)
