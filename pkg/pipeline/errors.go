package pipeline

import "errors"

var (
	ErrMissingInput  = errors.New("pipeline: pass input not available")
	ErrMissingOutput = errors.New("pipeline: pass did not produce a declared output")
	ErrFlowCancelled = errors.New("pipeline: flow cancelled")
	ErrUnknownFlow   = errors.New("pipeline: unknown flow")
	ErrUnknownKey    = errors.New("pipeline: unknown key")
)
