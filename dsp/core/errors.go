package core

import "errors"

// Error kinds returned by the rendering and encoding entry points.
// Callers match them with errors.Is; the wrapped message carries the
// offending value.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidBuffer    = errors.New("invalid buffer")
)
