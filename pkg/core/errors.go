package core

import "errors"

var (
	// ErrInvalidConfiguration is returned when render or camera parameters cannot produce an image
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDegenerateGeometry is returned when a surface's parameters make intersection undefined
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
