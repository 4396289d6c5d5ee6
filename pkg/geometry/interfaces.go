package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Surface interface for objects that can be hit by rays.
// Hit reports the nearest intersection with t in [tMin, tMax).
type Surface interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// Validator interface for surfaces that can check their parameters before rendering
type Validator interface {
	Validate() error
}
