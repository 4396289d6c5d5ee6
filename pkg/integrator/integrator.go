package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms.
// Implementations must be safe to call concurrently against a read-only world
// as long as each caller passes its own sampler.
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, world geometry.Surface, sampler core.Sampler) core.Vec3
}

// Config contains integrator settings
type Config struct {
	MaxDepth   int        // Maximum number of surface interactions per path
	TMin       float64    // Lower bound for hit queries, avoids self-intersection
	Background Background // Radiance returned by rays that escape the scene
}

// DefaultConfig returns the classic sky setup: 50 bounces, 0.01 epsilon
func DefaultConfig() Config {
	return Config{
		MaxDepth:   50,
		TMin:       0.01,
		Background: DefaultSky(),
	}
}
