package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background returns the radiance seen by a ray that hits nothing
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// GradientBackground blends between two colors on the vertical axis
type GradientBackground struct {
	Bottom core.Vec3 // Color looking straight down
	Top    core.Vec3 // Color looking straight up
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(bottom, top core.Vec3) *GradientBackground {
	return &GradientBackground{Bottom: bottom, Top: top}
}

// NewUniformBackground creates a background with no variation
func NewUniformBackground(color core.Vec3) *GradientBackground {
	return &GradientBackground{Bottom: color, Top: color}
}

// DefaultSky returns the white to light-blue sky gradient
func DefaultSky() *GradientBackground {
	return NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.6, 1.0))
}

// Color returns a gradient color based on ray direction
func (g *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (1.0 + unitDirection.Y)

	// Linear interpolation: (1-t)*bottom + t*top
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}
