package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and 3D point
	Value(u, v float64, point core.Vec3) core.Vec3
}

// ConstantTexture provides a uniform color
type ConstantTexture struct {
	Color core.Vec3
}

// NewConstantTexture creates a new constant color texture
func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

// Value returns the stored color regardless of coordinates
func (c *ConstantTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	return c.Color
}
