package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// checkerFrequency controls the size of the checks in world units
const checkerFrequency = 10.0

// CheckerTexture alternates between two textures in a 3D checkerboard.
// The pattern is a function of world position only; (u, v) are forwarded
// to the sub-textures untouched.
type CheckerTexture struct {
	Odd  Texture // Used where the sine product is negative
	Even Texture // Used everywhere else
}

// NewCheckerTexture creates a procedural checkerboard from two textures
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewCheckerColors is a shortcut for a checkerboard of two solid colors
func NewCheckerColors(odd, even core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewConstantTexture(odd), NewConstantTexture(even))
}

// Value picks the sub-texture from the sign of sin(10x)·sin(10y)·sin(10z)
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(checkerFrequency*point.X) *
		math.Sin(checkerFrequency*point.Y) *
		math.Sin(checkerFrequency*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}
