package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// fixedSampler returns the same draws every time
type fixedSampler struct {
	v1 float64
	v2 core.Vec2
	v3 core.Vec3
}

func (f fixedSampler) Get1D() float64  { return f.v1 }
func (f fixedSampler) Get2D() core.Vec2 { return f.v2 }
func (f fixedSampler) Get3D() core.Vec3 { return f.v3 }

// centerSampler makes RandomInUnitSphere return the origin
var centerSampler = fixedSampler{v1: 0.5, v2: core.NewVec2(0, 0), v3: core.NewVec3(0, 0, 0.5)}

func near(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
