package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo Texture // Metal color
	Fuzz   float64 // 0.0 = perfect mirror
}

// NewMetal creates a new metal material with solid color
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: NewConstantTexture(albedo), Fuzz: fuzz}
}

// NewTexturedMetal creates a new metal material with texture
func NewTexturedMetal(albedo Texture, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Only scatter if the mirror direction leaves the surface
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	direction := reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: m.Albedo.Value(0, 0, hit.Point),
	}, true
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
