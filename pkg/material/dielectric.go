package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Glass never absorbs: the result is always a single reflected or refracted ray.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	dot := direction.Dot(hit.Normal)

	// The stored normal always points out of the sphere; the sign of the
	// dot product tells us whether we are leaving or entering the medium.
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dot > 0 {
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dot / direction.Length()
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dot / direction.Length()
	}

	if refracted, ok := Refract(direction, outwardNormal, niOverNt); ok {
		if sampler.Get1D() > Schlick(cosine, d.RefractiveIndex) {
			return ScatterResult{
				Scattered:   core.NewRayAtTime(hit.Point, refracted, rayIn.Time),
				Attenuation: attenuation,
			}, true
		}
	}

	// Total internal reflection, or the Fresnel draw chose reflection
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, Reflect(direction, hit.Normal), rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Refract bends v through a surface with normal n using Snell's law.
// Returns false when the discriminant is not positive (total internal reflection).
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation
func Schlick(cosine, refractiveIndex float64) float64 {
	// R0 is the reflectance at normal incidence
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
