package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each worker its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a fresh generator with the given seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleInUnitDisc maps a sample to a point in the unit disc on the XY plane.
// Radius and angle are both taken straight from the sample, so points cluster
// toward the center instead of covering the disc uniformly. Lens blur shape
// depends on this distribution.
func SampleInUnitDisc(sample Vec2) Vec3 {
	radius := sample.X
	theta := 2 * math.Pi * sample.Y
	return NewVec3(radius*math.Cos(theta), radius*math.Sin(theta), 0)
}

// SampleInUnitSphere maps a sample to a perturbation point built from
// independent radius, azimuth and elevation draws. Like SampleInUnitDisc this
// is not volume-uniform, and the elevation term is applied on top of a full
// radius in the XY plane, so the length can reach sqrt(2).
func SampleInUnitSphere(sample Vec3) Vec3 {
	radius := sample.X
	theta := 2 * math.Pi * sample.Y
	phi := math.Pi*sample.Z - math.Pi/2
	return NewVec3(
		radius*math.Cos(theta),
		radius*math.Sin(theta),
		radius*math.Sin(phi),
	)
}

// RandomInUnitDisc draws a lens sample from the sampler
func RandomInUnitDisc(sampler Sampler) Vec3 {
	return SampleInUnitDisc(sampler.Get2D())
}

// RandomInUnitSphere draws a scatter perturbation from the sampler
func RandomInUnitSphere(sampler Sampler) Vec3 {
	return SampleInUnitSphere(sampler.Get3D())
}
