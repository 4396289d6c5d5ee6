package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// gridExtent bounds the a, b loop of small spheres: [-gridExtent, gridExtent)
const gridExtent = 11

// NewRandomScene creates the cover scene: a checkered ground, a grid of small
// randomized spheres and three large feature spheres. The same seed always
// produces the same world.
func NewRandomScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   640.0 / 480.0,
		Aperture:      0.1,
		FocusDistance: 0.0, // Auto-calculate focus distance
		Time0:         0.0,
		Time1:         1.0,
	}

	sampler := core.NewSeededSampler(seed)
	world := geometry.NewSurfaceList()

	ground := material.NewTexturedLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Keep small spheres out of the large ones
	deadZones := []core.Vec3{
		core.NewVec3(-4, 0.2, 0),
		core.NewVec3(0, 0.2, 0),
		core.NewVec3(4, 0.2, 0),
	}

	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			center := core.NewVec3(
				float64(a)+0.6*sampler.Get1D(),
				0.2,
				float64(b)+0.6*sampler.Get1D(),
			)
			if !clearOf(center, deadZones, 0.9) {
				continue
			}
			world.Add(randomSmallSphere(center, sampler))
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	logger.Debugf("random scene seed %d: %d surfaces", seed, world.Len())

	sampling := renderer.DefaultSamplingConfig()
	sampling.Seed = seed
	return newScene(defaultCameraConfig, sampling, world, cameraOverrides)
}

// randomSmallSphere picks a material family by chance: 75% bouncing diffuse,
// 15% fuzzy metal and the rest glass.
func randomSmallSphere(center core.Vec3, sampler core.Sampler) geometry.Surface {
	chance := sampler.Get1D()
	switch {
	case chance < 0.75:
		albedo := core.NewVec3(
			sampler.Get1D()*sampler.Get1D(),
			sampler.Get1D()*sampler.Get1D(),
			sampler.Get1D()*sampler.Get1D(),
		)
		center0 := center.Add(core.NewVec3(0, sampler.Get1D()*0.25, 0))
		center1 := center.Add(core.NewVec3(0, sampler.Get1D()*0.25, 0))
		return geometry.NewMovingSphere(center0, center1, 0.0, 1.0, 0.2, material.NewLambertian(albedo))
	case chance < 0.9:
		albedo := core.NewVec3(
			0.5*(1+sampler.Get1D()),
			0.5*(1+sampler.Get1D()),
			0.5*sampler.Get1D(),
		)
		return geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.1*sampler.Get1D()))
	default:
		return geometry.NewSphere(center, 0.2, material.NewDielectric(1.5))
	}
}

func clearOf(p core.Vec3, zones []core.Vec3, distance float64) bool {
	for _, zone := range zones {
		if p.DistanceTo(zone) <= distance {
			return false
		}
	}
	return true
}
