package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTwoSpheresScene creates two large checkered spheres stacked on top of each other
func NewTwoSpheresScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 640.0 / 480.0,
		Aperture:    0.0,
	}

	checker := material.NewTexturedLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	world := geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return newScene(defaultCameraConfig, renderer.DefaultSamplingConfig(), world, cameraOverrides)
}

// NewSimpleScene creates a ground sphere with a diffuse, a glass and a metal sphere in a row
func NewSimpleScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   640.0 / 480.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	ground := material.NewLambertian(core.ColorFromRGBA(colornames.Olive))
	diffuse := material.NewLambertian(core.ColorFromRGBA(colornames.Steelblue))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.ColorFromRGBA(colornames.Goldenrod), 0.3)

	world := geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, diffuse),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 50
	return newScene(defaultCameraConfig, sampling, world, cameraOverrides)
}
