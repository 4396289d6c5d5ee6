package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.SurfaceList // Objects in the scene, scanned linearly
	Background     integrator.Background // Radiance for rays that escape
	SamplingConfig renderer.SamplingConfig
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the aggregate of all surfaces
func (s *Scene) GetWorld() geometry.Surface {
	return s.World
}

// GetBackground returns the background seen by escaping rays
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// Validate checks the camera, sampling settings and every surface before rendering
func (s *Scene) Validate() error {
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("sampling: %w", err)
	}
	if err := s.World.Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	return nil
}

// newScene builds the camera from defaults plus overrides and wraps the surfaces
func newScene(defaultCamera renderer.CameraConfig, sampling renderer.SamplingConfig, world *geometry.SurfaceList, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := defaultCamera
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCamera, cameraOverrides[0])
	}

	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          world,
		Background:     integrator.DefaultSky(),
		SamplingConfig: sampling,
	}
}

// Builder creates a scene from sampling settings; the camera aspect ratio
// follows the image size.
type Builder func(config renderer.SamplingConfig) *Scene

var builders = map[string]Builder{
	"random": func(config renderer.SamplingConfig) *Scene {
		return NewRandomScene(config.Seed, aspectOverride(config))
	},
	"two-spheres": func(config renderer.SamplingConfig) *Scene {
		return NewTwoSpheresScene(aspectOverride(config))
	},
	"simple": func(config renderer.SamplingConfig) *Scene {
		return NewSimpleScene(aspectOverride(config))
	},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named scene. Non-zero fields of config override the
// scene's own sampling defaults, which all share the default image size.
func Create(name string, config renderer.SamplingConfig) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v): %w", name, Names(), core.ErrInvalidConfiguration)
	}

	s := builder(renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), config))
	s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, config)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	logger.Infof("created scene %q with %d surfaces", name, s.World.Len())
	return s, nil
}

func aspectOverride(config renderer.SamplingConfig) renderer.CameraConfig {
	return renderer.CameraConfig{AspectRatio: float64(config.Width) / float64(config.Height)}
}
