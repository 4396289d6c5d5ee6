package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("renderer")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel row workers
	Seed            int64 // Base seed; worker i uses Seed+i
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           640,
		Height:          480,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      8,
		Seed:            42,
	}
}

// MergeSamplingConfig overlays the non-zero fields of override onto base.
// Seed is always taken from override since zero is a valid seed.
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	result.Seed = override.Seed
	return result
}

// Validate checks that the configuration can produce an image
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("image size %dx%d must be positive: %w", c.Width, c.Height, core.ErrInvalidConfiguration)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel %d must be positive: %w", c.SamplesPerPixel, core.ErrInvalidConfiguration)
	case c.MaxDepth <= 0:
		return fmt.Errorf("max depth %d must be positive: %w", c.MaxDepth, core.ErrInvalidConfiguration)
	case c.NumWorkers <= 0:
		return fmt.Errorf("worker count %d must be positive: %w", c.NumWorkers, core.ErrInvalidConfiguration)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Surface
	GetBackground() integrator.Background
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	config     SamplingConfig
	integrator integrator.Integrator
}

// NewRaytracer creates a new raytracer using path tracing with the scene's background
func NewRaytracer(scene Scene, config SamplingConfig) *Raytracer {
	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = config.MaxDepth
	if background := scene.GetBackground(); background != nil {
		integratorConfig.Background = background
	}

	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(integratorConfig),
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render renders the full image with the configured worker pool.
// The scene and camera are only read, so all workers share them.
func (rt *Raytracer) Render() (*Image, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	width, height := rt.config.Width, rt.config.Height
	img := NewImage(width, height)
	pool := NewWorkerPool(rt.config.NumWorkers, height)

	logger.Infof("rendering %dx%d, %d spp, depth %d, %d workers",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	startTime := time.Now()
	workers := pool.Run(func(workerID int, rows []int) WorkerStats {
		sampler := core.NewSeededSampler(rt.config.Seed + int64(workerID))
		return rt.renderStripe(img, workerID, rows, sampler)
	})
	stats := collectStats(width, height, workers, time.Since(startTime))

	logger.Noticef("rendered %d samples in %v", stats.TotalSamples, stats.Duration)
	return img, stats, nil
}

// renderStripe renders the given rows into img with a worker-private sampler
func (rt *Raytracer) renderStripe(img *Image, workerID int, rows []int, sampler core.Sampler) WorkerStats {
	start := time.Now()
	stats := WorkerStats{ID: workerID}

	for _, y := range rows {
		// y counts up from the bottom of the picture, raster rows go down
		for x := 0; x < rt.config.Width; x++ {
			img.SetPixel(x, rt.config.Height-y-1, GammaCorrect(rt.RenderPixel(x, y, sampler)))
		}
		stats.Rows++
		stats.Samples += rt.config.Width * rt.config.SamplesPerPixel
	}

	stats.Duration = time.Since(start)
	logger.Debugf("worker %d finished %d rows in %v", workerID, stats.Rows, stats.Duration)
	return stats
}

// RenderPixel returns the averaged linear radiance of pixel (x, y), where
// y is measured from the bottom of the image.
func (rt *Raytracer) RenderPixel(x, y int, sampler core.Sampler) core.Vec3 {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Jitter within the pixel and map to normalized image coordinates
		s := (float64(x) + sampler.Get1D()) / float64(rt.config.Width)
		t := (float64(y) + sampler.Get1D()) / float64(rt.config.Height)

		ray := camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, world, sampler))
	}

	return colorAccum.Divide(float64(rt.config.SamplesPerPixel))
}
