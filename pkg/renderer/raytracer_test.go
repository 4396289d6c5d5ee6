package renderer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MockScene is a fixed scene for renderer tests
type MockScene struct {
	camera     *Camera
	world      geometry.Surface
	background integrator.Background
}

func (m MockScene) GetCamera() *Camera                    { return m.camera }
func (m MockScene) GetWorld() geometry.Surface            { return m.world }
func (m MockScene) GetBackground() integrator.Background { return m.background }

func newMockScene(world geometry.Surface, background integrator.Background) MockScene {
	return MockScene{
		camera:     NewCamera(pinholeConfig()),
		world:      world,
		background: background,
	}
}

func testSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           8,
		Height:          6,
		SamplesPerPixel: 4,
		MaxDepth:        5,
		NumWorkers:      3,
		Seed:            42,
	}
}

func TestRaytracer_EmptyWorldShowsBackground(t *testing.T) {
	scene := newMockScene(geometry.NewSurfaceList(),
		integrator.NewUniformBackground(core.NewVec3(0.25, 0.25, 0.25)))

	img, stats, err := NewRaytracer(scene, testSamplingConfig()).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// sqrt(0.25) = 0.5 quantizes to 128
	for i, b := range img.Pix {
		if b != 128 {
			t.Fatalf("Byte %d = %d, expected 128", i, b)
		}
	}
	if stats.TotalPixels != 48 || stats.TotalSamples != 48*4 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if len(stats.Workers) != 3 {
		t.Errorf("Expected 3 worker entries, got %d", len(stats.Workers))
	}
}

func TestRaytracer_DepthLimitGivesBlack(t *testing.T) {
	// A large sphere fills the view; with one allowed interaction every path
	// is cut off before it can escape to the background.
	wall := geometry.NewSphere(core.NewVec3(0, 0, -1000), 990, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8)))
	scene := newMockScene(geometry.NewSurfaceList(wall), integrator.DefaultSky())

	config := testSamplingConfig()
	config.MaxDepth = 1
	img, _, err := NewRaytracer(scene, config).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Byte %d = %d, expected 0", i, b)
		}
	}
}

func TestRaytracer_RowsAreFlipped(t *testing.T) {
	// Black below, white above: the top raster row looks up and must be brighter
	scene := newMockScene(geometry.NewSurfaceList(),
		integrator.NewGradientBackground(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)))

	img, _, err := NewRaytracer(scene, testSamplingConfig()).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	top := img.At(4, 0)
	bottom := img.At(4, img.Height-1)
	if top[0] <= bottom[0] {
		t.Errorf("Expected top row %v to be brighter than bottom row %v", top, bottom)
	}
}

func TestRaytracer_Deterministic(t *testing.T) {
	world := geometry.NewSurfaceList(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(1, 0, -2), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)),
		geometry.NewSphere(core.NewVec3(-1, 0, -2), 0.5, material.NewDielectric(1.5)),
	)
	scene := newMockScene(world, integrator.DefaultSky())

	first, _, err := NewRaytracer(scene, testSamplingConfig()).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, _, err := NewRaytracer(scene, testSamplingConfig()).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Expected identical images for the same seed and worker count")
	}
}

func TestRaytracer_RenderPixelAverages(t *testing.T) {
	scene := newMockScene(geometry.NewSurfaceList(),
		integrator.NewUniformBackground(core.NewVec3(0.2, 0.4, 0.6)))
	config := testSamplingConfig()
	config.SamplesPerPixel = 10

	got := NewRaytracer(scene, config).RenderPixel(3, 2, core.NewSeededSampler(1))
	if !vecNear(got, core.NewVec3(0.2, 0.4, 0.6), 1e-9) {
		t.Errorf("Expected average (0.2,0.4,0.6), got %v", got)
	}
}

func TestRaytracer_InvalidConfig(t *testing.T) {
	scene := newMockScene(geometry.NewSurfaceList(), integrator.DefaultSky())

	tests := []struct {
		name   string
		modify func(c *SamplingConfig)
	}{
		{"zero width", func(c *SamplingConfig) { c.Width = 0 }},
		{"negative height", func(c *SamplingConfig) { c.Height = -1 }},
		{"zero samples", func(c *SamplingConfig) { c.SamplesPerPixel = 0 }},
		{"zero depth", func(c *SamplingConfig) { c.MaxDepth = 0 }},
		{"zero workers", func(c *SamplingConfig) { c.NumWorkers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testSamplingConfig()
			tt.modify(&config)
			img, _, err := NewRaytracer(scene, config).Render()
			if !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
			if img != nil {
				t.Error("Expected no image on error")
			}
		})
	}
}

func TestMergeSamplingConfig(t *testing.T) {
	merged := MergeSamplingConfig(DefaultSamplingConfig(), SamplingConfig{Width: 320, Seed: 7})

	if merged.Width != 320 || merged.Seed != 7 {
		t.Errorf("Expected overrides applied, got %+v", merged)
	}
	if merged.Height != 480 || merged.SamplesPerPixel != 100 || merged.MaxDepth != 50 {
		t.Errorf("Expected defaults kept, got %+v", merged)
	}
}

// constantIntegrator returns the same radiance for every ray
type constantIntegrator struct {
	color core.Vec3
}

func (c constantIntegrator) RayColor(ray core.Ray, world geometry.Surface, sampler core.Sampler) core.Vec3 {
	return c.color
}

func TestRaytracer_SetIntegrator(t *testing.T) {
	scene := newMockScene(geometry.NewSurfaceList(), integrator.DefaultSky())
	rt := NewRaytracer(scene, testSamplingConfig())
	rt.SetIntegrator(constantIntegrator{color: core.NewVec3(1, 0, 0)})

	img, _, err := rt.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := img.At(0, 0); got != [3]uint8{255, 0, 0} {
		t.Errorf("Expected red from the replaced integrator, got %v", got)
	}
	if rt.Config().SamplesPerPixel != 4 {
		t.Errorf("Expected config to be kept, got %+v", rt.Config())
	}
}

func TestRaytracer_SingleSphereBytes(t *testing.T) {
	// One diffuse sphere on a flat background, one sample, one interaction:
	// camera rays that hit the sphere end black, the rest show the background.
	cameraConfig := pinholeConfig()
	cameraConfig.AspectRatio = 16.0 / 12.0
	scene := MockScene{
		camera: NewCamera(cameraConfig),
		world: geometry.NewSurfaceList(
			geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		),
		background: integrator.NewUniformBackground(core.NewVec3(0.25, 0.25, 0.25)),
	}
	config := SamplingConfig{Width: 16, Height: 12, SamplesPerPixel: 1, MaxDepth: 1, NumWorkers: 4, Seed: 42}

	img, _, err := NewRaytracer(scene, config).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// The sphere's silhouette on the image plane at z=-1 is a disc of
	// radius² 1/8 around the origin (sin of the half angle is 1/3).
	const silhouette = 1.0 / 8.0
	halfWidth, halfHeight := 4.0/3.0, 1.0
	pixelW, pixelH := 2*halfWidth/16, 2*halfHeight/12

	inside, outside := 0, 0
	for row := 0; row < config.Height; row++ {
		y := config.Height - row - 1
		x0, y0 := -halfWidth, -halfHeight+float64(y)*pixelH
		for x := 0; x < config.Width; x++ {
			left, right := x0+float64(x)*pixelW, x0+float64(x+1)*pixelW
			bottom, top := y0, y0+pixelH

			farX, farY := max(left*left, right*right), max(bottom*bottom, top*top)
			nearX, nearY := nearestSquared(left, right), nearestSquared(bottom, top)

			got := img.At(x, row)
			if got[0] != got[1] || got[1] != got[2] {
				t.Errorf("Pixel (%d,%d) is not gray: %v", x, row, got)
			}
			switch {
			case farX+farY < silhouette:
				inside++
				if got[0] != 0 {
					t.Errorf("Pixel (%d,%d) lies on the sphere but is %v", x, row, got)
				}
			case nearX+nearY > silhouette:
				outside++
				if got[0] != 128 {
					t.Errorf("Pixel (%d,%d) misses the sphere but is %v", x, row, got)
				}
			default:
				if got[0] != 0 && got[0] != 128 {
					t.Errorf("Edge pixel (%d,%d) = %v, expected 0 or 128", x, row, got)
				}
			}
		}
	}
	if inside == 0 || outside == 0 {
		t.Fatalf("Expected pixels fully on and fully off the sphere, got %d and %d", inside, outside)
	}

	again, _, err := NewRaytracer(scene, config).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Equal(img.Pix, again.Pix) {
		t.Error("Expected identical bytes for the same seed")
	}
}

// nearestSquared returns the smallest square of any value in [lo, hi]
func nearestSquared(lo, hi float64) float64 {
	if lo <= 0 && hi >= 0 {
		return 0
	}
	return min(lo*lo, hi*hi)
}

func TestMergeSamplingConfig_ZeroSeed(t *testing.T) {
	merged := MergeSamplingConfig(DefaultSamplingConfig(), SamplingConfig{Seed: 0})
	if merged.Seed != 0 {
		t.Errorf("Expected seed 0 to be kept, got %d", merged.Seed)
	}
}
