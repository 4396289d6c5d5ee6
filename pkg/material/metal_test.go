package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 0, 1),
		Material: metal,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	// Incident (0, -1, -1) normalized reflects to (0, -0.707, 0.707)
	expected := core.NewVec3(0, -1, 1).Normalize()
	if !near(scatter.Scattered.Direction, expected, 1e-10) {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), Material: metal}
	mirror := core.NewVec3(0, -1, 1).Normalize()

	sawPerturbation := false
	for i := 0; i < 200; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, sampler)
		if !ok {
			t.Fatal("Mirror direction leaves the surface, metal should scatter")
		}
		offset := scatter.Scattered.Direction.Subtract(mirror).Length()
		if offset > 0.3*math.Sqrt2+1e-9 {
			t.Fatalf("Fuzz offset %f exceeds fuzz bound", offset)
		}
		if offset > 1e-6 {
			sawPerturbation = true
		}
	}
	if !sawPerturbation {
		t.Error("Expected fuzz to perturb at least one reflection")
	}
}

func TestMetal_ScatterAbsorption(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)

	// Ray travelling with the normal reflects into the surface
	rayIn := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), Material: metal}

	if _, ok := metal.Scatter(rayIn, hit, centerSampler); ok {
		t.Error("Expected metal to absorb a ray reflected below the surface")
	}
}

func TestReflectFunction(t *testing.T) {
	tests := []struct {
		name     string
		v        core.Vec3
		n        core.Vec3
		expected core.Vec3
	}{
		{"head-on", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)},
		{"45 degrees", core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 0)},
		{"tangent", core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflect(tt.v, tt.n); !near(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestReflect_FlipsNormalComponent(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	randomVec := func() core.Vec3 {
		return core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
	}

	for i := 0; i < 500; i++ {
		n := randomVec().Normalize()
		v := randomVec().Multiply(5)
		r := Reflect(v, n)

		if math.Abs(r.Dot(n)+v.Dot(n)) > 1e-9 {
			t.Fatalf("reflect(v,n)·n = %f, want %f", r.Dot(n), -v.Dot(n))
		}
		tangentV := v.Subtract(n.Multiply(v.Dot(n)))
		tangentR := r.Subtract(n.Multiply(r.Dot(n)))
		if !near(tangentV, tangentR, 1e-9) {
			t.Fatalf("Tangential component changed: %v vs %v", tangentV, tangentR)
		}
	}
}
