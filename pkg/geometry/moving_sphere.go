package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at
// Time0 to Center1 at Time1. Rays pick the position through their Time.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// CenterAt returns the interpolated center at the given time.
// Times outside [Time0, Time1] extrapolate along the same line.
func (m *MovingSphere) CenterAt(time float64) core.Vec3 {
	fraction := (time - m.Time0) / (m.Time1 - m.Time0)
	return m.Center0.Add(m.Center1.Subtract(m.Center0).Multiply(fraction))
}

// Hit tests the ray against the sphere at the ray's time
func (m *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(ray, m.CenterAt(ray.Time), m.Radius, m.Material, tMin, tMax)
}

// Validate checks the radius and that the shutter interval is not empty
func (m *MovingSphere) Validate() error {
	if m.Radius == 0 {
		return fmt.Errorf("moving sphere at %v has zero radius: %w", m.Center0, core.ErrDegenerateGeometry)
	}
	if m.Time0 == m.Time1 {
		return fmt.Errorf("moving sphere at %v has time0 == time1 (%g): %w", m.Center0, m.Time0, core.ErrDegenerateGeometry)
	}
	return nil
}
