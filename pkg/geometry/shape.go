package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// SurfaceList is an aggregate surface that returns the closest hit among its members.
// It is built once and then only read, so it can be shared between render workers.
type SurfaceList struct {
	Surfaces []Surface
}

// NewSurfaceList creates a surface list from the given surfaces
func NewSurfaceList(surfaces ...Surface) *SurfaceList {
	return &SurfaceList{Surfaces: surfaces}
}

// Add appends surfaces to the list
func (l *SurfaceList) Add(surfaces ...Surface) {
	l.Surfaces = append(l.Surfaces, surfaces...)
}

// Len returns the number of member surfaces
func (l *SurfaceList) Len() int {
	return len(l.Surfaces)
}

// Hit scans every member, shrinking tMax to the closest hit found so far
func (l *SurfaceList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, surface := range l.Surfaces {
		if hit, isHit := surface.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Validate checks every member that implements Validator
func (l *SurfaceList) Validate() error {
	for i, surface := range l.Surfaces {
		if validator, ok := surface.(Validator); ok {
			if err := validator.Validate(); err != nil {
				return fmt.Errorf("surface %d: %w", i, err)
			}
		}
	}
	return nil
}
