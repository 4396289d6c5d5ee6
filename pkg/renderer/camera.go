package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane in perfect focus (0 = distance to LookAt)
	Time0, Time1  float64   // Shutter open and close times
	Pinhole       bool      // Ignore Aperture; the only way to merge a zero aperture over a lens
}

// MergeCameraConfig overlays the non-zero fields of override onto base.
// A zero field can't be told apart from an unset one, so use Pinhole to
// turn off depth of field.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Center.IsZero() {
		result.Center = override.Center
	}
	if !override.LookAt.IsZero() {
		result.LookAt = override.LookAt
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.Time0 != 0 || override.Time1 != 0 {
		result.Time0, result.Time1 = override.Time0, override.Time1
	}
	if override.Pinhole {
		result.Pinhole = true
		result.Aperture = 0
	}
	return result
}

// Validate reports configurations that would produce NaN rays
func (c CameraConfig) Validate() error {
	switch {
	case c.Center == c.LookAt:
		return fmt.Errorf("camera center and look-at point coincide at %v: %w", c.Center, core.ErrInvalidConfiguration)
	case c.Up.Cross(c.Center.Subtract(c.LookAt)).IsZero():
		return fmt.Errorf("camera up vector %v is parallel to the view direction: %w", c.Up, core.ErrInvalidConfiguration)
	case c.VFov <= 0 || c.VFov >= 180:
		return fmt.Errorf("vertical field of view %g outside (0, 180): %w", c.VFov, core.ErrInvalidConfiguration)
	case c.AspectRatio <= 0:
		return fmt.Errorf("aspect ratio %g must be positive: %w", c.AspectRatio, core.ErrInvalidConfiguration)
	case c.Aperture < 0:
		return fmt.Errorf("aperture %g must not be negative: %w", c.Aperture, core.ErrInvalidConfiguration)
	case c.FocusDistance < 0:
		return fmt.Errorf("focus distance %g must not be negative: %w", c.FocusDistance, core.ErrInvalidConfiguration)
	case c.Time1 < c.Time0:
		return fmt.Errorf("shutter closes (%g) before it opens (%g): %w", c.Time1, c.Time0, core.ErrInvalidConfiguration)
	}
	return nil
}

// Camera generates rays for rendering using a thin lens model
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis, w points from the target to the eye
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.Center.DistanceTo(config.LookAt)
	}

	lensRadius := config.Aperture / 2
	if config.Pinhole {
		lensRadius = 0
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	lowerLeftCorner := origin.Subtract(
		u.Multiply(halfWidth).Add(v.Multiply(halfHeight)).Add(w).Multiply(focusDistance))

	return &Camera{
		config:          config,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      lensRadius,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// The origin is jittered across the lens and the time across the shutter
// interval; every lens position aims at the same point on the focus plane.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisc(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	time := c.time0 + sampler.Get1D()*(c.time1-c.time0)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRayAtTime(c.origin.Add(offset), direction, time)
}
