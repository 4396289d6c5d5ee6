package core

import "image/color"

// ColorFromRGBA converts any color.Color (for example an entry from
// golang.org/x/image/colornames) to a Vec3 with channels in [0,1].
func ColorFromRGBA(c color.Color) Vec3 {
	r, g, b, _ := c.RGBA()
	// RGBA returns uint32 in [0, 65535]
	return NewVec3(
		float64(r)/65535.0,
		float64(g)/65535.0,
		float64(b)/65535.0,
	)
}
