package vmath

import (
	"math"
)

// CellAspect compensates for terminal cells being roughly twice as tall as
// they are wide. Horizontal screen units are stretched by this factor.
const CellAspect = 2.0

// Camera orbits a target point and projects world positions onto the
// terminal cell grid with a simple perspective divide.
type Camera struct {
	Target   Vec3F   // Look-at point
	Distance float64 // Orbit radius from target
	Yaw      float64 // Rotation around Y axis (radians)
	Pitch    float64 // Elevation angle (radians, positive looks down)
	FOV      float64 // Vertical field of view (radians)
}

// NewCamera returns a camera orbiting the origin at a comfortable tilt.
func NewCamera() Camera {
	return Camera{
		Distance: 28,
		Pitch:    0.62,
		FOV:      math.Pi / 3,
	}
}

// Eye returns the camera position in world space.
func (c Camera) Eye() Vec3F {
	cp := math.Cos(c.Pitch)
	return V3FAdd(c.Target, Vec3F{
		X: c.Distance * cp * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cp * math.Cos(c.Yaw),
	})
}

// Project maps a world point to a terminal cell. Returns ok=false when the
// point is behind the eye or lands outside the width×height grid.
func (c Camera) Project(p Vec3F, width, height int) (col, row int, depth float64, ok bool) {
	eye := c.Eye()

	// Look-at basis: forward toward target, right and up orthonormal
	forward := V3FNormalize(V3FSub(c.Target, eye))
	right := V3FNormalize(V3FCross(forward, Vec3F{Y: 1}))
	if right == (Vec3F{}) {
		// Looking straight down: pick an arbitrary stable right axis
		right = Vec3F{X: 1}
	}
	up := V3FCross(right, forward)

	rel := V3FSub(p, eye)
	cx := V3FDot(rel, right)
	cy := V3FDot(rel, up)
	cz := V3FDot(rel, forward)
	if cz <= 0.001 {
		return 0, 0, 0, false
	}

	scale := 1.0 / math.Tan(c.FOV/2)
	sx := cx / cz * scale
	sy := cy / cz * scale

	fw, fh := float64(width), float64(height)
	col = int(fw/2 + sx*fh/2*CellAspect)
	row = int(fh/2 - sy*fh/2)
	if col < 0 || col >= width || row < 0 || row >= height {
		return col, row, cz, false
	}
	return col, row, cz, true
}
