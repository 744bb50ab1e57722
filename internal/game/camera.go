package game

import (
	"math"

	"github.com/Garsondee/Resonant/internal/geom"
)

const (
	cameraNear        = 0.1
	cameraPitchMin    = 0.15
	cameraPitchMax    = 1.5
	cameraDistanceMin = 4.0
	cameraDistanceMax = 80.0
)

// Camera is a perspective orbit camera looking at Focus. Yaw follows the
// geom.Radial convention; Pitch tilts the view down from the horizon.
// The projected image fills the viewport rectangle at (OffX, OffY).
type Camera struct {
	Focus    geom.Vec3
	Yaw      float64
	Pitch    float64
	Distance float64
	FOV      float64 // vertical, radians

	OffX, OffY    float64
	Width, Height float64
}

// NewCamera returns a camera behind and above the origin.
func NewCamera(w, h float64) *Camera {
	return &Camera{
		Pitch:    0.6,
		Distance: 22,
		FOV:      geom.Radians(60),
		Width:    w,
		Height:   h,
	}
}

func (c *Camera) basis() (eye, forward, right, up geom.Vec3) {
	sy, cy := math.Sincos(c.Yaw)
	sp, cp := math.Sincos(c.Pitch)
	forward = geom.Vec3{X: sy * cp, Y: -sp, Z: cy * cp}
	right = geom.Vec3{X: cy, Z: -sy}
	up = forward.Cross(right)
	eye = c.Focus.Sub(forward.Scale(c.Distance))
	return eye, forward, right, up
}

// Eye returns the camera position in world space.
func (c *Camera) Eye() geom.Vec3 {
	eye, _, _, _ := c.basis()
	return eye
}

// WorldToScreen projects p into the viewport. Points behind the near
// plane or outside the viewport report false; the returned position is
// still usable for points in front of the camera.
func (c *Camera) WorldToScreen(p geom.Vec3) (geom.Vec2, bool) {
	eye, forward, right, up := c.basis()
	d := p.Sub(eye)
	z := d.Dot(forward)
	if z < cameraNear {
		return geom.Vec2{X: c.OffX + c.Width/2, Y: c.OffY + c.Height/2}, false
	}

	focal := (c.Height / 2) / math.Tan(c.FOV/2)
	s := geom.Vec2{
		X: c.OffX + c.Width/2 + d.Dot(right)*focal/z,
		Y: c.OffY + c.Height/2 - d.Dot(up)*focal/z,
	}
	visible := s.X >= c.OffX && s.X <= c.OffX+c.Width &&
		s.Y >= c.OffY && s.Y <= c.OffY+c.Height
	return s, visible
}

// Orbit turns the camera around its focus and clamps the pitch.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw = geom.Normalize(c.Yaw + dYaw)
	c.Pitch = math.Max(cameraPitchMin, math.Min(cameraPitchMax, c.Pitch+dPitch))
}

// Zoom scales the orbit distance by factor within fixed bounds.
func (c *Camera) Zoom(factor float64) {
	c.Distance = math.Max(cameraDistanceMin, math.Min(cameraDistanceMax, c.Distance*factor))
}

// SetViewport places the projected image inside the window.
func (c *Camera) SetViewport(x, y, w, h float64) {
	c.OffX, c.OffY, c.Width, c.Height = x, y, w, h
}
