package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/Resonant/internal/geom"
)

func TestCamera_FocusProjectsToViewportCentre(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetViewport(100, 50, 800, 600)
	c.Focus = geom.Vec3{X: 3, Z: -2}

	s, ok := c.WorldToScreen(c.Focus)
	assert.True(t, ok)
	assert.InDelta(t, 500, s.X, 1e-9)
	assert.InDelta(t, 350, s.Y, 1e-9)
}

func TestCamera_ScreenAxesFollowYaw(t *testing.T) {
	c := NewCamera(800, 600)
	centre := geom.Vec2{X: 400, Y: 300}

	s, ok := c.WorldToScreen(geom.Vec3{X: 1})
	assert.True(t, ok)
	assert.Greater(t, s.X, centre.X, "+X is to the right when looking along +Z")

	s, _ = c.WorldToScreen(geom.Vec3{Y: 1})
	assert.Less(t, s.Y, centre.Y, "up is up")

	c.Orbit(math.Pi/2, 0)
	s, _ = c.WorldToScreen(geom.Vec3{Z: -1})
	assert.Greater(t, s.X, centre.X, "looking along +X puts -Z on the right")
}

func TestCamera_BehindEyeIsHidden(t *testing.T) {
	c := NewCamera(800, 600)
	behind := c.Eye().Sub(geom.Vec3{Z: 5})
	_, ok := c.WorldToScreen(behind)
	assert.False(t, ok)
}

func TestCamera_FarOffAxisIsOutsideViewport(t *testing.T) {
	c := NewCamera(800, 600)
	_, ok := c.WorldToScreen(geom.Vec3{X: 500})
	assert.False(t, ok)
}

func TestCamera_OrbitAndZoomClamp(t *testing.T) {
	c := NewCamera(800, 600)
	c.Orbit(0, 10)
	assert.Equal(t, cameraPitchMax, c.Pitch)
	c.Orbit(0, -10)
	assert.Equal(t, cameraPitchMin, c.Pitch)

	c.Orbit(-math.Pi/2, 0)
	assert.InDelta(t, 3*math.Pi/2, c.Yaw, 1e-12)

	c.Zoom(100)
	assert.Equal(t, cameraDistanceMax, c.Distance)
	c.Zoom(0.001)
	assert.Equal(t, cameraDistanceMin, c.Distance)
}
