package draw

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Resonant/internal/geom"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 120}
)

// flat projects X/Z straight onto the screen and treats every point as visible.
var flat = ProjectorFunc(func(p geom.Vec3) (geom.Vec2, bool) {
	return geom.Vec2{X: p.X, Y: p.Z}, true
})

// offscreen projects like flat but never reports a visible point.
var offscreen = ProjectorFunc(func(p geom.Vec3) (geom.Vec2, bool) {
	return geom.Vec2{X: p.X, Y: p.Z}, false
})

func TestShape_StrokeOnly(t *testing.T) {
	rec := &Recorder{}
	s := NewShape(flat, rec, NewBrush(red, 2))
	s.Point(geom.Vec3{})
	s.Point(geom.Vec3{X: 1})
	s.Done()

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, CallStroke, rec.Calls[0].Kind)
	assert.Equal(t, red, rec.Calls[0].Color)
	assert.Equal(t, float32(2), rec.Calls[0].Thickness)
	assert.Len(t, rec.Calls[0].Points, 2)
}

func TestShape_FillWinsOverStroke(t *testing.T) {
	rec := &Recorder{}
	s := NewShape(flat, rec, WithFill(NewBrush(red, 2), green))
	s.Point(geom.Vec3{})
	s.Point(geom.Vec3{X: 1})
	s.Point(geom.Vec3{Z: 1})
	s.Done()

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, CallFill, rec.Calls[0].Kind)
	assert.Equal(t, green, rec.Calls[0].Color)
}

func TestShape_NoFillNoThicknessDrawsNothing(t *testing.T) {
	rec := &Recorder{}
	s := NewShape(flat, rec, NewBrush(red, 0))
	s.Point(geom.Vec3{})
	s.Point(geom.Vec3{X: 1})
	s.Done()
	assert.Empty(t, rec.Calls)
}

func TestShape_CulledWhenNothingVisible(t *testing.T) {
	rec := &Recorder{}
	s := NewShape(offscreen, rec, NewBrush(red, 2))
	s.Arc(geom.Vec3{}, 5, 0, math.Pi)
	s.Done()
	assert.Empty(t, rec.Calls)
}

func TestShape_OneVisiblePointKeepsWholePath(t *testing.T) {
	first := true
	proj := ProjectorFunc(func(p geom.Vec3) (geom.Vec2, bool) {
		v := first
		first = false
		return geom.Vec2{X: p.X, Y: p.Z}, v
	})
	rec := &Recorder{}
	s := NewShape(proj, rec, NewBrush(red, 1))
	s.Point(geom.Vec3{})
	s.Point(geom.Vec3{X: 100})
	s.Point(geom.Vec3{X: 200})
	s.Done()

	require.Len(t, rec.Calls, 1)
	assert.Len(t, rec.Calls[0].Points, 3, "off-screen points stay in the path")
}

func TestShape_DoneIsFinal(t *testing.T) {
	rec := &Recorder{}
	s := NewShape(flat, rec, NewBrush(red, 1))
	s.Point(geom.Vec3{})
	s.Point(geom.Vec3{X: 1})
	s.Done()
	s.Point(geom.Vec3{X: 2})
	s.Done()

	require.Len(t, rec.Calls, 1, "a shape emits at most one call")
	assert.Len(t, rec.Calls[0].Points, 2)
}

func TestShape_ArcIsInclusiveOfBothEnds(t *testing.T) {
	rec := &Recorder{}
	start, end := 0.0, geom.Radians(90)
	s := NewShape(flat, rec, NewBrush(red, 1))
	s.Arc(geom.Vec3{}, 2, start, end)
	assert.Equal(t, geom.ArcSegments(start, end)+1, s.Len())
	s.Done()

	pts := rec.Calls[0].Points
	assert.InDelta(t, 0.0, pts[0].X, 1e-9)
	assert.InDelta(t, 2.0, pts[0].Y, 1e-9)
	assert.InDelta(t, 2.0, pts[len(pts)-1].X, 1e-9)
	assert.InDelta(t, 0.0, pts[len(pts)-1].Y, 1e-9)
}

func TestShape_ZeroSpanArcIsDegenerateNotFatal(t *testing.T) {
	rec := &Recorder{}
	s := NewShape(flat, rec, NewBrush(red, 1))
	s.Arc(geom.Vec3{}, 2, 1, 1)
	s.Done()

	require.Len(t, rec.Calls, 1)
	assert.Len(t, rec.Calls[0].Points, 2)
	assert.Equal(t, rec.Calls[0].Points[0], rec.Calls[0].Points[1])
}

func TestScaleAlpha_Clamps(t *testing.T) {
	assert.Equal(t, uint8(26), ScaleAlpha(red, 0.1).A)
	assert.Equal(t, uint8(255), ScaleAlpha(red, 4).A)
	assert.Equal(t, uint8(0), ScaleAlpha(red, -1).A)
}

func TestTopDown_ViewportBounds(t *testing.T) {
	proj := TopDown(geom.Vec2{X: 50, Y: 50}, 10, 100, 100)

	p, ok := proj.WorldToScreen(geom.Vec3{X: 1, Z: 1})
	assert.True(t, ok)
	assert.Equal(t, geom.Vec2{X: 60, Y: 40}, p)

	_, ok = proj.WorldToScreen(geom.Vec3{X: 10})
	assert.False(t, ok)
}
