package draw

import (
	"image/color"
	"math"

	"github.com/Garsondee/Resonant/internal/geom"
)

// Canvas composes Shapes into the overlay primitives. All angles are in
// radians using the geom.Radial convention. A Canvas holds no per-frame
// state; every primitive finishes its own shapes before returning.
type Canvas struct {
	proj    Projector
	surface Surface
}

// NewCanvas binds a projection and a destination surface.
func NewCanvas(proj Projector, surface Surface) *Canvas {
	return &Canvas{proj: proj, surface: surface}
}

func (c *Canvas) shape(b Brush) *Shape { return NewShape(c.proj, c.surface, b) }

// ----------- Actor-relative primitives --------------

// ActorCone draws a cone whose angles are relative to the actor's facing.
func (c *Canvas) ActorCone(actor geom.Pose, radius, start, end float64, b Brush) {
	c.Cone(actor.Position, radius, start+actor.Rotation, end+actor.Rotation, b)
}

// ActorDonutSlice draws an annulus sector relative to the actor's facing.
func (c *Canvas) ActorDonutSlice(actor geom.Pose, inner, outer, start, end float64, b Brush) {
	c.DonutSlice(actor.Position, inner, outer, start+actor.Rotation, end+actor.Rotation, b)
}

// ActorArrow draws a direction triangle whose tip sits at radius along
// angle (relative to the actor's facing). Scale in (0, 1] shrinks the
// triangle toward its tip.
func (c *Canvas) ActorArrow(actor geom.Pose, radius, angle, scale float64, b Brush) {
	direction := angle + actor.Rotation

	// Shift the triangle's centre out along the direction and shrink the
	// radius by the same amount so the tip stays put.
	centerOffset := radius * (1 - scale)
	pos := geom.Radial(actor.Position, centerOffset, direction)
	size := radius - centerOffset

	// At full scale the back edge would run through the actor and poke out
	// past the sides once stroked, so leave it open.
	drawBottom := scale != 1

	s := c.shape(b)
	if drawBottom {
		s.Point(pos)
	}
	s.Radial(pos, size, direction+math.Pi/2)
	s.Radial(pos, size, direction)
	s.Radial(pos, size, direction-math.Pi/2)
	if drawBottom {
		s.Point(pos)
	}
	s.Done()
}

// ----------- Position-based primitives --------------

// Circle draws a full ring.
func (c *Canvas) Circle(center geom.Vec3, radius float64, b Brush) {
	c.CircleArc(center, radius, 0, geom.Tau, b)
}

// CircleArc draws an open arc.
func (c *Canvas) CircleArc(center geom.Vec3, radius, start, end float64, b Brush) {
	s := c.shape(b)
	s.Arc(center, radius, start, end)
	s.Done()
}

// Cone draws a pie slice as a single fan. Only convex for spans up to pi.
func (c *Canvas) Cone(center geom.Vec3, radius, start, end float64, b Brush) {
	s := c.shape(b)
	s.Point(center)
	s.Arc(center, radius, start, end)
	s.Point(center)
	s.Done()
}

// ConeCentered draws a cone of total width spread around direction.
func (c *Canvas) ConeCentered(center geom.Vec3, radius, direction, spread float64, b Brush) {
	c.Cone(center, radius, direction-spread/2, direction+spread/2, b)
}

// DonutSlice draws the area between inner and outer radius from start to
// end. The outline is stroked as one loop; the interior, which is not
// convex, is filled as one convex wedge per arc segment.
func (c *Canvas) DonutSlice(center geom.Vec3, inner, outer, start, end float64, b Brush) {
	if inner == 0 && end-start <= math.Pi+geom.Epsilon {
		c.Cone(center, outer, start, end, b)
		return
	}

	segments := geom.ArcSegments(start, end)
	step := (end - start) / float64(segments)

	outline := c.shape(WithFill(b, color.NRGBA{}))
	outline.Arc(center, outer, start, end)
	outline.Arc(center, inner, end, start)
	outline.Radial(center, outer, start)
	outline.Done()

	if !b.HasFill() {
		return
	}
	wedge := WithThickness(b, 0)
	for i := 0; i < segments; i++ {
		s0 := start + step*float64(i)
		s1 := start + step*float64(i+1)

		s := c.shape(wedge)
		s.Arc(center, outer, s0, s1)
		s.Arc(center, inner, s1, s0)
		s.Radial(center, outer, s0)
		s.Done()
	}
}

// Segment draws a straight line between two world positions.
func (c *Canvas) Segment(from, to geom.Vec3, b Brush) {
	s := c.shape(b)
	s.Point(from)
	s.Point(to)
	s.Done()
}
