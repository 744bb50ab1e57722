package draw

import "github.com/Garsondee/Resonant/internal/geom"

// Shape accumulates one path from world-space points and emits it as a
// single fill or stroke. A Shape is discarded after Done.
//
// Culling is best effort: a path whose vertices all project off-screen is
// dropped even though one of its edges might still cross the viewport.
type Shape struct {
	proj    Projector
	surface Surface
	brush   Brush

	path    []geom.Vec2
	visible bool
	done    bool
}

// NewShape starts an empty path painted with brush.
func NewShape(proj Projector, surface Surface, brush Brush) *Shape {
	return &Shape{
		proj:    proj,
		surface: surface,
		brush:   brush,
		path:    make([]geom.Vec2, 0, 16),
	}
}

// Point projects a world position and appends it to the path. Off-screen
// points are kept so the path stays continuous.
func (s *Shape) Point(world geom.Vec3) {
	if s.done {
		return
	}
	p, ok := s.proj.WorldToScreen(world)
	s.path = append(s.path, p)
	if ok {
		s.visible = true
	}
}

// Radial appends the point at radius from center along angle.
func (s *Shape) Radial(center geom.Vec3, radius, angle float64) {
	s.Point(geom.Radial(center, radius, angle))
}

// Arc appends segments+1 points from start to end inclusive.
func (s *Shape) Arc(center geom.Vec3, radius, start, end float64) {
	segments := geom.ArcSegments(start, end)
	step := (end - start) / float64(segments)
	for i := 0; i <= segments; i++ {
		s.Radial(center, radius, start+step*float64(i))
	}
}

// Len returns the number of points accumulated so far.
func (s *Shape) Len() int { return len(s.path) }

// Done emits the path. Fill wins over stroke; a brush with neither draws
// nothing. Calling Done again is a no-op.
func (s *Shape) Done() {
	if s.done {
		return
	}
	s.done = true
	path := s.path
	s.path = nil

	if !s.visible || len(path) == 0 {
		return
	}
	switch {
	case s.brush.HasFill():
		s.surface.FillConvex(path, s.brush.Fill)
	case s.brush.Thickness != 0:
		s.surface.Stroke(path, s.brush.Color, s.brush.Thickness)
	}
}
