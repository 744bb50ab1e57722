package draw

import (
	"image/color"

	"github.com/Garsondee/Resonant/internal/geom"
)

// Projector maps world positions to screen pixels and reports whether the
// projected point falls inside the viewport.
type Projector interface {
	WorldToScreen(p geom.Vec3) (geom.Vec2, bool)
}

// ProjectorFunc adapts a plain function to Projector.
type ProjectorFunc func(p geom.Vec3) (geom.Vec2, bool)

func (f ProjectorFunc) WorldToScreen(p geom.Vec3) (geom.Vec2, bool) { return f(p) }

// Surface receives finished paths. FillConvex is only ever handed convex
// (or near-convex) point lists; Stroke draws an open polyline through the
// points in order.
type Surface interface {
	FillConvex(points []geom.Vec2, fill color.NRGBA)
	Stroke(points []geom.Vec2, c color.NRGBA, thickness float32)
}
