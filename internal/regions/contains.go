package regions

import "github.com/Garsondee/Resonant/internal/geom"

// Contains reports whether point lies strictly inside the region's radius
// band and within its sector, measured from actor. Points on either radius
// are outside.
func Contains(r Region, actor geom.Pose, point geom.Vec3) bool {
	d := geom.PlanarDistance(actor.Position, point)
	if !(r.Inner < d && d < r.Outer) {
		return false
	}
	angle := actor.Local(geom.PlanarBearing(actor.Position, point))
	return r.Positional.Contains(angle)
}

// Highlight returns the first pair whose region contains point. Overlaps
// resolve to the earlier pair.
func Highlight(pairs []Pair, actor geom.Pose, point geom.Vec3) (Pair, bool) {
	for _, p := range pairs {
		if Contains(p.Region, actor, point) {
			return p, true
		}
	}
	return Pair{}, false
}
