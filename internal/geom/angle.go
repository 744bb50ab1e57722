package geom

import "math"

const (
	// Tau is a full turn in radians.
	Tau = 2 * math.Pi

	// Epsilon absorbs float error when comparing spans against pi.
	Epsilon = 1e-5

	// ArcStep is the angular length covered by one arc segment.
	ArcStep = 5 * math.Pi / 180

	// MaxArcSegments bounds tessellation for spans wider than a full turn.
	MaxArcSegments = 128
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Normalize wraps an angle to [0, Tau).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, Tau)
	if a < 0 {
		a += Tau
	}
	// Mod of a tiny negative value can round back up to Tau.
	if a >= Tau {
		a = 0
	}
	return a
}

// AngleBetween reports whether angle lies on the clockwise sweep from start
// to end. All three are normalized first; when start > end the sweep crosses
// the 0/Tau boundary and membership is angle >= start or angle <= end.
func AngleBetween(angle, start, end float64) bool {
	a := Normalize(angle)
	s := Normalize(start)
	e := Normalize(end)
	if s <= e {
		return s <= a && a <= e
	}
	return a >= s || a <= e
}

// ArcSegments returns how many straight segments approximate the arc from
// start to end: one per ArcStep of span, rounded up. Never less than 1, so
// callers can divide by it, and never more than MaxArcSegments.
func ArcSegments(start, end float64) int {
	span := math.Abs(end - start)
	switch {
	case math.IsNaN(span):
		return 1
	case math.IsInf(span, 1) || span/ArcStep > MaxArcSegments:
		return MaxArcSegments
	}
	n := int(math.Ceil(span/ArcStep - Epsilon))
	if n < 1 {
		return 1
	}
	if n > MaxArcSegments {
		return MaxArcSegments
	}
	return n
}
