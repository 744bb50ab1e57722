package geom

import "math"

// Vec3 is a world-space position. Y is the vertical axis; X and Z are the
// planar axes used for every distance and bearing calculation.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a screen-space point in pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Unit returns v scaled to length 1. The zero vector is returned unchanged.
func (v Vec3) Unit() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// WithY returns v lifted (or lowered) to the given height.
func (v Vec3) WithY(y float64) Vec3 { return Vec3{v.X, y, v.Z} }

// Radial returns the point at distance radius from center along angle,
// on center's horizontal plane. Angle 0 points along +Z and angles grow
// clockwise seen from above, so the unit vector is (sin, 0, cos).
func Radial(center Vec3, radius, angle float64) Vec3 {
	return Vec3{
		X: center.X + radius*math.Sin(angle),
		Y: center.Y,
		Z: center.Z + radius*math.Cos(angle),
	}
}

// PlanarDistance is the distance between a and b ignoring the vertical axis.
func PlanarDistance(a, b Vec3) float64 {
	return math.Hypot(b.X-a.X, b.Z-a.Z)
}

// PlanarBearing returns the angle of the vector from a to b on the
// horizontal plane, in the same convention as Radial.
func PlanarBearing(a, b Vec3) float64 {
	return math.Atan2(b.X-a.X, b.Z-a.Z)
}

// Pose is an actor's planar frame: where it stands and which way it faces.
type Pose struct {
	Position Vec3
	Rotation float64
}

// Local converts a world bearing to an angle relative to the pose's facing.
func (p Pose) Local(bearing float64) float64 { return bearing - p.Rotation }
