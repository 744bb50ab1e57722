package regions

import (
	"fmt"

	"github.com/Garsondee/Resonant/internal/geom"
)

// Positional is an angular sector relative to an actor's facing, swept
// clockwise from Start to End. Start may be numerically greater than End.
type Positional struct {
	Start float64
	End   float64
}

// FromDegrees builds a Positional from degree bounds.
func FromDegrees(start, end float64) Positional {
	return Positional{Start: geom.Radians(start), End: geom.Radians(end)}
}

// Contains reports whether a facing-relative angle lies inside the sector.
func (p Positional) Contains(angle float64) bool {
	return geom.AngleBetween(angle, p.Start, p.End)
}

func (p Positional) String() string {
	return fmt.Sprintf("(%g°, %g°)", geom.Degrees(p.Start), geom.Degrees(p.End))
}

// Region is an annulus sector: a Positional bounded by two radii.
type Region struct {
	Positional Positional
	Inner      float64
	Outer      float64
}

// Named sectors. 0° is the actor's facing, angles grow clockwise.
var (
	FrontLeft90  = FromDegrees(0, 90)
	FrontRight90 = FromDegrees(-90, 0)
	FrontLeft45  = FromDegrees(0, 45)
	FrontRight45 = FromDegrees(-45, 0)
	Front90      = FromDegrees(-45, 45)
	Front180     = FromDegrees(-90, 90)

	FlankLeft90     = FromDegrees(45, 135)
	FlankRight90    = FromDegrees(225, 315)
	FlankLeftFront  = FromDegrees(45, 90)
	FlankLeftRear   = FromDegrees(90, 135)
	FlankRightFront = FromDegrees(270, 315)
	FlankRightRear  = FromDegrees(225, 270)

	Rear      = FromDegrees(135, 225)
	RearLeft  = FromDegrees(135, 180)
	RearRight = FromDegrees(180, 225)
)
