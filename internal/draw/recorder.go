package draw

import (
	"image/color"

	"github.com/Garsondee/Resonant/internal/geom"
)

// CallKind distinguishes recorded draw calls.
type CallKind int

const (
	CallFill CallKind = iota
	CallStroke
)

func (k CallKind) String() string {
	if k == CallFill {
		return "fill"
	}
	return "stroke"
}

// Call is one draw request captured by a Recorder.
type Call struct {
	Kind      CallKind
	Points    []geom.Vec2
	Color     color.NRGBA
	Thickness float32
}

// Recorder is a Surface that keeps every call instead of painting. Used by
// tests and the headless report.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) FillConvex(points []geom.Vec2, fill color.NRGBA) {
	r.Calls = append(r.Calls, Call{Kind: CallFill, Points: append([]geom.Vec2(nil), points...), Color: fill})
}

func (r *Recorder) Stroke(points []geom.Vec2, c color.NRGBA, thickness float32) {
	r.Calls = append(r.Calls, Call{Kind: CallStroke, Points: append([]geom.Vec2(nil), points...), Color: c, Thickness: thickness})
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind CallKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops recorded calls, keeping capacity.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// TopDown is a projector looking straight down the Y axis: world X maps to
// screen X, world Z to screen Y (inverted so +Z is up), scaled by
// pixelsPerUnit around origin. Points outside a w by h viewport report false.
func TopDown(origin geom.Vec2, pixelsPerUnit, w, h float64) Projector {
	return ProjectorFunc(func(p geom.Vec3) (geom.Vec2, bool) {
		s := geom.Vec2{
			X: origin.X + p.X*pixelsPerUnit,
			Y: origin.Y - p.Z*pixelsPerUnit,
		}
		return s, s.X >= 0 && s.X < w && s.Y >= 0 && s.Y < h
	})
}
