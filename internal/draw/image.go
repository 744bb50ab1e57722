package draw

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Resonant/internal/geom"
)

// ImageSurface paints finished paths onto an ebiten image with vector paths.
type ImageSurface struct {
	dst       *ebiten.Image
	antiAlias bool
}

// NewImageSurface wraps dst. The image is borrowed for the current frame.
func NewImageSurface(dst *ebiten.Image, antiAlias bool) *ImageSurface {
	return &ImageSurface{dst: dst, antiAlias: antiAlias}
}

func buildPath(points []geom.Vec2) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	return &path
}

func (s *ImageSurface) pathOptions(c color.NRGBA) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: s.antiAlias}
	op.ColorScale.ScaleWithColor(c)
	return op
}

// FillConvex fills the closed polygon through points.
func (s *ImageSurface) FillConvex(points []geom.Vec2, fill color.NRGBA) {
	if len(points) < 3 {
		return
	}
	path := buildPath(points)
	path.Close()
	vector.FillPath(s.dst, path, &vector.FillOptions{}, s.pathOptions(fill))
}

// Stroke draws an open polyline through points.
func (s *ImageSurface) Stroke(points []geom.Vec2, c color.NRGBA, thickness float32) {
	if len(points) < 2 {
		return
	}
	path := buildPath(points)
	vector.StrokePath(s.dst, path, &vector.StrokeOptions{
		Width:    thickness,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}, s.pathOptions(c))
}
