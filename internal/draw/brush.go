package draw

import "image/color"

// Brush describes how a primitive is painted. A zero Fill alpha means the
// primitive is stroked only; a zero Thickness with a fill means fill only.
type Brush struct {
	Thickness float32
	Color     color.NRGBA
	Fill      color.NRGBA
}

// NewBrush returns a stroke-only brush.
func NewBrush(c color.NRGBA, thickness float32) Brush {
	return Brush{Thickness: thickness, Color: c}
}

// HasFill reports whether the brush paints an interior.
func (b Brush) HasFill() bool { return b.Fill.A != 0 }

// WithThickness returns a copy of b with a different stroke weight.
func WithThickness(b Brush, thickness float32) Brush {
	b.Thickness = thickness
	return b
}

// WithFill returns a copy of b with a different fill colour.
func WithFill(b Brush, fill color.NRGBA) Brush {
	b.Fill = fill
	return b
}

// ScaleAlpha returns c with its alpha multiplied by m, clamped to [0, 255].
func ScaleAlpha(c color.NRGBA, m float64) color.NRGBA {
	a := float64(c.A) * m
	switch {
	case a < 0:
		a = 0
	case a > 255:
		a = 255
	}
	c.A = uint8(a + 0.5)
	return c
}
