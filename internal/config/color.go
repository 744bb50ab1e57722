package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// Color is a non-premultiplied colour stored as "#RRGGBBAA" (or "#RRGGBB",
// fully opaque) in profile files.
type Color color.NRGBA

// RGBA builds a Color from 0..1 float channels.
func RGBA(r, g, b, a float64) Color {
	return Color{R: unit(r), G: unit(g), B: unit(b), A: unit(a)}
}

func unit(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// NRGBA returns the colour as the standard library type.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA(c) }

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return fmt.Errorf("colour %q: want #RRGGBB or #RRGGBBAA", string(text))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("colour %q: %w", string(text), err)
	}
	*c = Color{R: b[0], G: b[1], B: b[2], A: b[3]}
	return nil
}

// Presets carried over from the plugin's defaults.
var (
	Red     = RGBA(1, 0, 0, 1)
	Black   = RGBA(0, 0, 0, 1)
	Green   = RGBA(0.34, 0.92, 0.05, 1)
	Blurple = RGBA(0.275, 0.05, 0.92, 1)
	Magenta = RGBA(0.92, 0.05, 0.829, 1)
)
