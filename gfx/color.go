package gfx

import "image/color"

// Color is an RGBA color in 8-bit channels. Alpha is straight, not
// premultiplied.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// FromRGBA converts a color.RGBA as passed by tinyfont and tinyterm.
func FromRGBA(c color.RGBA) Color { return Color{R: c.R, G: c.G, B: c.B, A: c.A} }

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

func (c Color) Opaque() Color { c.A = 0xFF; return c }

// NRGBA lets Color be used where an image/color value is expected.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

func (c Color) toRGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

// Clamp8 rounds v and clamps it to [0, 255].
func Clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Clamp8i clamps an integer channel computed by demo code.
func Clamp8i(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
