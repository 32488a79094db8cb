package gfx

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Immediate draws straight onto the live display surface. It is the
// unbuffered fallback used when no back buffer is available; it has no alpha
// support and draws every color opaque.
type Immediate interface {
	Spanner
	Clear(c Color)
}

// Canvas is the drawing API handed to demo code. It draws into the back
// buffer when one is enabled and degrades to an Immediate drawer otherwise.
type Canvas struct {
	buf *Buffer
	imm Immediate

	// notify receives a one-time message when the canvas first draws
	// unbuffered.
	notify func(msg string)
	warned bool

	sc   scratch
	font tinyfont.Fonter
}

// DefaultFont is the bitmap font used by Text.
var DefaultFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// FontHeight is the line height of DefaultFont in pixels.
const FontHeight = 10

func NewCanvas(buf *Buffer, imm Immediate, notify func(msg string)) *Canvas {
	return &Canvas{buf: buf, imm: imm, notify: notify, font: DefaultFont}
}

// SetBuffer replaces the back buffer. A nil or destroyed buffer switches the
// canvas to the unbuffered path.
func (cv *Canvas) SetBuffer(b *Buffer) { cv.buf = b }

// Buffered reports whether drawing currently goes to the back buffer.
func (cv *Canvas) Buffered() bool { return cv.buf.Enabled() }

// Buffer returns the active back buffer, or nil.
func (cv *Canvas) Buffer() *Buffer {
	if !cv.Buffered() {
		return nil
	}
	return cv.buf
}

func (cv *Canvas) Size() (w, h int) {
	if cv.Buffered() {
		return cv.buf.Size()
	}
	if cv.imm != nil {
		return cv.imm.Size()
	}
	return 0, 0
}

// target picks the surface for the next primitive and adjusts c for it.
func (cv *Canvas) target(c Color) (Spanner, *scratch, Color) {
	if cv.Buffered() {
		return cv.buf, &cv.buf.scratch, c
	}
	if cv.imm == nil {
		return nil, nil, c
	}
	if !cv.warned {
		cv.warned = true
		if cv.notify != nil {
			cv.notify("gfx: back buffer unavailable, drawing unbuffered")
		}
	}
	return cv.imm, &cv.sc, c.Opaque()
}

// Clear fills the whole surface with an opaque color.
func (cv *Canvas) Clear(c Color) {
	if cv.Buffered() {
		cv.buf.Clear(c.R, c.G, c.B)
		return
	}
	if cv.imm != nil {
		cv.imm.Clear(c.Opaque())
	}
}

func (cv *Canvas) Point(x, y int, c Color) {
	if s, _, c := cv.target(c); s != nil {
		s.Span(x, x, y, c)
	}
}

func (cv *Canvas) FillRect(x, y, w, h int, c Color) {
	if s, _, c := cv.target(c); s != nil {
		fillRect(s, x, y, w, h, c)
	}
}

func (cv *Canvas) FillCircle(cx, cy, radius int, c Color) {
	if s, sc, c := cv.target(c); s != nil {
		fillCircle(s, sc, cx, cy, radius, c)
	}
}

func (cv *Canvas) FillEllipse(cx, cy, rx, ry int, c Color) {
	if s, sc, c := cv.target(c); s != nil {
		fillEllipse(s, sc, cx, cy, rx, ry, c)
	}
}

func (cv *Canvas) FillPolygon(pts []image.Point, c Color) {
	if s, sc, c := cv.target(c); s != nil {
		fillPolygon(s, sc, pts, c)
	}
}

func (cv *Canvas) Line(x0, y0, x1, y1 int, c Color) {
	if s, _, c := cv.target(c); s != nil {
		drawLine(s, x0, y0, x1, y1, c)
	}
}

// Text draws s with its baseline at y. Glyph pixels are blended like any
// other primitive.
func (cv *Canvas) Text(x, y int, s string, c Color) {
	if s == "" {
		return
	}
	tinyfont.WriteLine(canvasPixels{cv}, cv.font, int16(x), int16(y), s, c.toRGBA())
}

// TextWidth returns the advance of s in pixels.
func (cv *Canvas) TextWidth(s string) int {
	_, w := tinyfont.LineWidth(cv.font, s)
	return int(w)
}

// canvasPixels adapts a Canvas to the pixel interface tinyfont draws through.
type canvasPixels struct{ cv *Canvas }

func (p canvasPixels) Size() (x, y int16) {
	w, h := p.cv.Size()
	return clamp16(w), clamp16(h)
}

func (p canvasPixels) SetPixel(x, y int16, c color.RGBA) {
	p.cv.Point(int(x), int(y), FromRGBA(c))
}

func (p canvasPixels) Display() error { return nil }

func clamp16(v int) int16 {
	if v > 1<<15-1 {
		return 1<<15 - 1
	}
	return int16(v)
}

// Blit composites src onto the canvas with its top-left corner at (x, y),
// scaling every source pixel's alpha by alpha/255.
func (cv *Canvas) Blit(src *Buffer, x, y int, alpha uint8) {
	if !src.Enabled() || alpha == 0 {
		return
	}
	s, _, _ := cv.target(Color{})
	if s == nil {
		return
	}
	sw, sh := src.Size()
	for sy := 0; sy < sh; sy++ {
		for sx := 0; sx < sw; sx++ {
			c := src.At(sx, sy)
			c.A = uint8(uint16(c.A) * uint16(alpha) / 255)
			if !cv.Buffered() {
				c = c.Opaque()
			}
			if c.A != 0 {
				s.Span(x+sx, x+sx, y+sy, c)
			}
		}
	}
}
