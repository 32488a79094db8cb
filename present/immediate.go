package present

import (
	"lumen/gfx"
	"lumen/hal"
)

// Immediate draws opaque spans straight into a framebuffer in its native
// pixel format. It backs the canvas when no back buffer exists.
type Immediate struct {
	fb hal.Framebuffer
}

var _ gfx.Immediate = (*Immediate)(nil)

func NewImmediate(fb hal.Framebuffer) *Immediate {
	return &Immediate{fb: fb}
}

func (d *Immediate) Size() (w, h int) { return d.fb.Width(), d.fb.Height() }

func (d *Immediate) Clear(c gfx.Color) { d.fb.ClearRGB(c.R, c.G, c.B) }

// Span writes the clipped run [x0, x1] of row y. Alpha is ignored.
func (d *Immediate) Span(x0, x1, y int, c gfx.Color) {
	w, h := d.Size()
	if y < 0 || y >= h {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0, x1 = max(x0, 0), min(x1, w-1)
	if x0 > x1 {
		return
	}
	buf := d.fb.Buffer()
	f := d.fb.Format()
	bpp := f.BytesPerPixel()
	row := y * d.fb.StrideBytes()
	if bpp == 0 || row+(x1+1)*bpp > len(buf) {
		return
	}
	px := buf[row+x0*bpp : row+(x1+1)*bpp]

	switch f {
	case hal.PixelFormatRGB565:
		pixel := hal.RGB565(c.R, c.G, c.B)
		lo := byte(pixel)
		hi := byte(pixel >> 8)
		for i := 0; i+1 < len(px); i += 2 {
			px[i] = lo
			px[i+1] = hi
		}
	case hal.PixelFormatRGBA8888:
		fill4(px, c.R, c.G, c.B)
	case hal.PixelFormatBGRA8888:
		fill4(px, c.B, c.G, c.R)
	}
}

func fill4(px []byte, c0, c1, c2 uint8) {
	for i := 0; i+3 < len(px); i += 4 {
		px[i] = c0
		px[i+1] = c1
		px[i+2] = c2
		px[i+3] = 0xFF
	}
}
