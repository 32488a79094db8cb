package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer exposes a Buffer through the TinyGo display driver interface, so
// tinyfont and tinyterm can render into it. It also provides the
// FillRectangle, SetScroll, SetRotation and ScrollUp extensions tinyterm
// looks for.
type Displayer struct {
	b *Buffer
}

var _ drivers.Displayer = (*Displayer)(nil)

func NewDisplayer(b *Buffer) *Displayer {
	return &Displayer{b: b}
}

func (d *Displayer) Size() (x, y int16) {
	w, h := d.b.Size()
	return clamp16(w), clamp16(h)
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.b.Point(int(x), int(y), FromRGBA(c))
}

// Display is a no-op: the buffer reaches the screen when it is composited
// onto a frame.
func (d *Displayer) Display() error { return nil }

func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.b.FillRect(int(x), int(y), int(width), int(height), FromRGBA(c).Opaque())
	return nil
}

func (d *Displayer) ScrollUp(lines int16, bg color.RGBA) error {
	d.b.ScrollUp(int(lines), FromRGBA(bg).Opaque())
	return nil
}

func (d *Displayer) SetScroll(line int16) {
	_ = line
}

func (d *Displayer) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
