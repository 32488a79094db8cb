package gfx

import (
	"errors"
	"fmt"
	"image"
)

// ErrAlloc reports that a back buffer could not be created. Callers treat
// buffering as unavailable and draw unbuffered.
var ErrAlloc = errors.New("gfx: back buffer allocation failed")

const bytesPerPixel = 4

// maxBufferBytes caps a single back buffer. Larger requests fail with ErrAlloc
// instead of reaching the allocator.
const maxBufferBytes = 1 << 30

// Buffer is an RGBA back buffer of fixed size.
//
// Pixel (x, y) lives at byte offset (y*Width + x)*4 in R, G, B, A order.
// Every write is clipped to the buffer; a nil or destroyed Buffer ignores all
// drawing.
type Buffer struct {
	width  int
	height int
	pix    []byte

	scratch
}

// NewBuffer allocates a zeroed w×h buffer.
func NewBuffer(w, h int) (b *Buffer, err error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrAlloc, w, h)
	}
	if w > maxBufferBytes/bytesPerPixel/h {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d bytes", ErrAlloc, w, h, maxBufferBytes)
	}
	defer func() {
		// make panics on lengths the runtime cannot satisfy.
		if r := recover(); r != nil {
			b = nil
			err = fmt.Errorf("%w: %v", ErrAlloc, r)
		}
	}()
	return &Buffer{
		width:  w,
		height: h,
		pix:    make([]byte, w*h*bytesPerPixel),
	}, nil
}

// NewBufferFill allocates a w×h buffer with every pixel set to c.
func NewBufferFill(w, h int, c Color) (*Buffer, error) {
	b, err := NewBuffer(w, h)
	if err != nil {
		return nil, err
	}
	b.fill(c)
	return b, nil
}

// Enabled reports whether the buffer holds pixel memory.
func (b *Buffer) Enabled() bool { return b != nil && b.pix != nil }

func (b *Buffer) Width() int {
	if !b.Enabled() {
		return 0
	}
	return b.width
}

func (b *Buffer) Height() int {
	if !b.Enabled() {
		return 0
	}
	return b.height
}

// Size implements Spanner.
func (b *Buffer) Size() (w, h int) { return b.Width(), b.Height() }

// Stride is the number of bytes per row.
func (b *Buffer) Stride() int { return b.Width() * bytesPerPixel }

// Pix returns the raw RGBA bytes. The slice aliases the buffer.
func (b *Buffer) Pix() []byte {
	if !b.Enabled() {
		return nil
	}
	return b.pix
}

func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width(), b.Height()) }

// PixOffset returns the byte offset of (x, y). It does not clip.
func (b *Buffer) PixOffset(x, y int) int { return (y*b.width + x) * bytesPerPixel }

// RGBA returns an image.RGBA sharing the buffer memory, or nil.
func (b *Buffer) RGBA() *image.RGBA {
	if !b.Enabled() {
		return nil
	}
	return &image.RGBA{Pix: b.pix, Stride: b.Stride(), Rect: b.Bounds()}
}

// At returns the pixel at (x, y), or the zero Color outside the buffer.
func (b *Buffer) At(x, y int) Color {
	if !b.contains(x, y) {
		return Color{}
	}
	off := b.PixOffset(x, y)
	p := b.pix[off : off+4 : off+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Clear sets every pixel to (r, g, b, 255). A cleared buffer is opaque.
func (b *Buffer) Clear(r, g, bl uint8) {
	if !b.Enabled() {
		return
	}
	b.fill(RGB(r, g, bl))
}

func (b *Buffer) fill(c Color) {
	if len(b.pix) < bytesPerPixel {
		return
	}
	b.pix[0], b.pix[1], b.pix[2], b.pix[3] = c.R, c.G, c.B, c.A
	// Double the initialized prefix until the slice is full.
	for n := bytesPerPixel; n < len(b.pix); n *= 2 {
		copy(b.pix[n:], b.pix[:n])
	}
}

// Destroy releases the pixel memory. Safe on nil and repeated calls.
func (b *Buffer) Destroy() {
	if b == nil {
		return
	}
	b.pix = nil
	b.scratch = scratch{}
}

// Point draws a single pixel.
func (b *Buffer) Point(x, y int, c Color) {
	if c.A == 0 || !b.contains(x, y) {
		return
	}
	b.put(b.PixOffset(x, y), c)
}

// Span draws the inclusive run [x0, x1] on row y, clipped to the buffer.
func (b *Buffer) Span(x0, x1, y int, c Color) {
	if c.A == 0 || !b.Enabled() || y < 0 || y >= b.height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= b.width {
		x1 = b.width - 1
	}
	if x0 > x1 {
		return
	}
	off := b.PixOffset(x0, y)
	end := b.PixOffset(x1, y)
	if c.A == 0xFF {
		for ; off <= end; off += bytesPerPixel {
			p := b.pix[off : off+4 : off+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xFF
		}
		return
	}
	for ; off <= end; off += bytesPerPixel {
		Blend(b.pix[off:off+4:off+4], c)
	}
}

// ScrollUp moves the buffer contents up by n rows and fills the uncovered
// rows with bg.
func (b *Buffer) ScrollUp(n int, bg Color) {
	if !b.Enabled() || n <= 0 {
		return
	}
	if n >= b.height {
		b.FillRect(0, 0, b.width, b.height, bg)
		return
	}
	stride := b.Stride()
	copy(b.pix, b.pix[n*stride:])
	b.FillRect(0, b.height-n, b.width, n, bg)
}

func (b *Buffer) contains(x, y int) bool {
	return b.Enabled() && x >= 0 && y >= 0 && x < b.width && y < b.height
}
