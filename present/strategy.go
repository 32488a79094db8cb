package present

import (
	"errors"
	"fmt"
	"strings"

	"lumen/gfx"
	"lumen/hal"
)

var ErrNoFramebuffer = errors.New("present: no framebuffer")

// Strategy moves a finished back buffer onto the display.
type Strategy interface {
	Name() string
	// Swap makes the contents of b visible. b must be the buffer the
	// strategy was selected for.
	Swap(b *gfx.Buffer) error
	// Close releases whatever the strategy attached to the framebuffer.
	Close()
}

// Mode forces or relaxes strategy selection.
type Mode uint8

const (
	// ModeAuto uses shared memory when the framebuffer supports it.
	ModeAuto Mode = iota
	// ModeCopy always converts into the framebuffer's own memory.
	ModeCopy
	// ModeShared asks for shared memory and falls back to copying.
	ModeShared
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeCopy:
		return "copy"
	case ModeShared:
		return "shared"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "copy":
		return ModeCopy, nil
	case "shared", "shm":
		return ModeShared, nil
	}
	return ModeAuto, fmt.Errorf("present: unknown mode %q", s)
}

// Select picks the presentation strategy for buf on fb.
func Select(fb hal.Framebuffer, buf *gfx.Buffer, mode Mode, log hal.Logger) (Strategy, error) {
	if fb == nil {
		return nil, ErrNoFramebuffer
	}
	if mode != ModeCopy {
		if s, ok := newShared(fb, buf); ok {
			return s, nil
		}
		if mode == ModeShared {
			logf(log, "present: shared memory unavailable for %v framebuffer, copying", fb.Format())
		}
	}
	return &copyStrategy{fb: fb}, nil
}

type sharedStrategy struct {
	fb hal.SharedFramebuffer
}

func newShared(fb hal.Framebuffer, buf *gfx.Buffer) (*sharedStrategy, bool) {
	sf, ok := fb.(hal.SharedFramebuffer)
	if !ok || !buf.Enabled() {
		return nil, false
	}
	if sf.Width() != buf.Width() || sf.Height() != buf.Height() {
		return nil, false
	}
	if !sf.Share(buf.Pix(), buf.Stride()) {
		return nil, false
	}
	return &sharedStrategy{fb: sf}, true
}

func (s *sharedStrategy) Name() string { return "shared" }

func (s *sharedStrategy) Swap(_ *gfx.Buffer) error { return s.fb.Present() }

func (s *sharedStrategy) Close() { s.fb.Unshare() }

type copyStrategy struct {
	fb hal.Framebuffer
}

func (s *copyStrategy) Name() string { return "copy" }

// Swap converts row by row into the framebuffer's native format, cropping
// to the smaller of the two surfaces.
func (s *copyStrategy) Swap(b *gfx.Buffer) error {
	dst := s.fb.Buffer()
	if dst == nil {
		return ErrNoFramebuffer
	}
	src := b.Pix()
	w := min(b.Width(), s.fb.Width())
	h := min(b.Height(), s.fb.Height())
	dstStride, srcStride := s.fb.StrideBytes(), b.Stride()
	bpp := s.fb.Format().BytesPerPixel()

	for y := 0; y < h; y++ {
		d := dst[y*dstStride:]
		if len(d) < w*bpp {
			break
		}
		fromRGBA(s.fb.Format(), d, src[y*srcStride:], w)
	}
	return s.fb.Present()
}

func (s *copyStrategy) Close() {}

// fromRGBA converts n RGBA pixels into format f.
func fromRGBA(f hal.PixelFormat, dst, src []byte, n int) {
	switch f {
	case hal.PixelFormatRGBA8888:
		copy(dst[:n*4], src[:n*4])
	case hal.PixelFormatBGRA8888:
		for i := 0; i < n; i++ {
			s := src[i*4 : i*4+4 : i*4+4]
			d := dst[i*4 : i*4+4 : i*4+4]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
		}
	case hal.PixelFormatRGB565:
		for i := 0; i < n; i++ {
			s := src[i*4 : i*4+3 : i*4+3]
			p := hal.RGB565(s[0], s[1], s[2])
			dst[i*2] = byte(p)
			dst[i*2+1] = byte(p >> 8)
		}
	}
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
