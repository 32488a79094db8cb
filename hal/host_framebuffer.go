package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	format PixelFormat
	stride int
	buf    []byte

	// shared, when set, replaces buf as the scanout memory.
	shared []byte

	presents uint64
}

var _ SharedFramebuffer = (*hostFramebuffer)(nil)

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	stride := width * format.BytesPerPixel()
	return &hostFramebuffer{
		width:  width,
		height: height,
		format: format,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }

func (f *hostFramebuffer) Buffer() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scanout()
}

func (f *hostFramebuffer) scanout() []byte {
	if f.shared != nil {
		return f.shared
	}
	return f.buf
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.presents++
	f.mu.Unlock()
	return nil
}

// Share only accepts memory that already matches the native layout, so the
// window can upload it untouched.
func (f *hostFramebuffer) Share(pix []byte, stride int) bool {
	if f.format != PixelFormatRGBA8888 || stride != f.stride || len(pix) < f.stride*f.height {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shared = pix[:f.stride*f.height]
	return true
}

func (f *hostFramebuffer) Unshare() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shared = nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	buf := f.scanout()
	switch f.format {
	case PixelFormatRGB565:
		pixel := RGB565(r, g, b)
		lo := byte(pixel)
		hi := byte(pixel >> 8)
		for i := 0; i+1 < len(buf); i += 2 {
			buf[i] = lo
			buf[i+1] = hi
		}
	case PixelFormatRGBA8888:
		fill4(buf, r, g, b)
	case PixelFormatBGRA8888:
		fill4(buf, b, g, r)
	}
}

func fill4(buf []byte, c0, c1, c2 uint8) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i] = c0
		buf[i+1] = c1
		buf[i+2] = c2
		buf[i+3] = 0xFF
	}
}

// snapshotRGBA converts the visible contents into dst, which must hold
// width*height*4 bytes.
func (f *hostFramebuffer) snapshotRGBA(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	src := f.scanout()
	row := f.width * 4
	for y := 0; y < f.height; y++ {
		toRGBA(f.format, dst[y*row:(y+1)*row], src[y*f.stride:], f.width)
	}
}

func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}
