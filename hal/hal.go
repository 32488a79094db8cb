package hal

import (
	"errors"
	"fmt"
	"strings"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrQuit is returned by an application step to end the run loop normally.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatRGBA8888 is 32bpp in R, G, B, A byte order.
	PixelFormatRGBA8888
	// PixelFormatBGRA8888 is 32bpp in B, G, R, A byte order.
	PixelFormatBGRA8888
)

func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	case PixelFormatRGBA8888, PixelFormatBGRA8888:
		return 4
	}
	return 0
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatRGBA8888:
		return "rgba8888"
	case PixelFormatBGRA8888:
		return "bgra8888"
	}
	return fmt.Sprintf("PixelFormat(%d)", uint8(f))
}

// ParsePixelFormat accepts the names printed by PixelFormat.String.
func ParsePixelFormat(s string) (PixelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb565":
		return PixelFormatRGB565, nil
	case "", "rgba", "rgba8888":
		return PixelFormatRGBA8888, nil
	case "bgra", "bgra8888":
		return PixelFormatBGRA8888, nil
	}
	return 0, fmt.Errorf("unknown pixel format %q", s)
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// SharedFramebuffer is a Framebuffer that can scan out caller-owned memory
// directly. While shared, Buffer returns pix and Present shows it without a
// copy.
type SharedFramebuffer interface {
	Framebuffer
	// Share attaches pix, laid out in the framebuffer's format with the given
	// stride. It reports false if the layout cannot be used as is.
	Share(pix []byte, stride int) bool
	// Unshare detaches the memory. Framebuffer contents are then undefined
	// until the next clear or write.
	Unshare()
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyHome
	KeyEnd
	KeyF1
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown and
// Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Pointer reports the cursor position in framebuffer coordinates.
type Pointer interface {
	Position() (x, y int, ok bool)
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
	SetTitle(title string)
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL provides the only contact point between the demos and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// Config sizes the host display.
type Config struct {
	Width  int
	Height int
	Format PixelFormat
	// Scale multiplies the window size; the framebuffer keeps Width×Height.
	Scale int
	Title string
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Format == 0 {
		c.Format = PixelFormatRGBA8888
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Title == "" {
		c.Title = "lumen"
	}
	return c
}
