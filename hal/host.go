package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	cfg    Config
	logger *hostLogger
	disp   *hostDisplay
	kbd    *hostKeyboard
	ptr    *hostPointer
}

// New returns a host HAL implementation.
func New(cfg Config) HAL {
	return newHost(cfg)
}

func newHost(cfg Config) *hostHAL {
	cfg = cfg.withDefaults()
	return &hostHAL{
		cfg:    cfg,
		logger: &hostLogger{w: os.Stdout},
		disp: &hostDisplay{
			fb:    newHostFramebuffer(cfg.Width, cfg.Height, cfg.Format),
			title: cfg.Title,
		},
		kbd: newHostKeyboard(),
		ptr: &hostPointer{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer

	mu    sync.Mutex
	title string
}

func (d *hostDisplay) Framebuffer() Framebuffer { return d.fb }

func (d *hostDisplay) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

func (d *hostDisplay) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostPointer struct {
	mu   sync.Mutex
	x, y int
	ok   bool
}

func (p *hostPointer) Position() (x, y int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x, p.y, p.ok
}

func (p *hostPointer) set(x, y int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.x, p.y, p.ok = x, y, ok
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
