package present

import (
	"lumen/gfx"
	"lumen/hal"
)

// Options configures a Session.
type Options struct {
	Mode Mode
	// NewBuffer allocates the back buffer. Defaults to gfx.NewBuffer.
	NewBuffer func(w, h int) (*gfx.Buffer, error)
}

// Session owns the back buffer for one framebuffer and presents it.
//
// Drawing goes through Canvas. Until Init succeeds, or after Cleanup, the
// canvas draws straight into the framebuffer without alpha.
type Session struct {
	fb   hal.Framebuffer
	log  hal.Logger
	opts Options

	buf      *gfx.Buffer
	strategy Strategy
	canvas   *gfx.Canvas
	inited   bool
}

func New(fb hal.Framebuffer, log hal.Logger, opts Options) *Session {
	if opts.NewBuffer == nil {
		opts.NewBuffer = gfx.NewBuffer
	}
	s := &Session{fb: fb, log: log, opts: opts}
	var imm gfx.Immediate
	if fb != nil {
		imm = NewImmediate(fb)
	}
	s.canvas = gfx.NewCanvas(nil, imm, func(msg string) { logf(log, "%s", msg) })
	return s
}

// Init allocates the back buffer, clears it to black and selects the
// presentation strategy. Calling it again is a no-op. An allocation failure is
// returned but leaves the session usable in unbuffered mode.
func (s *Session) Init() error {
	if s.inited {
		return nil
	}
	if s.fb == nil {
		return ErrNoFramebuffer
	}
	s.inited = true

	buf, err := s.opts.NewBuffer(s.fb.Width(), s.fb.Height())
	if err != nil {
		logf(s.log, "present: %v, drawing unbuffered", err)
		return err
	}
	buf.Clear(0, 0, 0)

	strategy, err := Select(s.fb, buf, s.opts.Mode, s.log)
	if err != nil {
		buf.Destroy()
		return err
	}
	s.buf = buf
	s.strategy = strategy
	s.canvas.SetBuffer(buf)
	logf(s.log, "present: %dx%d back buffer, %s strategy, %v framebuffer",
		buf.Width(), buf.Height(), strategy.Name(), s.fb.Format())
	return nil
}

// Enabled reports whether drawing is buffered.
func (s *Session) Enabled() bool { return s.buf.Enabled() }

func (s *Session) Buffer() *gfx.Buffer { return s.buf }

// Strategy returns the active strategy, or nil when unbuffered.
func (s *Session) Strategy() Strategy { return s.strategy }

func (s *Session) Canvas() *gfx.Canvas { return s.canvas }

func (s *Session) Framebuffer() hal.Framebuffer { return s.fb }

// Clear fills the drawing surface with an opaque color.
func (s *Session) Clear(r, g, b uint8) { s.canvas.Clear(gfx.RGB(r, g, b)) }

// Swap presents the frame. Without a back buffer the immediate drawing is
// already in the framebuffer and only needs presenting.
func (s *Session) Swap() error {
	if s.fb == nil {
		return ErrNoFramebuffer
	}
	if !s.Enabled() || s.strategy == nil {
		return s.fb.Present()
	}
	return s.strategy.Swap(s.buf)
}

// Cleanup detaches and frees the back buffer. It is safe to call more than
// once.
func (s *Session) Cleanup() {
	if s.strategy != nil {
		s.strategy.Close()
		s.strategy = nil
	}
	if s.buf != nil {
		s.buf.Destroy()
		s.buf = nil
		logf(s.log, "present: back buffer released")
	}
	s.canvas.SetBuffer(nil)
	s.inited = false
}
