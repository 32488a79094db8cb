// Package app runs the demo effects against a HAL: it owns the presentation
// session, turns key events into effect switches, and draws one frame per
// step.
package app

import (
	"errors"
	"fmt"
	"math"

	"lumen/demos"
	"lumen/gfx"
	"lumen/hal"
	"lumen/present"
)

// ErrQuit is returned by Step when the user asks to leave.
var ErrQuit = hal.ErrQuit

const (
	timeStep = 0.05
	timeWrap = 20 * math.Pi
)

type Config struct {
	// Demo is the index of the first effect; out of range values wrap.
	Demo    int
	Present present.Mode
	// Clear is painted under every frame. Alpha is ignored.
	Clear gfx.Color
	// Seed drives the random effects.
	Seed int64
	// Effects replaces demos.Default when set.
	Effects []demos.Effect
}

// Runner draws the current effect into the session and presents it.
type Runner struct {
	h    hal.HAL
	log  hal.Logger
	sess *present.Session

	effects []demos.Effect
	cur     int
	clear   gfx.Color

	t     float64
	tick  uint64
	help  bool
	input []rune
}

// New initializes a runner with default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return NewRunner(h, cfg).Step
}

// NewRunner sets up the presentation session and selects the first effect.
// A failed back buffer allocation is logged and the runner draws unbuffered.
func NewRunner(h hal.HAL, cfg Config) *Runner {
	r := &Runner{
		h:       h,
		log:     h.Logger(),
		effects: cfg.Effects,
		clear:   cfg.Clear.Opaque(),
	}
	if len(r.effects) == 0 {
		r.effects = demos.Default(cfg.Seed)
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	r.sess = present.New(fb, r.log, present.Options{Mode: cfg.Present})
	if err := r.sess.Init(); err != nil && !errors.Is(err, gfx.ErrAlloc) {
		logf(r.log, "app: %v", err)
	}

	r.cur = -1
	r.selectEffect(cfg.Demo)
	return r
}

// Session exposes the presentation session, mainly for tests and tools.
func (r *Runner) Session() *present.Session { return r.sess }

// Current returns the index of the effect being shown.
func (r *Runner) Current() int { return r.cur }

// Step handles pending input, draws one frame and presents it. It returns
// ErrQuit when a quit key was pressed.
func (r *Runner) Step() error {
	if err := r.poll(); err != nil {
		return err
	}

	cv := r.sess.Canvas()
	w, h := cv.Size()
	cv.Clear(r.clear)

	f := demos.Frame{W: w, H: h, T: r.t, Tick: r.tick, Input: r.input}
	if in := r.h.Input(); in != nil {
		if p := in.Pointer(); p != nil {
			f.PointerX, f.PointerY, f.Pointer = p.Position()
		}
	}
	if err := r.draw(cv, f); err != nil {
		return err
	}
	r.overlay(cv, w, h)
	r.input = r.input[:0]

	r.tick++
	r.t += timeStep
	if r.t > timeWrap {
		r.t -= timeWrap
	}
	return r.sess.Swap()
}

// Close releases the back buffer. The runner keeps working unbuffered if
// stepped again.
func (r *Runner) Close() {
	r.sess.Cleanup()
}

func (r *Runner) poll() error {
	in := r.h.Input()
	if in == nil {
		return nil
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return nil
	}
	ch := kbd.Events()
	for {
		select {
		case ev := <-ch:
			if err := r.key(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (r *Runner) key(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	if ev.Code == hal.KeyUnknown && ev.Rune != 0 {
		switch ev.Rune {
		case 'q', 'Q':
			return ErrQuit
		case 'n', 'N':
			r.selectEffect(r.cur + 1)
		case 'p', 'P':
			r.selectEffect(r.cur - 1)
		case 'h', 'H':
			r.help = !r.help
		default:
			r.input = append(r.input, ev.Rune)
		}
		return nil
	}

	switch ev.Code {
	case hal.KeyEscape:
		return ErrQuit
	case hal.KeyRight, hal.KeyDown:
		r.selectEffect(r.cur + 1)
	case hal.KeyLeft, hal.KeyUp:
		r.selectEffect(r.cur - 1)
	case hal.KeyF1:
		r.help = !r.help
	case hal.KeyEnter:
		r.input = append(r.input, '\n')
	}
	return nil
}

func (r *Runner) selectEffect(i int) {
	n := len(r.effects)
	i = ((i % n) + n) % n
	if i == r.cur {
		return
	}
	r.cur = i
	e := r.effects[i]
	if rs, ok := e.(demos.Resetter); ok {
		rs.Reset()
	}
	r.input = r.input[:0]

	title := r.title()
	if d := r.h.Display(); d != nil {
		d.SetTitle(title)
	}
	logf(r.log, "app: effect %s", title)
}

func (r *Runner) title() string {
	return fmt.Sprintf("%d. %s", r.cur+1, r.effects[r.cur].Name())
}

var (
	barColor  = gfx.RGBA(255, 255, 255, 200)
	textColor = gfx.RGB(0, 0, 0)
	helpColor = gfx.RGBA(0, 0, 0, 190)
)

// overlay draws the title bar and, when enabled, the help panel.
func (r *Runner) overlay(cv *gfx.Canvas, w, h int) {
	const pad = 4
	barH := gfx.FontHeight + 2*pad
	cv.FillRect(0, 0, w, barH, barColor)
	cv.Text(pad, barH-pad-2, r.title(), textColor)

	hint := "h: help"
	cv.Text(w-pad-cv.TextWidth(hint), barH-pad-2, hint, textColor)

	if !r.help {
		return
	}
	lines := make([]string, 0, len(r.effects)+4)
	for i, e := range r.effects {
		lines = append(lines, fmt.Sprintf("%2d  %s", i+1, e.Name()))
	}
	lines = append(lines,
		"",
		"n / right  next      p / left  previous",
		"h  help              q / esc   quit",
		"mandelbrot: + - zoom, w a s d pan",
	)
	y := barH + pad
	ph := len(lines)*gfx.FontHeight + 2*pad
	if ph > h-y {
		ph = h - y
	}
	cv.FillRect(pad, y, w-2*pad, ph, helpColor)
	white := gfx.RGB(255, 255, 255)
	for i, line := range lines {
		ly := y + pad + (i+1)*gfx.FontHeight - 2
		if ly > y+ph {
			break
		}
		cv.Text(2*pad, ly, line, white)
	}
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
