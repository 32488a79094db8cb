package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"lumen/demos"
	"lumen/gfx"
)

// draw runs the current effect. A panicking effect is logged with its stack,
// leaves a panic screen on the display and ends the run with an error.
func (r *Runner) draw(cv *gfx.Canvas, f demos.Frame) (err error) {
	e := r.effects[r.cur]
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		stack := debug.Stack()
		logf(r.log, "app: panic in %s: %v", e.Name(), v)
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				logf(r.log, "%s", line)
			}
		}
		r.panicScreen(cv, f.W, f.H, e.Name(), v, stack)
		err = fmt.Errorf("app: effect %q panicked: %v", e.Name(), v)
		if serr := r.sess.Swap(); serr != nil {
			logf(r.log, "app: panic screen: %v", serr)
			err = errors.Join(err, serr)
		}
	}()
	e.Draw(cv, f)
	return nil
}

func (r *Runner) panicScreen(cv *gfx.Canvas, w, h int, name string, v any, stack []byte) {
	cv.Clear(gfx.RGB(255, 255, 255))

	lines := []string{
		"Panic:",
		"effect: " + name,
		fmt.Sprintf("panic: %v", v),
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	}

	cols := w / max(cv.TextWidth("0"), 1)
	if cols <= 0 {
		cols = 1
	}
	fg := gfx.RGB(0, 0, 0)
	y := gfx.FontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > h {
				return
			}
			chunk, rest := takeRunes(line, cols)
			cv.Text(0, y, chunk, fg)
			y += gfx.FontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
