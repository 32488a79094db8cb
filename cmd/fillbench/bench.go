package main

import (
	"fmt"
	"image"
	"io"
	"time"

	"lumen/gfx"
	"lumen/hal"
	"lumen/present"
)

const scoreScale = 1000

type benchTest struct {
	name string
	ops  uint64
	run  func()
}

type testResult struct {
	name  string
	usec  uint64
	score uint64
}

type bench struct {
	w, h   int
	rounds int
	buf    *gfx.Buffer
	cv     *gfx.Canvas
	pts    []image.Point
}

func newBench(w, h, rounds int) (*bench, error) {
	buf, err := gfx.NewBuffer(w, h)
	if err != nil {
		return nil, err
	}
	if rounds <= 0 {
		rounds = 1
	}
	b := &bench{w: w, h: h, rounds: rounds, buf: buf, cv: gfx.NewCanvas(buf, nil, nil)}
	b.pts = []image.Point{{w / 2, 0}, {w - 1, h / 3}, {w * 3 / 4, h - 1}, {w / 4, h - 1}, {0, h / 3}}
	return b, nil
}

func (b *bench) close() { b.buf.Destroy() }

// benchmarks returns the test list and a function that detaches the
// framebuffers the swap tests present to.
func (b *bench) benchmarks() ([]benchTest, func(), error) {
	baseOps := uint64(b.w*b.h) * uint64(b.rounds)
	copyStrat, err := b.strategy(hal.PixelFormatRGB565, present.ModeCopy)
	if err != nil {
		return nil, nil, err
	}
	sharedStrat, err := b.strategy(hal.PixelFormatRGBA8888, present.ModeShared)
	if err != nil {
		copyStrat.Close()
		return nil, nil, err
	}
	cleanup := func() {
		copyStrat.Close()
		sharedStrat.Close()
	}

	return []benchTest{
		{name: "Clear", ops: baseOps, run: b.repeat(func(i int) { b.buf.Clear(uint8(i), 0, 0) })},
		{name: "Pixels", ops: baseOps / 4, run: b.repeat(b.pixels)},
		{name: "Lines", ops: baseOps, run: b.repeat(b.lines)},
		{name: "Filled rects", ops: baseOps, run: b.repeat(b.rects(255))},
		{name: "Blended rects", ops: baseOps, run: b.repeat(b.rects(128))},
		{name: "Filled circles", ops: baseOps, run: b.repeat(b.circles(255))},
		{name: "Blended circles", ops: baseOps, run: b.repeat(b.circles(128))},
		{name: "Ellipses", ops: baseOps, run: b.repeat(b.ellipses)},
		{name: "Polygons", ops: baseOps, run: b.repeat(b.polygons)},
		{name: "Text", ops: baseOps / 2, run: b.repeat(b.text)},
		{name: "Swap copy 565", ops: baseOps, run: b.repeat(func(int) { _ = copyStrat.Swap(b.buf) })},
		{name: "Swap shared", ops: baseOps, run: b.repeat(func(int) { _ = sharedStrat.Swap(b.buf) })},
	}, cleanup, nil
}

// strategy builds a host framebuffer of the given format and selects a
// presentation strategy for the bench buffer on it.
func (b *bench) strategy(f hal.PixelFormat, mode present.Mode) (present.Strategy, error) {
	h := hal.New(hal.Config{Width: b.w, Height: b.h, Format: f})
	return present.Select(h.Display().Framebuffer(), b.buf, mode, h.Logger())
}

func (b *bench) repeat(fn func(i int)) func() {
	return func() {
		for i := 0; i < b.rounds; i++ {
			fn(i)
		}
	}
}

func (b *bench) pixels(i int) {
	for y := 0; y < b.h; y += 2 {
		for x := 0; x < b.w; x += 2 {
			b.cv.Point(x, y, gfx.RGB(uint8(x), uint8(y), uint8(x*y+i)))
		}
	}
}

func (b *bench) lines(int) {
	c := gfx.RGB(0x00, 0x80, 0xFF)
	for x := 0; x < b.w; x += 6 {
		b.cv.Line(0, 0, x, b.h-1, c)
	}
	for y := 0; y < b.h; y += 6 {
		b.cv.Line(0, 0, b.w-1, y, c)
	}
}

func (b *bench) rects(alpha uint8) func(int) {
	return func(i int) {
		for k := 0; k < 8; k++ {
			x, y := k*b.w/16, k*b.h/16
			b.cv.FillRect(x, y, b.w-2*x, b.h-2*y, gfx.RGBA(uint8(30*k+i), 0x40, 0xA0, alpha))
		}
	}
}

func (b *bench) circles(alpha uint8) func(int) {
	return func(i int) {
		r := min(b.w, b.h) / 2
		for k := 0; k < 6; k++ {
			b.cv.FillCircle(b.w/2, b.h/2, r-k*r/6, gfx.RGBA(0xFF, uint8(40*k+i), 0x30, alpha))
		}
	}
}

func (b *bench) ellipses(i int) {
	for k := 0; k < 6; k++ {
		b.cv.FillEllipse(b.w/2, b.h/2, b.w/2-k*b.w/12, b.h/2-k*b.h/12, gfx.RGBA(0x30, 0xFF, uint8(40*k+i), 160))
	}
}

func (b *bench) polygons(i int) {
	for k := 0; k < 4; k++ {
		b.cv.FillPolygon(b.pts, gfx.RGBA(uint8(60*k+i), 0xC0, 0x40, 128))
	}
}

func (b *bench) text(int) {
	white := gfx.RGB(0xFF, 0xFF, 0xFF)
	for y := gfx.FontHeight; y < b.h; y += gfx.FontHeight {
		b.cv.Text(2, y, "Framebuffer benchmark: shapes, fills, lines, text", white)
	}
}

func measure(fn func()) uint64 {
	start := time.Now()
	fn()
	us := uint64(time.Since(start).Microseconds())
	if us == 0 {
		us = 1
	}
	return us
}

func scoreFromOps(ops, usec uint64) uint64 {
	if usec == 0 {
		usec = 1
	}
	return (ops * scoreScale) / usec
}

func runBenchmarks(tests []benchTest) ([]testResult, uint64) {
	results := make([]testResult, 0, len(tests))
	var total uint64
	for _, test := range tests {
		us := measure(test.run)
		score := scoreFromOps(test.ops, us)
		results = append(results, testResult{name: test.name, usec: us, score: score})
		total += score
	}
	return results, total
}

func report(w io.Writer, results []testResult, total uint64) {
	fmt.Fprintln(w, "Test                   usec     score")
	for _, res := range results {
		fmt.Fprintf(w, "%-18s %8d %9d\n", res.name, res.usec, res.score)
	}
	fmt.Fprintf(w, "\nTotal score: %d\n", total)
}
