package gfx

import (
	"image"
	"testing"

	"tinygo.org/x/tinyterm"
)

type span struct {
	x0, x1, y int
	c         Color
}

type recordingImmediate struct {
	w, h   int
	spans  []span
	clears []Color
}

func (r *recordingImmediate) Size() (int, int) { return r.w, r.h }

func (r *recordingImmediate) Span(x0, x1, y int, c Color) {
	r.spans = append(r.spans, span{x0, x1, y, c})
}

func (r *recordingImmediate) Clear(c Color) { r.clears = append(r.clears, c) }

func TestCanvasFallsBackOnce(t *testing.T) {
	imm := &recordingImmediate{w: 32, h: 32}
	var notes []string
	cv := NewCanvas(nil, imm, func(msg string) { notes = append(notes, msg) })

	if cv.Buffered() {
		t.Fatal("Buffered() = true without a buffer")
	}
	c := RGBA(10, 20, 30, 40)
	cv.FillRect(1, 1, 3, 3, c)
	cv.FillCircle(10, 10, 4, c)
	cv.FillEllipse(10, 10, 6, 2, c)
	cv.FillPolygon(triangle(), c)
	cv.Point(0, 0, c)
	cv.Clear(RGBA(1, 2, 3, 0))

	if len(notes) != 1 {
		t.Fatalf("notify called %d times, want 1", len(notes))
	}
	if len(imm.spans) == 0 {
		t.Fatal("no spans reached the immediate drawer")
	}
	for _, s := range imm.spans {
		if s.c.A != 255 {
			t.Fatalf("span %+v drawn with alpha %d, want opaque", s, s.c.A)
		}
	}
	if len(imm.clears) != 1 || imm.clears[0] != RGB(1, 2, 3) {
		t.Fatalf("clears = %v, want one opaque clear", imm.clears)
	}
}

func TestCanvasDrawsIntoBuffer(t *testing.T) {
	b := mustBuffer(t, 20, 20)
	imm := &recordingImmediate{w: 20, h: 20}
	notified := false
	cv := NewCanvas(b, imm, func(string) { notified = true })

	cv.Clear(RGB(0, 0, 0))
	cv.FillRect(10, 10, 5, 5, RGB(200, 100, 50))
	if got := b.At(12, 12); got != RGB(200, 100, 50) {
		t.Fatalf("At(12,12) = %v", got)
	}
	if len(imm.spans) != 0 || notified {
		t.Fatal("immediate drawer used while buffered")
	}

	b.Destroy()
	cv.FillRect(0, 0, 2, 2, RGB(1, 1, 1))
	if !notified || len(imm.spans) == 0 {
		t.Fatal("destroyed buffer did not fall back")
	}
}

func TestCanvasWithoutSurfaces(t *testing.T) {
	cv := NewCanvas(nil, nil, nil)
	cv.Clear(RGB(1, 1, 1))
	cv.FillPolygon([]image.Point{{0, 0}, {4, 0}, {0, 4}}, RGB(1, 1, 1))
	cv.Text(0, 10, "hi", RGB(255, 255, 255))
	if w, h := cv.Size(); w != 0 || h != 0 {
		t.Fatalf("Size() = %d,%d, want 0,0", w, h)
	}
}

func TestCanvasText(t *testing.T) {
	b := mustBuffer(t, 80, 16)
	cv := NewCanvas(b, nil, nil)
	cv.Clear(RGB(0, 0, 0))
	cv.Text(2, 10, "Hello", RGB(255, 255, 255))

	if n := countCovered(b, RGB(0, 0, 0)); n == 0 {
		t.Fatal("Text drew no pixels")
	}
	if w := cv.TextWidth("Hello"); w <= 0 || w > 80 {
		t.Fatalf("TextWidth(Hello) = %d", w)
	}
	if cv.TextWidth("Hello, world") <= cv.TextWidth("Hello") {
		t.Fatal("TextWidth not monotonic")
	}
}

func TestCanvasBlit(t *testing.T) {
	src := mustBuffer(t, 4, 4)
	src.Clear(255, 255, 255)
	dst := mustBuffer(t, 10, 10)
	dst.Clear(0, 0, 0)
	cv := NewCanvas(dst, nil, nil)

	cv.Blit(src, 8, 8, 255)
	if dst.At(9, 9) != RGB(255, 255, 255) || dst.At(7, 7) != RGB(0, 0, 0) {
		t.Fatal("opaque blit misplaced")
	}
	cv.Blit(src, 0, 0, 128)
	if got := dst.At(1, 1); got != RGB(128, 128, 128) {
		t.Fatalf("translucent blit At(1,1) = %v, want half grey", got)
	}
}

func TestDisplayerRunsTerminal(t *testing.T) {
	b := mustBuffer(t, 120, 60)
	b.Clear(0, 0, 0)
	term := tinyterm.NewTerminal(NewDisplayer(b))
	term.Configure(&tinyterm.Config{
		Font:              DefaultFont,
		FontHeight:        FontHeight,
		FontOffset:        8,
		UseSoftwareScroll: true,
	})
	for i := 0; i < 12; i++ {
		if _, err := term.Write([]byte("line\n")); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if n := countCovered(b, RGB(0, 0, 0)); n == 0 {
		t.Fatal("terminal drew nothing")
	}
}
