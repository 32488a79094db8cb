package gfx

import (
	"errors"
	"testing"
)

func TestNewBufferRejectsBadSizes(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{0, 10},
		{10, 0},
		{-1, 5},
		{1 << 20, 1 << 20},
	} {
		b, err := NewBuffer(tc.w, tc.h)
		if !errors.Is(err, ErrAlloc) {
			t.Fatalf("NewBuffer(%d, %d) err = %v, want ErrAlloc", tc.w, tc.h, err)
		}
		if b != nil {
			t.Fatalf("NewBuffer(%d, %d) returned a buffer on error", tc.w, tc.h)
		}
	}
}

func TestNewBufferZeroed(t *testing.T) {
	b, err := NewBuffer(7, 3)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	if got, want := len(b.Pix()), 7*3*4; got != want {
		t.Fatalf("len(Pix()) = %d, want %d", got, want)
	}
	if b.Stride() != 28 {
		t.Fatalf("Stride() = %d, want 28", b.Stride())
	}
	for i, v := range b.Pix() {
		if v != 0 {
			t.Fatalf("Pix()[%d] = %d, want 0", i, v)
		}
	}
}

func TestNewBufferFill(t *testing.T) {
	c := RGB(1, 2, 3)
	b, err := NewBufferFill(5, 5, c)
	if err != nil {
		t.Fatalf("NewBufferFill: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := b.At(x, y); got != c {
				t.Fatalf("At(%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestPixelLayout(t *testing.T) {
	b := mustBuffer(t, 5, 4)
	b.Point(3, 2, RGB(10, 20, 30))

	off := (2*5 + 3) * 4
	if b.PixOffset(3, 2) != off {
		t.Fatalf("PixOffset(3,2) = %d, want %d", b.PixOffset(3, 2), off)
	}
	p := b.Pix()[off : off+4]
	if p[0] != 10 || p[1] != 20 || p[2] != 30 || p[3] != 255 {
		t.Fatalf("pixel bytes = %v, want [10 20 30 255]", p)
	}
	img := b.RGBA()
	if got := img.RGBAAt(3, 2); got.R != 10 || got.G != 20 || got.B != 30 {
		t.Fatalf("RGBA().RGBAAt(3,2) = %v", got)
	}
}

func TestClearIdempotent(t *testing.T) {
	b := mustBuffer(t, 9, 6)
	b.FillRect(2, 2, 3, 3, RGBA(200, 10, 10, 90))

	b.Clear(12, 34, 56)
	once := append([]byte(nil), b.Pix()...)
	b.Clear(12, 34, 56)

	for i := range once {
		if once[i] != b.Pix()[i] {
			t.Fatalf("byte %d differs after second Clear", i)
		}
	}
	want := RGB(12, 34, 56)
	for y := 0; y < 6; y++ {
		for x := 0; x < 9; x++ {
			if got := b.At(x, y); got != want {
				t.Fatalf("At(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDestroy(t *testing.T) {
	var nilBuf *Buffer
	nilBuf.Destroy()
	nilBuf.FillRect(0, 0, 10, 10, RGB(1, 1, 1))

	b := mustBuffer(t, 4, 4)
	b.Destroy()
	b.Destroy()
	if b.Enabled() {
		t.Fatal("Enabled() = true after Destroy")
	}
	if b.Pix() != nil {
		t.Fatal("Pix() != nil after Destroy")
	}

	// Drawing on a destroyed buffer does nothing.
	b.Clear(1, 2, 3)
	b.Point(1, 1, RGB(1, 1, 1))
	b.FillRect(0, 0, 4, 4, RGB(1, 1, 1))
	b.FillCircle(2, 2, 2, RGB(1, 1, 1))
	b.FillEllipse(2, 2, 2, 1, RGB(1, 1, 1))
	b.FillPolygon(triangle(), RGB(1, 1, 1))
	b.ScrollUp(1, RGB(0, 0, 0))
}

func TestScrollUp(t *testing.T) {
	b := mustBuffer(t, 3, 4)
	for y := 0; y < 4; y++ {
		b.FillRect(0, y, 3, 1, RGB(uint8(y+1), 0, 0))
	}
	bg := RGB(0, 0, 9)
	b.ScrollUp(1, bg)

	for y, want := range []Color{RGB(2, 0, 0), RGB(3, 0, 0), RGB(4, 0, 0), bg} {
		if got := b.At(1, y); got != want {
			t.Fatalf("row %d = %v, want %v", y, got, want)
		}
	}

	b.ScrollUp(10, bg)
	if got := b.At(0, 0); got != bg {
		t.Fatalf("At(0,0) after full scroll = %v, want %v", got, bg)
	}
}

func mustBuffer(t *testing.T, w, h int) *Buffer {
	t.Helper()
	b, err := NewBuffer(w, h)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d): %v", w, h, err)
	}
	return b
}
