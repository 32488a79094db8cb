package hal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHostFramebufferClear(t *testing.T) {
	for _, f := range []PixelFormat{PixelFormatRGB565, PixelFormatRGBA8888, PixelFormatBGRA8888} {
		fb := newHostFramebuffer(4, 3, f)
		if fb.StrideBytes() != 4*f.BytesPerPixel() {
			t.Fatalf("%v: StrideBytes() = %d", f, fb.StrideBytes())
		}
		fb.ClearRGB(255, 0, 255)

		rgba := make([]byte, 4*3*4)
		fb.snapshotRGBA(rgba)
		for i := 0; i < len(rgba); i += 4 {
			if rgba[i] != 255 || rgba[i+1] != 0 || rgba[i+2] != 255 || rgba[i+3] != 255 {
				t.Fatalf("%v: pixel %d = %v, want magenta", f, i/4, rgba[i:i+4])
			}
		}
	}
}

func TestHostFramebufferShare(t *testing.T) {
	fb := newHostFramebuffer(2, 2, PixelFormatRGBA8888)
	pix := make([]byte, 16)
	if fb.Share(pix, 4) {
		t.Fatal("Share accepted a mismatched stride")
	}
	if !fb.Share(pix, 8) {
		t.Fatal("Share rejected a matching layout")
	}
	pix[0] = 42
	if fb.Buffer()[0] != 42 {
		t.Fatal("Buffer() does not alias shared memory")
	}
	if err := fb.Present(); err != nil || fb.presentCount() != 1 {
		t.Fatalf("Present() = %v, count %d, want 1", err, fb.presentCount())
	}
	fb.Unshare()
	if fb.Buffer()[0] == 42 {
		t.Fatal("Buffer() still aliases shared memory after Unshare")
	}

	other := newHostFramebuffer(2, 2, PixelFormatRGB565)
	if other.Share(make([]byte, 16), 8) {
		t.Fatal("RGB565 framebuffer accepted RGBA memory")
	}
}

func TestDisplayTitle(t *testing.T) {
	h := newHost(Config{Width: 8, Height: 8, Title: "start"})
	if got := h.disp.Title(); got != "start" {
		t.Fatalf("Title() = %q, want start", got)
	}
	h.Display().SetTitle("next")
	if got := h.disp.Title(); got != "next" {
		t.Fatalf("Title() = %q, want next", got)
	}
	if _, _, ok := h.Input().Pointer().Position(); ok {
		t.Fatal("pointer reported a position before any input")
	}
}

func TestRunHeadlessTicks(t *testing.T) {
	var steps int
	err := RunHeadless(context.Background(), Config{Width: 16, Height: 16}, func(h HAL) func() error {
		if fb := h.Display().Framebuffer(); fb.Width() != 16 || fb.Height() != 16 {
			t.Errorf("framebuffer %dx%d, want 16x16", fb.Width(), fb.Height())
		}
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
}

func TestRunHeadlessQuitAndKeys(t *testing.T) {
	err := RunHeadless(context.Background(), Config{}, func(h HAL) func() error {
		kbd := h.Input().Keyboard()
		return func() error {
			select {
			case ev := <-kbd.Events():
				if ev.Rune == 'q' {
					return ErrQuit
				}
			default:
			}
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 100, Keys: []KeyEvent{{Press: true, Rune: 'q'}}})
	if err != nil {
		t.Fatalf("RunHeadless = %v, want nil on ErrQuit", err)
	}

	boom := errors.New("boom")
	err = RunHeadless(context.Background(), Config{}, func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless = %v, want boom", err)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, Config{Width: 4, Height: 4}, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless = %v, want deadline exceeded", err)
	}
}
