package app

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"lumen/demos"
	"lumen/gfx"
	"lumen/hal"
	"lumen/present"
)

type lineLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineLog) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *lineLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *lineLog) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// testHAL pairs a host display with a keyboard the test can type into.
type testHAL struct {
	hal.HAL
	log  *lineLog
	keys chan hal.KeyEvent
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		HAL:  hal.New(hal.Config{Width: w, Height: h}),
		log:  &lineLog{},
		keys: make(chan hal.KeyEvent, 16),
	}
}

func (t *testHAL) Logger() hal.Logger           { return t.log }
func (t *testHAL) Input() hal.Input             { return t }
func (t *testHAL) Keyboard() hal.Keyboard       { return t }
func (t *testHAL) Pointer() hal.Pointer         { return nil }
func (t *testHAL) Events() <-chan hal.KeyEvent  { return t.keys }
func (t *testHAL) typeRune(r rune)              { t.keys <- hal.KeyEvent{Press: true, Rune: r} }
func (t *testHAL) press(code hal.KeyCode)       { t.keys <- hal.KeyEvent{Code: code, Press: true} }
func (t *testHAL) framebuffer() hal.Framebuffer { return t.Display().Framebuffer() }

func (t *testHAL) title() string {
	if d, ok := t.Display().(interface{ Title() string }); ok {
		return d.Title()
	}
	return ""
}

type fakeEffect struct {
	name   string
	draws  int
	resets int
	last   demos.Frame
	input  []rune
	color  gfx.Color
	panics bool
}

func (e *fakeEffect) Name() string { return e.name }

func (e *fakeEffect) Draw(cv *gfx.Canvas, f demos.Frame) {
	if e.panics {
		panic("boom")
	}
	e.draws++
	e.last = f
	e.input = append(e.input, f.Input...)
	cv.FillRect(0, f.H/2, f.W, f.H/2, e.color)
}

func (e *fakeEffect) Reset() { e.resets++ }

func fakes(names ...string) ([]*fakeEffect, []demos.Effect) {
	fs := make([]*fakeEffect, len(names))
	es := make([]demos.Effect, len(names))
	for i, n := range names {
		fs[i] = &fakeEffect{name: n, color: gfx.RGB(uint8(50*(i+1)), 0, 0)}
		es[i] = fs[i]
	}
	return fs, es
}

func TestRunnerSwitchesEffects(t *testing.T) {
	th := newTestHAL(32, 24)
	fs, es := fakes("a", "b", "c")
	r := NewRunner(th, Config{Effects: es})
	defer r.Close()

	if r.Current() != 0 || fs[0].resets != 1 {
		t.Fatalf("initial effect = %d (resets %d), want 0 (1)", r.Current(), fs[0].resets)
	}
	if got := th.title(); got != "1. a" {
		t.Fatalf("title = %q, want %q", got, "1. a")
	}

	steps := []struct {
		send func()
		want int
	}{
		{func() { th.typeRune('n') }, 1},
		{func() { th.press(hal.KeyRight) }, 2},
		{func() { th.press(hal.KeyDown) }, 0},
		{func() { th.typeRune('p') }, 2},
		{func() { th.press(hal.KeyLeft) }, 1},
		{func() { th.press(hal.KeyUp) }, 0},
	}
	for i, s := range steps {
		s.send()
		if err := r.Step(); err != nil {
			t.Fatalf("step %d: Step() = %v", i, err)
		}
		if r.Current() != s.want {
			t.Fatalf("step %d: Current() = %d, want %d", i, r.Current(), s.want)
		}
	}
	if got := th.title(); got != "1. a" {
		t.Fatalf("title = %q, want %q", got, "1. a")
	}
	if fs[2].resets != 2 {
		t.Fatalf("effect c resets = %d, want 2", fs[2].resets)
	}
	if !th.log.contains("app: effect 2. b") {
		t.Fatal("effect switch not logged")
	}
}

func TestRunnerStartsAtConfiguredDemo(t *testing.T) {
	th := newTestHAL(16, 16)
	_, es := fakes("a", "b", "c")
	for _, tc := range []struct{ demo, want int }{{1, 1}, {5, 2}, {-1, 2}} {
		r := NewRunner(th, Config{Effects: es, Demo: tc.demo})
		if r.Current() != tc.want {
			t.Fatalf("Demo %d: Current() = %d, want %d", tc.demo, r.Current(), tc.want)
		}
		r.Close()
	}
}

func TestRunnerQuit(t *testing.T) {
	for _, send := range []func(*testHAL){
		func(th *testHAL) { th.typeRune('q') },
		func(th *testHAL) { th.press(hal.KeyEscape) },
	} {
		th := newTestHAL(16, 16)
		_, es := fakes("a")
		r := NewRunner(th, Config{Effects: es})
		send(th)
		if err := r.Step(); !errors.Is(err, ErrQuit) {
			t.Fatalf("Step() = %v, want ErrQuit", err)
		}
		r.Close()
	}
}

func TestRunnerForwardsInput(t *testing.T) {
	th := newTestHAL(16, 16)
	fs, es := fakes("a")
	r := NewRunner(th, Config{Effects: es})
	defer r.Close()

	th.typeRune('x')
	th.keys <- hal.KeyEvent{Press: false, Rune: 'z'}
	th.typeRune('+')
	th.press(hal.KeyEnter)
	if err := r.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if got := string(fs[0].input); got != "x+\n" {
		t.Fatalf("input = %q, want %q", got, "x+\n")
	}
	if err := r.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if len(fs[0].last.Input) != 0 {
		t.Fatalf("second frame input = %q, want empty", string(fs[0].last.Input))
	}
}

func TestRunnerClock(t *testing.T) {
	th := newTestHAL(16, 16)
	fs, es := fakes("a")
	r := NewRunner(th, Config{Effects: es})
	defer r.Close()

	for i := 0; i < 3; i++ {
		if err := r.Step(); err != nil {
			t.Fatalf("Step() = %v", err)
		}
	}
	if fs[0].last.Tick != 2 || math.Abs(fs[0].last.T-2*timeStep) > 1e-9 {
		t.Fatalf("frame 3 = tick %d t %v, want tick 2 t %v", fs[0].last.Tick, fs[0].last.T, 2*timeStep)
	}
	if fs[0].last.W != 16 || fs[0].last.H != 16 {
		t.Fatalf("frame size = %dx%d, want 16x16", fs[0].last.W, fs[0].last.H)
	}

	r.t = timeWrap - timeStep/2
	if err := r.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if r.t < 0 || r.t > timeStep {
		t.Fatalf("t after wrap = %v, want in [0, %v]", r.t, timeStep)
	}
}

func TestRunnerPresentsFrame(t *testing.T) {
	for _, mode := range []present.Mode{present.ModeAuto, present.ModeCopy} {
		th := newTestHAL(60, 60)
		_, es := fakes("a")
		r := NewRunner(th, Config{Effects: es, Present: mode, Clear: gfx.RGB(0, 0, 255)})
		if err := r.Step(); err != nil {
			t.Fatalf("%v: Step() = %v", mode, err)
		}
		if !r.Session().Enabled() {
			t.Fatalf("%v: session not buffered", mode)
		}
		fb := th.framebuffer()
		pix := fb.Buffer()
		// Bottom half is the effect; between it and the title bar only the
		// clear color shows.
		bottom := (59*fb.Width() + 10) * 4
		if got := pix[bottom : bottom+4]; got[0] != 50 || got[2] != 0 {
			t.Fatalf("%v: effect pixel = %v, want red 50", mode, got)
		}
		mid := (25*fb.Width() + 10) * 4
		if got := pix[mid : mid+4]; got[2] != 255 || got[0] != 0 {
			t.Fatalf("%v: clear pixel = %v, want blue", mode, got)
		}
		r.Close()
		if !th.log.contains("present: back buffer released") {
			t.Fatalf("%v: cleanup not logged", mode)
		}
	}
}

func TestRunnerHelpOverlay(t *testing.T) {
	th := newTestHAL(200, 160)
	_, es := fakes("a", "b")
	r := NewRunner(th, Config{Effects: es})
	defer r.Close()

	if err := r.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	before := append([]byte(nil), r.Session().Buffer().Pix()...)

	th.typeRune('h')
	if err := r.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if !r.help {
		t.Fatal("help not toggled on")
	}
	after := r.Session().Buffer().Pix()
	changed := false
	for i := range before {
		if before[i] != after[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatal("help overlay drew nothing")
	}

	th.press(hal.KeyF1)
	if err := r.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if r.help {
		t.Fatal("help not toggled off")
	}
}

func TestRunnerRecoversEffectPanic(t *testing.T) {
	th := newTestHAL(64, 48)
	fs, es := fakes("bad")
	fs[0].panics = true
	r := NewRunner(th, Config{Effects: es})
	defer r.Close()

	err := r.Step()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Step() = %v, want panic error", err)
	}
	if !th.log.contains("app: panic in bad: boom") {
		t.Fatal("panic not logged")
	}
	if got := r.Session().Buffer().At(63, 47); got != gfx.RGB(255, 255, 255) {
		t.Fatalf("panic screen corner = %v, want white", got)
	}
}

type failingFB struct{ hal.Framebuffer }

var errPresent = errors.New("present failed")

func (failingFB) Present() error { return errPresent }

type failingDisplay struct{ hal.Display }

func (d failingDisplay) Framebuffer() hal.Framebuffer { return failingFB{d.Display.Framebuffer()} }

type failingHAL struct{ *testHAL }

func (h failingHAL) Display() hal.Display { return failingDisplay{h.testHAL.Display()} }

func TestRunnerPanicReportsSwapError(t *testing.T) {
	th := newTestHAL(64, 48)
	fs, es := fakes("bad")
	fs[0].panics = true
	r := NewRunner(failingHAL{th}, Config{Effects: es, Present: present.ModeCopy})
	defer r.Close()

	err := r.Step()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Step() = %v, want panic error", err)
	}
	if !errors.Is(err, errPresent) {
		t.Fatalf("Step() = %v, want the swap error joined in", err)
	}
	if !th.log.contains("app: panic screen: present failed") {
		t.Fatal("swap failure not logged")
	}
}

func TestDefaultEffectsRun(t *testing.T) {
	th := newTestHAL(120, 90)
	r := NewRunner(th, Config{Seed: 1})
	defer r.Close()

	n := len(demos.Default(1))
	for i := 0; i < n; i++ {
		if err := r.Step(); err != nil {
			t.Fatalf("effect %d: Step() = %v", r.Current(), err)
		}
		th.typeRune('n')
	}
	if err := r.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	if r.Current() != 0 {
		t.Fatalf("Current() after a full cycle = %d, want 0", r.Current())
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int
		head, tail string
	}{
		{"hello", 10, "hello", ""},
		{"hello", 2, "he", "llo"},
		{"héllo", 2, "hé", "llo"},
		{"", 3, "", ""},
		{"abc", 0, "", "abc"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q, want %q, %q", tt.s, tt.n, head, tail, tt.head, tt.tail)
		}
	}
}
