// Package demos holds the animated effects shown by the runner. Every effect
// draws one frame at a time through a gfx.Canvas and keeps whatever state it
// needs between frames in its own struct.
package demos

import (
	"math"

	"lumen/gfx"
)

// Frame describes the frame being drawn.
type Frame struct {
	W, H int
	// T is the animation clock in radians-ish units; it advances a fixed
	// step per frame and wraps.
	T    float64
	Tick uint64

	PointerX, PointerY int
	Pointer            bool

	// Input holds the runes typed since the previous frame.
	Input []rune
}

// Effect is one demo.
type Effect interface {
	Name() string
	Draw(cv *gfx.Canvas, f Frame)
}

// Resetter is implemented by effects whose state should restart when they
// are selected again.
type Resetter interface {
	Reset()
}

// Default returns the full effect list in presentation order. seed drives
// every random choice so runs are reproducible.
func Default(seed int64) []Effect {
	return []Effect{
		RasterBars{},
		&SinusScroller{Message: "GREETINGS FROM THE ALPHA CHANNEL - SINUS SCROLLER!"},
		NewStarfield(200, seed),
		Plasma{},
		GlowCircles{},
		MovingRects{},
		AlphaScene{},
		PulsatingWaves{},
		PlasmaNoise{},
		TransparentLayers{},
		Glass{},
		&TransformingShapes{},
		SwirlingLines{},
		ExpandingCircles{Count: 24},
		&PointerPulse{},
		&Mandelbrot{},
		Lissajous{},
		&WaveInterference{},
		PolarRose{},
		NewLorenz(),
		NewDiggers(seed),
		NewConsole(),
	}
}

// Rainbow maps a phase to a color on a sine rainbow, with alpha = alpha*255.
// Channels are truncated, not rounded.
func Rainbow(phase, alpha float64) gfx.Color {
	r := math.Sin(phase)*0.5 + 0.5
	g := math.Sin(phase+2.094)*0.5 + 0.5
	b := math.Sin(phase+4.188)*0.5 + 0.5
	return gfx.RGBA(
		gfx.Clamp8i(int(r*255)),
		gfx.Clamp8i(int(g*255)),
		gfx.Clamp8i(int(b*255)),
		gfx.Clamp8i(int(alpha*255)),
	)
}

// Enhanced is the slower, deeper rainbow used behind line effects. value
// scales brightness.
func Enhanced(phase, value float64) gfx.Color {
	const freq = 0.3
	return gfx.RGB(
		gfx.Clamp8i(int(math.Abs(math.Sin(freq*phase))*255*value)),
		gfx.Clamp8i(int(math.Abs(math.Sin(freq*phase+2.094))*255*value)),
		gfx.Clamp8i(int(math.Abs(math.Sin(freq*phase+4.188))*255*value)),
	)
}

// Pulse brightens a rainbow color by a wave travelling outward with
// distance.
func Pulse(phase, distance float64) gfx.Color {
	intensity := math.Sin(phase+distance*0.1)*0.5 + 0.5
	return gfx.RGB(
		gfx.Clamp8i(int(math.Sin(phase)*127+128*intensity)),
		gfx.Clamp8i(int(math.Sin(phase+2.094)*127+128*intensity)),
		gfx.Clamp8i(int(math.Sin(phase+4.188)*127+128*intensity)),
	)
}

// background paints the pale vertical gradient the layered scenes sit on.
func background(cv *gfx.Canvas, w, h int) {
	for y := 0; y < h; y++ {
		b := 255 - int(float64(y)/float64(h)*100)
		cv.FillRect(0, y, w, 1, gfx.RGB(255, 255, uint8(b)))
	}
}
