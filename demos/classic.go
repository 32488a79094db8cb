package demos

import (
	"math"
	"math/rand"

	"lumen/gfx"
)

// RasterBars stacks translucent rainbow bars whose colors roll downward.
type RasterBars struct{}

func (RasterBars) Name() string { return "Raster Bars" }

func (RasterBars) Draw(cv *gfx.Canvas, f Frame) {
	const barHeight = 20
	bars := f.H / barHeight
	for i := 0; i < bars; i++ {
		phase := f.T + float64(i)/float64(bars)*math.Pi*2
		cv.FillRect(0, i*barHeight, f.W, barHeight, Rainbow(phase, 0.7))
	}
}

// SinusScroller moves a message right to left along a sine wave. Characters
// toward the tail fade out.
type SinusScroller struct {
	Message string

	x      int
	placed bool
}

func (s *SinusScroller) Name() string { return "Sinus Scroller" }

func (s *SinusScroller) Reset() { s.placed = false }

func (s *SinusScroller) Draw(cv *gfx.Canvas, f Frame) {
	const (
		speed   = 2
		advance = 10
	)
	if !s.placed {
		s.x = f.W
		s.placed = true
	}
	msg := []rune(s.Message)
	s.x -= speed
	if s.x < -len(msg)*advance {
		s.x = f.W
	}
	for i, r := range msg {
		x := s.x + i*advance
		if x < -advance || x > f.W {
			continue
		}
		y := f.H/2 + int(math.Sin(f.T+float64(x)/50)*50)
		fade := 1 - float64(i)/float64(len(msg))*0.8
		c := Rainbow(f.T+float64(i)/float64(len(msg))*math.Pi*2, fade)
		cv.Text(x, y, string(r), c)
	}
}

type star struct {
	x, y int
	z    float64
}

// Starfield scrolls stars leftward at a speed and brightness set by depth.
type Starfield struct {
	stars  []star
	rng    *rand.Rand
	seeded bool
}

// NewStarfield prepares n stars. Positions are chosen on the first frame,
// once the surface size is known.
func NewStarfield(n int, seed int64) *Starfield {
	return &Starfield{stars: make([]star, n), rng: rand.New(rand.NewSource(seed))}
}

func (s *Starfield) Name() string { return "Starfield" }

func (s *Starfield) seed(w, h int) {
	for i := range s.stars {
		s.stars[i] = star{
			x: s.rng.Intn(w),
			y: s.rng.Intn(h),
			z: float64(s.rng.Intn(1000)) / 1000,
		}
	}
	s.seeded = true
}

func (s *Starfield) Draw(cv *gfx.Canvas, f Frame) {
	if f.W <= 0 || f.H <= 0 {
		return
	}
	if !s.seeded {
		s.seed(f.W, f.H)
	}
	for i := range s.stars {
		st := &s.stars[i]
		st.x -= int(st.z*5 + 1)
		if st.x < 0 {
			st.x = f.W
			st.y = s.rng.Intn(f.H)
		}
		c := Rainbow(st.z*f.T*5, st.z)
		cv.FillRect(st.x, st.y, 2, 2, c)
	}
}

// Plasma is the classic three-sine plasma on a 4×4 grid.
type Plasma struct{}

func (Plasma) Name() string { return "Plasma" }

func (Plasma) Draw(cv *gfx.Canvas, f Frame) {
	const step = 4
	for y := 0; y < f.H; y += step {
		for x := 0; x < f.W; x += step {
			fx, fy := float64(x), float64(y)
			v := math.Sin(fx/50+f.T) + math.Sin(fy/50+f.T) + math.Sin((fx+fy)/30+f.T)
			v = (v + 3) / 6
			cv.FillRect(x, y, step, step, Rainbow(v*math.Pi*4, v*0.8))
		}
	}
}

// GlowCircles overlaps translucent discs; larger discs are fainter, which
// reads as bloom.
type GlowCircles struct{}

func (GlowCircles) Name() string { return "Glowing Circles" }

func (GlowCircles) Draw(cv *gfx.Canvas, f Frame) {
	const n = 20
	for i := 0; i < n; i++ {
		phase := f.T + float64(i)/n*math.Pi*2
		radius := 60 + 40*math.Sin(phase*3)
		x := f.W/2 + int(150*math.Cos(phase*0.8))
		y := f.H/2 + int(100*math.Sin(phase*1.2))
		alpha := max(0.9-radius/200, 0.1)
		cv.FillCircle(x, y, int(radius), Rainbow(phase*2, alpha))
	}
}

// MovingRects orbits ten opaque rectangles of breathing size.
type MovingRects struct{}

func (MovingRects) Name() string { return "Moving Rectangles" }

func (MovingRects) Draw(cv *gfx.Canvas, f Frame) {
	for i := 0; i < 10; i++ {
		t := f.T + float64(i)*0.2
		w := 50 + int(20*math.Sin(t*2))
		h := 50 + int(20*math.Cos(t*3))
		x := int(float64(f.W)*0.5+100*math.Cos(t*1.5)) - w/2
		y := int(float64(f.H)*0.5+80*math.Sin(t*2.5)) - h/2
		cv.FillRect(x, y, w, h, Rainbow(t*4, 1))
	}
}
