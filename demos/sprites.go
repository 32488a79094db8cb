package demos

import (
	"math"
	"math/rand"

	"lumen/gfx"

	"golang.org/x/image/colornames"
)

// PointerPulse lights a grid of dots around the pointer, pulsing outward.
// Without a pointer the centre of the screen is used.
type PointerPulse struct{}

func (*PointerPulse) Name() string { return "Pointer Pulse" }

func (*PointerPulse) Draw(cv *gfx.Canvas, f Frame) {
	const step = 8
	mx, my := f.W/2, f.H/2
	if f.Pointer {
		mx, my = f.PointerX, f.PointerY
	}
	for x := 0; x < f.W; x += step {
		for y := 0; y < f.H; y += step {
			d := math.Hypot(float64(x-mx), float64(y-my))
			if d >= 200 {
				continue
			}
			size := 2 + math.Sin(f.T+d*0.05)*2
			c := Pulse(f.T, d)
			c.A = gfx.Clamp8(255 * (1 - d/200))
			cv.FillCircle(x, y, int(size), c)
		}
	}
}

type digger struct {
	x, y  int
	dir   int
	color gfx.Color
}

type cherry struct {
	x, y  int
	eaten bool
}

// Diggers walk in straight lines, bounce off the edges and turn randomly
// after eating a cherry. The orchard regrows once every cherry is gone.
type Diggers struct {
	rng      *rand.Rand
	diggers  []digger
	cherries []cherry
	w, h     int
}

const (
	numDiggers  = 5
	numCherries = 10
)

func NewDiggers(seed int64) *Diggers {
	return &Diggers{rng: rand.New(rand.NewSource(seed))}
}

func (*Diggers) Name() string { return "Diggers and Cherries" }

func (d *Diggers) Reset() { d.w, d.h = 0, 0 }

func (d *Diggers) populate(w, h int) {
	d.w, d.h = w, h
	d.diggers = d.diggers[:0]
	for i := 0; i < numDiggers; i++ {
		d.diggers = append(d.diggers, digger{
			x:     d.rng.Intn(w),
			y:     d.rng.Intn(h),
			dir:   d.rng.Intn(4),
			color: Rainbow(float64(i)/numDiggers*2*math.Pi, 1),
		})
	}
	d.plant()
}

func (d *Diggers) plant() {
	d.cherries = d.cherries[:0]
	for i := 0; i < numCherries; i++ {
		d.cherries = append(d.cherries, cherry{x: d.rng.Intn(d.w), y: d.rng.Intn(d.h)})
	}
}

func (d *Diggers) update() {
	const speed = 2
	left := 0
	for i := range d.diggers {
		g := &d.diggers[i]
		switch g.dir {
		case 0:
			g.x += speed
		case 1:
			g.x -= speed
		case 2:
			g.y -= speed
		case 3:
			g.y += speed
		}
		switch {
		case g.x < 0:
			g.dir = 0
		case g.x > d.w:
			g.dir = 1
		case g.y < 0:
			g.dir = 3
		case g.y > d.h:
			g.dir = 2
		}
		for j := range d.cherries {
			c := &d.cherries[j]
			if !c.eaten && abs(g.x-c.x) < 10 && abs(g.y-c.y) < 10 {
				c.eaten = true
				g.dir = d.rng.Intn(4)
			}
		}
	}
	for _, c := range d.cherries {
		if !c.eaten {
			left++
		}
	}
	if left == 0 {
		d.plant()
	}
}

func (d *Diggers) Draw(cv *gfx.Canvas, f Frame) {
	if f.W <= 0 || f.H <= 0 {
		return
	}
	if d.w != f.W || d.h != f.H {
		d.populate(f.W, f.H)
	}
	d.update()

	cv.FillRect(0, 0, f.W, f.H, gfx.FromRGBA(colornames.Saddlebrown).WithAlpha(90))
	for _, c := range d.cherries {
		if c.eaten {
			continue
		}
		cv.Line(c.x, c.y-5, c.x+3, c.y-10, gfx.FromRGBA(colornames.Forestgreen))
		cv.FillCircle(c.x, c.y, 5, gfx.FromRGBA(colornames.Crimson))
	}
	for _, g := range d.diggers {
		cv.FillRect(g.x-8, g.y-5, 16, 10, g.color)
		cv.FillCircle(g.x-5, g.y+5, 3, g.color)
		cv.FillCircle(g.x+5, g.y+5, 3, g.color)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
