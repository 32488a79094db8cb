package demos

import (
	"fmt"
	"math"

	"lumen/gfx"

	"seehuhn.de/go/geom/vec"
)

// SwirlingLines draws five layers of rotating chords between two orbits.
type SwirlingLines struct{}

func (SwirlingLines) Name() string { return "Swirling Lines" }

func (SwirlingLines) Draw(cv *gfx.Canvas, f Frame) {
	w, h := float64(f.W), float64(f.H)
	cx, cy := f.W/2, f.H/2
	for l := 0; l < 5; l++ {
		fl := float64(l)
		lp := f.T * (fl + 1) * 0.2
		for i := 0; i < 200; i++ {
			a1 := float64(i)/200*8*math.Pi + lp
			a2 := a1*2.5 + math.Sin(lp)
			x1 := cx + int(math.Cos(a1)*(w/8+w/16*math.Sin(f.T*0.5+fl)))
			y1 := cy + int(math.Sin(a1)*(h/8+h/16*math.Cos(f.T*0.3+fl)))
			x2 := cx + int(math.Cos(a2)*(w/4+w/10*math.Sin(f.T*0.7+fl)))
			y2 := cy + int(math.Sin(a2)*(h/4+h/10*math.Cos(f.T*0.9+fl)))
			cv.Line(x1, y1, x2, y2, Enhanced(a1+f.T, 0.7+0.3*math.Sin(f.T)))
		}
	}
}

// ExpandingCircles pulses concentric rainbow rings.
type ExpandingCircles struct {
	Count int
}

func (ExpandingCircles) Name() string { return "Expanding Circles" }

func (e ExpandingCircles) Draw(cv *gfx.Canvas, f Frame) {
	centre := vec.Vec2{X: float64(f.W / 2), Y: float64(f.H / 2)}
	pts := make([]vec.Vec2, 0, 64)
	for i := 0; i < e.Count; i++ {
		r := float64(i)/float64(e.Count)*float64(f.W)/4 + math.Sin(f.T)*float64(f.W)/16
		if r <= 0 {
			continue
		}
		c := Rainbow(f.T+float64(i)/float64(e.Count)*math.Pi, 1)
		pts = append(pts[:0], ring(64, r)...)
		for j := range pts {
			a, b := pts[j].Add(centre), pts[(j+1)%len(pts)].Add(centre)
			cv.Line(int(a.X), int(a.Y), int(b.X), int(b.Y), c)
		}
	}
}

// Lissajous traces a slowly morphing Lissajous figure.
type Lissajous struct{}

func (Lissajous) Name() string { return "Lissajous Curves" }

func (Lissajous) Draw(cv *gfx.Canvas, f Frame) {
	const n = 1000
	a := 3 + math.Sin(f.T*0.5)
	b := 4 + math.Cos(f.T*0.3)
	for i := 0; i < n; i++ {
		t := float64(i) / n * 2 * math.Pi
		x := f.W/2 + int(float64(f.W/6)*math.Sin(a*t+f.T))
		y := f.H/2 + int(float64(f.H/6)*math.Sin(b*t))
		cv.FillRect(x, y, 2, 2, Rainbow(t+f.T, 1))
	}
}

// PolarRose plots the three-petal rose r = sin(3θ + t).
type PolarRose struct{}

func (PolarRose) Name() string { return "Polar Graph" }

func (PolarRose) Draw(cv *gfx.Canvas, f Frame) {
	const n = 1000
	scale := float64(min(f.W, f.H) / 6)
	for i := 0; i < n; i++ {
		theta := float64(i) / n * 2 * math.Pi
		r := scale * math.Sin(3*theta+f.T)
		x := f.W/2 + int(r*math.Cos(theta))
		y := f.H/2 + int(r*math.Sin(theta))
		cv.FillRect(x, y, 2, 2, Rainbow(theta+f.T, 1))
	}
}

// WaveInterference sums three circular waves from moving sources. Each
// cell is averaged with its previous value to smooth the motion.
type WaveInterference struct {
	last []float64
	w, h int
}

func (*WaveInterference) Name() string { return "Wave Interference" }

func (wi *WaveInterference) Draw(cv *gfx.Canvas, f Frame) {
	const step = 5
	cols, rows := (f.W+step-1)/step, (f.H+step-1)/step
	if wi.w != f.W || wi.h != f.H {
		wi.last = make([]float64, cols*rows)
		wi.w, wi.h = f.W, f.H
	}
	w, h := float64(f.W), float64(f.H)
	sources := [3]vec.Vec2{
		{X: w/4 + math.Sin(f.T)*w/8, Y: h / 2},
		{X: w / 2, Y: h/4 + math.Sin(f.T*1.5)*h/8},
		{X: 3*w/4 + math.Cos(f.T)*w/8, Y: 3 * h / 4},
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := vec.Vec2{X: float64(col * step), Y: float64(row * step)}
			amp := 0.0
			for _, s := range sources {
				d := p.Sub(s)
				amp += math.Sin(math.Hypot(d.X, d.Y)/20 - f.T*2)
			}
			i := row*cols + col
			amp = (amp + wi.last[i]) / 2
			wi.last[i] = amp
			v := gfx.Clamp8i(int((amp + 3) / 6 * 255))
			cv.FillRect(col*step, row*step, step, step, gfx.RGB(v, 255-v, v))
		}
	}
	cv.Text(10, 50, fmt.Sprintf("t = %.2f", f.T), gfx.RGB(255, 255, 255))
}

// Lorenz integrates the Lorenz system one step per frame and draws the
// recent trajectory over a dark gradient.
type Lorenz struct {
	x, y, z float64
	hist    []vec.Vec2
	depth   []float64
	next    int
	filled  int
}

const lorenzHistory = 2000

func NewLorenz() *Lorenz {
	l := &Lorenz{}
	l.Reset()
	return l
}

func (*Lorenz) Name() string { return "Lorenz Attractor" }

func (l *Lorenz) Reset() {
	l.x, l.y, l.z = 1, 1, 1
	l.hist = make([]vec.Vec2, lorenzHistory)
	l.depth = make([]float64, lorenzHistory)
	l.next, l.filled = 0, 0
}

func (l *Lorenz) step() {
	const (
		sigma = 10.0
		rho   = 28.0
		beta  = 8.0 / 3.0
		dt    = 0.01
	)
	dx := sigma * (l.y - l.x) * dt
	dy := (l.x*(rho-l.z) - l.y) * dt
	dz := (l.x*l.y - beta*l.z) * dt
	l.x += dx
	l.y += dy
	l.z += dz

	l.hist[l.next] = vec.Vec2{X: l.x, Y: l.y}
	l.depth[l.next] = l.z
	l.next = (l.next + 1) % lorenzHistory
	l.filled = min(l.filled+1, lorenzHistory)
}

func (l *Lorenz) Draw(cv *gfx.Canvas, f Frame) {
	for y := 0; y < f.H; y++ {
		g := float64(y) / float64(f.H) * 0.1
		cv.FillRect(0, y, f.W, 1, Enhanced(f.T*0.5+g*5, g))
	}
	l.step()

	project := func(p vec.Vec2) (int, int) {
		return f.W/2 + int(p.X*float64(f.W)/80), f.H/2 - int(p.Y*float64(f.H)/80)
	}
	// i counts back from the newest point.
	for i := 1; i < l.filled; i++ {
		cur := (l.next - 1 - i + 2*lorenzHistory) % lorenzHistory
		newer := (cur + 1) % lorenzHistory
		x0, y0 := project(l.hist[newer])
		x1, y1 := project(l.hist[cur])
		c := Rainbow(l.depth[cur]*0.1+f.T*1.5+float64(i)/200, 1)
		thick := max(3-i/500, 1)
		for o := 0; o < thick; o++ {
			cv.Line(x0+o, y0, x1+o, y1, c)
			cv.Line(x0, y0+o, x1, y1+o, c)
		}
	}
}
