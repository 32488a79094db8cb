package demos

import (
	"image"
	"math"

	"lumen/gfx"

	"seehuhn.de/go/geom/vec"
)

// AlphaScene tiles the screen with translucent rainbow cells under a
// wandering disc.
type AlphaScene struct{}

func (AlphaScene) Name() string { return "Alpha Scene" }

func (AlphaScene) Draw(cv *gfx.Canvas, f Frame) {
	const step = 16
	for y := 0; y < f.H; y += step {
		for x := 0; x < f.W; x += step {
			phase := f.T + float64(x+y)*0.01
			a := 0.5 + 0.5*math.Sin(phase)
			cv.FillRect(x, y, step, step, Rainbow(phase, a*0.8))
		}
	}
	x := f.W/2 + int(math.Cos(f.T)*float64(f.W)*0.2)
	y := f.H/2 + int(math.Sin(f.T)*float64(f.H)*0.2)
	a := 0.5 + 0.5*math.Cos(f.T)
	cv.FillCircle(x, y, 30, Rainbow(f.T, a*0.8))
}

// PulsatingWaves runs diagonal alpha waves out from the centre.
type PulsatingWaves struct{}

func (PulsatingWaves) Name() string { return "Pulsating Alpha Waves" }

func (PulsatingWaves) Draw(cv *gfx.Canvas, f Frame) {
	const step = 20
	for y := 0; y < f.H; y += step {
		for x := 0; x < f.W; x += step {
			d := math.Abs(float64((x-f.W/2)+(y-f.H/2))) * 0.005
			phase := f.T + d
			a := 0.4 + 0.6*math.Sin(phase)
			cv.FillRect(x, y, step, step, Rainbow(phase, a*0.8))
		}
	}
	x := f.W/2 + int(math.Cos(f.T*1.5)*float64(f.W)*0.15)
	y := f.H/2 + int(math.Sin(f.T*1.5)*float64(f.H)*0.15)
	a := 0.5 + 0.5*math.Sin(f.T*2)
	cv.FillCircle(x, y, 25, Rainbow(f.T*2, a*0.8))
}

// PlasmaNoise is a coarser plasma whose opacity follows the noise value.
type PlasmaNoise struct{}

func (PlasmaNoise) Name() string { return "Plasma Noise" }

func (PlasmaNoise) Draw(cv *gfx.Canvas, f Frame) {
	const step = 10
	for y := 0; y < f.H; y += step {
		for x := 0; x < f.W; x += step {
			fx, fy := float64(x), float64(y)
			n := math.Sin(fx*0.01+f.T) + math.Sin(fy*0.01+f.T) + math.Sin((fx+fy)*0.01+f.T)
			a := 0.5 + 0.5*math.Sin(n+f.T)
			cv.FillRect(x, y, step, step, Rainbow(n+f.T, a))
		}
	}
}

// TransparentLayers slides a translucent disc and square past each other.
type TransparentLayers struct{}

func (TransparentLayers) Name() string { return "Transparent Layers" }

func (TransparentLayers) Draw(cv *gfx.Canvas, f Frame) {
	background(cv, f.W, f.H)
	cv.FillCircle(f.W/4+int(math.Cos(f.T)*100), f.H/2+int(math.Sin(f.T)*100), 100, gfx.RGBA(200, 200, 255, 128))
	cv.FillRect(f.W/2+int(math.Sin(f.T)*100), f.H/4+int(math.Cos(f.T)*100), 200, 200, gfx.RGBA(255, 200, 200, 128))
}

// Glass ripples the opacity of a pale blue pane.
type Glass struct{}

func (Glass) Name() string { return "Glass" }

func (Glass) Draw(cv *gfx.Canvas, f Frame) {
	const step = 10
	background(cv, f.W, f.H)
	for y := 0; y < f.H; y += step {
		for x := 0; x < f.W; x += step {
			wave := math.Sin(float64(x)*0.05+f.T)*10 + math.Sin(float64(y)*0.05+f.T)*10
			a := 128 + int(math.Sin(wave)*50)
			cv.FillRect(x, y, step, step, gfx.RGBA(200, 230, 255, gfx.Clamp8i(a)))
		}
	}
}

// TransformingShapes morphs three translucent shapes: circle and square,
// triangle and rectangle, ellipse and star.
type TransformingShapes struct {
	pts []image.Point
}

func (*TransformingShapes) Name() string { return "Transforming Shapes" }

func (s *TransformingShapes) Draw(cv *gfx.Canvas, f Frame) {
	background(cv, f.W, f.H)
	t := f.T

	blue := gfx.RGBA(200, 200, 255, 128)
	x1 := f.W/4 + int(math.Cos(t)*100)
	y1 := f.H/2 + int(math.Sin(t)*100)
	size := 100 + int(math.Sin(t*2)*50)
	if math.Sin(t*2) > 0 {
		cv.FillCircle(x1, y1, size, blue)
	} else {
		cv.FillRect(x1-size/2, y1-size/2, size, size, blue)
	}

	pink := gfx.RGBA(255, 200, 200, 128)
	x2 := f.W/2 + int(math.Sin(t)*100)
	y2 := f.H/4 + int(math.Cos(t)*100)
	w2 := 150 + int(math.Sin(t*1.5)*50)
	h2 := 100 + int(math.Cos(t*1.5)*50)
	if math.Cos(t*1.5) > 0 {
		s.pts = append(s.pts[:0],
			image.Pt(x2, y2-h2/2),
			image.Pt(x2+w2/2, y2+h2/2),
			image.Pt(x2-w2/2, y2+h2/2),
		)
		cv.FillPolygon(s.pts, pink)
	} else {
		cv.FillRect(x2-w2/2, y2-h2/2, w2, h2, pink)
	}

	green := gfx.RGBA(200, 255, 200, 128)
	x3 := f.W*3/4 + int(math.Cos(t*0.8)*100)
	y3 := f.H*3/4 + int(math.Sin(t*0.8)*100)
	if math.Sin(t*1.2) > 0 {
		cv.FillEllipse(x3, y3, 80+int(math.Sin(t*1.2)*40), 120+int(math.Cos(t*1.2)*40), green)
	} else {
		s.pts = place(s.pts, starOutline(5, 80, 40), vec.Vec2{X: float64(x3), Y: float64(y3)}, 0)
		cv.FillPolygon(s.pts, green)
	}
}
