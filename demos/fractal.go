package demos

import (
	"fmt"
	"math"

	"lumen/gfx"
)

const mandelbrotMaxIter = 100

// Mandelbrot computes escape counts once per view and recolors them every
// frame by shifting the rainbow phase. '+' and '-' zoom, "wasd" pans.
type Mandelbrot struct {
	Zoom             float64
	OffsetX, OffsetY float64

	iters      []uint8
	cols, rows int
	view       [3]float64
}

func (*Mandelbrot) Name() string { return "Mandelbrot Set" }

func (m *Mandelbrot) Reset() {
	m.Zoom, m.OffsetX, m.OffsetY = 1, -0.5, 0
}

func (m *Mandelbrot) handle(input []rune) {
	if m.Zoom == 0 {
		m.Reset()
	}
	pan := 0.1 / m.Zoom
	for _, r := range input {
		switch r {
		case '+', '=':
			m.Zoom *= 1.25
		case '-':
			m.Zoom /= 1.25
		case 'a':
			m.OffsetX -= pan
		case 'd':
			m.OffsetX += pan
		case 'w':
			m.OffsetY -= pan
		case 's':
			m.OffsetY += pan
		}
	}
}

func (m *Mandelbrot) compute(w, h int) {
	const cell = 2
	m.cols, m.rows = (w+cell-1)/cell, (h+cell-1)/cell
	if cap(m.iters) < m.cols*m.rows {
		m.iters = make([]uint8, m.cols*m.rows)
	}
	m.iters = m.iters[:m.cols*m.rows]
	m.view = [3]float64{m.Zoom, m.OffsetX, m.OffsetY}

	scale := 4 / (float64(w) * m.Zoom)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			re := (float64(col*cell)-float64(w)/2)*scale + m.OffsetX
			im := (float64(row*cell)-float64(h)/2)*scale + m.OffsetY
			m.iters[row*m.cols+col] = escape(re, im)
		}
	}
}

func escape(re, im float64) uint8 {
	var zx, zy float64
	n := 0
	for zx*zx+zy*zy < 4 && n < mandelbrotMaxIter {
		zx, zy = zx*zx-zy*zy+re, 2*zx*zy+im
		n++
	}
	return uint8(n)
}

func (m *Mandelbrot) Draw(cv *gfx.Canvas, f Frame) {
	if f.W <= 0 || f.H <= 0 {
		return
	}
	m.handle(f.Input)
	const cell = 2
	cols, rows := (f.W+cell-1)/cell, (f.H+cell-1)/cell
	if cols != m.cols || rows != m.rows || m.view != [3]float64{m.Zoom, m.OffsetX, m.OffsetY} {
		m.compute(f.W, f.H)
	}
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			n := m.iters[row*m.cols+col]
			if n == mandelbrotMaxIter {
				continue
			}
			c := Rainbow(float64(n)/mandelbrotMaxIter*2*math.Pi+f.T, 1)
			cv.FillRect(col*cell, row*cell, cell, cell, c)
		}
	}
	info := fmt.Sprintf("zoom %.2f  offset (%.3f, %.3f)", m.Zoom, m.OffsetX, m.OffsetY)
	cv.Text(10, 50, info, gfx.RGB(255, 255, 255))
}
