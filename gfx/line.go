package gfx

// Line draws a one pixel wide line from (x0, y0) to (x1, y1), both ends
// included.
func (b *Buffer) Line(x0, y0, x1, y1 int, c Color) {
	drawLine(b, x0, y0, x1, y1, c)
}

// drawLine is Bresenham's algorithm over the Spanner. Horizontal lines go out
// as a single span.
func drawLine(s Spanner, x0, y0, x1, y1 int, c Color) {
	if c.A == 0 {
		return
	}
	if y0 == y1 {
		s.Span(x0, x1, y0, c)
		return
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.Span(x0, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
