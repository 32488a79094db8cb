package gfx

// maxCircleRadius bounds the recurrence for discs that reach the surface.
const maxCircleRadius = 1 << 15

// FillCircle fills a disc using the midpoint circle algorithm. A radius of
// zero draws one pixel; a negative radius draws nothing. Radii above 32768
// are clamped.
func (b *Buffer) FillCircle(cx, cy, radius int, c Color) {
	if !b.Enabled() {
		return
	}
	fillCircle(b, &b.scratch, cx, cy, radius, c)
}

func fillCircle(s Spanner, sc *scratch, cx, cy, radius int, c Color) {
	if radius < 0 || c.A == 0 {
		return
	}
	w, h := s.Size()
	if offAxis(cx, radius, w) || offAxis(cy, radius, h) {
		return
	}
	radius = min(radius, maxCircleRadius)
	rows := sc.rowSpans(cy, radius, h)

	x, y := 0, radius
	d := 1 - radius
	for y >= x {
		rows.add(x, y)
		rows.add(y, x)
		x++
		if d <= 0 {
			d += 2*x + 3
		} else {
			y--
			d += 2*(x-y) + 5
		}
	}
	rows.draw(s, cx, c)
}

// offAxis reports whether [c-r, c+r] misses [0, n) without overflowing.
func offAxis(c, r, n int) bool {
	return c < -r || (c >= n && c-n >= r)
}
