package gfx

// maxEllipseRadius keeps the decision terms of FillEllipse inside int64.
const maxEllipseRadius = 1 << 15

// FillEllipse fills an axis-aligned ellipse with the two-region midpoint
// algorithm.
//
// A zero rx draws the vertical line [cy-ry, cy+ry] at cx, a zero ry the
// horizontal line [cx-rx, cx+rx] at cy. Negative radii draw nothing. Radii
// above 32768 are clamped.
func (b *Buffer) FillEllipse(cx, cy, rx, ry int, c Color) {
	if !b.Enabled() {
		return
	}
	fillEllipse(b, &b.scratch, cx, cy, rx, ry, c)
}

func fillEllipse(s Spanner, sc *scratch, cx, cy, rx, ry int, c Color) {
	if rx < 0 || ry < 0 || c.A == 0 {
		return
	}
	rx, ry = min(rx, maxEllipseRadius), min(ry, maxEllipseRadius)
	switch {
	case ry == 0:
		s.Span(cx-rx, cx+rx, cy, c)
		return
	case rx == 0:
		_, h := s.Size()
		for y := max(cy-ry, 0); y <= min(cy+ry, h-1); y++ {
			s.Span(cx, cx, y, c)
		}
		return
	}

	_, h := s.Size()
	rows := sc.rowSpans(cy, ry, h)

	// All decision terms are kept four times larger so the quarter and half
	// pixel offsets of the midpoint test stay integral.
	rx2, ry2 := int64(rx)*int64(rx), int64(ry)*int64(ry)
	x, y := int64(0), int64(ry)
	dx, dy := int64(0), 2*rx2*y

	d := 4*ry2 - 4*rx2*y + rx2
	for dx < dy {
		rows.add(int(y), int(x))
		x++
		dx += 2 * ry2
		if d < 0 {
			d += 4 * (dx + ry2)
		} else {
			y--
			dy -= 2 * rx2
			d += 4 * (dx - dy + ry2)
		}
	}

	d = ry2*(2*x+1)*(2*x+1) + 4*rx2*(y-1)*(y-1) - 4*rx2*ry2
	for y >= 0 {
		rows.add(int(y), int(x))
		y--
		dy -= 2 * rx2
		if d > 0 {
			d += 4 * (rx2 - dy)
		} else {
			x++
			dx += 2 * ry2
			d += 4 * (dx - dy + rx2)
		}
	}
	rows.draw(s, cx, c)
}
