package gfx

// FillRect fills the w×h rectangle whose top-left corner is (x, y).
//
// Opaque colors are written directly, translucent ones blended and fully
// transparent ones skipped.
func (b *Buffer) FillRect(x, y, w, h int, c Color) {
	fillRect(b, x, y, w, h, c)
}

func fillRect(s Spanner, x, y, w, h int, c Color) {
	if c.A == 0 || w <= 0 || h <= 0 {
		return
	}
	sw, sh := s.Size()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, sw), min(y+h, sh)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for row := y0; row < y1; row++ {
		s.Span(x0, x1-1, row, c)
	}
}
