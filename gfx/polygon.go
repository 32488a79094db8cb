package gfx

import (
	"image"
	"sort"
)

// FillPolygon fills the closed polygon through pts with the even-odd rule.
//
// Each scanline collects the crossings of every edge under a half-open test,
// sorts them and fills between consecutive pairs. A trailing unpaired
// crossing, which only self-intersecting or degenerate input produces, is
// ignored. Fewer than three points draw nothing.
func (b *Buffer) FillPolygon(pts []image.Point, c Color) {
	if !b.Enabled() {
		return
	}
	fillPolygon(b, &b.scratch, pts, c)
}

func fillPolygon(s Spanner, sc *scratch, pts []image.Point, c Color) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	w, h := s.Size()

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	minY, maxY = max(minY, 0), min(maxY, h-1)
	if minY > maxY || maxX < 0 || minX >= w {
		return
	}

	xs := sc.xs[:0]
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i, p1 := range pts {
			p2 := pts[(i+1)%len(pts)]
			if (p1.Y <= y && p2.Y > y) || (p2.Y <= y && p1.Y > y) {
				t := float64(y-p1.Y) / float64(p2.Y-p1.Y)
				xs = append(xs, int(float64(p1.X)+t*float64(p2.X-p1.X)))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := max(xs[i], 0), min(xs[i+1], w)
			if x0 < x1 {
				s.Span(x0, x1-1, y, c)
			}
		}
	}
	sc.xs = xs
}
