package gfx

// Spanner is a surface that can draw horizontal runs of pixels. Both the back
// buffer and the unbuffered immediate drawers implement it, so every shape is
// rasterized by the same code whichever path is active.
type Spanner interface {
	Size() (w, h int)
	// Span draws the inclusive run [x0, x1] on row y. Implementations clip.
	Span(x0, x1, y int, c Color)
}

// scratch holds slices reused by the fills to avoid per-call allocation.
type scratch struct {
	rows []int
	xs   []int
}

// rowSpans accumulates the widest half-span for each row offset from a
// centre row, so that symmetric shapes touch every row exactly once.
//
// Only offsets that reach a visible row are stored, which bounds the scratch
// by the surface height whatever the radius.
type rowSpans struct {
	cy, lo, hi int
	half       []int
}

func (sc *scratch) rowSpans(cy, reach, h int) rowSpans {
	lo := max(0, -cy, cy-h+1)
	hi := min(reach, max(h-1-cy, cy))
	if hi < lo {
		return rowSpans{cy: cy, lo: 0, hi: -1}
	}
	n := hi - lo + 1
	if cap(sc.rows) < n {
		sc.rows = make([]int, n)
	}
	half := sc.rows[:n]
	for i := range half {
		half[i] = -1
	}
	return rowSpans{cy: cy, lo: lo, hi: hi, half: half}
}

// add records a half-width hw for row offset dy.
func (r *rowSpans) add(dy, hw int) {
	if dy < r.lo || dy > r.hi {
		return
	}
	if i := dy - r.lo; hw > r.half[i] {
		r.half[i] = hw
	}
}

func (r *rowSpans) draw(s Spanner, cx int, c Color) {
	for i, hw := range r.half {
		if hw < 0 {
			continue
		}
		dy := r.lo + i
		s.Span(cx-hw, cx+hw, r.cy+dy, c)
		if dy != 0 {
			s.Span(cx-hw, cx+hw, r.cy-dy, c)
		}
	}
}
