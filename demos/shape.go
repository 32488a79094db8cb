package demos

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// starOutline returns the 2n vertices of a star around the origin,
// alternating between the outer and inner radius.
func starOutline(n int, outer, inner float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		m := matrix.RotateDeg(float64(i) * 180 / float64(n))
		pts = append(pts, apply(m, vec.Vec2{X: r}))
	}
	return pts
}

// ring returns n points evenly spaced on a circle of radius r.
func ring(n int, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts[i] = vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}.Mul(r)
	}
	return pts
}

// place rotates pts by deg degrees about the origin, moves them to centre
// and appends the pixel positions to dst[:0].
func place(dst []image.Point, pts []vec.Vec2, centre vec.Vec2, deg float64) []image.Point {
	m := matrix.RotateDeg(deg).Translate(centre.X, centre.Y)
	dst = dst[:0]
	for _, p := range pts {
		q := apply(m, p)
		dst = append(dst, image.Pt(int(math.Round(q.X)), int(math.Round(q.Y))))
	}
	return dst
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
