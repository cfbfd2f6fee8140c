package geom

import (
	"image"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Epsilon is the tolerance under which a chord, a direction component or a
// cross product is treated as zero.
const Epsilon = 1e-9

// Line is an infinite line through Origin. Dir is always unit length.
type Line struct {
	Origin r2.Point
	Dir    r2.Point
}

// At returns the point at parameter t along the line.
func (l Line) At(t float64) r2.Point {
	return l.Origin.Add(l.Dir.Mul(t))
}

// Segment is a finite piece of a line from A to B.
type Segment struct {
	A r2.Point
	B r2.Point
}

// Length of the segment.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Norm()
}

// Mid point of the segment.
func (s Segment) Mid() r2.Point {
	return Mid(s.A, s.B)
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{A: s.B, B: s.A}
}

// Finite reports whether neither endpoint holds a NaN or an infinity.
func (s Segment) Finite() bool {
	return Finite(s.A) && Finite(s.B)
}

// Mid returns the point halfway between a and b.
func Mid(a, b r2.Point) r2.Point {
	return a.Add(b).Mul(0.5)
}

// SquaredDist between a and b. Comparisons of distance should use this
// rather than Norm so no square root is taken.
func SquaredDist(a, b r2.Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Finite reports whether p has two finite coordinates.
func Finite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Bisector returns the perpendicular bisector of a and b: the line through
// their midpoint, perpendicular to ab. There is no bisector of a point with
// itself, so ok is false when a == b.
func Bisector(a, b r2.Point) (Line, bool) {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 {
		return Line{}, false
	}
	return Line{Origin: Mid(a, b), Dir: d.Ortho().Normalize()}, true
}

// Rect converts an image.Rectangle into the float domain used by the engine.
func Rect(r image.Rectangle) r2.Rect {
	r = r.Canon()
	return r2.Rect{
		X: r1.Interval{Lo: float64(r.Min.X), Hi: float64(r.Max.X)},
		Y: r1.Interval{Lo: float64(r.Min.Y), Hi: float64(r.Max.Y)},
	}
}

// Domain returns the rectangle [0, width] x [0, height].
func Domain(width, height float64) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: 0, Hi: width},
		Y: r1.Interval{Lo: 0, Hi: height},
	}
}

// Intersect returns where segments s and o cross, if they do.
// Parallel and collinear segments are reported as not crossing.
func Intersect(s, o Segment) (r2.Point, bool) {
	r := s.B.Sub(s.A)
	q := o.B.Sub(o.A)

	den := r.Cross(q)
	if math.Abs(den) <= Epsilon*r.Norm()*q.Norm() {
		return r2.Point{}, false
	}

	w := o.A.Sub(s.A)
	t := w.Cross(q) / den
	u := w.Cross(r) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return r2.Point{}, false
	}

	return s.A.Add(r.Mul(t)), true
}
