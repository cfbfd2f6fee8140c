package geom

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Everything in this file works on the parametric form of a Line, p(t) = o + t*d.
// Clipping a line against a region reduces to finding the interval of t
// for which p(t) is inside the region; a chord is then just the two ends
// of that interval.

// Unbounded is the parametric interval covering the whole line.
func Unbounded() r1.Interval {
	return r1.Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
}

// RectSpan returns the interval of t for which l lies within r (inclusive).
// The interval is empty if the line misses the rectangle.
func RectSpan(l Line, r r2.Rect) r1.Interval {
	if r.IsEmpty() {
		return r1.EmptyInterval()
	}
	span := Unbounded()
	span = span.Intersection(slab(l.Origin.X, l.Dir.X, r.X))
	span = span.Intersection(slab(l.Origin.Y, l.Dir.Y, r.Y))
	return span
}

// slab returns the interval of t where o + t*d sits within iv along one axis.
func slab(o, d float64, iv r1.Interval) r1.Interval {
	if math.Abs(d) < Epsilon {
		// parallel to this axis' bounds: either always in or always out
		if iv.Contains(o) {
			return Unbounded()
		}
		return r1.EmptyInterval()
	}

	t0 := (iv.Lo - o) / d
	t1 := (iv.Hi - o) / d
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return r1.Interval{Lo: t0, Hi: t1}
}

// DiscSpan returns the interval of t for which l lies within the disc of
// radius r centred on c. Empty if the line misses or only touches the disc.
func DiscSpan(l Line, c r2.Point, r float64) r1.Interval {
	if !(r > 0) {
		return r1.EmptyInterval()
	}

	oc := l.Origin.Sub(c)
	b := l.Dir.Dot(oc)
	disc := b*b - (oc.Dot(oc) - r*r)
	if disc <= 0 {
		return r1.EmptyInterval()
	}

	root := math.Sqrt(disc)
	return r1.Interval{Lo: -b - root, Hi: -b + root}
}

// HalfPlaneSpan returns the interval of t for which n.p(t) <= k.
func HalfPlaneSpan(l Line, n r2.Point, k float64) r1.Interval {
	a := n.Dot(l.Dir)
	b := k - n.Dot(l.Origin)

	if math.Abs(a) <= Epsilon*n.Norm() {
		// line runs parallel to the boundary
		if b >= 0 {
			return Unbounded()
		}
		return r1.EmptyInterval()
	}

	if a > 0 {
		return r1.Interval{Lo: math.Inf(-1), Hi: b / a}
	}
	return r1.Interval{Lo: b / a, Hi: math.Inf(1)}
}

// Chord turns a parametric interval back into a segment of l.
// Empty, unbounded and (near) zero length intervals have no chord.
func Chord(l Line, span r1.Interval) (Segment, bool) {
	if span.IsEmpty() || math.IsInf(span.Lo, 0) || math.IsInf(span.Hi, 0) {
		return Segment{}, false
	}
	if span.Length() <= Epsilon {
		return Segment{}, false
	}
	return Segment{A: l.At(span.Lo), B: l.At(span.Hi)}, true
}

// ClipRect returns the chord of l inside r, if it has positive length.
// Endpoints are clamped to r so rounding can never place them outside.
func ClipRect(l Line, r r2.Rect) (Segment, bool) {
	seg, ok := Chord(l, RectSpan(l, r))
	if !ok {
		return Segment{}, false
	}
	seg.A = r.ClampPoint(seg.A)
	seg.B = r.ClampPoint(seg.B)
	return seg, seg.Length() > Epsilon
}

// ClipDisc returns the chord of l inside the disc (c, r), if non-degenerate.
func ClipDisc(l Line, c r2.Point, r float64) (Segment, bool) {
	return Chord(l, DiscSpan(l, c, r))
}
