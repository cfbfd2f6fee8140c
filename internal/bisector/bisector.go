// Package bisector computes the perpendicular bisectors of every pair of
// points in a set, clipped into renderable segments.
package bisector

import (
	"github.com/golang/geo/r2"

	"github.com/voidshard/sitegraph/internal/geom"
)

// Bisector is the clipped perpendicular bisector of Points[I] & Points[J].
type Bisector struct {
	I int
	J int

	// Line is the full bisector, through the pair midpoint.
	Line geom.Line

	// Segment is what's left of Line after clipping.
	Segment geom.Segment
}

// Intersection is where the segments of two bisectors cross.
// A & B index into the slice of bisectors handed to Intersections.
type Intersection struct {
	A  int
	B  int
	At r2.Point
}

// Count returns how many unordered pairs n points make, N(N-1)/2.
// This is the number of bisectors considered by All, before any are dropped.
func Count(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Pair returns the clipped bisector of pts[i] & pts[j].
// ok is false if the pair is degenerate (i == j, identical points, out of
// range) or the clipper leaves nothing.
// Pair(pts, i, j, c) & Pair(pts, j, i, c) give the same segment with the
// endpoints swapped.
func Pair(pts []r2.Point, i, j int, clip Clipper) (Bisector, bool) {
	if i == j || i < 0 || j < 0 || i >= len(pts) || j >= len(pts) {
		return Bisector{}, false
	}

	l, ok := geom.Bisector(pts[i], pts[j])
	if !ok {
		return Bisector{}, false
	}

	seg, ok := clip.Clip(pts, i, j, l)
	if !ok || !seg.Finite() {
		return Bisector{}, false
	}

	return Bisector{I: i, J: j, Line: l, Segment: seg}, true
}

// All returns the clipped bisector of every pair (i, j), i < j, in order of i
// then j. Degenerate pairs are simply left out.
func All(pts []r2.Point, clip Clipper) []Bisector {
	out := []Bisector{}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			b, ok := Pair(pts, i, j, clip)
			if ok {
				out = append(out, b)
			}
		}
	}
	return out
}

// Segments returns just the segments of bs, in the same order.
func Segments(bs []Bisector) []geom.Segment {
	out := make([]geom.Segment, len(bs))
	for n, b := range bs {
		out[n] = b.Segment
	}
	return out
}

// Intersections returns every point where two of the given bisector
// segments cross, ordered by (A, B).
func Intersections(bs []Bisector) []Intersection {
	out := []Intersection{}
	for a := 0; a < len(bs); a++ {
		for b := a + 1; b < len(bs); b++ {
			at, ok := geom.Intersect(bs[a].Segment, bs[b].Segment)
			if !ok {
				continue
			}
			out = append(out, Intersection{A: a, B: b, At: at})
		}
	}
	return out
}
