package bisector

import (
	"github.com/golang/geo/r2"

	"github.com/voidshard/sitegraph/internal/geom"
)

// Clipper bounds the (infinite) bisector line of pts[i] & pts[j] into a segment.
// ok is false when nothing of positive length remains.
type Clipper interface {
	Clip(pts []r2.Point, i, j int, l geom.Line) (seg geom.Segment, ok bool)
}

// ClipperFunc adapts a plain function into a Clipper.
type ClipperFunc func(pts []r2.Point, i, j int, l geom.Line) (geom.Segment, bool)

// Clip calls f.
func (f ClipperFunc) Clip(pts []r2.Point, i, j int, l geom.Line) (geom.Segment, bool) {
	return f(pts, i, j, l)
}

// Domain clips each bisector to the chord it cuts through the rectangle r.
func Domain(r r2.Rect) Clipper {
	return ClipperFunc(func(pts []r2.Point, i, j int, l geom.Line) (geom.Segment, bool) {
		return geom.ClipRect(l, r)
	})
}

// Radius clips each bisector to the disc of radius r about the midpoint of
// the pair. A radius <= 0 clips everything away.
func Radius(r float64) Clipper {
	return ClipperFunc(func(pts []r2.Point, i, j int, l geom.Line) (geom.Segment, bool) {
		return geom.ClipDisc(l, l.Origin, r)
	})
}

// Voronoi clips each bisector to the domain chord & then to the half-planes
// of every other site, leaving just the part of the line where i & j are
// (jointly) the nearest sites. That is exactly the Voronoi edge shared by
// the cells of i & j, so most pairs come back empty.
func Voronoi(r r2.Rect) Clipper {
	return ClipperFunc(func(pts []r2.Point, i, j int, l geom.Line) (geom.Segment, bool) {
		span := geom.RectSpan(l, r)

		pi := pts[i]
		for k, pk := range pts {
			if k == i || k == j || span.IsEmpty() {
				continue
			}
			// on the line pi & pj are equidistant, so "at least as near
			// to pi as to pk" is all we need: n.p <= n.mid
			n := pk.Sub(pi)
			span = span.Intersection(geom.HalfPlaneSpan(l, n, n.Dot(geom.Mid(pi, pk))))
		}

		seg, ok := geom.Chord(l, span)
		if !ok {
			return geom.Segment{}, false
		}
		seg.A = r.ClampPoint(seg.A)
		seg.B = r.ClampPoint(seg.B)
		return seg, seg.Length() > geom.Epsilon
	})
}
