package graph

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/voidshard/sitegraph/internal/geom"
)

// Triangles returns every triple {i, j, k}, i < j < k, that is mutually
// adjacent in g & whose circumcircle holds no other point of pts.
// On a RuleDelaunay graph these are the Delaunay triangles whose edges all
// survived clipping to the domain.
//
// Triples are ordered by i, then j, then k.
func Triangles(g *Graph, pts []r2.Point) [][3]int {
	out := [][3]int{}
	if g.Len() != len(pts) {
		return out
	}

	for i := 0; i < g.Len(); i++ {
		nbrs := g.Neighbours(i)
		for a, j := range nbrs {
			if j < i {
				continue
			}
			for _, k := range nbrs[a+1:] {
				if !g.HasEdge(j, k) {
					continue
				}
				if emptyCircle(pts, i, j, k) {
					out = append(out, [3]int{i, j, k})
				}
			}
		}
	}

	return out
}

// emptyCircle returns if no point other than i, j & k is strictly inside
// their circumcircle. Collinear triples have no circle.
func emptyCircle(pts []r2.Point, i, j, k int) bool {
	centre, rsq, ok := circumcircle(pts[i], pts[j], pts[k])
	if !ok {
		return false
	}

	limit := rsq * (1 - geom.Epsilon)
	for m, p := range pts {
		if m == i || m == j || m == k {
			continue
		}
		if geom.SquaredDist(centre, p) < limit {
			return false
		}
	}
	return true
}

// circumcircle returns the centre & squared radius of the circle through
// a, b & c.
func circumcircle(a, b, c r2.Point) (r2.Point, float64, bool) {
	ab, ac := b.Sub(a), c.Sub(a)
	d := 2 * ab.Cross(ac)
	if math.Abs(d) <= geom.Epsilon*ab.Norm()*ac.Norm() {
		return r2.Point{}, 0, false
	}

	u := r2.Point{
		X: (ac.Y*ab.Dot(ab) - ab.Y*ac.Dot(ac)) / d,
		Y: (ab.X*ac.Dot(ac) - ac.X*ab.Dot(ab)) / d,
	}
	return a.Add(u), u.Dot(u), true
}
