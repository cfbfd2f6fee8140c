package index

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/sitegraph/internal/geom"
)

// Tree is an Index backed by a model2d.CoordTree.
//
// The tree only knows about distinct coordinates, so we remember the lowest
// point index at each coordinate & resolve ties ourselves.
type Tree struct {
	pts   []r2.Point
	tree  *model2d.CoordTree
	owner map[model2d.Coord]int
	size  int
}

// NewTree returns a tree index over pts.
func NewTree(pts []r2.Point) *Tree {
	t := &Tree{}
	t.Rebuild(pts)
	return t
}

// Len returns the number of points indexed (including duplicates).
func (t *Tree) Len() int {
	return len(t.pts)
}

// Rebuild replaces the indexed set & rebuilds the tree.
func (t *Tree) Rebuild(pts []r2.Point) {
	t.pts = pts
	t.owner = make(map[model2d.Coord]int, len(pts))
	t.tree = nil

	coords := make([]model2d.Coord, 0, len(pts))
	for i, p := range pts {
		c := toCoord(p)
		if _, ok := t.owner[c]; ok {
			continue // earlier index already owns this spot
		}
		t.owner[c] = i
		coords = append(coords, c)
	}

	t.size = len(coords)
	if t.size > 0 {
		t.tree = model2d.NewCoordTree(coords)
	}
}

// Nearest returns the index of the point nearest to q.
func (t *Tree) Nearest(q r2.Point) (int, error) {
	if t.size == 0 {
		return -1, errors.Wrap(geom.ErrNoPoints, "nearest")
	}

	qc := toCoord(q)
	cands := t.equidistant(qc)

	best := -1
	bestDist := math.Inf(1)
	for _, c := range cands {
		i := t.owner[c]
		d := geom.SquaredDist(t.pts[i], q)
		if best < 0 || d < bestDist || (d == bestDist && i < best) {
			best = i
			bestDist = d
		}
	}

	return best, nil
}

// equidistant widens a KNN search until every coordinate sharing the
// minimum distance to c is in the result.
// Once the farthest of the k results is strictly further than the nearest,
// anything left outside the result is further still.
func (t *Tree) equidistant(c model2d.Coord) []model2d.Coord {
	for k := 1; true; k *= 2 {
		if k > t.size {
			k = t.size
		}

		neighbors := t.tree.KNN(k, c)
		if len(neighbors) < k || k == t.size {
			return neighbors
		}

		lo, hi := math.Inf(1), 0.0
		for _, n := range neighbors {
			d := n.Dist(c)
			lo = math.Min(lo, d)
			hi = math.Max(hi, d)
		}
		if hi > lo {
			return neighbors
		}
	}
	panic("unreachable")
}

func toCoord(p r2.Point) model2d.Coord {
	return model2d.Coord{X: p.X, Y: p.Y}
}
