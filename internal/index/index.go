// Package index answers "which point is nearest to here" over a fixed point set.
//
// Ties (two or more points at exactly the same squared distance) always
// resolve to the lowest point index, whichever implementation is used.
package index

import (
	"sort"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/geom"
)

// Index finds the nearest point of a point set to a query.
type Index interface {
	// Nearest returns the index of the point nearest to q.
	// Fails with geom.ErrNoPoints if the set is empty.
	Nearest(q r2.Point) (int, error)

	// Len returns the number of points indexed.
	Len() int

	// Rebuild replaces the indexed set wholesale.
	Rebuild(pts []r2.Point)
}

type options struct {
	tree bool
}

// Option configures Build.
type Option func(*options)

// WithTree builds a k-d tree backed index rather than a linear scan.
// Worth it for larger sets queried many times (ie. rasterising).
func WithTree() Option {
	return func(o *options) {
		o.tree = true
	}
}

// Build returns an Index over pts. The slice is not copied & must not be
// mutated while the index is in use.
func Build(pts []r2.Point, opts ...Option) Index {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.tree {
		return NewTree(pts)
	}
	return NewLinear(pts)
}

// Linear is a brute force O(N) scan per query. For the set sizes we deal
// with interactively this is perfectly adequate.
type Linear struct {
	pts []r2.Point
}

// NewLinear returns a linear scan index over pts.
func NewLinear(pts []r2.Point) *Linear {
	return &Linear{pts: pts}
}

// Len returns the number of points indexed.
func (l *Linear) Len() int {
	return len(l.pts)
}

// Rebuild replaces the indexed set.
func (l *Linear) Rebuild(pts []r2.Point) {
	l.pts = pts
}

// Nearest returns the index of the point nearest to q.
func (l *Linear) Nearest(q r2.Point) (int, error) {
	if len(l.pts) == 0 {
		return -1, errors.Wrap(geom.ErrNoPoints, "nearest")
	}

	best := 0
	bestDist := geom.SquaredDist(l.pts[0], q)
	for i := 1; i < len(l.pts); i++ {
		// strictly less, so the earliest point wins a tie
		d := geom.SquaredDist(l.pts[i], q)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best, nil
}

// KNearest returns (up to) the k points nearest to pts[i], excluding i itself,
// ordered by distance then by index.
func KNearest(pts []r2.Point, i, k int) []int {
	if k <= 0 || i < 0 || i >= len(pts) {
		return []int{}
	}

	type candidate struct {
		id   int
		dist float64
	}

	cands := make([]candidate, 0, len(pts)-1)
	for j, p := range pts {
		if j == i {
			continue
		}
		cands = append(cands, candidate{id: j, dist: geom.SquaredDist(pts[i], p)})
	}

	sort.Slice(cands, func(a, b int) bool {
		if cands[a].dist != cands[b].dist {
			return cands[a].dist < cands[b].dist
		}
		return cands[a].id < cands[b].id
	})

	if k > len(cands) {
		k = len(cands)
	}

	out := make([]int, k)
	for n := 0; n < k; n++ {
		out[n] = cands[n].id
	}
	return out
}
