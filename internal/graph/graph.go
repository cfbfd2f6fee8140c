// Package graph builds undirected proximity graphs over a point set.
//
// Graphs are always simple: no self loops & no duplicate edges.
// Adjacency is kept sorted so anything walking it (ie. bfs) gets a stable
// order for free.
package graph

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/bisector"
	"github.com/voidshard/sitegraph/internal/index"
)

// Graph is an undirected graph on vertices 0..N-1.
type Graph struct {
	rule  Rule
	adj   []*treeset.Set
	edges int
}

// New returns a graph of n vertices & no edges.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adj: make([]*treeset.Set, n)}
	for i := range g.adj {
		g.adj[i] = treeset.NewWithIntComparator()
	}
	return g
}

// Build returns the proximity graph of pts under the configured rule.
// bounds is the domain used to clip bisectors.
func Build(pts []r2.Point, bounds r2.Rect, opts ...Option) (*Graph, error) {
	o := &options{rule: RuleBisector, k: DefaultK}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	g := New(len(pts))
	g.rule = o.rule

	switch o.rule {
	case RuleKNearest:
		for i := range pts {
			for _, j := range index.KNearest(pts, i, o.k) {
				g.connect(i, j)
			}
		}
	case RuleDelaunay:
		for _, b := range bisector.All(pts, bisector.Voronoi(bounds)) {
			g.connect(b.I, b.J)
		}
	default:
		for _, b := range bisector.All(pts, bisector.Domain(bounds)) {
			g.connect(b.I, b.J)
		}
	}

	return g, nil
}

// Rule the graph was built with.
func (g *Graph) Rule() Rule {
	return g.rule
}

// Len is the number of vertices.
func (g *Graph) Len() int {
	return len(g.adj)
}

// EdgeCount is the number of (undirected) edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Connect adds the edge i-j. Self loops & out of range vertices are refused,
// adding an existing edge is a no-op.
func (g *Graph) Connect(i, j int) error {
	if i == j {
		return errors.Errorf("self loop on %d", i)
	}
	if !g.valid(i) || !g.valid(j) {
		return errors.Errorf("edge %d-%d outside graph of %d", i, j, g.Len())
	}
	g.connect(i, j)
	return nil
}

// connect adds i-j, which must be distinct & in range.
func (g *Graph) connect(i, j int) {
	if g.adj[i].Contains(j) {
		return
	}
	g.adj[i].Add(j)
	g.adj[j].Add(i)
	g.edges++
}

// HasEdge returns if i & j are adjacent.
func (g *Graph) HasEdge(i, j int) bool {
	if !g.valid(i) || !g.valid(j) {
		return false
	}
	return g.adj[i].Contains(j)
}

// Neighbours of i in ascending order.
func (g *Graph) Neighbours(i int) []int {
	if !g.valid(i) {
		return []int{}
	}

	values := g.adj[i].Values()
	out := make([]int, len(values))
	for n, v := range values {
		out[n] = v.(int)
	}
	return out
}

// Edges returns every edge once as {i, j} with i < j, ordered by i then j.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for i := range g.adj {
		for _, j := range g.Neighbours(i) {
			if j > i {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

func (g *Graph) valid(i int) bool {
	return i >= 0 && i < len(g.adj)
}
