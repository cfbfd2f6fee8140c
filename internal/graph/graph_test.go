package graph

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/sitegraph/internal/bisector"
	"github.com/voidshard/sitegraph/internal/geom"
	"github.com/voidshard/sitegraph/internal/index"
)

func randomPoints(seed int64, n int, w, h float64) []r2.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]r2.Point, n)
	for i := range pts {
		pts[i] = r2.Point{X: rng.Float64() * w, Y: rng.Float64() * h}
	}
	return pts
}

// assertSimple checks there are no self loops, adjacency is symmetric,
// sorted & agrees with the edge count.
func assertSimple(t *testing.T, g *Graph) {
	t.Helper()

	degrees := 0
	for i := 0; i < g.Len(); i++ {
		ns := g.Neighbours(i)
		degrees += len(ns)

		for n, j := range ns {
			assert.NotEqual(t, i, j, "self loop")
			assert.True(t, g.HasEdge(j, i), "asymmetric %d-%d", i, j)
			if n > 0 {
				assert.Less(t, ns[n-1], j, "neighbours not strictly ascending")
			}
		}
	}

	assert.Equal(t, 2*g.EdgeCount(), degrees)
	assert.Len(t, g.Edges(), g.EdgeCount())
}

func TestConnect(t *testing.T) {
	g := New(4)

	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(1, 0)) // duplicate, ignored
	require.NoError(t, g.Connect(3, 1))
	assert.Error(t, g.Connect(2, 2))
	assert.Error(t, g.Connect(0, 4))
	assert.Error(t, g.Connect(-1, 0))

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{0, 3}, g.Neighbours(1))
	assert.Equal(t, []int{}, g.Neighbours(2))
	assert.Equal(t, []int{}, g.Neighbours(9))
	assert.Equal(t, [][2]int{{0, 1}, {1, 3}}, g.Edges())
	assert.False(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(0, 7))
	assertSimple(t, g)
}

func TestBuildEmpty(t *testing.T) {
	for _, r := range []Rule{RuleBisector, RuleKNearest, RuleDelaunay} {
		g, err := Build(nil, geom.Domain(10, 10), WithRule(r))
		require.NoError(t, err)
		assert.Equal(t, 0, g.Len())
		assert.Equal(t, 0, g.EdgeCount())
		assert.Empty(t, g.Edges())
	}
}

func TestBisectorRuleIffNonEmptyBisector(t *testing.T) {
	bounds := geom.Domain(100, 100)
	pts := randomPoints(31, 20, 100, 100)
	pts = append(pts, pts[4]) // a coincident pair has no bisector

	g, err := Build(pts, bounds)
	require.NoError(t, err)
	assert.Equal(t, RuleBisector, g.Rule())
	assertSimple(t, g)

	clip := bisector.Domain(bounds)
	for i := range pts {
		for j := range pts {
			if i == j {
				continue
			}
			_, ok := bisector.Pair(pts, i, j, clip)
			assert.Equal(t, ok, g.HasEdge(i, j), "pair %d-%d", i, j)
		}
	}
	assert.False(t, g.HasEdge(4, len(pts)-1))
}

func TestKNearestRule(t *testing.T) {
	bounds := geom.Domain(100, 100)
	pts := randomPoints(32, 30, 100, 100)

	g, err := Build(pts, bounds, WithRule(RuleKNearest), WithK(4))
	require.NoError(t, err)
	assertSimple(t, g)

	for i := range pts {
		assert.GreaterOrEqual(t, len(g.Neighbours(i)), 4)
		for _, j := range index.KNearest(pts, i, 4) {
			assert.True(t, g.HasEdge(i, j))
		}
	}

	// default k
	g, err = Build(pts, bounds, WithRule(RuleKNearest))
	require.NoError(t, err)
	for i := range pts {
		assert.GreaterOrEqual(t, len(g.Neighbours(i)), DefaultK)
	}
}

func TestKNearestSmallSet(t *testing.T) {
	pts := []r2.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	g, err := Build(pts, geom.Domain(10, 10), WithRule(RuleKNearest), WithK(5))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}}, g.Edges())
}

func TestDelaunayRule(t *testing.T) {
	bounds := geom.Domain(10, 10)
	pts := []r2.Point{{X: 1, Y: 5}, {X: 5, Y: 5}, {X: 9, Y: 5}}

	g, err := Build(pts, bounds, WithRule(RuleDelaunay))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, g.Edges())

	full, err := Build(pts, bounds)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, full.Edges())
}

func TestDelaunaySubsetOfBisector(t *testing.T) {
	bounds := geom.Domain(200, 150)
	pts := randomPoints(33, 40, 200, 150)

	d, err := Build(pts, bounds, WithRule(RuleDelaunay))
	require.NoError(t, err)
	b, err := Build(pts, bounds, WithRule(RuleBisector))
	require.NoError(t, err)

	assertSimple(t, d)
	assert.Less(t, d.EdgeCount(), b.EdgeCount())
	for _, e := range d.Edges() {
		assert.True(t, b.HasEdge(e[0], e[1]))
	}

	// a planar graph on n vertices has at most 3n-6 edges
	assert.LessOrEqual(t, d.EdgeCount(), 3*len(pts)-6)
}

func TestOptionViolations(t *testing.T) {
	_, err := Build(nil, geom.Domain(1, 1), WithK(0))
	assert.True(t, errors.Is(err, geom.ErrOptionViolation))

	_, err = Build(nil, geom.Domain(1, 1), WithRule(Rule(42)))
	assert.True(t, errors.Is(err, geom.ErrOptionViolation))
}

func TestParseRule(t *testing.T) {
	for _, r := range []Rule{RuleBisector, RuleKNearest, RuleDelaunay} {
		got, err := ParseRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := ParseRule(" Delaunay ")
	require.NoError(t, err)
	assert.Equal(t, RuleDelaunay, got)

	_, err = ParseRule("nope")
	assert.True(t, errors.Is(err, geom.ErrOptionViolation))
	assert.Equal(t, "unknown", Rule(42).String())
}
