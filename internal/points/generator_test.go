package points

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/sitegraph/internal/geom"
)

func TestGenerateCountsAndBounds(t *testing.T) {
	bounds := geom.Domain(160, 90)
	g := NewGenerator(bounds)
	g.SetSeed(42)

	for _, n := range []int{0, 1, 2, 17, 500} {
		pts, err := g.Generate(n)
		require.NoError(t, err)
		require.Len(t, pts, n)

		for _, p := range pts {
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.Less(t, p.X, 160.0)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.Less(t, p.Y, 90.0)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	pts, err := NewGenerator(geom.Domain(10, 10)).Generate(0)
	require.NoError(t, err)
	assert.Empty(t, pts)
}

func TestGenerateNegative(t *testing.T) {
	_, err := NewGenerator(geom.Domain(10, 10)).Generate(-1)
	assert.True(t, errors.Is(err, geom.ErrInvalidCount))
}

func TestSeedPinsSequence(t *testing.T) {
	a := NewGenerator(geom.Domain(100, 100))
	b := NewGenerator(geom.Domain(100, 100))
	a.SetSeed(7)
	b.SetSeed(7)

	pa, err := a.Generate(20)
	require.NoError(t, err)
	pb, err := b.Generate(20)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)

	// successive calls are independent draws
	pc, err := a.Generate(20)
	require.NoError(t, err)
	assert.NotEqual(t, pa, pc)
}

func TestMinDistanceFilter(t *testing.T) {
	g := NewGenerator(geom.Domain(100, 100))
	g.SetSeed(3)
	g.SetSiteFilters(MinDistance(10))

	pts, err := g.Generate(15)
	require.NoError(t, err)
	require.Len(t, pts, 15)

	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			assert.GreaterOrEqual(t, geom.SquaredDist(pts[i], pts[j]), 100.0)
		}
	}
}

func TestFiltersCannotPlace(t *testing.T) {
	g := NewGenerator(geom.Domain(10, 10))
	g.SetSeed(1)
	g.SetAttempts(50)
	g.SetCandidateFilters(func(c r2.Point) bool { return false })

	_, err := g.Generate(1)
	assert.True(t, errors.Is(err, geom.ErrCannotPlace))
}

func TestMarginFilter(t *testing.T) {
	bounds := geom.Domain(100, 100)
	g := NewGenerator(bounds)
	g.SetSeed(11)
	g.SetCandidateFilters(Margin(bounds, 20))

	pts, err := g.Generate(30)
	require.NoError(t, err)
	for _, p := range pts {
		assert.True(t, p.X >= 20 && p.X < 80 && p.Y >= 20 && p.Y < 80, "%v outside margin", p)
	}
}
