package voronoi

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/sitegraph/internal/encoding"
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

func TestColorize(t *testing.T) {
	pts := []r2.Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 5, Y: 8}}
	samples := []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}, {X: 5, Y: 2}, {X: 5, Y: 5}}

	got, err := Colorize(index.Build(pts), samples)
	require.NoError(t, err)
	// (5,2) is equidistant from 0 & 1: lowest wins
	assert.Equal(t, []int{0, 1, 2, 0, 2}, got)
}

func TestColorizeEmpty(t *testing.T) {
	_, err := Colorize(index.Build(nil), []r2.Point{{X: 1, Y: 1}})
	assert.True(t, errors.Is(err, geom.ErrNoPoints))

	got, err := Colorize(index.Build([]r2.Point{{X: 1, Y: 1}}), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestColorizeIsNearest(t *testing.T) {
	pts := randomPoints(3, 30, 100, 100)
	samples := randomPoints(4, 500, 100, 100)

	got, err := Colorize(index.Build(pts, index.WithTree()), samples)
	require.NoError(t, err)

	for s, label := range got {
		best := geom.SquaredDist(samples[s], pts[label])
		for i, p := range pts {
			d := geom.SquaredDist(samples[s], p)
			assert.False(t, d < best, "point %d strictly closer than %d", i, label)
			if d == best {
				assert.GreaterOrEqual(t, i, label)
			}
		}
	}
}

func TestGrid(t *testing.T) {
	g, err := NewGrid(geom.Domain(10, 7), 2)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Cols)
	assert.Equal(t, 4, g.Rows)
	assert.Equal(t, 20, g.Len())

	assert.Equal(t, r2.Point{X: 1, Y: 1}, g.Sample(0, 0))
	assert.Equal(t, r2.Point{X: 9, Y: 7}, g.Sample(4, 3), "partial square is clamped")

	samples := g.Samples()
	require.Len(t, samples, 20)
	assert.Equal(t, g.Sample(1, 0), samples[1])
	assert.Equal(t, g.Sample(0, 1), samples[5])

	col, row, ok := g.Cell(r2.Point{X: 10, Y: 7})
	assert.True(t, ok)
	assert.Equal(t, 4, col)
	assert.Equal(t, 3, row)

	_, _, ok = g.Cell(r2.Point{X: -1, Y: 3})
	assert.False(t, ok)
}

func TestGridInvalidStep(t *testing.T) {
	for _, step := range []float64{0, -1} {
		_, err := NewGrid(geom.Domain(10, 10), step)
		assert.True(t, errors.Is(err, geom.ErrInvalidStep))
	}
}

func TestRasterize(t *testing.T) {
	pts := []r2.Point{{X: 2, Y: 5}, {X: 8, Y: 5}}
	bounds := geom.Domain(10, 10)

	r, err := Rasterize(index.Build(pts), pts, bounds, 1)
	require.NoError(t, err)
	require.Equal(t, 10, r.Cols)
	require.Equal(t, 10, r.Rows)

	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			expect := 0
			if col >= 5 {
				expect = 1
			}
			assert.Equal(t, expect, r.Label(col, row))
			assert.Equal(t, col == 4, r.Boundary(col, row), "col %d row %d", col, row)
		}
	}

	assert.Equal(t, 10, r.Boundaries())
	assert.True(t, r.HasSite(2, 5))
	assert.True(t, r.HasSite(8, 5))
	assert.False(t, r.HasSite(5, 5))

	assert.Equal(t, -1, r.Label(-1, 0))
	assert.False(t, r.Boundary(10, 0))
}

func TestRasterBoundaryMatchesLabels(t *testing.T) {
	pts := randomPoints(8, 12, 64, 48)
	r, err := Rasterize(index.Build(pts), pts, geom.Domain(64, 48), 1)
	require.NoError(t, err)

	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			here := r.Label(col, row)
			expect := (col+1 < r.Cols && r.Label(col+1, row) != here) || (row+1 < r.Rows && r.Label(col, row+1) != here)
			assert.Equal(t, expect, r.Boundary(col, row))
		}
	}
}

func TestRasterImage(t *testing.T) {
	pts := randomPoints(9, 5, 20, 20)
	r, err := Rasterize(index.Build(pts), pts, geom.Domain(20, 20), 2)
	require.NoError(t, err)

	im := r.Image()
	assert.Equal(t, r.Cols, im.Bounds().Dx())
	assert.Equal(t, r.Rows, im.Bounds().Dy())

	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			px := encoding.Unpack(im.RGBA64At(col, row))
			assert.Equal(t, r.Label(col, row), px.Label)
			assert.Equal(t, r.Boundary(col, row), px.Boundary)
			assert.Equal(t, r.HasSite(col, row), px.Site)
		}
	}
}

func TestRasterizeEmpty(t *testing.T) {
	_, err := Rasterize(index.Build(nil), nil, geom.Domain(10, 10), 1)
	assert.True(t, errors.Is(err, geom.ErrNoPoints))
}

// contains returns if p is inside or on the edge of the convex cell c.
func contains(c *Cell, p r2.Point) bool {
	n := len(c.Vertices)
	if n < 3 {
		return false
	}

	sign := 0.0
	for i := 0; i < n; i++ {
		a, b := c.Vertices[i], c.Vertices[(i+1)%n]
		cross := b.Sub(a).Cross(p.Sub(a))
		if math.Abs(cross) <= geom.Epsilon*b.Sub(a).Norm() {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (sign > 0) != (cross > 0) {
			return false
		}
	}
	return true
}

func TestCells(t *testing.T) {
	bounds := geom.Domain(100, 80)
	pts := randomPoints(12, 20, 100, 80)

	cells := Cells(bounds, pts)
	require.Len(t, cells, len(pts))

	total := 0.0
	for i, c := range cells {
		assert.Equal(t, i, c.Site)
		assert.GreaterOrEqual(t, len(c.Vertices), 3)
		assert.True(t, contains(c, pts[i]), "cell %d should contain its site", i)

		for _, v := range c.Vertices {
			assert.True(t, bounds.ExpandedByMargin(1e-6).ContainsPoint(v))
		}
		total += c.Area()
	}

	// cells tile the bounds
	assert.InDelta(t, 100*80, total, 1e-3)
}

func TestCellsAgreeWithColorize(t *testing.T) {
	bounds := geom.Domain(50, 50)
	pts := randomPoints(21, 8, 50, 50)
	cells := Cells(bounds, pts)

	samples := randomPoints(22, 300, 50, 50)
	labels, err := Colorize(index.Build(pts), samples)
	require.NoError(t, err)

	for s, label := range labels {
		assert.True(t, contains(cells[label], samples[s]))
	}
}

func TestCellsSingleAndDuplicate(t *testing.T) {
	bounds := geom.Domain(10, 10)

	cells := Cells(bounds, []r2.Point{{X: 3, Y: 3}})
	require.Len(t, cells, 1)
	assert.InDelta(t, 100, cells[0].Area(), 1e-9)

	cells = Cells(bounds, []r2.Point{{X: 3, Y: 3}, {X: 3, Y: 3}})
	require.Len(t, cells, 2)
	assert.InDelta(t, 100, cells[0].Area(), 1e-9)
	assert.Empty(t, cells[1].Vertices)
	assert.False(t, contains(cells[1], r2.Point{X: 3, Y: 3}))

	assert.Empty(t, Cells(bounds, nil))
}

func BenchmarkRasterize(b *testing.B) {
	pts := randomPoints(1, 100, 320, 240)
	idx := index.Build(pts, index.WithTree())
	bounds := geom.Domain(320, 240)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Rasterize(idx, pts, bounds, 1)
	}
}
