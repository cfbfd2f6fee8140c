package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/geom"
)

// Grid is a regular lattice of samples over some bounds, one sample in the
// centre of each step x step square.
type Grid struct {
	Bounds r2.Rect
	Step   float64
	Cols   int
	Rows   int
}

// NewGrid returns a sample grid over bounds. A partial square at the far
// edge still gets a sample.
func NewGrid(bounds r2.Rect, step float64) (*Grid, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, errors.Wrapf(geom.ErrInvalidStep, "step %v", step)
	}

	g := &Grid{Bounds: bounds, Step: step}
	if bounds.IsEmpty() {
		return g, nil
	}

	g.Cols = int(math.Ceil(bounds.X.Length() / step))
	g.Rows = int(math.Ceil(bounds.Y.Length() / step))
	return g, nil
}

// Len is the total number of samples.
func (g *Grid) Len() int {
	return g.Cols * g.Rows
}

// Sample returns the location of sample (col, row). Samples at the far edge
// are pulled back inside bounds.
func (g *Grid) Sample(col, row int) r2.Point {
	return g.Bounds.ClampPoint(r2.Point{
		X: g.Bounds.X.Lo + (float64(col)+0.5)*g.Step,
		Y: g.Bounds.Y.Lo + (float64(row)+0.5)*g.Step,
	})
}

// Samples returns every sample location in row-major order.
func (g *Grid) Samples() []r2.Point {
	out := make([]r2.Point, 0, g.Len())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			out = append(out, g.Sample(col, row))
		}
	}
	return out
}

// Cell returns which grid square p falls in.
func (g *Grid) Cell(p r2.Point) (col, row int, ok bool) {
	if !g.Bounds.ContainsPoint(p) {
		return 0, 0, false
	}

	col = int((p.X - g.Bounds.X.Lo) / g.Step)
	row = int((p.Y - g.Bounds.Y.Lo) / g.Step)

	// the far edge is inclusive in r2.Rect
	if col >= g.Cols {
		col = g.Cols - 1
	}
	if row >= g.Rows {
		row = g.Rows - 1
	}
	return col, row, col >= 0 && row >= 0
}

// offset of (col, row) in a row-major slice
func (g *Grid) offset(col, row int) int {
	return row*g.Cols + col
}

func (g *Grid) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}
