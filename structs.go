package sitegraph

import (
	"github.com/golang/geo/r2"

	"github.com/voidshard/sitegraph/internal/bfs"
	"github.com/voidshard/sitegraph/internal/geom"
)

// Point is a location on the drawing surface.
type Point struct {
	X float64
	Y float64
}

// Site is a generated point. ID is its index in generation order & is
// stable until the next Regenerate.
type Site struct {
	ID int
	X  float64
	Y  float64
}

// Segment is a line to stroke. Sites names the pair of sites it belongs to
// (ie. whose bisector it is); -1 where a side is not a site (ie. the cursor).
type Segment struct {
	Sites [2]int
	A     Point
	B     Point
}

// Mark is a point of interest between two segments (ie. where two bisectors
// cross). Segments index into Scene.Segments.
type Mark struct {
	At       Point
	Segments [2]int
}

// Cell is the polygon of one site's Voronoi region, vertices in ring order.
type Cell struct {
	Site     int
	Area     float64
	Vertices []Point
}

// Raster is a grid of samples each labelled with the nearest site.
type Raster struct {
	// Step is the size of a grid square in surface units
	Step float64
	Cols int
	Rows int

	// Labels, Boundary & Sites are row-major, Cols x Rows
	Labels   []int
	Boundary []bool `json:",omitempty"`

	// Sites marks grid squares holding a site
	Sites []bool `json:",omitempty"`
}

// Label returns the label of the grid square at (col, row), -1 if out of range.
func (r *Raster) Label(col, row int) int {
	if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows {
		return -1
	}
	return r.Labels[row*r.Cols+col]
}

// OnBoundary returns if the grid square at (col, row) borders another label.
func (r *Raster) OnBoundary(col, row int) bool {
	if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows || len(r.Boundary) == 0 {
		return false
	}
	return r.Boundary[row*r.Cols+col]
}

// Frame is one step of a traversal.
type Frame = bfs.Frame

func toPoint(p r2.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

func toR2(p Point) r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func toSegment(i, j int, s geom.Segment) Segment {
	return Segment{Sites: [2]int{i, j}, A: toPoint(s.A), B: toPoint(s.B)}
}
