package voronoi

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// repairEpsilon is how close two polygon vertices must be to be merged.
const repairEpsilon = 1e-8

// Cell is the explicit polygon of one site's Voronoi region, clipped to the
// diagram bounds.
type Cell struct {
	// Site is the index of the owning point.
	Site   int
	Center r2.Point

	// Vertices of the (convex) cell, in order around the ring.
	// Empty if the site owns no area (ie. it duplicates an earlier site).
	Vertices []r2.Point

	edges []*model2d.Segment
}

// Diagram is every Cell, indexed by site.
type Diagram []*Cell

// Cells computes the Voronoi cell of every point, assuming they are all
// contained within bounds.
//
// Each cell is the bounds rectangle cut by the half-plane of every other
// site, so this is O(N^2). Fine for the counts we draw.
func Cells(bounds r2.Rect, pts []r2.Point) Diagram {
	min := model2d.Coord{X: bounds.X.Lo, Y: bounds.Y.Lo}
	max := model2d.Coord{X: bounds.X.Hi, Y: bounds.Y.Hi}

	seen := map[r2.Point]bool{}
	cells := make(Diagram, len(pts))

	for i, p := range pts {
		cell := &Cell{Site: i, Center: p, Vertices: []r2.Point{}}
		cells[i] = cell

		if seen[p] {
			continue // an earlier index owns this spot
		}
		seen[p] = true

		c := toCoord(p)
		constraints := model2d.NewConvexPolytopeRect(min, max)
		for j, q := range pts {
			if j == i || q == p {
				continue
			}
			c1 := toCoord(q)
			normal := c1.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(c.Mid(c1)),
			})
		}
		cell.edges = constraints.Mesh().SegmentSlice()
	}

	cells.repair(repairEpsilon)
	return cells
}

// Area of the cell.
func (c *Cell) Area() float64 {
	area := 0.0
	n := len(c.Vertices)
	for i := 0; i < n; i++ {
		area += c.Vertices[i].Cross(c.Vertices[(i+1)%n])
	}
	return math.Abs(area) / 2
}

// repair merges nearly identical coordinates so neighbouring cells share
// exact vertices, then orders each cell's vertices into a ring.
func (v Diagram) repair(epsilon float64) {
	coordSet := map[model2d.Coord]bool{}
	coordSlice := []model2d.Coord{}
	for _, cell := range v {
		for _, s := range cell.edges {
			for _, p := range s {
				if !coordSet[p] {
					coordSet[p] = true
					coordSlice = append(coordSlice, p)
				}
			}
		}
	}
	if len(coordSlice) == 0 {
		return
	}
	tree := model2d.NewCoordTree(coordSlice)

	mapping := map[model2d.Coord]model2d.Coord{}
	for _, c := range coordSlice {
		if !coordSet[c] {
			continue
		}
		for _, n := range neighborsInDistance(tree, c, epsilon) {
			if coordSet[n] {
				coordSet[n] = false
				mapping[n] = c
			}
		}
	}

	for _, cell := range v {
		for i := len(cell.edges) - 1; i >= 0; i-- {
			edge := cell.edges[i]
			for j, c := range edge {
				edge[j] = mapping[c]
			}
			if edge[0] == edge[1] {
				// this was almost a singular edge
				essentials.UnorderedDelete(&cell.edges, i)
			}
		}
		cell.Vertices = ring(cell.edges)
	}
}

// ring returns the distinct endpoints of edges ordered by angle about their
// mean. The cells are convex so this walks the boundary.
func ring(edges []*model2d.Segment) []r2.Point {
	seen := map[model2d.Coord]bool{}
	out := []r2.Point{}
	centre := r2.Point{}

	for _, e := range edges {
		for _, c := range e {
			if seen[c] {
				continue
			}
			seen[c] = true
			p := r2.Point{X: c.X, Y: c.Y}
			out = append(out, p)
			centre = centre.Add(p)
		}
	}
	if len(out) < 3 {
		return []r2.Point{}
	}

	centre = centre.Mul(1 / float64(len(out)))
	sort.Slice(out, func(a, b int) bool {
		da, db := out[a].Sub(centre), out[b].Sub(centre)
		return math.Atan2(da.Y, da.X) < math.Atan2(db.Y, db.X)
	})
	return out
}

func neighborsInDistance(tree *model2d.CoordTree, c model2d.Coord, epsilon float64) []model2d.Coord {
	for k := 2; true; k++ {
		neighbors := tree.KNN(k, c)
		if len(neighbors) < k {
			return neighbors
		}
		if neighbors[len(neighbors)-1].Dist(c) > epsilon {
			return neighbors[:len(neighbors)-1]
		}
	}
	panic("unreachable")
}

func toCoord(p r2.Point) model2d.Coord {
	return model2d.Coord{X: p.X, Y: p.Y}
}
