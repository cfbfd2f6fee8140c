// Package sitegraph computes the geometry behind a set of Voronoi
// demonstrations: random sites, nearest site queries, perpendicular
// bisectors, Voronoi cells & breadth-first traversal over a proximity graph.
//
// Everything is returned as plain geometric data (see Scene); drawing is
// left to the caller or to the helpers in render.go.
package sitegraph

import (
	"encoding/json"
	"io/ioutil"
	"time"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/voidshard/sitegraph/internal/bfs"
	"github.com/voidshard/sitegraph/internal/bisector"
	"github.com/voidshard/sitegraph/internal/encoding"
	"github.com/voidshard/sitegraph/internal/geom"
	"github.com/voidshard/sitegraph/internal/graph"
	"github.com/voidshard/sitegraph/internal/index"
	"github.com/voidshard/sitegraph/internal/points"
	"github.com/voidshard/sitegraph/internal/voronoi"
)

// Sitegraph holds one point set & the structures derived from it.
// Derived structures are rebuilt whenever the point set is regenerated.
type Sitegraph struct {
	cfg    *Config
	bounds r2.Rect

	gen   *points.Generator
	pts   []r2.Point
	idx   index.Index
	graph *graph.Graph

	Sites []Site
	Seed  int64
}

// New validates cfg & generates an initial point set.
func New(cfg *Config) (*Sitegraph, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	s := &Sitegraph{cfg: cfg, bounds: geom.Rect(cfg.Area)}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	s.Seed = cfg.Seed

	s.gen = points.NewGenerator(s.bounds)
	s.gen.SetSeed(cfg.Seed)
	s.gen.SetAttempts(cfg.Attempts)
	if cfg.MinDistance > 0 {
		s.gen.SetSiteFilters(points.MinDistance(cfg.MinDistance))
	}
	if cfg.Margin > 0 {
		s.gen.SetCandidateFilters(points.Margin(s.bounds, cfg.Margin))
	}

	return s, s.Regenerate()
}

// Config returns the config in use.
func (s *Sitegraph) Config() *Config {
	return s.cfg
}

// Bounds is the generation domain.
func (s *Sitegraph) Bounds() r2.Rect {
	return s.bounds
}

// Len is the number of sites.
func (s *Sitegraph) Len() int {
	return len(s.pts)
}

// Regenerate draws a fresh point set of the configured Count.
func (s *Sitegraph) Regenerate() error {
	return s.SetCount(s.cfg.Count)
}

// SetCount draws a fresh point set of n points & rebuilds everything derived
// from it. On error the previous point set is kept.
func (s *Sitegraph) SetCount(n int) error {
	err := s.cfg.checkCount(n)
	if err != nil {
		return err
	}

	pts, err := s.gen.Generate(n)
	if err != nil {
		return err
	}

	err = s.load(pts)
	if err != nil {
		return err
	}

	s.cfg.Count = n
	return nil
}

// load swaps in pts & rebuilds everything derived from them.
func (s *Sitegraph) load(pts []r2.Point) error {
	g, err := graph.Build(pts, s.bounds, s.cfg.graphOptions()...)
	if err != nil {
		return err
	}

	if s.idx == nil {
		var opts []index.Option
		if s.cfg.Tree {
			opts = append(opts, index.WithTree())
		}
		s.idx = index.Build(pts, opts...)
	} else {
		s.idx.Rebuild(pts)
	}

	s.pts = pts
	s.graph = g
	s.Sites = make([]Site, len(pts))
	for i, p := range pts {
		s.Sites[i] = Site{ID: i, X: p.X, Y: p.Y}
	}

	klog.V(2).Infof("sitegraph: loaded %d sites, %d %s edges", len(pts), g.EdgeCount(), g.Rule())
	return nil
}

// Nearest returns the ID of the site nearest (x, y). Ties go to the lower ID.
func (s *Sitegraph) Nearest(x, y float64) (int, error) {
	return s.idx.Nearest(r2.Point{X: x, Y: y})
}

// Colorize returns the nearest site ID for every sample.
func (s *Sitegraph) Colorize(samples []Point) ([]int, error) {
	qs := make([]r2.Point, len(samples))
	for i, p := range samples {
		qs[i] = toR2(p)
	}
	return voronoi.Colorize(s.idx, qs)
}

// Raster labels a regular grid of samples (one per step x step square) with
// their nearest site.
func (s *Sitegraph) Raster(step float64) (*Raster, error) {
	r, err := voronoi.Rasterize(s.idx, s.pts, s.bounds, step)
	if err != nil {
		return nil, err
	}

	pixels := encoding.Decode(r.Image())
	out := &Raster{
		Step:     r.Step,
		Cols:     r.Cols,
		Rows:     r.Rows,
		Labels:   make([]int, len(pixels)),
		Boundary: make([]bool, len(pixels)),
		Sites:    make([]bool, len(pixels)),
	}
	for i, px := range pixels {
		out.Labels[i] = px.Label
		out.Boundary[i] = px.Boundary
		out.Sites[i] = px.Site
	}

	klog.V(2).Infof("sitegraph: raster %dx%d, %d boundary samples", r.Cols, r.Rows, r.Boundaries())
	return out, nil
}

// Bisectors returns the perpendicular bisector of every pair of sites,
// clipped to the domain, in pair order.
func (s *Sitegraph) Bisectors() []Segment {
	return segments(bisector.All(s.pts, bisector.Domain(s.bounds)))
}

// BisectorsWithin returns every bisector clipped to radius r about the pair
// midpoint.
func (s *Sitegraph) BisectorsWithin(r float64) []Segment {
	return segments(bisector.All(s.pts, bisector.Radius(r)))
}

// Edges returns the Voronoi edges: the part of each bisector where its pair
// are the nearest sites.
func (s *Sitegraph) Edges() []Segment {
	return segments(bisector.All(s.pts, bisector.Voronoi(s.bounds)))
}

// Crossings returns the bisectors clipped to radius r about their pair
// midpoint along with every point where two of them cross.
func (s *Sitegraph) Crossings(r float64) ([]Segment, []Mark) {
	bs := bisector.All(s.pts, bisector.Radius(r))
	return segments(bs), marks(bisector.Intersections(bs))
}

// Cells returns the explicit Voronoi polygon of every site.
func (s *Sitegraph) Cells() []Cell {
	diagram := voronoi.Cells(s.bounds, s.pts)
	out := make([]Cell, len(diagram))
	for i, c := range diagram {
		out[i] = Cell{Site: c.Site, Area: c.Area(), Vertices: make([]Point, len(c.Vertices))}
		for n, v := range c.Vertices {
			out[i].Vertices[n] = toPoint(v)
		}
	}
	return out
}

// Triangles returns the Delaunay triangles of the sites as ID triples,
// lowest ID first.
func (s *Sitegraph) Triangles() ([][3]int, error) {
	g := s.graph
	if g.Rule() != graph.RuleDelaunay {
		var err error
		g, err = graph.Build(s.pts, s.bounds, graph.WithRule(graph.RuleDelaunay))
		if err != nil {
			return nil, err
		}
	}
	return graph.Triangles(g, s.pts), nil
}

// Links returns the proximity graph edges as site ID pairs, lower ID first.
func (s *Sitegraph) Links() [][2]int {
	return s.graph.Edges()
}

// Neighbours returns the IDs of sites adjacent to id in the proximity graph.
func (s *Sitegraph) Neighbours(id int) []int {
	return s.graph.Neighbours(id)
}

// Traverse runs breadth-first search over the proximity graph from start.
func (s *Sitegraph) Traverse(start int, opts ...bfs.Option) ([]Frame, error) {
	res, err := bfs.Traverse(s.graph, start, opts...)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("sitegraph: traversal from %d reached %d of %d sites", start, len(res.Order), s.Len())
	return res.Frames, nil
}

// PathTo returns the breadth-first tree path from start to target, both
// included, or an empty path if target cannot be reached.
func (s *Sitegraph) PathTo(start, target int) ([]int, error) {
	if target < 0 || target >= s.Len() {
		return nil, errors.Wrapf(ErrOptionViolation, "target %d not in [0, %d)", target, s.Len())
	}

	res, err := bfs.Traverse(s.graph, start)
	if err != nil {
		return nil, err
	}
	if !res.Reached(target) {
		return []int{}, nil
	}
	return res.PathTo(target)
}

// JSON returns the sitegraph as json.
func (s *Sitegraph) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// SaveJSON writes a json file to the given path.
func (s *Sitegraph) SaveJSON(fpath string) error {
	data, err := s.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}

func segments(bs []bisector.Bisector) []Segment {
	out := make([]Segment, len(bs))
	for n, b := range bs {
		out[n] = toSegment(b.I, b.J, b.Segment)
	}
	return out
}

func marks(xs []bisector.Intersection) []Mark {
	out := make([]Mark, len(xs))
	for n, x := range xs {
		out[n] = Mark{At: toPoint(x.At), Segments: [2]int{x.A, x.B}}
	}
	return out
}
