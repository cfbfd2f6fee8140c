package sitegraph

import (
	"context"
	"encoding/json"
	"image"
	"io/ioutil"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/bfs"
)

// Mode is one of the demonstrations a Scene can be built for.
type Mode string

const (
	ModeCursor    Mode = "cursor"    // the site nearest a cursor, with a line to it
	ModeNaive     Mode = "naive"     // every sample coloured by nearest site
	ModeBisectors Mode = "bisectors" // every pair's bisector across the whole area
	ModeRanges    Mode = "ranges"    // bisectors cut to a radius, with their crossings
	ModeVoronoi   Mode = "voronoi"   // Voronoi cells & the edges between them
	ModeTraversal Mode = "traversal" // breadth-first traversal of the proximity graph
)

var allModes = []Mode{ModeCursor, ModeNaive, ModeBisectors, ModeRanges, ModeVoronoi, ModeTraversal}

// Modes returns every Mode, in demo order.
func Modes() []Mode {
	out := make([]Mode, len(allModes))
	copy(out, allModes)
	return out
}

// ParseMode returns the Mode with the given name.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range allModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownMode, "%q", s)
}

// Params are the per-scene inputs. Each mode only reads what it needs.
type Params struct {
	// Cursor is the query location (ModeCursor)
	Cursor Point

	// Step is the raster sample spacing in surface units (ModeNaive), > 0
	Step float64

	// Radius bounds each bisector about its pair midpoint (ModeRanges), > 0
	Radius float64

	// Start is the site ID to traverse from (ModeTraversal)
	Start int

	// Speed is the playback rate in frames per second (ModeTraversal), > 0.
	// It is carried into the Scene for display & never alters the frames.
	Speed float64

	// MaxDepth, if > 0, stops the traversal at this depth (ModeTraversal)
	MaxDepth int

	// Target, if >= 0, adds the tree path from Start to this site as
	// segments (ModeTraversal)
	Target int
}

// DefaultParams returns reasonable Params for every mode.
func DefaultParams() *Params {
	return &Params{
		Cursor: Point{X: 800, Y: 450},
		Step:   4,
		Radius: 150,
		Start:  0,
		Speed:  10,
		Target: -1,
	}
}

// Scene is everything needed to draw one mode.
type Scene struct {
	Mode  Mode
	Area  image.Rectangle
	Sites []Site

	// Highlight holds IDs of sites to draw emphasised
	Highlight []int  `json:",omitempty"`
	Cursor    *Point `json:",omitempty"`

	Segments []Segment `json:",omitempty"`
	Marks    []Mark    `json:",omitempty"`
	Raster   *Raster   `json:",omitempty"`
	Cells    []Cell    `json:",omitempty"`

	// Triangles are Delaunay triangles as site ID triples (ModeVoronoi)
	Triangles [][3]int `json:",omitempty"`

	// Links are the proximity graph edges (ModeTraversal)
	Links  [][2]int `json:",omitempty"`
	Frames []Frame  `json:",omitempty"`
	Speed  float64  `json:",omitempty"`
}

// Scene computes the primitives for mode from the current point set.
// Errors leave the Sitegraph untouched.
func (s *Sitegraph) Scene(mode Mode, p *Params) (*Scene, error) {
	if p == nil {
		p = DefaultParams()
	}

	sc := &Scene{Mode: mode, Area: s.cfg.Area, Sites: s.Sites}

	switch mode {
	case ModeCursor:
		id, err := s.Nearest(p.Cursor.X, p.Cursor.Y)
		if err != nil {
			return nil, err
		}
		cursor := p.Cursor
		site := s.Sites[id]
		sc.Cursor = &cursor
		sc.Highlight = []int{id}
		sc.Segments = []Segment{{Sites: [2]int{id, -1}, A: Point{X: site.X, Y: site.Y}, B: cursor}}
	case ModeNaive:
		r, err := s.Raster(p.Step)
		if err != nil {
			return nil, err
		}
		sc.Raster = r
	case ModeBisectors:
		sc.Segments = s.Bisectors()
	case ModeRanges:
		if !(p.Radius > 0) {
			return nil, errors.Wrapf(ErrOptionViolation, "radius must be > 0, got %v", p.Radius)
		}
		sc.Segments, sc.Marks = s.Crossings(p.Radius)
	case ModeVoronoi:
		tris, err := s.Triangles()
		if err != nil {
			return nil, err
		}
		sc.Cells = s.Cells()
		sc.Segments = s.Edges()
		sc.Triangles = tris
	case ModeTraversal:
		if _, err := bfs.Interval(p.Speed); err != nil {
			return nil, err
		}
		frames, err := s.Traverse(p.Start, bfs.WithMaxDepth(p.MaxDepth))
		if err != nil {
			return nil, err
		}
		sc.Links = s.Links()
		sc.Frames = frames
		sc.Speed = p.Speed
		sc.Highlight = []int{p.Start}

		if p.Target >= 0 {
			path, err := s.PathTo(p.Start, p.Target)
			if err != nil {
				return nil, err
			}
			sc.Segments = s.path(path)
		}
	default:
		return nil, errors.Wrapf(ErrUnknownMode, "%q", mode)
	}

	return sc, nil
}

// path turns a sequence of site IDs into the segments joining them.
func (s *Sitegraph) path(ids []int) []Segment {
	out := []Segment{}
	for n := 1; n < len(ids); n++ {
		a, b := s.Sites[ids[n-1]], s.Sites[ids[n]]
		out = append(out, Segment{
			Sites: [2]int{a.ID, b.ID},
			A:     Point{X: a.X, Y: a.Y},
			B:     Point{X: b.X, Y: b.Y},
		})
	}
	return out
}

// JSON returns the scene as json.
func (sc *Scene) JSON() ([]byte, error) {
	return json.Marshal(sc)
}

// SaveJSON writes a json file to the given path.
func (sc *Scene) SaveJSON(fpath string) error {
	data, err := sc.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}

// Schedule returns when each traversal frame is shown, relative to the first.
func (sc *Scene) Schedule() ([]time.Duration, error) {
	return bfs.Schedule(sc.Frames, sc.Speed)
}

// Play calls fn with each traversal frame, paced at the scene's Speed.
// The first frame is played immediately.
func (sc *Scene) Play(ctx context.Context, fn func(Frame) error) error {
	return bfs.Play(ctx, sc.Frames, sc.Speed, fn)
}
