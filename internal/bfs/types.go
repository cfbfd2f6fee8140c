package bfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/geom"
)

// Graph is what Traverse needs from a graph.
type Graph interface {
	// Len is the number of vertices, numbered 0..Len()-1
	Len() int

	// Neighbours of v in ascending order
	Neighbours(v int) []int
}

// Option configures Traverse.
// An invalid Option is recorded & surfaced as geom.ErrOptionViolation when
// Traverse is called.
type Option func(*Options)

// Options holds parameters & callbacks for a traversal.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 means no limit.
	MaxDepth int

	// OnVisit is called as each vertex is dequeued. Returning an error
	// aborts the traversal.
	OnVisit func(v, depth int) error

	err error
}

// DefaultOptions returns a background context, no depth limit & a no-op
// OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at depth d (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: geom.ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(geom.ErrOptionViolation, "max depth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run as each vertex is visited.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Frame is one step of a traversal: the visit of a single vertex.
type Frame struct {
	// Step is the position of this frame in the traversal, from 0
	Step int

	// Vertex visited this step
	Vertex int

	// Order is the rank in which Vertex was discovered (start is 0)
	Order int

	// Depth is the number of edges from the start
	Depth int

	// Parent is the vertex that discovered Vertex, -1 for the start
	Parent int

	// Frontier is the queue, front first, after Vertex's neighbours were
	// enqueued
	Frontier []int
}

// Result of a traversal. Per-vertex slices hold -1 for vertices never reached.
type Result struct {
	Start int

	// Order holds vertices in the order they were visited
	Order []int

	// Discovered is each vertex's discovery rank
	Discovered []int

	// Depth is each vertex's distance (in edges) from Start
	Depth []int

	// Parent is each vertex's predecessor in the BFS tree
	Parent []int

	Frames []Frame
}

// Reached returns if v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo returns the tree path from Start to v, both included.
func (r *Result) PathTo(v int) ([]int, error) {
	if !r.Reached(v) {
		return nil, errors.Errorf("no path to %d", v)
	}

	path := []int{}
	for cur := v; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
