package bfs

import (
	"context"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/geom"
)

// queueItem pairs a vertex with its depth.
type queueItem struct {
	v     int
	depth int
}

// walker holds mutable traversal state.
type walker struct {
	graph Graph
	opts  Options
	ctx   context.Context
	queue *linkedlistqueue.Queue
	found int
	res   *Result
}

// Traverse runs breadth-first search on g from start.
// Returns geom.ErrNoPoints for an empty graph, geom.ErrInvalidStart if start
// is not a vertex, geom.ErrOptionViolation for bad options, the context's
// error on cancellation or any error from OnVisit.
func Traverse(g Graph, start int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	if n == 0 {
		return nil, errors.Wrap(geom.ErrNoPoints, "traverse")
	}
	if start < 0 || start >= n {
		return nil, errors.Wrapf(geom.ErrInvalidStart, "start %d not in [0, %d)", start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: linkedlistqueue.New(),
		res: &Result{
			Start:      start,
			Order:      make([]int, 0, n),
			Discovered: filled(n, -1),
			Depth:      filled(n, -1),
			Parent:     filled(n, -1),
			Frames:     []Frame{},
		},
	}

	w.enqueue(start, 0, -1)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue marks v discovered at depth d & queues it.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Discovered[v] = w.found
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.found++
	w.queue.Enqueue(queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		value, _ := w.queue.Dequeue()
		item := value.(queueItem)

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return errors.Wrapf(err, "visiting %d", item.v)
		}

		w.enqueueNeighbours(item)

		w.res.Frames = append(w.res.Frames, Frame{
			Step:     len(w.res.Frames),
			Vertex:   item.v,
			Order:    w.res.Discovered[item.v],
			Depth:    item.depth,
			Parent:   w.res.Parent[item.v],
			Frontier: w.frontier(),
		})
	}
	return nil
}

// enqueueNeighbours queues every undiscovered neighbour of item, in
// ascending order, unless that would pass MaxDepth.
func (w *walker) enqueueNeighbours(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}

	for _, nbr := range w.graph.Neighbours(item.v) {
		if nbr < 0 || nbr >= len(w.res.Depth) || w.res.Discovered[nbr] >= 0 {
			continue
		}
		w.enqueue(nbr, next, item.v)
	}
}

// frontier snapshots the queue, front first.
func (w *walker) frontier() []int {
	values := w.queue.Values()
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = v.(queueItem).v
	}
	return out
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
