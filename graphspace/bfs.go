package graphspace

import (
	"cmp"
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[P cmp.Ordered] struct {
	v     P
	depth int
}

// walker encapsulates mutable BFS state.
type walker[P cmp.Ordered] struct {
	space   *Space[P]
	opts    Options[P]
	queue   []queueItem[P]
	visited map[P]bool
	res     *Result[P]
	done    bool
}

// BFS runs breadth-first search from start, applying opts.
// Neighbors are expanded in ascending order, so Order is deterministic.
// Returns ErrStartNotFound, ErrOptionViolation, or any OnVisit error.
func (s *Space[P]) BFS(start P, opts ...Option[P]) (*Result[P], error) {
	o := DefaultOptions[P]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return s.walk(start, o)
}

func (s *Space[P]) walk(start P, o Options[P]) (*Result[P], error) {
	if !s.HasVertex(start) {
		return nil, ErrStartNotFound
	}
	n := s.vertices.Len()
	w := &walker[P]{
		space:   s,
		opts:    o,
		queue:   make([]queueItem[P], 0, n),
		visited: make(map[P]bool, n),
		res: &Result[P]{
			Order:  make([]P, 0, n),
			Depth:  make(map[P]int, n),
			Parent: make(map[P]P, n),
		},
	}
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent and queues it.
func (w *walker[P]) enqueue(v P, d int, parent *P) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = *parent
	}
	w.queue = append(w.queue, queueItem[P]{v: v, depth: d})
	if w.opts.stopAt != nil && *w.opts.stopAt == v {
		w.done = true
	}
}

func (w *walker[P]) loop() error {
	for len(w.queue) > 0 && !w.done {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("graphspace: OnVisit error at %v: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then queues unseen neighbors.
func (w *walker[P]) enqueueNeighbors(item queueItem[P]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.space.adjacent[item.v] {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		parent := item.v
		w.enqueue(nbr, next, &parent)
		if w.done {
			return
		}
	}
}
