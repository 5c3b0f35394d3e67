// Package graphspace provides tunable options, result types and error
// definitions for graph spaces and their breadth-first traversal.
package graphspace

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnknownVertex is returned when an edge endpoint is not a vertex.
	ErrUnknownVertex = errors.New("graphspace: edge endpoint is not a vertex")

	// ErrStartNotFound is returned when a traversal starts outside the graph.
	ErrStartNotFound = errors.New("graphspace: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graphspace: invalid option supplied")
)

// Edge is an undirected edge between two vertices.
type Edge[P cmp.Ordered] struct {
	A, B P
}

// E is shorthand for Edge{A: a, B: b}.
func E[P cmp.Ordered](a, b P) Edge[P] { return Edge[P]{A: a, B: b} }

// normalized returns the edge as (min, max).
func (e Edge[P]) normalized() Edge[P] {
	if e.B < e.A {
		return Edge[P]{A: e.B, B: e.A}
	}
	return e
}

func (e Edge[P]) String() string { return fmt.Sprintf("(%v,%v)", e.A, e.B) }

// Option configures a BFS traversal via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option[P cmp.Ordered] func(*Options[P])

// Options holds parameters and callbacks for a traversal.
type Options[P cmp.Ordered] struct {
	// OnVisit is called when a vertex is visited. Returning an error aborts
	// the traversal and propagates that error.
	OnVisit func(v P, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor P) bool

	// stopAt, when set, ends the traversal as soon as the target is enqueued.
	stopAt *P

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a
// no-op visit hook.
func DefaultOptions[P cmp.Ordered]() Options[P] {
	return Options[P]{
		OnVisit:        func(P, int) error { return nil },
		FilterNeighbor: func(_, _ P) bool { return true },
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit[P cmp.Ordered](fn func(v P, depth int) error) Option[P] {
	return func(o *Options[P]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[P cmp.Ordered](d int) Option[P] {
	return func(o *Options[P]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbor when fn(curr, neighbor) is false.
func WithFilterNeighbor[P cmp.Ordered](fn func(curr, neighbor P) bool) Option[P] {
	return func(o *Options[P]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal.
//   - Order: vertices in visit sequence.
//   - Depth: hop count from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result[P cmp.Ordered] struct {
	Order  []P
	Depth  map[P]int
	Parent map[P]P
}

// PathTo reconstructs the start → dest path.
// Returns an error if dest was not reached.
func (r *Result[P]) PathTo(dest P) ([]P, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("graphspace: no path to %v", dest)
	}
	path := []P{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
