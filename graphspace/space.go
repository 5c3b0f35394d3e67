package graphspace

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/sheaf/topology"
)

// Space is an immutable undirected graph viewed as a discrete topological space.
type Space[P cmp.Ordered] struct {
	vertices topology.OpenSet[P]
	edges    []Edge[P] // normalized (min,max), sorted, unique
	adjacent map[P][]P // vertex → sorted neighbor list
}

var _ topology.MetricSpace[int] = (*Space[int])(nil)

// New builds a graph space from a vertex set and an edge set.
// Edges are normalized to (min, max) and deduplicated; self-loops are kept.
// Returns ErrUnknownVertex, naming the first offending edge, if an endpoint
// is not in vertices. Nothing is constructed on error.
func New[P cmp.Ordered](vertices []P, edges []Edge[P]) (*Space[P], error) {
	vs := topology.NewOpenSet(vertices...)

	seen := make(map[Edge[P]]struct{}, len(edges))
	norm := make([]Edge[P], 0, len(edges))
	for _, e := range edges {
		n := e.normalized()
		if !vs.Contains(n.A) || !vs.Contains(n.B) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, e)
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		norm = append(norm, n)
	}
	slices.SortFunc(norm, compareEdges[P])

	adjacent := make(map[P][]P, vs.Len())
	for _, e := range norm {
		adjacent[e.A] = append(adjacent[e.A], e.B)
		if e.A != e.B {
			adjacent[e.B] = append(adjacent[e.B], e.A)
		}
	}
	for v := range adjacent {
		slices.Sort(adjacent[v])
	}

	return &Space[P]{vertices: vs, edges: norm, adjacent: adjacent}, nil
}

// MustNew is New that panics when an edge references an unknown vertex.
func MustNew[P cmp.Ordered](vertices []P, edges []Edge[P]) *Space[P] {
	s, err := New(vertices, edges)
	if err != nil {
		panic(err)
	}

	return s
}

func compareEdges[P cmp.Ordered](x, y Edge[P]) int {
	if c := cmp.Compare(x.A, y.A); c != 0 {
		return c
	}
	return cmp.Compare(x.B, y.B)
}

// Points returns the vertex set.
func (s *Space[P]) Points() topology.OpenSet[P] { return s.vertices }

// Vertices returns the vertices in ascending order.
func (s *Space[P]) Vertices() []P { return s.vertices.Sorted(cmp.Compare[P]) }

// Edges returns a copy of the normalized edges in ascending order.
func (s *Space[P]) Edges() []Edge[P] { return slices.Clone(s.edges) }

// HasVertex reports whether v is a vertex.
func (s *Space[P]) HasVertex(v P) bool { return s.vertices.Contains(v) }

// HasEdge reports whether a and b are joined, in either orientation.
func (s *Space[P]) HasEdge(a, b P) bool {
	_, ok := slices.BinarySearchFunc(s.edges, E(a, b).normalized(), compareEdges[P])
	return ok
}

// Degree returns the number of distinct neighbors of v.
func (s *Space[P]) Degree(v P) int { return len(s.adjacent[v]) }

// NeighborIDs returns the neighbors of v in ascending order.
func (s *Space[P]) NeighborIDs(v P) []P { return slices.Clone(s.adjacent[v]) }

// Neighborhood returns every w such that (v,w) or (w,v) is an edge.
// Unknown vertices have an empty neighborhood.
func (s *Space[P]) Neighborhood(v P) topology.OpenSet[P] {
	return topology.NewOpenSet(s.adjacent[v]...)
}

// IsOpen always reports true: graph spaces use the discrete topology.
func (s *Space[P]) IsOpen(topology.OpenSet[P]) bool { return true }

// Distance returns the BFS hop count from a to b. It is 0 only when a == b,
// and topology.Unreachable when either point is unknown or no path exists.
func (s *Space[P]) Distance(a, b P) int {
	if !s.HasVertex(a) || !s.HasVertex(b) {
		return topology.Unreachable
	}
	if a == b {
		return 0
	}
	opts := DefaultOptions[P]()
	opts.stopAt = &b
	res, err := s.walk(a, opts)
	if err != nil {
		return topology.Unreachable
	}
	if d, ok := res.Depth[b]; ok {
		return d
	}

	return topology.Unreachable
}

// Ball returns every vertex within radius hops of center, center included.
// An unknown center or a negative radius yields the empty set.
func (s *Space[P]) Ball(center P, radius int) topology.OpenSet[P] {
	if !s.HasVertex(center) || radius < 0 {
		return topology.EmptySet[P]()
	}
	if radius == 0 {
		return topology.NewOpenSet(center)
	}
	res, err := s.BFS(center, WithMaxDepth[P](radius))
	if err != nil {
		return topology.EmptySet[P]()
	}

	return topology.NewOpenSet(res.Order...)
}
