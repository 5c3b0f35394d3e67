// Package graphspace models a finite undirected graph as a topological
// space: neighborhoods are adjacency, distance is BFS hop count, and every
// subset of vertices is open (the discrete topology).
//
// Adjacency and distance carry the graph's structure; openness carries none,
// which is why IsOpen always reports true.
//
// Construction:
//
//	New(vertices, edges) (*Space[P], error)  // O(V + E log E)
//	MustNew(vertices, edges) *Space[P]        // panics on ErrUnknownVertex
//
// Every edge is normalized to (min, max) and deduplicated before storage.
// An edge naming a vertex that is not in the vertex set aborts construction.
//
// Queries:
//
//	Neighborhood(v) OpenSet      // O(deg v)
//	Distance(a, b) int           // O(V+E), topology.Unreachable if disconnected
//	Ball(center, radius) OpenSet // vertices within radius hops
//	BFS(start, opts...)          // layered traversal with hooks, see Option
//
// A Space is immutable after New returns and safe for concurrent readers.
package graphspace
