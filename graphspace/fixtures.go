// Fixture constructors for common graph spaces over integer vertices.
// Vertex IDs are deterministic: 0..n-1 for Path and Cycle, r*cols+c for Grid.

package graphspace

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter below a constructor's minimum.
var ErrTooFewVertices = errors.New("graphspace: parameter too small")

const (
	minPathNodes  = 1
	minCycleNodes = 3
	minGridDim    = 1
)

// Path returns the path 0–1–…–(n-1).
func Path(n int) (*Space[int], error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	vertices := sequence(n)
	edges := make([]Edge[int], 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, E(i, i+1))
	}

	return New(vertices, edges)
}

// Cycle returns the cycle 0–1–…–(n-1)–0.
func Cycle(n int) (*Space[int], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	vertices := sequence(n)
	edges := make([]Edge[int], 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, E(i, (i+1)%n))
	}

	return New(vertices, edges)
}

// Grid returns the rows×cols 4-neighbor lattice; cell (r,c) is vertex r*cols+c.
func Grid(rows, cols int) (*Space[int], error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}
	vertices := sequence(rows * cols)
	edges := make([]Edge[int], 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				edges = append(edges, E(u, u+1)) // right
			}
			if r+1 < rows {
				edges = append(edges, E(u, u+cols)) // down
			}
		}
	}

	return New(vertices, edges)
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
