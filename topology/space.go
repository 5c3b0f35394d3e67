// SPDX-License-Identifier: MIT
//
// File: space.go
// Role: Space capability contracts shared by graphspace and cellcomplex.

package topology

// Unreachable is the distance reported between points that no path joins.
// It is distinct from 0, which is reserved for a point and itself.
const Unreachable = -1

// Space is a finite topological space model.
//
// Neighborhood need not be topologically minimal; each model documents its
// own notion of nearby points. IsOpen applies a model-specific openness
// policy instead of computing a general lattice.
type Space[P comparable] interface {
	// Points returns the full point set.
	Points() OpenSet[P]

	// Neighborhood returns the points the model considers near p.
	Neighborhood(p P) OpenSet[P]

	// IsOpen reports whether set is open under the model's policy.
	IsOpen(set OpenSet[P]) bool
}

// MetricSpace is a Space with a hop-count distance.
type MetricSpace[P comparable] interface {
	Space[P]

	// Distance returns the minimum number of hops from a to b,
	// or Unreachable when no path exists.
	Distance(a, b P) int
}
