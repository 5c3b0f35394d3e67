// SPDX-License-Identifier: MIT
//
// File: openset.go
// Role: Finite immutable point sets and their set algebra.
// Determinism:
//   - All() and Points() follow Go map order; use Sorted for stable output.

package topology

import (
	"iter"
	"slices"
)

// OpenSet is a finite, immutable set of points.
//
// The zero value is the empty set and is ready to use.
type OpenSet[P comparable] struct {
	members map[P]struct{}
}

// NewOpenSet builds a set from the given points. Duplicates collapse.
// Complexity: O(n).
func NewOpenSet[P comparable](points ...P) OpenSet[P] {
	m := make(map[P]struct{}, len(points))
	for _, p := range points {
		m[p] = struct{}{}
	}

	return OpenSet[P]{members: m}
}

// OpenSetOf collects every point yielded by seq into a set.
func OpenSetOf[P comparable](seq iter.Seq[P]) OpenSet[P] {
	m := make(map[P]struct{})
	for p := range seq {
		m[p] = struct{}{}
	}

	return OpenSet[P]{members: m}
}

// EmptySet returns the empty set.
func EmptySet[P comparable]() OpenSet[P] {
	return OpenSet[P]{}
}

// Len reports the number of points in s.
func (s OpenSet[P]) Len() int { return len(s.members) }

// IsEmpty reports whether s has no points.
func (s OpenSet[P]) IsEmpty() bool { return len(s.members) == 0 }

// Contains reports whether p is a member of s. O(1).
func (s OpenSet[P]) Contains(p P) bool {
	_, ok := s.members[p]
	return ok
}

// Intersect returns s ∩ other.
// Iterates the smaller operand, so the cost is O(min(|s|,|other|)).
func (s OpenSet[P]) Intersect(other OpenSet[P]) OpenSet[P] {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	m := make(map[P]struct{}, small.Len())
	for p := range small.members {
		if large.Contains(p) {
			m[p] = struct{}{}
		}
	}

	return OpenSet[P]{members: m}
}

// Union returns s ∪ other. O(|s|+|other|).
func (s OpenSet[P]) Union(other OpenSet[P]) OpenSet[P] {
	m := make(map[P]struct{}, s.Len()+other.Len())
	for p := range s.members {
		m[p] = struct{}{}
	}
	for p := range other.members {
		m[p] = struct{}{}
	}

	return OpenSet[P]{members: m}
}

// Difference returns the points of s that are not in other.
func (s OpenSet[P]) Difference(other OpenSet[P]) OpenSet[P] {
	m := make(map[P]struct{}, s.Len())
	for p := range s.members {
		if !other.Contains(p) {
			m[p] = struct{}{}
		}
	}

	return OpenSet[P]{members: m}
}

// IsSubsetOf reports whether every point of s is in other.
func (s OpenSet[P]) IsSubsetOf(other OpenSet[P]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for p := range s.members {
		if !other.Contains(p) {
			return false
		}
	}

	return true
}

// Equal reports whether s and other contain exactly the same points.
func (s OpenSet[P]) Equal(other OpenSet[P]) bool {
	return s.Len() == other.Len() && s.IsSubsetOf(other)
}

// All yields every point of s in unspecified order.
func (s OpenSet[P]) All() iter.Seq[P] {
	return func(yield func(P) bool) {
		for p := range s.members {
			if !yield(p) {
				return
			}
		}
	}
}

// Points returns an unordered snapshot of the members of s.
func (s OpenSet[P]) Points() []P {
	out := make([]P, 0, len(s.members))
	for p := range s.members {
		out = append(out, p)
	}

	return out
}

// Sorted returns the members of s ordered by cmp.
func (s OpenSet[P]) Sorted(cmp func(a, b P) int) []P {
	out := s.Points()
	slices.SortFunc(out, cmp)

	return out
}
