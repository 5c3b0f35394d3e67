// SPDX-License-Identifier: MIT
// Package topology defines the capability contracts every finite space in
// this module implements, together with the OpenSet value type that sections
// are defined over.
//
// A space is never asked to materialize its full lattice of open sets. It
// owns a point set, answers Neighborhood(p) with a model-defined set of
// nearby points, and tests openness on demand:
//
//	type Space[P comparable] interface {
//		Points() OpenSet[P]
//		Neighborhood(p P) OpenSet[P]
//		IsOpen(set OpenSet[P]) bool
//	}
//
// MetricSpace adds a hop-count Distance with the Unreachable sentinel for
// disconnected pairs.
//
// OpenSet:
//
//	NewOpenSet(points ...P) OpenSet[P]     // O(n)
//	Intersect / Union / Difference         // O(|A|+|B|), pure
//	Contains(p) bool                       // O(1)
//	IsSubsetOf / Equal                     // O(|A|)
//	All() iter.Seq[P]                      // unordered
//	Sorted(cmp) []P                        // deterministic listing
//
// OpenSet values are immutable: every operation returns a fresh set, so a
// set may be shared freely between goroutines once built.
package topology
