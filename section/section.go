// SPDX-License-Identifier: MIT
//
// File: section.go
// Role: Section construction, restriction, compatibility and gluing.
// Policy:
//   - Receivers are never mutated; results own fresh maps.

package section

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/katalvlaran/sheaf/topology"
)

// ErrValueOutsideDomain indicates a value keyed on a point that is not part of
// the section's declared domain.
var ErrValueOutsideDomain = errors.New("section: value outside domain")

// Section is a partial function P → V with an explicit domain.
type Section[P, V comparable] struct {
	domain topology.OpenSet[P]
	values map[P]V
}

// New builds a section over domain. Every key of values must lie in domain;
// domain points without a value are allowed. values is copied.
func New[P, V comparable](domain topology.OpenSet[P], values map[P]V) (Section[P, V], error) {
	for p := range values {
		if !domain.Contains(p) {
			return Section[P, V]{}, fmt.Errorf("%w: point %v", ErrValueOutsideDomain, p)
		}
	}

	return Section[P, V]{domain: domain, values: maps.Clone(values)}, nil
}

// MustNew is New that panics on error. Intended for fixtures.
func MustNew[P, V comparable](domain topology.OpenSet[P], values map[P]V) Section[P, V] {
	s, err := New(domain, values)
	if err != nil {
		panic(err)
	}

	return s
}

// FromMap builds a section whose domain is exactly the keys of values.
func FromMap[P, V comparable](values map[P]V) Section[P, V] {
	return Section[P, V]{
		domain: topology.OpenSetOf(maps.Keys(values)),
		values: maps.Clone(values),
	}
}

// Empty returns the section over the empty domain.
func Empty[P, V comparable]() Section[P, V] {
	return Section[P, V]{}
}

// Domain returns the open set the section was built over.
func (s Section[P, V]) Domain() topology.OpenSet[P] { return s.domain }

// Len reports how many points carry a value.
func (s Section[P, V]) Len() int { return len(s.values) }

// IsEmpty reports whether the section has neither domain nor values.
func (s Section[P, V]) IsEmpty() bool { return s.domain.IsEmpty() && len(s.values) == 0 }

// Value returns the value assigned to p, if any.
func (s Section[P, V]) Value(p P) (V, bool) {
	v, ok := s.values[p]
	return v, ok
}

// All yields every assigned (point, value) pair in unspecified order.
func (s Section[P, V]) All() iter.Seq2[P, V] {
	return maps.All(s.values)
}

// Map returns a copy of the assignment.
func (s Section[P, V]) Map() map[P]V {
	out := maps.Clone(s.values)
	if out == nil {
		out = make(map[P]V)
	}

	return out
}

// Equal reports structural equality of the two assignments.
// A NaN value equals another NaN, so every section equals itself.
func (s Section[P, V]) Equal(other Section[P, V]) bool {
	return maps.EqualFunc(s.values, other.values, sameValue[V])
}

// sameValue is == extended so that x != x values (NaN) match each other.
func sameValue[V comparable](a, b V) bool {
	return a == b || (a != a && b != b)
}

// Restrict returns the sub-assignment of s on domain ∩ Domain().
// Points of domain that s does not cover are omitted, not reported.
// Complexity: O(min(|domain|, |Domain()|)).
func (s Section[P, V]) Restrict(domain topology.OpenSet[P]) Section[P, V] {
	d := domain.Intersect(s.domain)
	values := make(map[P]V, d.Len())
	for p := range d.All() {
		if v, ok := s.values[p]; ok {
			values[p] = v
		}
	}

	return Section[P, V]{domain: d, values: values}
}

// IsCompatible reports whether s and other agree on domain.
// Symmetric in s and other.
func (s Section[P, V]) IsCompatible(domain topology.OpenSet[P], other Section[P, V]) bool {
	return s.Restrict(domain).Equal(other.Restrict(domain))
}

// Disagreements returns the points of domain at which s and other differ,
// either because the values differ or because only one side assigns a value.
// Empty exactly when IsCompatible(domain, other) holds.
func (s Section[P, V]) Disagreements(domain topology.OpenSet[P], other Section[P, V]) []P {
	left, right := s.Restrict(domain), other.Restrict(domain)
	var out []P
	for p := range left.domain.Union(right.domain).All() {
		lv, lok := left.values[p]
		rv, rok := right.values[p]
		if lok != rok || !sameValue(lv, rv) {
			out = append(out, p)
		}
	}

	return out
}

// Glue returns s with other's values written over it on domain ∩ other.Domain().
// The result's domain is Domain() ∪ (domain ∩ other.Domain()).
//
// Glue performs no compatibility check and always succeeds. Points of domain
// that other leaves unassigned keep the receiver's value.
func (s Section[P, V]) Glue(domain topology.OpenSet[P], other Section[P, V]) Section[P, V] {
	incoming := domain.Intersect(other.domain)
	values := maps.Clone(s.values)
	if values == nil {
		values = make(map[P]V, incoming.Len())
	}
	for p := range incoming.All() {
		if v, ok := other.values[p]; ok {
			values[p] = v
		}
	}

	return Section[P, V]{domain: s.domain.Union(incoming), values: values}
}

// String renders the section for diagnostics.
func (s Section[P, V]) String() string {
	return fmt.Sprintf("section(domain=%d, values=%v)", s.domain.Len(), s.values)
}
