// SPDX-License-Identifier: MIT

package gluing

import (
	"github.com/katalvlaran/sheaf/section"
	"github.com/katalvlaran/sheaf/topology"
)

// IsLocallyEqual reports whether a and b agree once both are restricted to
// domain. Two different global sections that are locally equal on every
// examined domain mean the gluing there is under-determined.
func IsLocallyEqual[P, V comparable](domain topology.OpenSet[P], a, b section.Section[P, V]) bool {
	return a.Restrict(domain).Equal(b.Restrict(domain))
}

// Candidate pairs two competing sections with the domain they are compared on.
type Candidate[P, V comparable] struct {
	Domain topology.OpenSet[P]
	A, B   section.Section[P, V]
}

// Uniqueness reports whether every candidate pair is distinguishable on its
// domain, i.e. no pair is locally equal. An empty list is vacuously unique.
func Uniqueness[P, V comparable](candidates []Candidate[P, V]) bool {
	for _, c := range candidates {
		if IsLocallyEqual(c.Domain, c.A, c.B) {
			return false
		}
	}

	return true
}
