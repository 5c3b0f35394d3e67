// SPDX-License-Identifier: MIT
// Package section implements partial, point-keyed value assignments over an
// explicit domain: the local data a sheaf glues together.
//
// A Section[P, V] is a value type. It is immutable after construction and
// every operation returns a new Section:
//
//	Restrict(domain)            sub-assignment on domain ∩ Domain()
//	IsCompatible(domain, other) Restrict(domain) == other.Restrict(domain)
//	Glue(domain, other)         receiver, overwritten by other on domain
//
// Glue never checks compatibility. Callers verify IsCompatible on the overlap
// first; the gluing package does this for whole covers.
//
// Equality compares assignments, not declared domains: a domain point with no
// value contributes nothing to Equal.
//
// Errors:
//
//	ErrValueOutsideDomain - New was given a value keyed on a point outside domain.
package section
