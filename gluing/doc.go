// SPDX-License-Identifier: MIT
// Package gluing is the sheaf core: it checks that a cover of local sections
// agrees on every overlap and folds it into one global section.
//
// Algorithm (Engine.Glue):
//
//  1. For every unordered pair (i, j) with i < j, take overlap = D_i ∩ D_j.
//     If the overlap is non-empty and S_i, S_j disagree on it, stop with
//     *IncompatibleCoverError{I: i, J: j}.
//  2. Fold left to right: acc = S_0; acc = acc.Glue(D_k, S_k) for k ≥ 1.
//  3. Return acc.
//
// An empty cover yields section.Empty and a nil error. A one-patch cover
// returns its section unchanged. The engine never mutates its inputs and
// never checks that the domains cover any particular target set.
//
// Limitation: step 1 is pairwise. For three or more mutually overlapping
// regions this is necessary but not sufficient for a valid global section
// under the full Čech cocycle condition. WithRestrictionCheck adds a
// post-condition that the glued section restricts back to every patch.
//
// Complexity: O(n²·m) for n patches of at most m points.
//
// Errors:
//
//	ErrIncompatibleCover - two patches disagree on their overlap (see IncompatibleCoverError).
//	ErrDomainNotOpen     - a patch domain is not open in the engine's space.
//	ErrRestrictionMismatch - the glued section does not restrict back to a patch.
package gluing
