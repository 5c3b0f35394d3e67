// SPDX-License-Identifier: MIT
// Package cellcomplex models a finite cell complex as a topological space.
//
// Cells are stratified by dimension. A complex of maximum dimension N owns
// one Skeleton per dimension 0..N, and a cell id is unique only within its
// own skeleton, so points of the space are CellRef{Dim, ID} pairs.
//
// Lifecycle:
//
//	b, _ := cellcomplex.NewBuilder(2)
//	v, _ := b.AddCell("v1", 0)
//	e, _ := b.AddCell("e1", 1)
//	_ = b.Attach(e, v)
//	c, _ := b.Freeze()
//
// The Builder is owned by one constructing goroutine. Freeze hands out an
// immutable Complex that needs no locking; the builder then rejects every
// further call with ErrFrozen.
//
// Attachment is a symmetric adjacency relation: Attach(a, b) records each
// cell in the other's attachment list. It does not require dim(a) and dim(b)
// to differ by one, unlike the attaching maps of a classical CW complex.
//
// Openness is a coarse per-skeleton test. For every skeleton, the part of the
// set that lies in that skeleton must be either empty or the whole set. In
// effect a non-empty set is open iff all of its cells sit in one skeleton.
// This is not the weak topology of a CW complex and is kept as is.
//
// Errors:
//
//	ErrInvalidDimension  - negative maximum or cell dimension.
//	ErrDimensionExceeded - cell dimension above the complex maximum.
//	ErrDuplicateCell     - id already registered in that dimension.
//	ErrEmptyCellID       - zero-length cell id.
//	ErrCellNotFound      - Attach named an unregistered cell.
//	ErrFrozen            - builder used after Freeze.
package cellcomplex
