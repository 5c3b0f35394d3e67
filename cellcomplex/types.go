// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Cell, CellRef, Skeleton, sentinel errors and builder options.

package cellcomplex

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Sentinel errors for complex construction.
var (
	// ErrInvalidDimension indicates a negative dimension.
	ErrInvalidDimension = errors.New("cellcomplex: invalid dimension")

	// ErrDimensionExceeded indicates a cell whose dimension exceeds the complex maximum.
	ErrDimensionExceeded = errors.New("cellcomplex: cell dimension exceeds complex dimension")

	// ErrDuplicateCell indicates an id already registered in the same dimension.
	ErrDuplicateCell = errors.New("cellcomplex: duplicate cell id")

	// ErrEmptyCellID indicates a zero-length cell id.
	ErrEmptyCellID = errors.New("cellcomplex: cell id is empty")

	// ErrCellNotFound indicates a reference to an unregistered cell.
	ErrCellNotFound = errors.New("cellcomplex: cell not found")

	// ErrFrozen indicates a builder call after Freeze.
	ErrFrozen = errors.New("cellcomplex: builder is frozen")
)

// CellRef addresses a cell: ids are only unique within one dimension.
type CellRef struct {
	Dim int
	ID  string
}

// Ref is shorthand for CellRef{Dim: dim, ID: id}.
func Ref(dim int, id string) CellRef { return CellRef{Dim: dim, ID: id} }

// Compare orders refs by dimension, then id.
func (r CellRef) Compare(other CellRef) int {
	if c := cmp.Compare(r.Dim, other.Dim); c != 0 {
		return c
	}
	return cmp.Compare(r.ID, other.ID)
}

func (r CellRef) String() string { return fmt.Sprintf("%s@%d", r.ID, r.Dim) }

// CompareRefs adapts CellRef.Compare for slices.SortFunc and OpenSet.Sorted.
func CompareRefs(a, b CellRef) int { return a.Compare(b) }

// Cell is one cell of a complex together with its attachment list.
type Cell struct {
	ID          string
	Dim         int
	attachments []CellRef
}

// Ref returns the address of c.
func (c Cell) Ref() CellRef { return CellRef{Dim: c.Dim, ID: c.ID} }

// Attachments returns a copy of the cells c is attached to, sorted.
func (c Cell) Attachments() []CellRef { return slices.Clone(c.attachments) }

// IsAttachedTo reports whether ref is in c's attachment list.
func (c Cell) IsAttachedTo(ref CellRef) bool {
	_, ok := slices.BinarySearchFunc(c.attachments, ref, CompareRefs)
	return ok
}

// Skeleton is the frozen registry of all cells of one dimension.
type Skeleton struct {
	Dim   int
	cells map[string]Cell
}

// Len reports the number of cells in the skeleton.
func (s Skeleton) Len() int { return len(s.cells) }

// Has reports whether id is registered in this skeleton.
func (s Skeleton) Has(id string) bool {
	_, ok := s.cells[id]
	return ok
}

// Cell returns the cell registered under id.
func (s Skeleton) Cell(id string) (Cell, bool) {
	c, ok := s.cells[id]
	return c, ok
}

// IDs returns the cell ids in ascending order.
func (s Skeleton) IDs() []string {
	ids := make([]string, 0, len(s.cells))
	for id := range s.cells {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger routes builder diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("cellcomplex: WithLogger(nil)")
	}
	return func(b *Builder) { b.log = l }
}
