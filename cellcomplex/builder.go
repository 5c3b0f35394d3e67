// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Single-owner, dimension-by-dimension assembly of a Complex.
// Policy:
//   - Every rejected call leaves the builder exactly as it was.
//   - No locking: the builder is never shared before Freeze.

package cellcomplex

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Builder assembles a Complex. It is not safe for concurrent use.
type Builder struct {
	maxDim    int
	skeletons []map[string]*Cell // index = dimension
	frozen    bool
	log       *zap.Logger
}

// NewBuilder starts an empty complex of maximum dimension maxDim.
// Returns ErrInvalidDimension if maxDim is negative.
func NewBuilder(maxDim int, opts ...Option) (*Builder, error) {
	if maxDim < 0 {
		return nil, fmt.Errorf("%w: max dimension %d", ErrInvalidDimension, maxDim)
	}
	b := &Builder{
		maxDim:    maxDim,
		skeletons: make([]map[string]*Cell, maxDim+1),
		log:       zap.NewNop(),
	}
	for d := range b.skeletons {
		b.skeletons[d] = make(map[string]*Cell)
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// MaxDim returns the maximum cell dimension the builder accepts.
func (b *Builder) MaxDim() int { return b.maxDim }

// AddCell registers a new cell of dimension dim.
//
// Errors:
//   - ErrFrozen after Freeze.
//   - ErrEmptyCellID for id == "".
//   - ErrInvalidDimension for dim < 0.
//   - ErrDimensionExceeded for dim > MaxDim().
//   - ErrDuplicateCell if id already exists at dim; the existing cell is kept.
func (b *Builder) AddCell(id string, dim int) (CellRef, error) {
	ref := CellRef{Dim: dim, ID: id}
	if err := b.checkNewCell(ref); err != nil {
		b.log.Debug("cell rejected", zap.Stringer("cell", ref), zap.Error(err))
		return CellRef{}, err
	}
	b.skeletons[dim][id] = &Cell{ID: id, Dim: dim}

	return ref, nil
}

func (b *Builder) checkNewCell(ref CellRef) error {
	switch {
	case b.frozen:
		return ErrFrozen
	case ref.ID == "":
		return ErrEmptyCellID
	case ref.Dim < 0:
		return fmt.Errorf("%w: cell %s", ErrInvalidDimension, ref)
	case ref.Dim > b.maxDim:
		return fmt.Errorf("%w: cell %s, max %d", ErrDimensionExceeded, ref, b.maxDim)
	}
	if _, dup := b.skeletons[ref.Dim][ref.ID]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateCell, ref)
	}

	return nil
}

// Attach records a symmetric attachment between left and right: each cell's
// attachment list gains the other. Repeating an attachment is a no-op.
// Returns ErrFrozen or ErrCellNotFound.
func (b *Builder) Attach(left, right CellRef) error {
	if b.frozen {
		return ErrFrozen
	}
	l, err := b.lookup(left)
	if err != nil {
		return err
	}
	r, err := b.lookup(right)
	if err != nil {
		return err
	}
	l.attachments = appendUnique(l.attachments, right)
	r.attachments = appendUnique(r.attachments, left)

	return nil
}

func (b *Builder) lookup(ref CellRef) (*Cell, error) {
	if ref.Dim < 0 || ref.Dim > b.maxDim {
		return nil, fmt.Errorf("%w: %s", ErrCellNotFound, ref)
	}
	cell, ok := b.skeletons[ref.Dim][ref.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCellNotFound, ref)
	}

	return cell, nil
}

func appendUnique(refs []CellRef, ref CellRef) []CellRef {
	if slices.Contains(refs, ref) {
		return refs
	}
	return append(refs, ref)
}

// Freeze returns the immutable Complex and retires the builder.
// A second call returns ErrFrozen.
func (b *Builder) Freeze() (*Complex, error) {
	if b.frozen {
		return nil, ErrFrozen
	}
	b.frozen = true
	c := newComplex(b.maxDim, b.skeletons)
	b.skeletons = nil
	b.log.Debug("complex frozen", zap.Int("max_dim", c.maxDim), zap.Int("cells", c.CellCount()))

	return c, nil
}
