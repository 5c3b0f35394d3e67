// SPDX-License-Identifier: MIT
//
// File: complex.go
// Role: Immutable cell complex implementing topology.Space[CellRef].
// Determinism:
//   - Skeleton IDs and attachment lists are sorted.

package cellcomplex

import (
	"slices"

	"github.com/katalvlaran/sheaf/topology"
)

// Complex is a frozen cell complex. Safe for concurrent readers.
type Complex struct {
	maxDim    int
	skeletons []Skeleton
	points    topology.OpenSet[CellRef]
	// attachedBy[r] lists every cell whose attachment list contains r.
	attachedBy map[CellRef][]CellRef
}

var _ topology.Space[CellRef] = (*Complex)(nil)

func newComplex(maxDim int, building []map[string]*Cell) *Complex {
	c := &Complex{
		maxDim:     maxDim,
		skeletons:  make([]Skeleton, len(building)),
		attachedBy: make(map[CellRef][]CellRef),
	}
	var refs []CellRef
	for d, cells := range building {
		sk := Skeleton{Dim: d, cells: make(map[string]Cell, len(cells))}
		for id, cell := range cells {
			att := slices.Clone(cell.attachments)
			slices.SortFunc(att, CompareRefs)
			sk.cells[id] = Cell{ID: cell.ID, Dim: cell.Dim, attachments: att}
			refs = append(refs, cell.Ref())
			for _, a := range att {
				c.attachedBy[a] = append(c.attachedBy[a], cell.Ref())
			}
		}
		c.skeletons[d] = sk
	}
	for r := range c.attachedBy {
		slices.SortFunc(c.attachedBy[r], CompareRefs)
	}
	c.points = topology.NewOpenSet(refs...)

	return c
}

// MaxDim returns the maximum dimension N; the complex owns skeletons 0..N.
func (c *Complex) MaxDim() int { return c.maxDim }

// CellCount returns the number of cells across all skeletons.
func (c *Complex) CellCount() int { return c.points.Len() }

// Skeleton returns the skeleton of dimension dim.
func (c *Complex) Skeleton(dim int) (Skeleton, bool) {
	if dim < 0 || dim > c.maxDim {
		return Skeleton{}, false
	}
	return c.skeletons[dim], true
}

// Cell returns the cell addressed by ref.
func (c *Complex) Cell(ref CellRef) (Cell, bool) {
	sk, ok := c.Skeleton(ref.Dim)
	if !ok {
		return Cell{}, false
	}
	return sk.Cell(ref.ID)
}

// Attachments returns the sorted attachment list of ref, or nil if unknown.
func (c *Complex) Attachments(ref CellRef) []CellRef {
	cell, ok := c.Cell(ref)
	if !ok {
		return nil
	}
	return cell.Attachments()
}

// Points returns every cell of the complex.
func (c *Complex) Points() topology.OpenSet[CellRef] { return c.points }

// Neighborhood returns every cell, of any dimension, whose attachment list
// contains ref.
func (c *Complex) Neighborhood(ref CellRef) topology.OpenSet[CellRef] {
	return topology.NewOpenSet(c.attachedBy[ref]...)
}

// IsOpen applies the per-skeleton test: for each skeleton, set ∩ skeleton
// must be empty or equal to set. The set is open iff every skeleton passes.
func (c *Complex) IsOpen(set topology.OpenSet[CellRef]) bool {
	for _, sk := range c.skeletons {
		inSkeleton := 0
		for r := range set.All() {
			if r.Dim == sk.Dim && sk.Has(r.ID) {
				inSkeleton++
			}
		}
		if inSkeleton != 0 && inSkeleton != set.Len() {
			return false
		}
	}

	return true
}
