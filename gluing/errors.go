// SPDX-License-Identifier: MIT

package gluing

import (
	"errors"
	"fmt"
)

// Sentinel errors. Branch on them with errors.Is.
var (
	// ErrIncompatibleCover indicates two patches disagree on their overlap.
	ErrIncompatibleCover = errors.New("gluing: incompatible cover")

	// ErrDomainNotOpen indicates a patch domain the space does not consider open.
	ErrDomainNotOpen = errors.New("gluing: patch domain is not open")

	// ErrRestrictionMismatch indicates the glued section differs from a patch on its domain.
	ErrRestrictionMismatch = errors.New("gluing: glued section does not restrict to patch")
)

// IncompatibleCoverError names the first pair of patches, by cover index,
// whose sections disagree on their overlap. Recoverable: the caller may
// adjust the cover and retry.
type IncompatibleCoverError struct {
	I, J int
	// Points lists the disagreeing overlap points in ascending point order
	// (numeric for integer points), formatted with fmt.Sprint.
	Points []string
}

func (e *IncompatibleCoverError) Error() string {
	return fmt.Sprintf("gluing: incompatible cover: patches %d and %d disagree at %v", e.I, e.J, e.Points)
}

// Unwrap lets errors.Is match ErrIncompatibleCover.
func (e *IncompatibleCoverError) Unwrap() error { return ErrIncompatibleCover }
