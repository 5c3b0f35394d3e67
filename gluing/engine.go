// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Pairwise compatibility check and left fold over a cover.
// Policy:
//   - Inputs are read-only; the result owns fresh storage.
//   - Patch order is significant only for error indices and fold order.

package gluing

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/sheaf/section"
	"github.com/katalvlaran/sheaf/topology"
)

// Patch is one (domain, section) entry of a cover.
type Patch[P, V comparable] struct {
	Domain  topology.OpenSet[P]
	Section section.Section[P, V]
}

// PatchOf uses the section's own domain as the patch domain.
func PatchOf[P, V comparable](s section.Section[P, V]) Patch[P, V] {
	return Patch[P, V]{Domain: s.Domain(), Section: s}
}

// Cover is an ordered finite family of patches.
type Cover[P, V comparable] []Patch[P, V]

// Engine glues covers over one space. An Engine holds no mutable state and
// may be shared between goroutines.
type Engine[P, V comparable] struct {
	space topology.Space[P]
	cfg   config
}

// New returns an engine for space. A nil space, including a typed nil such as
// (*cellcomplex.Complex)(nil), disables the openness check; otherwise every
// patch domain must satisfy space.IsOpen.
func New[P, V comparable](space topology.Space[P], opts ...Option) *Engine[P, V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if isNil(space) {
		space = nil
	}

	return &Engine[P, V]{space: space, cfg: cfg}
}

// Glue validates cover pairwise and folds it into one global section.
//
// Returns:
//   - section.Empty and nil for an empty cover.
//   - the only section, unchanged, for a one-patch cover.
//   - *IncompatibleCoverError for the first disagreeing pair (i < j).
//   - ErrDomainNotOpen / ErrRestrictionMismatch, wrapped with the patch index.
func (e *Engine[P, V]) Glue(cover Cover[P, V]) (section.Section[P, V], error) {
	log := e.cfg.log.With(zap.Int("patches", len(cover)))
	log.Debug("gluing cover")

	if err := e.checkOpen(cover); err != nil {
		e.cfg.metrics.observe(len(cover), OutcomeNotOpen)
		log.Info("cover rejected", zap.Error(err))
		return section.Section[P, V]{}, err
	}
	if len(cover) == 0 {
		e.cfg.metrics.observe(0, OutcomeEmpty)
		return section.Empty[P, V](), nil
	}
	if err := checkPairs(cover); err != nil {
		e.cfg.metrics.observe(len(cover), OutcomeIncompatible)
		log.Info("incompatible cover", zap.Int("i", err.I), zap.Int("j", err.J), zap.Strings("points", err.Points))
		return section.Section[P, V]{}, err
	}

	global := cover[0].Section
	for _, p := range cover[1:] {
		global = global.Glue(p.Domain, p.Section)
	}

	if e.cfg.restrictionCheck {
		if err := checkRestrictions(global, cover); err != nil {
			e.cfg.metrics.observe(len(cover), OutcomeMismatch)
			log.Info("glued section rejected", zap.Error(err))
			return section.Section[P, V]{}, err
		}
	}
	e.cfg.metrics.observe(len(cover), OutcomeGlued)
	log.Debug("cover glued", zap.Int("points", global.Len()))

	return global, nil
}

func (e *Engine[P, V]) checkOpen(cover Cover[P, V]) error {
	if e.space == nil {
		return nil
	}
	for k, p := range cover {
		if !e.space.IsOpen(p.Domain) {
			return fmt.Errorf("%w: patch %d", ErrDomainNotOpen, k)
		}
	}

	return nil
}

func checkPairs[P, V comparable](cover Cover[P, V]) *IncompatibleCoverError {
	for i := 0; i < len(cover); i++ {
		for j := i + 1; j < len(cover); j++ {
			overlap := cover[i].Domain.Intersect(cover[j].Domain)
			if overlap.IsEmpty() {
				continue
			}
			if cover[i].Section.IsCompatible(overlap, cover[j].Section) {
				continue
			}
			return &IncompatibleCoverError{
				I:      i,
				J:      j,
				Points: formatPoints(cover[i].Section.Disagreements(overlap, cover[j].Section)),
			}
		}
	}

	return nil
}

func checkRestrictions[P, V comparable](global section.Section[P, V], cover Cover[P, V]) error {
	for k, p := range cover {
		if !global.IsCompatible(p.Domain, p.Section) {
			return fmt.Errorf("%w: patch %d", ErrRestrictionMismatch, k)
		}
	}

	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

func formatPoints[P comparable](points []P) []string {
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, comparePoints[P])
	out := make([]string, len(sorted))
	for i, p := range sorted {
		out[i] = fmt.Sprint(p)
	}

	return out
}

// comparePoints orders points by a Compare method when P has one, by numeric
// or string value for basic kinds, and by formatted text otherwise.
func comparePoints[P comparable](a, b P) int {
	if c, ok := any(a).(interface{ Compare(P) int }); ok {
		return c.Compare(b)
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() && va.Kind() == vb.Kind() {
		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(va.Int(), vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(va.Uint(), vb.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(va.Float(), vb.Float())
		case reflect.String:
			return cmp.Compare(va.String(), vb.String())
		}
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// Glue folds cover with a default engine: no space, no logging, no metrics.
func Glue[P, V comparable](cover Cover[P, V]) (section.Section[P, V], error) {
	return New[P, V](nil).Glue(cover)
}
