// SPDX-License-Identifier: MIT
package cellcomplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	cc "github.com/katalvlaran/sheaf/cellcomplex"
	"github.com/katalvlaran/sheaf/topology"
)

// twoSphere builds the 2-sphere with two cells per dimension:
// e1, e2 attached to v1 and v2; f1, f2 attached to e1 and e2.
func twoSphere(t *testing.T) *cc.Complex {
	t.Helper()
	b, err := cc.NewBuilder(2)
	require.NoError(t, err)
	for _, c := range []struct {
		id  string
		dim int
	}{{"v1", 0}, {"v2", 0}, {"e1", 1}, {"e2", 1}, {"f1", 2}, {"f2", 2}} {
		_, err := b.AddCell(c.id, c.dim)
		require.NoError(t, err)
	}
	for _, e := range []string{"e1", "e2"} {
		require.NoError(t, b.Attach(cc.Ref(1, e), cc.Ref(0, "v1")))
		require.NoError(t, b.Attach(cc.Ref(1, e), cc.Ref(0, "v2")))
	}
	for _, f := range []string{"f1", "f2"} {
		require.NoError(t, b.Attach(cc.Ref(2, f), cc.Ref(1, "e1")))
		require.NoError(t, b.Attach(cc.Ref(2, f), cc.Ref(1, "e2")))
	}
	c, err := b.Freeze()
	require.NoError(t, err)
	return c
}

func refs(rs ...cc.CellRef) topology.OpenSet[cc.CellRef] { return topology.NewOpenSet(rs...) }

func TestNewBuilder_NegativeDimension(t *testing.T) {
	_, err := cc.NewBuilder(-1)
	require.ErrorIs(t, err, cc.ErrInvalidDimension)
}

func TestAddCell_DimensionExceededLeavesComplexUnchanged(t *testing.T) {
	b, err := cc.NewBuilder(1)
	require.NoError(t, err)
	_, err = b.AddCell("v", 0)
	require.NoError(t, err)

	_, err = b.AddCell("f", 2)
	require.ErrorIs(t, err, cc.ErrDimensionExceeded)

	c, err := b.Freeze()
	require.NoError(t, err)
	require.Equal(t, 1, c.CellCount())
	_, ok := c.Skeleton(2)
	require.False(t, ok)
	_, ok = c.Cell(cc.Ref(2, "f"))
	require.False(t, ok)
}

func TestAddCell_Rejections(t *testing.T) {
	b, err := cc.NewBuilder(1)
	require.NoError(t, err)
	_, err = b.AddCell("v", 0)
	require.NoError(t, err)

	_, err = b.AddCell("v", 0)
	require.ErrorIs(t, err, cc.ErrDuplicateCell)
	_, err = b.AddCell("", 0)
	require.ErrorIs(t, err, cc.ErrEmptyCellID)
	_, err = b.AddCell("x", -1)
	require.ErrorIs(t, err, cc.ErrInvalidDimension)

	// Same id in another dimension is a different cell.
	ref, err := b.AddCell("v", 1)
	require.NoError(t, err)
	require.Equal(t, cc.Ref(1, "v"), ref)

	c, err := b.Freeze()
	require.NoError(t, err)
	require.Equal(t, 2, c.CellCount())
}

func TestAttach_SymmetricAndIdempotent(t *testing.T) {
	b, err := cc.NewBuilder(1)
	require.NoError(t, err)
	v, _ := b.AddCell("v", 0)
	e, _ := b.AddCell("e", 1)
	require.NoError(t, b.Attach(e, v))
	require.NoError(t, b.Attach(v, e))
	require.ErrorIs(t, b.Attach(e, cc.Ref(0, "ghost")), cc.ErrCellNotFound)
	require.ErrorIs(t, b.Attach(cc.Ref(7, "x"), v), cc.ErrCellNotFound)

	c, err := b.Freeze()
	require.NoError(t, err)
	require.Equal(t, []cc.CellRef{e}, c.Attachments(v))
	require.Equal(t, []cc.CellRef{v}, c.Attachments(e))
	require.Nil(t, c.Attachments(cc.Ref(0, "ghost")))
}

func TestFreeze_RetiresBuilder(t *testing.T) {
	b, err := cc.NewBuilder(0)
	require.NoError(t, err)
	v, _ := b.AddCell("v", 0)
	_, err = b.Freeze()
	require.NoError(t, err)

	_, err = b.Freeze()
	require.ErrorIs(t, err, cc.ErrFrozen)
	_, err = b.AddCell("w", 0)
	require.ErrorIs(t, err, cc.ErrFrozen)
	require.ErrorIs(t, b.Attach(v, v), cc.ErrFrozen)
}

func TestTwoSphere_Structure(t *testing.T) {
	c := twoSphere(t)
	require.Equal(t, 2, c.MaxDim())
	require.Equal(t, 6, c.CellCount())
	for d := 0; d <= 2; d++ {
		sk, ok := c.Skeleton(d)
		require.True(t, ok)
		require.Equal(t, 2, sk.Len())
	}
	sk, _ := c.Skeleton(1)
	require.Equal(t, []string{"e1", "e2"}, sk.IDs())

	cell, ok := c.Cell(cc.Ref(1, "e1"))
	require.True(t, ok)
	require.True(t, cell.IsAttachedTo(cc.Ref(2, "f1")))
	require.True(t, cell.IsAttachedTo(cc.Ref(0, "v2")))
	require.False(t, cell.IsAttachedTo(cc.Ref(1, "e2")))
}

func TestTwoSphere_Neighborhood(t *testing.T) {
	c := twoSphere(t)
	require.Equal(t,
		[]cc.CellRef{cc.Ref(1, "e1"), cc.Ref(1, "e2")},
		c.Neighborhood(cc.Ref(0, "v1")).Sorted(cc.CompareRefs))
	require.Equal(t,
		[]cc.CellRef{cc.Ref(0, "v1"), cc.Ref(0, "v2"), cc.Ref(2, "f1"), cc.Ref(2, "f2")},
		c.Neighborhood(cc.Ref(1, "e2")).Sorted(cc.CompareRefs))
	require.True(t, c.Neighborhood(cc.Ref(0, "nope")).IsEmpty())
}

func TestIsOpen_PerSkeleton(t *testing.T) {
	c := twoSphere(t)
	cases := []struct {
		name string
		set  topology.OpenSet[cc.CellRef]
		want bool
	}{
		{"empty", refs(), true},
		{"single vertex", refs(cc.Ref(0, "v1")), true},
		{"whole 1-skeleton", refs(cc.Ref(1, "e1"), cc.Ref(1, "e2")), true},
		{"edge with its vertex", refs(cc.Ref(1, "e1"), cc.Ref(0, "v1")), false},
		{"face star", refs(cc.Ref(2, "f1"), cc.Ref(1, "e1"), cc.Ref(1, "e2")), false},
		{"everything", c.Points(), false},
		{"known plus unknown", refs(cc.Ref(0, "v1"), cc.Ref(0, "zz")), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, c.IsOpen(tc.set))
		})
	}
}

func TestWithLogger_RecordsRejections(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b, err := cc.NewBuilder(0, cc.WithLogger(zap.New(core)))
	require.NoError(t, err)
	_, err = b.AddCell("e", 1)
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("cell rejected").Len())

	require.Panics(t, func() { cc.WithLogger(nil) })
}

func TestCellRef_Ordering(t *testing.T) {
	require.Negative(t, cc.Ref(0, "z").Compare(cc.Ref(1, "a")))
	require.Negative(t, cc.Ref(1, "a").Compare(cc.Ref(1, "b")))
	require.Zero(t, cc.Ref(2, "x").Compare(cc.Ref(2, "x")))
	require.Equal(t, "e1@1", cc.Ref(1, "e1").String())
}
