// SPDX-License-Identifier: MIT
package section_test

import (
	"cmp"
	"math"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sheaf/section"
	"github.com/katalvlaran/sheaf/topology"
)

func set(points ...int) topology.OpenSet[int] { return topology.NewOpenSet(points...) }

func fixture() section.Section[int, string] {
	return section.MustNew(set(1, 2, 3, 4), map[int]string{1: "a", 2: "b", 3: "c"})
}

func TestNew_RejectsValueOutsideDomain(t *testing.T) {
	_, err := section.New(set(1, 2), map[int]string{1: "a", 9: "z"})
	require.ErrorIs(t, err, section.ErrValueOutsideDomain)

	require.Panics(t, func() {
		section.MustNew(set(1), map[int]string{2: "b"})
	})
}

func TestNew_CopiesInput(t *testing.T) {
	values := map[int]string{1: "a"}
	s := section.MustNew(set(1, 2), values)
	values[1] = "mutated"
	values[2] = "added"

	v, ok := s.Value(1)
	require.True(t, ok)
	require.Equal(t, "a", v)
	_, ok = s.Value(2)
	require.False(t, ok)
	require.Equal(t, 2, s.Domain().Len())
}

func TestFromMap_DomainIsKeys(t *testing.T) {
	s := section.FromMap(map[int]string{5: "e", 6: "f"})
	require.Equal(t, []int{5, 6}, s.Domain().Sorted(cmp.Compare[int]))
	require.Equal(t, 2, s.Len())
}

func TestEmpty(t *testing.T) {
	e := section.Empty[int, string]()
	require.True(t, e.IsEmpty())
	require.Equal(t, 0, e.Len())
	require.NotNil(t, e.Map())
	require.True(t, e.Equal(section.FromMap(map[int]string{})))
}

func TestRestrict_OmitsMissingPoints(t *testing.T) {
	s := fixture()
	r := s.Restrict(set(2, 4, 7))

	// 7 is outside the domain, 4 is in the domain but unassigned.
	require.Equal(t, []int{2, 4}, r.Domain().Sorted(cmp.Compare[int]))
	if diff := gocmp.Diff(map[int]string{2: "b"}, r.Map()); diff != "" {
		t.Errorf("Restrict mismatch (-want +got):\n%s", diff)
	}
}

func TestRestrict_ToOwnDomainIsIdentity(t *testing.T) {
	s := fixture()
	require.True(t, s.Restrict(s.Domain()).Equal(s))
	require.True(t, s.Restrict(s.Domain()).Domain().Equal(s.Domain()))
}

func TestRestrict_IdempotentUnderShrinkage(t *testing.T) {
	s := fixture()
	chains := []struct {
		name   string
		d1, d2 topology.OpenSet[int]
	}{
		{"nested", set(1), set(1, 2)},
		{"equal", set(2, 3), set(2, 3)},
		{"unassigned point", set(4), set(3, 4)},
		{"empty inner", set(), set(1, 2, 3)},
		{"whole", set(1, 2, 3, 4), set(1, 2, 3, 4)},
	}
	for _, tc := range chains {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.d1.IsSubsetOf(tc.d2))
			twice := s.Restrict(tc.d2).Restrict(tc.d1)
			once := s.Restrict(tc.d1)
			require.True(t, twice.Equal(once))
			require.True(t, twice.Domain().Equal(once.Domain()))
		})
	}
}

func TestIsCompatible_Symmetric(t *testing.T) {
	a := section.FromMap(map[int]string{1: "a", 2: "b", 3: "c"})
	b := section.FromMap(map[int]string{2: "b", 3: "x", 4: "d"})

	domains := []topology.OpenSet[int]{set(), set(1), set(2), set(3), set(2, 3), set(1, 2, 3, 4), set(9)}
	for _, d := range domains {
		require.Equal(t, a.IsCompatible(d, b), b.IsCompatible(d, a), "domain %v", d.Sorted(cmp.Compare[int]))
	}
	require.True(t, a.IsCompatible(set(2), b))
	require.False(t, a.IsCompatible(set(3), b))
	// One-sided assignment breaks compatibility.
	require.False(t, a.IsCompatible(set(1), b))
}

func TestDisagreements(t *testing.T) {
	a := section.FromMap(map[int]string{1: "a", 2: "b", 3: "c"})
	b := section.FromMap(map[int]string{2: "b", 3: "x", 4: "d"})

	got := a.Disagreements(set(1, 2, 3), b)
	slices.Sort(got)
	require.Equal(t, []int{1, 3}, got)
	require.Empty(t, a.Disagreements(set(2), b))
}

func TestEqual_NaNValues(t *testing.T) {
	s := section.FromMap(map[int]float64{1: math.NaN(), 2: 1})

	require.True(t, s.Equal(s))
	require.True(t, s.Restrict(s.Domain()).Equal(s))
	require.True(t, s.IsCompatible(s.Domain(), s))
	require.Empty(t, s.Disagreements(s.Domain(), s))

	other := section.FromMap(map[int]float64{1: 0, 2: 1})
	require.False(t, s.IsCompatible(s.Domain(), other))
	require.Equal(t, []int{1}, s.Disagreements(s.Domain(), other))
}

func TestGlue_MergesAndPrefersOtherInsideDomain(t *testing.T) {
	a := section.FromMap(map[int]string{1: "a", 2: "b"})
	b := section.FromMap(map[int]string{2: "B", 3: "c", 4: "d"})

	g := a.Glue(set(2, 3), b)
	require.Equal(t, []int{1, 2, 3}, g.Domain().Sorted(cmp.Compare[int]))
	if diff := gocmp.Diff(map[int]string{1: "a", 2: "B", 3: "c"}, g.Map()); diff != "" {
		t.Errorf("Glue mismatch (-want +got):\n%s", diff)
	}

	// Inputs are untouched.
	require.Equal(t, map[int]string{1: "a", 2: "b"}, a.Map())
	require.Equal(t, 3, b.Len())
}

func TestGlue_KeepsReceiverWhereOtherIsUnassigned(t *testing.T) {
	a := section.FromMap(map[int]string{1: "a"})
	b := section.MustNew(set(1, 2), map[int]string{2: "b"})

	g := a.Glue(b.Domain(), b)
	require.Equal(t, map[int]string{1: "a", 2: "b"}, g.Map())
}

func TestGlue_OntoEmpty(t *testing.T) {
	b := section.FromMap(map[int]string{1: "x"})
	g := section.Empty[int, string]().Glue(b.Domain(), b)
	require.True(t, g.Equal(b))
	require.True(t, g.Domain().Equal(b.Domain()))
}
