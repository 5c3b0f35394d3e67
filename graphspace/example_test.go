package graphspace_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/sheaf/graphspace"
	"github.com/katalvlaran/sheaf/topology"
)

// ExampleSpace_Distance builds the path 1–2–3–4 with an isolated vertex 5.
func ExampleSpace_Distance() {
	g := graphspace.MustNew(
		[]int{1, 2, 3, 4, 5},
		[]graphspace.Edge[int]{graphspace.E(1, 2), graphspace.E(3, 2), graphspace.E(3, 4)},
	)
	fmt.Println(g.Distance(1, 4))
	fmt.Println(g.Distance(1, 5) == topology.Unreachable)
	fmt.Println(g.Neighborhood(2).Sorted(cmp.Compare[int]))
	// Output:
	// 3
	// true
	// [1 3]
}
