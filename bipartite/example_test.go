package bipartite_test

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bipartite"
)

// ExampleBuild demonstrates validated construction with the default
// skip-invalid-edges policy: the out-of-range pair (3,0) is dropped,
// everything else lands in the adjacency list in input order.
func ExampleBuild() {
	edges := []bipartite.Edge{
		{Left: 0, Right: 0},
		{Left: 0, Right: 1},
		{Left: 3, Right: 0}, // out of range, silently skipped
		{Left: 1, Right: 1},
	}
	g, err := bipartite.Build(2, 2, edges, bipartite.DefaultOptions())
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	fmt.Println("left:", g.LeftSize, "right:", g.RightSize)
	fmt.Println("adj:", g.Adj)

	// Output:
	// left: 2 right: 2
	// adj: [[0 1] [1]]
}
