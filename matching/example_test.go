package matching_test

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/matching"
)

// ExampleMatcher_MaximumMatching demonstrates assigning three workers
// (left) to three jobs (right) from a compatibility relation.
// Scenario:
//
//   - worker 0 can take jobs 0 or 1
//   - worker 1 can take jobs 1 or 2
//   - worker 2 can take jobs 0 or 2
//
// Every worker gets a job: the matching is perfect.
//
// Complexity: O(E·√V), Memory: O(V).
func ExampleMatcher_MaximumMatching() {
	edges := []bipartite.Edge{
		{Left: 0, Right: 0}, {Left: 0, Right: 1},
		{Left: 1, Right: 1}, {Left: 1, Right: 2},
		{Left: 2, Right: 0}, {Left: 2, Right: 2},
	}
	g, _ := bipartite.Build(3, 3, edges, bipartite.DefaultOptions())

	m := matching.NewMatcher(g)
	mm := m.MaximumMatching()
	fmt.Println("size:", mm.Size)
	fmt.Println("pairs:", mm.Pairs())

	// Output:
	// size: 3
	// pairs: [[0 0] [1 1] [2 2]]
}

// ExampleMatcher_PerfectMatching demonstrates the comma-ok contract:
// a hub graph where every left vertex wants the same right vertex has
// no perfect matching.
func ExampleMatcher_PerfectMatching() {
	edges := []bipartite.Edge{
		{Left: 0, Right: 0}, {Left: 1, Right: 0}, {Left: 2, Right: 0},
	}
	g, _ := bipartite.Build(3, 3, edges, bipartite.DefaultOptions())

	if _, ok := matching.NewMatcher(g).PerfectMatching(); !ok {
		fmt.Println("no perfect matching")
	}

	// Output:
	// no perfect matching
}

// ExampleMinVertexCover demonstrates König's theorem: the cover size
// equals the maximum matching size.
func ExampleMinVertexCover() {
	edges := []bipartite.Edge{
		{Left: 0, Right: 0}, {Left: 1, Right: 0}, {Left: 2, Right: 0},
	}
	g, _ := bipartite.Build(3, 3, edges, bipartite.DefaultOptions())

	left, right := matching.MinVertexCover(g)
	fmt.Println("cover left:", left, "right:", right)

	// Output:
	// cover left: [] right: [0]
}
