package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/matching"
)

// requireCovers asserts every edge of g touches the cover.
func requireCovers(t *testing.T, g *bipartite.Graph, left, right []int) {
	t.Helper()
	inLeft := make(map[int]bool, len(left))
	for _, u := range left {
		inLeft[u] = true
	}
	inRight := make(map[int]bool, len(right))
	for _, v := range right {
		inRight[v] = true
	}
	for u, nbrs := range g.Adj {
		for _, v := range nbrs {
			if v < 0 || v >= g.RightSize {
				continue
			}
			require.True(t, inLeft[u] || inRight[v], "edge (%d,%d) uncovered", u, v)
		}
	}
}

// TestMinVertexCoverStar verifies the star graph is covered by its
// single hub right vertex.
func TestMinVertexCoverStar(t *testing.T) {
	g := mustBuild(t, 3, 3, [][2]int{{0, 0}, {1, 0}, {2, 0}})
	left, right := matching.MinVertexCover(g)
	require.Empty(t, left)
	require.Equal(t, []int{0}, right)
	requireCovers(t, g, left, right)
}

// TestMinVertexCoverKoenig verifies |cover| equals the maximum
// matching size (König's theorem) on a mixed graph.
func TestMinVertexCoverKoenig(t *testing.T) {
	g := mustBuild(t, 4, 4, [][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}, {3, 2}})
	mm := matching.NewMatcher(g).MaximumMatching()

	left, right := matching.MinVertexCover(g)
	require.Equal(t, mm.Size, len(left)+len(right))
	requireCovers(t, g, left, right)
}

// TestMinVertexCoverEmpty verifies the edgeless graph needs no cover.
func TestMinVertexCoverEmpty(t *testing.T) {
	g := mustBuild(t, 3, 2, nil)
	left, right := matching.MinVertexCover(g)
	require.Empty(t, left)
	require.Empty(t, right)

	left, right = matching.MinVertexCover(nil)
	require.Nil(t, left)
	require.Nil(t, right)
}

// TestMinVertexCoverPerfect verifies a perfect matching forces a cover
// of full matching size on one side or a mix totalling it.
func TestMinVertexCoverPerfect(t *testing.T) {
	g := mustBuild(t, 3, 3, [][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 0}, {2, 2}})
	left, right := matching.MinVertexCover(g)
	require.Equal(t, 3, len(left)+len(right))
	requireCovers(t, g, left, right)
}

// TestMinVertexCoverDoesNotMutate verifies the cover computation leaves
// the caller's graph untouched.
func TestMinVertexCoverDoesNotMutate(t *testing.T) {
	g := mustBuild(t, 2, 2, [][2]int{{0, 0}, {1, 1}})
	before := [][]int{{0}, {1}}
	_, _ = matching.MinVertexCover(g)
	require.Equal(t, before, g.Adj)
}
