package matching

import (
	"github.com/katalvlaran/bimatch/bipartite"
)

// MinVertexCover computes a minimum vertex cover of g using König's
// theorem: starting from a maximum matching, an alternating BFS from
// the free left vertices (unmatched edges left→right, matched edges
// right→left) marks the reachable set Z; the cover is the unvisited
// left vertices plus the visited right vertices. Its total size equals
// the maximum matching size.
//
// The returned index slices are ascending. The function builds its own
// Matcher and never mutates g.
//
// Complexity: O(E·√V) for the matching, O(V + E) for the cover.
func MinVertexCover(g *bipartite.Graph) (left, right []int) {
	if g == nil {
		return nil, nil
	}
	mm := NewMatcher(g).MaximumMatching()

	visitedL := make([]bool, g.LeftSize)
	visitedR := make([]bool, g.RightSize)
	queue := make([]int, 0, g.LeftSize)
	for u := 0; u < g.LeftSize; u++ {
		if mm.Left[u] == Unmatched {
			visitedL[u] = true
			queue = append(queue, u)
		}
	}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if u >= len(g.Adj) {
			continue
		}
		for _, v := range g.Adj[u] {
			// Follow only unmatched edges left→right.
			if v < 0 || v >= g.RightSize || visitedR[v] || mm.Left[u] == v {
				continue
			}
			visitedR[v] = true
			// Return along the matched edge, if any.
			if w := mm.Right[v]; w != Unmatched && !visitedL[w] {
				visitedL[w] = true
				queue = append(queue, w)
			}
		}
	}

	for u, seen := range visitedL {
		if !seen {
			left = append(left, u)
		}
	}
	for v, seen := range visitedR {
		if seen {
			right = append(right, v)
		}
	}

	return left, right
}
