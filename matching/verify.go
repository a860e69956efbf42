package matching

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bipartite"
)

// Verify checks that m is a valid matching over g: the two mappings
// agree with one another, every matched pair is an actual graph edge,
// and Size counts the matched pairs. It returns nil for a consistent
// snapshot and a descriptive error otherwise.
//
// Complexity: O(V + E).
func Verify(g *bipartite.Graph, m Matching) error {
	if len(m.Left) != g.LeftSize || len(m.Right) != g.RightSize {
		return fmt.Errorf("matching: snapshot shape %dx%d does not fit graph %dx%d",
			len(m.Left), len(m.Right), g.LeftSize, g.RightSize)
	}

	size := 0
	for u, v := range m.Left {
		if v == Unmatched {
			continue
		}
		size++
		if v < 0 || v >= g.RightSize {
			return fmt.Errorf("matching: left %d matched to out-of-range right %d", u, v)
		}
		if m.Right[v] != u {
			return fmt.Errorf("matching: inconsistent pairing: left %d->right %d but right %d->left %d",
				u, v, v, m.Right[v])
		}
		if !hasEdge(g, u, v) {
			return fmt.Errorf("matching: pair (%d,%d) is not an edge of the graph", u, v)
		}
	}
	for v, u := range m.Right {
		if u == Unmatched {
			continue
		}
		if u < 0 || u >= g.LeftSize || m.Left[u] != v {
			return fmt.Errorf("matching: inconsistent pairing: right %d->left %d but left does not agree", v, u)
		}
	}
	if size != m.Size {
		return fmt.Errorf("matching: Size = %d but %d pairs are matched", m.Size, size)
	}

	return nil
}

func hasEdge(g *bipartite.Graph, u, v int) bool {
	if u < 0 || u >= len(g.Adj) {
		return false
	}
	for _, w := range g.Adj[u] {
		if w == v {
			return true
		}
	}

	return false
}
