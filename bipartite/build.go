package bipartite

import "fmt"

// Build constructs a Graph from partition sizes and an edge list.
//
// Edges are processed in input order: every in-range edge is appended
// to Adj[e.Left], duplicates included. Out-of-range edges follow the
// Options policy — dropped when SkipInvalidEdges is set, otherwise the
// build fails with ErrEdgeRange. With validation disabled, negative
// sizes yield an empty adjacency structure instead of failing.
//
// Steps:
//  1. Validate partition sizes (O(1)), before any edge processing.
//  2. Allocate the adjacency list (O(L)).
//  3. Filter/append each edge (O(E)).
//
// Complexity: O(L + E) time, O(L + E) memory.
func Build(leftSize, rightSize int, edges []Edge, opts Options) (*Graph, error) {
	// 1) Size validation happens strictly before edges are touched.
	if opts.ValidateInput {
		if leftSize < 0 {
			return nil, fmt.Errorf("%w: leftSize = %d", ErrPartitionSize, leftSize)
		}
		if rightSize < 0 {
			return nil, fmt.Errorf("%w: rightSize = %d", ErrPartitionSize, rightSize)
		}
	}

	// 2) With validation off, negative sizes clamp to an empty structure.
	l, r := leftSize, rightSize
	if l < 0 {
		l = 0
	}
	if r < 0 {
		r = 0
	}
	g := &Graph{
		LeftSize:  l,
		RightSize: r,
		Adj:       make([][]int, l),
	}

	// 3) Append in-range edges in input order; apply the skip/fail policy to the rest.
	for _, e := range edges {
		if e.Left >= 0 && e.Left < l && e.Right >= 0 && e.Right < r {
			g.Adj[e.Left] = append(g.Adj[e.Left], e.Right)
			continue
		}
		if opts.ValidateInput && !opts.SkipInvalidEdges {
			return nil, fmt.Errorf("%w: edge (%d,%d) outside [0,%d)×[0,%d)",
				ErrEdgeRange, e.Left, e.Right, leftSize, rightSize)
		}
	}

	return g, nil
}
