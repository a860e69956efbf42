package bipartite

// Edge is a raw (left, right) index pair supplied to Build.
type Edge struct {
	Left  int // index into the left partition, 0..LeftSize-1
	Right int // index into the right partition, 0..RightSize-1
}

// Graph is an adjacency-list bipartite graph produced by Build.
//
// LeftSize and RightSize are fixed at construction. Adj always has
// length LeftSize; Adj[u] lists the right neighbors of left vertex u
// in input order, duplicates preserved.
//
// Aliasing rules: Build never copies Adj defensively and neither does
// the matching engine — both hand the caller a live reference. A
// caller may append in-range edges to Adj between matching queries and
// the next query will see them. Entries pushed out of range are
// skipped by consumers rather than rejected. Mutating Adj while
// another goroutine reads the same Graph is the caller's race to
// avoid; the package provides no synchronization of its own.
type Graph struct {
	LeftSize  int
	RightSize int
	Adj       [][]int
}

// AddEdge appends v to u's adjacency list without validation.
// It is a convenience for post-construction mutation; out-of-range
// values are tolerated (and ignored) by the matching engine.
func (g *Graph) AddEdge(u, v int) {
	if u < 0 || u >= g.LeftSize {
		return
	}
	g.Adj[u] = append(g.Adj[u], v)
}

// Options controls Build validation behavior.
//   - ValidateInput: when false, size constraints are not checked at all.
//   - SkipInvalidEdges: when an edge falls outside [0,LeftSize)×[0,RightSize),
//     drop it silently (true) or fail with ErrEdgeRange (false).
//     Consulted only when ValidateInput is true.
type Options struct {
	ValidateInput    bool
	SkipInvalidEdges bool
}

// DefaultOptions returns production-safe defaults:
// validation on, out-of-range edges silently dropped.
func DefaultOptions() Options {
	return Options{
		ValidateInput:    true,
		SkipInvalidEdges: true,
	}
}
