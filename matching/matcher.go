package matching

import (
	"github.com/katalvlaran/bimatch/bipartite"
)

// Matcher runs Hopcroft–Karp over one bipartite.Graph.
//
// The graph is held by live reference; the match and distance arrays
// are owned exclusively by this instance and persist across calls, so
// repeated MaximumMatching calls resume from the current state rather
// than restarting. A Matcher is not safe for concurrent use.
type Matcher struct {
	graph      *bipartite.Graph
	matchLeft  []int // matchLeft[u] = matched right vertex, or Unmatched
	matchRight []int // matchRight[v] = matched left vertex, or Unmatched
	dist       []int // layer distances for left vertices plus the sink slot
	sink       int   // dist index of the virtual "free right vertex" sink
}

// NewMatcher constructs an engine over g. It never fails: a nil graph
// behaves as the empty graph.
func NewMatcher(g *bipartite.Graph) *Matcher {
	if g == nil {
		g = &bipartite.Graph{}
	}
	m := &Matcher{
		graph:      g,
		matchLeft:  make([]int, g.LeftSize),
		matchRight: make([]int, g.RightSize),
		dist:       make([]int, g.LeftSize+1),
		sink:       g.LeftSize,
	}
	for i := range m.matchLeft {
		m.matchLeft[i] = Unmatched
	}
	for i := range m.matchRight {
		m.matchRight[i] = Unmatched
	}

	return m
}

// MaximumMatching computes a maximum-cardinality matching and returns
// an independent snapshot of it.
//
// Phases alternate until no augmenting path remains:
//  1. layer: BFS from every free left vertex builds shortest-path
//     distances toward the virtual sink (any free right vertex).
//  2. augment: DFS along the layered graph flips one shortest
//     augmenting path per free left vertex where possible.
//
// Calling it again on an unmutated graph is idempotent (the layering
// finds no reachable sink and the stored matching is re-snapshotted);
// edges appended to the graph's adjacency lists since the last call
// are seen live and may grow the result.
//
// Complexity: O(E·√V) time, O(V) additional memory.
func (m *Matcher) MaximumMatching() Matching {
	for m.layer() {
		for u := 0; u < m.graph.LeftSize; u++ {
			if m.matchLeft[u] == Unmatched {
				m.augment(u)
			}
		}
	}

	return m.snapshot()
}

// PerfectMatching reports the maximum matching when it saturates both
// partitions; ok is false (with a zero Matching) otherwise.
func (m *Matcher) PerfectMatching() (Matching, bool) {
	mm := m.MaximumMatching()
	if mm.Size == m.graph.LeftSize && mm.Size == m.graph.RightSize {
		return mm, true
	}

	return Matching{}, false
}

// neighbors returns u's live adjacency slice, or nil when the graph's
// adjacency structure no longer covers u.
func (m *Matcher) neighbors(u int) []int {
	if u >= len(m.graph.Adj) {
		return nil
	}

	return m.graph.Adj[u]
}

// rightTarget maps a right vertex to the dist index reached through it:
// the left vertex currently matched to v, or the sink when v is free.
func (m *Matcher) rightTarget(v int) int {
	if w := m.matchRight[v]; w != Unmatched {
		return w
	}

	return m.sink
}

// layer runs the BFS layering phase. Free left vertices start at
// distance 0; matched ones at infinity. Reports whether the sink
// became reachable, i.e. at least one shortest augmenting path exists.
func (m *Matcher) layer() bool {
	queue := make([]int, 0, m.graph.LeftSize)
	for u := 0; u < m.graph.LeftSize; u++ {
		if m.matchLeft[u] == Unmatched {
			m.dist[u] = 0
			queue = append(queue, u)
		} else {
			m.dist[u] = infinity
		}
	}
	m.dist[m.sink] = infinity

	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if m.dist[u] >= m.dist[m.sink] {
			continue
		}
		for _, v := range m.neighbors(u) {
			if v < 0 || v >= m.graph.RightSize {
				continue // stale entry from external mutation
			}
			w := m.rightTarget(v)
			if m.dist[w] == infinity {
				m.dist[w] = m.dist[u] + 1
				if w != m.sink {
					queue = append(queue, w)
				}
			}
		}
	}

	return m.dist[m.sink] != infinity
}

// frame is one step of the explicit augmentation stack: a left vertex
// and a cursor into its adjacency list so scans resume where they left off.
type frame struct {
	u    int
	next int
}

// augment tries to extend a shortest alternating path from the free
// left vertex root through the layered graph, using an explicit stack
// instead of recursion so long paths cannot exhaust the call stack.
// On success every edge on the path is flipped into the matching.
// On dead ends the vertex's distance is set to infinity, pruning it
// from the rest of the current phase.
func (m *Matcher) augment(root int) bool {
	stack := []frame{{u: root}}
	// chosen[i] is the right vertex picked when descending from stack[i].
	chosen := make([]int, 0, 8)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		adj := m.neighbors(top.u)
		descended := false
		for top.next < len(adj) {
			v := adj[top.next]
			top.next++
			if v < 0 || v >= m.graph.RightSize {
				continue // stale entry from external mutation
			}
			w := m.rightTarget(v)
			if m.dist[w] != m.dist[top.u]+1 {
				continue
			}
			if w == m.sink {
				// Free right vertex terminates the path: flip it in.
				chosen = append(chosen, v)
				for i := range stack {
					m.matchRight[chosen[i]] = stack[i].u
					m.matchLeft[stack[i].u] = chosen[i]
				}

				return true
			}
			chosen = append(chosen, v)
			stack = append(stack, frame{u: w})
			descended = true

			break
		}
		if descended {
			continue
		}
		// Dead end: prune top.u for this phase and backtrack.
		m.dist[top.u] = infinity
		stack = stack[:len(stack)-1]
		if len(chosen) > 0 {
			chosen = chosen[:len(chosen)-1]
		}
	}

	return false
}

// snapshot deep-copies the current match arrays into a Matching value.
func (m *Matcher) snapshot() Matching {
	left := append([]int(nil), m.matchLeft...)
	right := append([]int(nil), m.matchRight...)
	size := 0
	for _, v := range left {
		if v != Unmatched {
			size++
		}
	}

	return Matching{Left: left, Right: right, Size: size}
}
