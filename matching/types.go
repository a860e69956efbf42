package matching

// Unmatched is the reserved sentinel marking a vertex with no partner
// in Matching.Left / Matching.Right. It is the single "absent" value
// at this module's boundary; no other negative value ever appears.
const Unmatched = -1

// infinity marks a left vertex not yet reached by the current layering
// phase. Any value larger than every possible path length works; the
// max int keeps comparisons branch-free.
const infinity = int(^uint(0) >> 1)

// Matching is an immutable snapshot of a computed matching.
//
// Left[u] is the right vertex matched to left vertex u, or Unmatched.
// Right[v] is the inverse mapping. Size counts matched pairs; for
// every matched pair, Right[Left[u]] == u holds.
//
// Snapshots are deep copies: mutating one never affects the engine
// that produced it nor any other snapshot.
type Matching struct {
	Left  []int
	Right []int
	Size  int
}

// Pairs returns the matched (left, right) pairs in ascending left order.
func (m Matching) Pairs() [][2]int {
	pairs := make([][2]int, 0, m.Size)
	for u, v := range m.Left {
		if v != Unmatched {
			pairs = append(pairs, [2]int{u, v})
		}
	}

	return pairs
}
