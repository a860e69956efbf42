// Package matching computes maximum-cardinality matchings on bipartite
// graphs using the Hopcroft–Karp algorithm, plus derived structures
// (perfect matchings, minimum vertex covers via König's theorem).
//
// What:
//
//   - Matcher wraps a *bipartite.Graph and owns the mutable search
//     state (current matching, per-vertex layer distances).
//   - MaximumMatching alternates BFS layering and DFS augmentation
//     phases until no augmenting path remains, returning a Matching
//     snapshot.
//   - PerfectMatching reports whether the maximum matching saturates
//     both partitions.
//   - MinVertexCover derives a König minimum vertex cover from a
//     maximum matching.
//
// Why:
//
//   - Optimal one-to-one assignment from a compatibility relation.
//   - Chain covers, vertex covers, and other König-style consumers.
//
// Complexity:
//
//   - MaximumMatching: O(E·√V) — each layering phase strictly increases
//     the shortest augmenting-path length, so at most O(√V) phases run.
//   - PerfectMatching: same (delegates to MaximumMatching).
//   - MinVertexCover: O(V + E) on top of the matching.
//
// Aliasing:
//
//   - A Matcher holds the Graph by live reference. Appending edges to
//     the graph's adjacency lists between queries is supported: the
//     next MaximumMatching call sees them and may grow the matching.
//     Out-of-range adjacency entries are skipped, never raised.
//   - Matching snapshots are deep copies; callers cannot corrupt
//     engine state through them.
//   - One Matcher is not safe for concurrent use. Independent Matchers
//     over one shared Graph are safe as long as no goroutine mutates
//     the adjacency lists while another reads them.
//
// Errors:
//
//   - The engine itself never fails on a built graph; the only
//     caller-surfaced failures live in package bipartite at build time.
//   - Verify returns a descriptive error for inconsistent snapshots,
//     intended for tests and certification.
package matching
