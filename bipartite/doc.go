// Package bipartite builds validated adjacency-list representations of
// bipartite graphs, the input type consumed by the matching engine.
//
// What:
//
//   - Graph holds two partition sizes and an adjacency list Adj, where
//     Adj[u] lists every right vertex reachable from left vertex u.
//   - Build validates sizes and edges per Options, preserving input
//     order and duplicate (parallel) edges in the adjacency list.
//   - The adjacency list is held and handed out by reference: callers
//     may append edges after construction, and consumers always see
//     the live structure.
//
// Why:
//
//   - Assignment problems: jobs↔workers, tasks↔machines.
//   - Scheduling: slots↔requests with a compatibility relation.
//   - Deduplication: candidate pairs across two collections.
//
// Complexity:
//
//   - Build: O(L + E), Memory: O(L + E)    (L = leftSize, E = edges).
//
// Options:
//
//   - Options.ValidateInput: reject negative partition sizes (default true).
//   - Options.SkipInvalidEdges: silently drop out-of-range edges rather
//     than failing (default true; consulted only when ValidateInput is set).
//
// Errors:
//
//   - ErrPartitionSize: a partition size is negative while validation is on.
//   - ErrEdgeRange: an edge index is out of range while validation is on
//     and SkipInvalidEdges is off.
//
// See: matching/ for the Hopcroft–Karp engine consuming these graphs.
package bipartite
