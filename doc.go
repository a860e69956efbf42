// Package bimatch is your in-memory toolkit for building bipartite graphs
// and computing maximum, perfect, and covering structures over them.
//
// 🚀 What is bimatch?
//
//	A small, focused library that brings together:
//		• Graph construction: validated adjacency-list bipartite graphs
//		• Maximum matching: Hopcroft–Karp in O(E·√V)
//		• Perfect matching: detection on top of the maximum matching
//		• Minimum vertex cover: König's theorem over the matching
//
// ✨ Why choose bimatch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – total, panic-free search; snapshot results
//   - Pure algorithmic core – no cgo, no hidden I/O
//   - Honest aliasing – graphs are live references with documented rules
//
// Under the hood, everything is organized under two subpackages:
//
//	bipartite/ — the Graph type, validated construction, error taxonomy
//	matching/  — the Matcher engine, Matching snapshots, vertex covers
//
// Quick ASCII example:
//
//	    L0───R0
//	    L1───R1
//	    L2───R2
//
//	a perfect matching of three left vertices to three right vertices.
//
// A thin demo CLI lives in cmd/bimatch; it reads TOML scenarios and
// prints matching results, and is not part of the library surface.
//
//	go get github.com/katalvlaran/bimatch
package bimatch
