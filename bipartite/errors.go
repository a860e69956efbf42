package bipartite

import "errors"

var (
	// ErrPartitionSize indicates a negative partition size while validation is enabled.
	ErrPartitionSize = errors.New("bipartite: partition size must be non-negative")
	// ErrEdgeRange indicates an edge index outside its valid partition range
	// while validation is enabled and SkipInvalidEdges is disabled.
	ErrEdgeRange = errors.New("bipartite: edge index out of range")
)
