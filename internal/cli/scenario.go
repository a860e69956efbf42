package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/bimatch/bipartite"
)

// scenario is the TOML description of a matching problem:
//
//	left = 3
//	right = 3
//	edges = [[0, 0], [0, 1], [1, 1], [1, 2], [2, 0], [2, 2]]
//	# optional, defaults to true:
//	skip_invalid_edges = false
type scenario struct {
	Left             int     `toml:"left"`
	Right            int     `toml:"right"`
	Edges            [][]int `toml:"edges"`
	SkipInvalidEdges *bool   `toml:"skip_invalid_edges"`
}

// loadScenario reads and decodes a TOML scenario file and builds the
// described graph with validation enabled.
func loadScenario(path string) (*bipartite.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc scenario
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	edges := make([]bipartite.Edge, len(sc.Edges))
	for i, pair := range sc.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("decode %s: edges[%d] must be a [left, right] pair, got %v", path, i, pair)
		}
		edges[i] = bipartite.Edge{Left: pair[0], Right: pair[1]}
	}

	opts := bipartite.DefaultOptions()
	if sc.SkipInvalidEdges != nil {
		opts.SkipInvalidEdges = *sc.SkipInvalidEdges
	}

	return bipartite.Build(sc.Left, sc.Right, edges, opts)
}
