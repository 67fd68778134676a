package flow

import (
	"fmt"
)

// EdmondsKarp computes the maximum flow value from source→sink on a clone
// of n using BFS (fewest-edges) augmenting paths. Costs are ignored and n
// itself is not modified.
//
// It exists as an independent reference for MinCostMaxFlow: both must reach
// the same flow value on any network.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp[C Cost](n *Network[C], source, sink int) (maxFlow int64, err error) {
	// 1) Validate presence of source/sink
	if !n.has(source) {
		return 0, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !n.has(sink) {
		return 0, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return 0, ErrSourceEqualsSink
	}

	// 2) Work on a private copy so callers keep their flow state.
	residual := n.Clone()

	// 3) Main loop: find BFS augmenting paths until none remain
	for {
		path, bottle := bfsAugmentingPath(residual, source, sink)
		if len(path) == 0 {
			break
		}
		if err = residual.Augment(path, bottle); err != nil {
			return maxFlow, err
		}
		maxFlow += bottle
	}

	return maxFlow, nil
}

// bfsAugmentingPath finds the shortest (fewest-edges) path in g from
// source→sink with positive residual capacity, and returns that path plus
// its bottleneck capacity. Returns nil if no path is found.
func bfsAugmentingPath[C Cost](g *Network[C], source, sink int) ([]Arc, int64) {
	// parent[v] = arc used to discover v
	parent := make([]Arc, g.Order())
	visited := make([]bool, g.Order())
	visited[source] = true

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i, e := range g.adjacency[u] {
			if visited[e.To] || e.Residual() <= 0 {
				continue
			}
			visited[e.To] = true
			parent[e.To] = Arc{From: u, Index: i}
			if e.To != sink {
				queue = append(queue, e.To)
				continue
			}
			// reconstruct path and its bottleneck
			var path []Arc
			bottle := e.Residual()
			for cur := sink; cur != source; {
				a := parent[cur]
				path = append([]Arc{a}, path...)
				bottle = min(bottle, g.adjacency[a.From][a.Index].Residual())
				cur = a.From
			}
			return path, bottle
		}
	}
	return nil, 0
}
