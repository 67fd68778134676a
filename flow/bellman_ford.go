package flow

import (
	"fmt"
)

// floatSlack is the margin a float label must improve by to count as an
// improvement; it truncates to zero for integer cost types. Without it a
// zero-cost round trip (c then -c) can round below the original label and
// masquerade as a negative cycle.
var floatSlack = 1e-9

// ShortestPaths holds the cheapest-cost tree computed by BellmanFord.
// Only edges with positive residual capacity take part in the tree.
type ShortestPaths[C Cost] struct {
	source  int
	dist    []C
	reached []bool
	pred    []Arc
}

// Source returns the vertex the tree is rooted at.
func (sp *ShortestPaths[C]) Source() int { return sp.source }

// Reached reports whether v is reachable from the source in the residual network.
func (sp *ShortestPaths[C]) Reached(v int) bool {
	return v >= 0 && v < len(sp.reached) && sp.reached[v]
}

// Dist returns the cheapest path cost to v; ok is false when v is unreachable.
func (sp *ShortestPaths[C]) Dist(v int) (d C, ok bool) {
	if !sp.Reached(v) {
		return d, false
	}
	return sp.dist[v], true
}

// Pred returns the arc used to enter v on its cheapest path. The source
// and unreachable vertices have no predecessor.
func (sp *ShortestPaths[C]) Pred(v int) (Arc, bool) {
	if !sp.Reached(v) || v == sp.source {
		return Arc{}, false
	}
	return sp.pred[v], true
}

// PathTo walks predecessors back from v and returns the arcs in
// source→v order. ok is false when v has no predecessor entry.
func (sp *ShortestPaths[C]) PathTo(v int) (path []Arc, ok bool) {
	if _, ok = sp.Pred(v); !ok {
		return nil, false
	}
	for cur := v; cur != sp.source; {
		a := sp.pred[cur]
		path = append(path, a)
		cur = a.From
	}
	// reverse into source→v order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// BellmanFord computes cheapest-cost paths from source over edges with
// positive residual capacity. Reverse edges carry negative costs, which is
// why a label-correcting method is used instead of Dijkstra.
//
// The relaxation runs exactly V-1 rounds; each round scans vertices in
// ascending order and their edges in insertion order, replacing a label only
// on strict improvement. That fixed order makes tie-breaking deterministic.
// A final scan that can still relax any edge reports ErrNegativeCycle.
//
// Complexity: O(V · E) time, O(V) extra memory.
func BellmanFord[C Cost](n *Network[C], source int) (*ShortestPaths[C], error) {
	if !n.has(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}

	V := n.Order()
	sp := &ShortestPaths[C]{
		source:  source,
		dist:    make([]C, V),
		reached: make([]bool, V),
		pred:    make([]Arc, V),
	}
	sp.reached[source] = true

	for round := 0; round < V-1; round++ {
		n.relax(sp)
	}

	if n.relax(sp) {
		return nil, fmt.Errorf("%w: still relaxing after %d rounds from %d", ErrNegativeCycle, V-1, source)
	}

	return sp, nil
}

// relax performs one full pass over every residual edge and reports whether
// any label improved.
func (n *Network[C]) relax(sp *ShortestPaths[C]) bool {
	improved := false
	slack := C(floatSlack)
	for u, edges := range n.adjacency {
		if !sp.reached[u] {
			continue
		}
		for i, e := range edges {
			if e.Residual() <= 0 {
				continue
			}
			nd := sp.dist[u] + n.costs[pair{u, e.To}]
			if !sp.reached[e.To] || nd+slack < sp.dist[e.To] {
				sp.dist[e.To] = nd
				sp.reached[e.To] = true
				sp.pred[e.To] = Arc{From: u, Index: i}
				improved = true
			}
		}
	}
	return improved
}
