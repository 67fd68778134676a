package flow

import (
	"fmt"
	"math"
)

// Dinic computes the maximum flow value from source→sink on a clone of n
// using Dinic's algorithm (level graph + blocking flows). Costs are ignored
// and n itself is not modified.
//
// Steps:
//  1. Validate source and sink.
//  2. BFS from source over residual edges to assign levels; stop when the
//     sink is unreachable.
//  3. Push blocking flow with DFS along edges that climb exactly one level,
//     remembering per vertex the next edge to try.
//  4. Repeat from 2.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks such as
//	        invitee/slot matchings.
//	Memory: O(V) beyond the cloned network.
func Dinic[C Cost](n *Network[C], source, sink int) (maxFlow int64, err error) {
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

	residual := n.Clone()
	level := make([]int, residual.Order())
	iter := make([]int, residual.Order())

	// 2) Phases until the sink drops out of the level graph
	for residual.levels(source, sink, level) {
		clear(iter)
		// 3) Blocking flow
		for {
			pushed := residual.push(level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
		}
	}

	return maxFlow, nil
}

// levels fills level with BFS distances from source over residual edges
// (-1 when unreached) and reports whether sink was reached.
func (n *Network[C]) levels(source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range n.adjacency[u] {
			if e.Residual() > 0 && level[e.To] < 0 {
				level[e.To] = level[u] + 1
				queue = append(queue, e.To)
			}
		}
	}
	return level[sink] >= 0
}

// push sends up to available units from u to sink along the level graph and
// returns the amount sent. iter[u] is the next edge of u worth trying.
func (n *Network[C]) push(level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(n.adjacency[u]); iter[u]++ {
		e := &n.adjacency[u][iter[u]]
		if e.Residual() <= 0 || level[e.To] != level[u]+1 {
			continue
		}
		pushed := n.push(level, iter, e.To, sink, min(available, e.Residual()))
		if pushed > 0 {
			e.Flow += pushed
			n.adjacency[e.To][e.Rev].Flow -= pushed
			return pushed
		}
	}
	return 0
}
