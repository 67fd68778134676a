// Package flow implements a residual flow network with per-edge costs and
// the min-cost maximum-flow computation used by the slot assignment engine.
//
// The network is an arena: a slice of adjacency slices indexed by vertex id.
// Every AddEdge call appends a forward edge (u→v, capacity c, flow 0) and a
// reverse edge (v→u, capacity 0, flow 0); the two store each other's index
// so a pair is addressed as an Arc{From, Index} and never by pointer.
// Costs are kept per ordered vertex pair with cost(v,u) = -cost(u,v).
//
// The key algorithms offered are:
//
//   - BellmanFord
//
//   - Method: exactly V-1 relaxation rounds in fixed vertex/edge order,
//     followed by a verification pass that reports ErrNegativeCycle.
//
//   - Time:   O(V · E).
//
//   - Use because reverse edges carry negative costs.
//
//   - MinCostMaxFlow
//
//   - Method: successive shortest augmenting paths found by BellmanFord.
//
//   - Time:   O(F · V · E) for a flow value F.
//
//   - Returns total flow, total cost (diagnostic) and augmentation count.
//
//   - EdmondsKarp
//
//   - Method: BFS augmenting paths on a clone, ignoring costs.
//
//   - Time:   O(V · E²).
//
//   - Reference value for the maximum flow.
//
//   - Dinic
//
//   - Method: level graph + blocking flows on a clone, ignoring costs.
//
//   - Time:   O(V² · E); O(E · √V) on unit-capacity networks.
//
//   - Fast maximum flow for bipartite matchings.
//
// # Cost types
//
// Network is generic over Cost (any signed integer or float type). Integer
// costs make every comparison exact, which keeps tie-breaks identical across
// platforms; callers with rational weights should scale them to a common
// denominator first.
//
// # Errors
//
//	ErrTooFewVertices    - NewNetwork with V < 2.
//	ErrVertexOutOfRange  - edge endpoint or arc outside the arena.
//	CapacityError        - negative capacity (errors.Is ErrNegativeCapacity).
//	ErrSelfLoop          - u == v.
//	ErrParallelEdge      - vertex pair already connected.
//	ErrExceedsResidual   - Augment amount not positive or above a residual.
//	ErrSourceNotFound / ErrSinkNotFound / ErrSourceEqualsSink.
//	ErrNegativeCycle     - invariant violation detected by BellmanFord.
//
// # Example
//
//	n, _ := flow.NewNetwork[int64](4)
//	_ = n.AddEdge(0, 1, 1, 0)
//	_ = n.AddEdge(1, 2, 1, 5)
//	_ = n.AddEdge(2, 3, 1, 0)
//	res, err := flow.MinCostMaxFlow(n, 0, 3)
//	// res.Flow == 1, res.Cost == 5
package flow
