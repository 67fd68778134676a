package flow

import (
	"fmt"
)

// pair is the key of the per-vertex-pair cost table.
type pair struct{ u, v int }

// Network is a residual flow network over vertices [0, V).
//
// Edges live in an arena: adjacency[u] holds every edge whose tail is u, and
// each forward/reverse pair points at its partner by index. Costs are stored
// per ordered vertex pair with cost(u,v) = -cost(v,u).
//
// A Network is not safe for concurrent use; build one per computation.
type Network[C Cost] struct {
	adjacency [][]Edge
	costs     map[pair]C
	edges     int // number of AddEdge calls (forward edges)
}

// NewNetwork returns an empty network with v vertices.
func NewNetwork[C Cost](v int) (*Network[C], error) {
	if v < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, v)
	}
	return &Network[C]{
		adjacency: make([][]Edge, v),
		costs:     make(map[pair]C),
	}, nil
}

// Order returns the number of vertices V.
func (n *Network[C]) Order() int { return len(n.adjacency) }

// Size returns the number of forward edges added.
func (n *Network[C]) Size() int { return n.edges }

// AddEdge appends the forward edge u→v (capacity, flow 0) and its reverse
// v→u (capacity 0, flow 0), and records cost(u,v)=cost, cost(v,u)=-cost.
//
// Complexity: O(1) amortised.
func (n *Network[C]) AddEdge(u, v int, capacity int64, cost C) error {
	if !n.has(u) || !n.has(v) {
		return fmt.Errorf("%w: edge %d→%d with V=%d", ErrVertexOutOfRange, u, v, n.Order())
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
	}
	if capacity < 0 {
		return CapacityError{From: u, To: v, Cap: capacity}
	}
	if _, ok := n.costs[pair{u, v}]; ok {
		return fmt.Errorf("%w: %d↔%d", ErrParallelEdge, u, v)
	}

	fwd := len(n.adjacency[u])
	rev := len(n.adjacency[v])
	n.adjacency[u] = append(n.adjacency[u], Edge{To: v, Cap: capacity, Rev: rev})
	n.adjacency[v] = append(n.adjacency[v], Edge{To: u, Cap: 0, Rev: fwd})
	n.costs[pair{u, v}] = cost
	n.costs[pair{v, u}] = -cost
	n.edges++

	return nil
}

// Edges returns a copy of the edges leaving u, in insertion order.
func (n *Network[C]) Edges(u int) []Edge {
	if !n.has(u) {
		return nil
	}
	out := make([]Edge, len(n.adjacency[u]))
	copy(out, n.adjacency[u])
	return out
}

// Edge returns the edge addressed by a.
func (n *Network[C]) Edge(a Arc) (Edge, bool) {
	if !n.valid(a) {
		return Edge{}, false
	}
	return n.adjacency[a.From][a.Index], true
}

// Cost returns cost(u,v) if u and v are connected.
func (n *Network[C]) Cost(u, v int) (C, bool) {
	c, ok := n.costs[pair{u, v}]
	return c, ok
}

// Residual returns the residual capacity of the edge addressed by a, or 0
// if a does not address an edge.
func (n *Network[C]) Residual(a Arc) int64 {
	if !n.valid(a) {
		return 0
	}
	return n.adjacency[a.From][a.Index].Residual()
}

// OutFlow returns the net flow leaving u (negative for net inflow).
func (n *Network[C]) OutFlow(u int) int64 {
	if !n.has(u) {
		return 0
	}
	var sum int64
	for _, e := range n.adjacency[u] {
		sum += e.Flow
	}
	return sum
}

// Augment pushes amount units along path. Every arc must have at least
// amount residual capacity and arcs must chain head-to-tail. On error the
// network is left unchanged.
//
// Complexity: O(len(path)).
func (n *Network[C]) Augment(path []Arc, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount %d", ErrExceedsResidual, amount)
	}
	// 1) Validate the whole path before mutating anything.
	for i, a := range path {
		if !n.valid(a) {
			return fmt.Errorf("%w: arc %d (%d,%d)", ErrVertexOutOfRange, i, a.From, a.Index)
		}
		e := n.adjacency[a.From][a.Index]
		if e.Residual() < amount {
			return fmt.Errorf("%w: arc %d→%d has %d, need %d",
				ErrExceedsResidual, a.From, e.To, e.Residual(), amount)
		}
		if i > 0 {
			prev := n.adjacency[path[i-1].From][path[i-1].Index]
			if prev.To != a.From {
				return fmt.Errorf("%w: %d then %d", ErrBrokenPath, prev.To, a.From)
			}
		}
	}
	// 2) Push flow forward and cancel it on the paired edge.
	for _, a := range path {
		e := &n.adjacency[a.From][a.Index]
		e.Flow += amount
		n.adjacency[e.To][e.Rev].Flow -= amount
	}
	return nil
}

// PathCost returns Σ cost(u,v) over the arcs of path.
func (n *Network[C]) PathCost(path []Arc) C {
	var total C
	for _, a := range path {
		e := n.adjacency[a.From][a.Index]
		total += n.costs[pair{a.From, e.To}]
	}
	return total
}

// Reset zeroes every flow, restoring the network to its freshly built state.
func (n *Network[C]) Reset() {
	for u := range n.adjacency {
		for i := range n.adjacency[u] {
			n.adjacency[u][i].Flow = 0
		}
	}
}

// Clone returns a deep copy of n, including current flows.
func (n *Network[C]) Clone() *Network[C] {
	c := &Network[C]{
		adjacency: make([][]Edge, len(n.adjacency)),
		costs:     make(map[pair]C, len(n.costs)),
		edges:     n.edges,
	}
	for u, es := range n.adjacency {
		c.adjacency[u] = append([]Edge(nil), es...)
	}
	for k, v := range n.costs {
		c.costs[k] = v
	}
	return c
}

func (n *Network[C]) has(u int) bool { return u >= 0 && u < len(n.adjacency) }

func (n *Network[C]) valid(a Arc) bool {
	return n.has(a.From) && a.Index >= 0 && a.Index < len(n.adjacency[a.From])
}
