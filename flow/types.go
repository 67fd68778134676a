package flow

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Cost is the set of numeric types a Network can carry as per-edge cost.
// Reverse edges carry negated costs, so only signed types qualify. Integer
// costs give exact comparisons; float costs are accepted for callers that
// cannot scale their weights to a common denominator.
type Cost interface {
	constraints.Signed | constraints.Float
}

// Sentinel errors returned by the flow package.
var (
	// ErrTooFewVertices is returned when a network would have no room for
	// both a source and a sink.
	ErrTooFewVertices = errors.New("flow: network needs at least 2 vertices")

	// ErrVertexOutOfRange is returned when an edge endpoint is not in [0, V).
	ErrVertexOutOfRange = errors.New("flow: vertex out of range")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)

	// ErrSourceEqualsSink is returned when source and sink are the same vertex.
	ErrSourceEqualsSink = errors.New("flow: source and sink must differ")

	// ErrNegativeCapacity is wrapped by CapacityError.
	ErrNegativeCapacity = errors.New("flow: negative capacity")

	// ErrSelfLoop is returned by AddEdge for u == v.
	ErrSelfLoop = errors.New("flow: self-loop edges are not allowed")

	// ErrParallelEdge is returned by AddEdge when the vertex pair already has
	// an edge in either direction. Costs are keyed by vertex pair, so a second
	// edge would silently overwrite the first one's cost.
	ErrParallelEdge = errors.New("flow: vertex pair already connected")

	// ErrExceedsResidual is returned by Augment when the amount is not
	// positive or exceeds the residual capacity of an arc on the path.
	ErrExceedsResidual = errors.New("flow: augmentation exceeds residual capacity")

	// ErrBrokenPath is returned by Augment when consecutive arcs do not chain.
	ErrBrokenPath = errors.New("flow: path arcs are not contiguous")

	// ErrNegativeCycle signals that the residual network holds a cycle of
	// negative total cost. Successive shortest paths never create one from a
	// network whose forward costs admit no negative cycle, so this is an
	// invariant violation rather than an input error.
	ErrNegativeCycle = errors.New("flow: negative-cost cycle in residual network")

	// ErrAugmentationLimit is returned when WithMaxAugmentations is exceeded.
	ErrAugmentationLimit = errors.New("flow: augmentation limit reached")
)

var errSourceNotFound = errors.New("source vertex not found")
var errSinkNotFound = errors.New("sink vertex not found")

// CapacityError is returned when an edge has a negative capacity.
type CapacityError struct {
	From, To int
	Cap      int64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// Unwrap lets errors.Is(err, ErrNegativeCapacity) match.
func (e CapacityError) Unwrap() error { return ErrNegativeCapacity }

// Arc addresses one edge in the arena: the Index-th edge leaving From.
type Arc struct {
	From  int
	Index int
}

// Edge is a single directed residual edge.
//
// Forward edges satisfy 0 ≤ Flow ≤ Cap. Their paired reverse edges have
// Cap = 0 and carry the negated flow, so Cap-Flow on a reverse edge is the
// amount of forward flow that can be cancelled.
type Edge struct {
	To   int   // head vertex
	Cap  int64 // capacity (0 for reverse edges)
	Flow int64 // current flow
	Rev  int   // index of the paired edge in adjacency[To]
}

// Residual returns Cap - Flow.
func (e Edge) Residual() int64 { return e.Cap - e.Flow }

// Result summarises a min-cost max-flow run.
//   - Flow: total units pushed from source to sink.
//   - Cost: Σ over augmentations of bottleneck · path cost. Diagnostic only.
//   - Augmentations: number of augmenting paths applied.
type Result[C Cost] struct {
	Flow          int64
	Cost          C
	Augmentations int
}
