package flow

import (
	"fmt"
)

// MinCostMaxFlow pushes the maximum flow from source to sink at minimum
// total cost by successive shortest augmenting paths.
//
// Each iteration:
//  1. BellmanFord from source over the residual network.
//  2. Stop when the sink has no predecessor entry.
//  3. Walk back from the sink to find the bottleneck residual capacity.
//  4. Augment the path by the bottleneck and add it to the total.
//
// The network is mutated in place: on return its edge flows describe an
// optimal flow, which callers read back through Edges.
//
// Options:
//   - WithLogger: debug event per augmentation (path length, bottleneck, cost).
//   - WithMaxAugmentations: fail with ErrAugmentationLimit past k paths.
//
// Complexity: O(F · V · E) where F is the flow value (one unit per
// iteration on unit-capacity networks).
func MinCostMaxFlow[C Cost](n *Network[C], source, sink int, opts ...Option) (Result[C], error) {
	var res Result[C]

	// 1) Validate endpoints.
	if !n.has(source) {
		return res, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !n.has(sink) {
		return res, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return res, ErrSourceEqualsSink
	}
	cfg := resolveOptions(opts)

	// 2) Main loop: cheapest augmenting path until the sink is cut off.
	for {
		sp, err := BellmanFord(n, source)
		if err != nil {
			return res, err
		}
		path, ok := sp.PathTo(sink)
		if !ok {
			break
		}
		if cfg.MaxAugmentations > 0 && res.Augmentations >= cfg.MaxAugmentations {
			return res, fmt.Errorf("%w: %d", ErrAugmentationLimit, cfg.MaxAugmentations)
		}

		// 3) Bottleneck along the path.
		bottleneck := n.Residual(path[0])
		for _, a := range path[1:] {
			bottleneck = min(bottleneck, n.Residual(a))
		}

		// 4) Augment and account.
		pathCost := n.PathCost(path)
		if err = n.Augment(path, bottleneck); err != nil {
			return res, err
		}
		res.Flow += bottleneck
		res.Cost += C(bottleneck) * pathCost
		res.Augmentations++

		cfg.Logger.Debug().
			Int("step", res.Augmentations).
			Int("arcs", len(path)).
			Int64("bottleneck", bottleneck).
			Interface("path_cost", pathCost).
			Int64("flow", res.Flow).
			Msg("augmented")
	}

	cfg.Logger.Debug().
		Int64("flow", res.Flow).
		Interface("cost", res.Cost).
		Int("augmentations", res.Augmentations).
		Msg("min-cost max-flow done")

	return res, nil
}
