package slot

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/slotflow/flow"
)

// Assign computes an optimal invitee→slot matching for inst.
//
// The result maximises the number of scheduled meetings; among maximum
// matchings it minimises the policy cost, so earlier invitees and
// prioritized slots win ties as described on Priority.
//
// Steps:
//  1. Validate inst (see Validate for the error classes).
//  2. Build the source/invitee/slot/sink network with exact integer costs,
//     or float costs when the common denominator would overflow int64.
//  3. Run flow.MinCostMaxFlow from source to sink.
//  4. Read saturated invitee→slot edges back into a Matching.
//
// Every call builds its own network; Assign is safe to call concurrently.
//
// Complexity: O(min(n,s) · V · E) with V = n+s+2.
func Assign(inst Instance, opts ...Option) (Assignment, error) {
	cfg := resolveOptions(opts)

	p, err := newProblem(inst)
	if err != nil {
		return Assignment{}, err
	}

	if w, ok := exactWeights(p.invitees, p.vertices(), p.priority); ok {
		return solve(p, w, cfg.Logger)
	}
	cfg.Logger.Warn().
		Int("invitees", p.invitees).
		Msg("cost denominator overflows int64, falling back to float costs")
	return solve(p, floatWeights(p.invitees, p.priority), cfg.Logger)
}

// Suggest runs Assign once per policy on independent networks. The
// Priority field of inst is ignored.
func Suggest(inst Instance, opts ...Option) (map[Priority]Assignment, error) {
	out := make(map[Priority]Assignment, len(Priorities()))
	for _, p := range Priorities() {
		inst.Priority = p
		a, err := Assign(inst, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out[p] = a
	}
	return out, nil
}

// MaxMatchable returns the largest number of meetings inst admits,
// ignoring order and preference. Assign always reaches this value.
func MaxMatchable(inst Instance) (int, error) {
	p, err := newProblem(inst)
	if err != nil {
		return 0, err
	}
	n, err := buildNetwork(p, weights[int64]{order: make([]int64, p.invitees)})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	mf, err := flow.Dinic(n, p.source(), p.sink())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return int(mf), nil
}

func solve[C flow.Cost](p *problem, w weights[C], log zerolog.Logger) (Assignment, error) {
	n, err := buildNetwork(p, w)
	if err != nil {
		return Assignment{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	res, err := flow.MinCostMaxFlow(n, p.source(), p.sink(), flow.WithLogger(log))
	if err != nil {
		return Assignment{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	m := extractMatching(p, n)
	if int64(len(m)) != res.Flow {
		return Assignment{}, fmt.Errorf("%w: flow %d but %d matched invitees", ErrInternal, res.Flow, len(m))
	}

	log.Debug().
		Int("invitees", p.invitees).
		Int("slots", p.slots).
		Stringer("priority", p.priority).
		Int64("matched", res.Flow).
		Interface("cost", res.Cost).
		Msg("slot assignment solved")

	return Assignment{Matched: len(m), Matching: m}, nil
}
