package slot

import (
	"fmt"

	"github.com/katalvlaran/slotflow/flow"
)

// Vertex layout:
//
//	0                      source
//	1 .. n                 invitees, in order-list order
//	n+1 .. n+s             slots 0 .. s-1
//	n+s+1                  sink
func (p *problem) vertices() int { return p.invitees + p.slots + 2 }
func (p *problem) source() int { return 0 }
func (p *problem) sink() int { return p.invitees + p.slots + 1 }
func (p *problem) inviteeVertex(i int) int { return i + 1 }
func (p *problem) slotVertex(s int) int { return p.invitees + 1 + s }

// buildNetwork emits the assignment network for p under w.
//
//	source → invitee i        cap 1, cost 0
//	invitee i → prioritized s cap 1, cost order[i]
//	invitee i → available s   cap 1, cost order[i] + priority
//	slot s → sink             cap 1, cost 0
//
// Emission order is fixed (invitees by position; per invitee prioritized
// slots ascending, then available slots ascending; then slots ascending),
// which fixes the solver's tie-breaking.
func buildNetwork[C flow.Cost](p *problem, w weights[C]) (*flow.Network[C], error) {
	n, err := flow.NewNetwork[C](p.vertices())
	if err != nil {
		return nil, err
	}

	for i := 0; i < p.invitees; i++ {
		u := p.inviteeVertex(i)
		if err = n.AddEdge(p.source(), u, 1, 0); err != nil {
			return nil, fmt.Errorf("source→invitee %d: %w", p.order[i], err)
		}
		for _, s := range p.prioritized[i] {
			if err = n.AddEdge(u, p.slotVertex(s), 1, w.order[i]); err != nil {
				return nil, fmt.Errorf("invitee %d→slot %d: %w", p.order[i], s, err)
			}
		}
		for _, s := range p.available[i] {
			if err = n.AddEdge(u, p.slotVertex(s), 1, w.order[i]+w.priority); err != nil {
				return nil, fmt.Errorf("invitee %d→slot %d: %w", p.order[i], s, err)
			}
		}
	}
	for s := 0; s < p.slots; s++ {
		if err = n.AddEdge(p.slotVertex(s), p.sink(), 1, 0); err != nil {
			return nil, fmt.Errorf("slot %d→sink: %w", s, err)
		}
	}
	return n, nil
}

// extractMatching reads committed invitee→slot edges (flow == cap > 0) back
// into a Matching keyed by invitee identifier.
func extractMatching[C flow.Cost](p *problem, n *flow.Network[C]) Matching {
	m := make(Matching)
	first, last := p.slotVertex(0), p.slotVertex(p.slots-1)
	for i := 0; i < p.invitees; i++ {
		for _, e := range n.Edges(p.inviteeVertex(i)) {
			if e.To < first || e.To > last {
				continue
			}
			if e.Cap > 0 && e.Flow == e.Cap {
				m[p.order[i]] = e.To - p.invitees - 1
			}
		}
	}
	return m
}
