// Package meeting turns time-slot submissions into a slot assignment
// problem and turns the answer back into meeting start times.
//
// Invitees submit TimeSlot records (start time plus a priority flag). Every
// distinct start time becomes one slot index, in ascending time order; a
// submission with Priority > 0 lands in the invitee's prioritized set,
// anything else in the available set. Submitting the same start twice with
// different priorities keeps the prioritized one.
package meeting

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/slotflow/slot"
)

// ErrZeroStart is returned for a submission without a start time.
var ErrZeroStart = errors.New("meeting: time slot has no start time")

// TimeSlot is one invitee's offer of a start time.
type TimeSlot struct {
	Invitee  slot.InviteeID `json:"invitee"`
	Start    time.Time      `json:"start"`
	Priority int            `json:"priority"`
}

// Prioritized reports whether the invitee marked this start as preferred.
func (t TimeSlot) Prioritized() bool { return t.Priority > 0 }

// Plan is a scheduling instance derived from submissions, together with
// the start time behind each slot index.
type Plan struct {
	starts   []time.Time
	instance slot.Instance
}

// Schedule is a solved Plan: the start time assigned to each matched invitee.
type Schedule struct {
	Matched int                          `json:"matched"`
	Times   map[slot.InviteeID]time.Time `json:"times"`
}

// NewPlan builds a Plan for invitees in order from their submissions.
// Submissions from invitees missing in order are rejected with an error
// wrapping slot.ErrUnknownInvitee; the resulting instance is validated
// with slot.Validate.
func NewPlan(order []slot.InviteeID, submissions []TimeSlot, p slot.Priority) (*Plan, error) {
	known := make(map[slot.InviteeID]bool, len(order))
	for _, id := range order {
		known[id] = true
	}

	// 1) Collect distinct start instants, ascending.
	starts := make([]time.Time, 0, len(submissions))
	for i, s := range submissions {
		if s.Start.IsZero() {
			return nil, fmt.Errorf("%w: submission %d from invitee %d", ErrZeroStart, i, s.Invitee)
		}
		if !known[s.Invitee] {
			return nil, fmt.Errorf("meeting: submission %d: %w: %d", i, slot.ErrUnknownInvitee, s.Invitee)
		}
		starts = append(starts, s.Start.UTC())
	}
	slices.SortFunc(starts, func(a, b time.Time) int { return a.Compare(b) })
	starts = slices.CompactFunc(starts, func(a, b time.Time) bool { return a.Equal(b) })

	index := func(t time.Time) int {
		i, _ := slices.BinarySearchFunc(starts, t.UTC(), func(a, b time.Time) int { return a.Compare(b) })
		return i
	}

	// 2) Split submissions into per-invitee sets; prioritized wins on overlap.
	prioritized := map[slot.InviteeID]map[int]bool{}
	available := map[slot.InviteeID]map[int]bool{}
	for _, s := range submissions {
		idx := index(s.Start)
		if s.Prioritized() {
			addTo(prioritized, s.Invitee, idx)
			delete(available[s.Invitee], idx)
		} else if !prioritized[s.Invitee][idx] {
			addTo(available, s.Invitee, idx)
		}
	}

	inst := slot.Instance{
		Invitees:    len(order),
		Slots:       len(starts),
		Order:       slices.Clone(order),
		Available:   flatten(available),
		Prioritized: flatten(prioritized),
		Priority:    p,
	}
	if err := slot.Validate(inst); err != nil {
		return nil, err
	}
	return &Plan{starts: starts, instance: inst}, nil
}

// Instance returns the scheduling instance behind the plan.
func (p *Plan) Instance() slot.Instance { return p.instance }

// Starts returns the start time of every slot index.
func (p *Plan) Starts() []time.Time { return slices.Clone(p.starts) }

// Start returns the start time of slot idx.
func (p *Plan) Start(idx int) (time.Time, bool) {
	if idx < 0 || idx >= len(p.starts) {
		return time.Time{}, false
	}
	return p.starts[idx], true
}

// Schedule solves the plan with slot.Assign and resolves slot indices to
// start times.
func (p *Plan) Schedule(opts ...slot.Option) (Schedule, error) {
	a, err := slot.Assign(p.instance, opts...)
	if err != nil {
		return Schedule{}, err
	}
	return p.Resolve(a)
}

// Resolve maps an assignment for this plan onto start times.
func (p *Plan) Resolve(a slot.Assignment) (Schedule, error) {
	out := Schedule{Matched: a.Matched, Times: make(map[slot.InviteeID]time.Time, len(a.Matching))}
	for id, idx := range a.Matching {
		t, ok := p.Start(idx)
		if !ok {
			return Schedule{}, fmt.Errorf("meeting: invitee %d: %w: %d", id, slot.ErrSlotOutOfRange, idx)
		}
		out.Times[id] = t
	}
	return out, nil
}

func addTo(m map[slot.InviteeID]map[int]bool, id slot.InviteeID, idx int) {
	if m[id] == nil {
		m[id] = map[int]bool{}
	}
	m[id][idx] = true
}

func flatten(m map[slot.InviteeID]map[int]bool) map[slot.InviteeID][]int {
	out := make(map[slot.InviteeID][]int, len(m))
	for id, set := range m {
		for idx := range set {
			out[id] = append(out[id], idx)
		}
		slices.Sort(out[id])
	}
	return out
}
