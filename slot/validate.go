package slot

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// problem is a validated Instance with slot sets resolved per order position.
// prioritized[i] and available[i] are sorted and duplicate-free.
type problem struct {
	invitees    int
	slots       int
	order       []InviteeID
	prioritized [][]int
	available   [][]int
	priority    Priority
}

// Validate checks inst against the input contract without solving it.
func Validate(inst Instance) error {
	_, err := newProblem(inst)
	return err
}

// newProblem validates inst and normalises its slot sets.
//
// Checks, in order:
//  1. counts non-negative (ErrNegativeCount);
//  2. Priority declared (ErrUnknownPriority);
//  3. len(Order) == Invitees (ErrOrderLength), identifiers distinct (ErrDuplicateInvitee);
//  4. every key of Available/Prioritized is in Order (ErrUnknownInvitee);
//  5. every slot index in [0, Slots) (ErrSlotOutOfRange);
//  6. per-invitee sets disjoint (ErrOverlappingSlots).
func newProblem(inst Instance) (*problem, error) {
	if inst.Invitees < 0 || inst.Slots < 0 {
		return nil, fmt.Errorf("%w: invitees=%d slots=%d", ErrNegativeCount, inst.Invitees, inst.Slots)
	}
	if !inst.Priority.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPriority, int(inst.Priority))
	}
	if len(inst.Order) != inst.Invitees {
		return nil, fmt.Errorf("%w: %d identifiers for %d invitees", ErrOrderLength, len(inst.Order), inst.Invitees)
	}

	position := make(map[InviteeID]int, len(inst.Order))
	for i, id := range inst.Order {
		if j, dup := position[id]; dup {
			return nil, fmt.Errorf("%w: %d at positions %d and %d", ErrDuplicateInvitee, id, j, i)
		}
		position[id] = i
	}

	// Keys are checked in sorted order so the reported culprit is stable.
	for _, sets := range []map[InviteeID][]int{inst.Prioritized, inst.Available} {
		keys := maps.Keys(sets)
		slices.Sort(keys)
		for _, id := range keys {
			if _, ok := position[id]; !ok {
				return nil, fmt.Errorf("%w: %d", ErrUnknownInvitee, id)
			}
		}
	}

	p := &problem{
		invitees:    inst.Invitees,
		slots:       inst.Slots,
		order:       slices.Clone(inst.Order),
		prioritized: make([][]int, inst.Invitees),
		available:   make([][]int, inst.Invitees),
		priority:    inst.Priority,
	}
	for i, id := range inst.Order {
		var err error
		if p.prioritized[i], err = normaliseSlots(id, inst.Prioritized[id], inst.Slots); err != nil {
			return nil, err
		}
		if p.available[i], err = normaliseSlots(id, inst.Available[id], inst.Slots); err != nil {
			return nil, err
		}
		for _, s := range p.available[i] {
			if _, found := slices.BinarySearch(p.prioritized[i], s); found {
				return nil, fmt.Errorf("%w: invitee %d slot %d", ErrOverlappingSlots, id, s)
			}
		}
	}
	return p, nil
}

// normaliseSlots range-checks raw and returns it sorted with duplicates removed.
func normaliseSlots(id InviteeID, raw []int, nSlot int) ([]int, error) {
	out := slices.Clone(raw)
	slices.Sort(out)
	out = slices.Compact(out)
	for _, s := range out {
		if s < 0 || s >= nSlot {
			return nil, fmt.Errorf("%w: invitee %d slot %d not in [0,%d)", ErrSlotOutOfRange, id, s, nSlot)
		}
	}
	return out, nil
}
