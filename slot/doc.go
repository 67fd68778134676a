// Package slot assigns invitees to meeting time slots.
//
// Each invitee submits two disjoint sets of slot indices: prioritized slots
// (preferred) and available slots (acceptable). Given the invitees in a
// priority order and a policy, Assign returns a one-to-one matching that
//
//  1. schedules as many meetings as possible, and
//  2. among those matchings, minimises a cost that favours earlier invitees
//     and prioritized slots.
//
// The problem is solved as min-cost max-flow (see package flow) on
//
//	source ─1─▶ invitee_i ─1─▶ slot_s ─1─▶ sink
//
// with invitee→slot costs
//
//	prioritized: 1 - 1/(i+1)
//	available:   1 - 1/(i+1) + w,   w = 1/n (InviteeOrder) or 1 (InviteePriorities)
//
// Under InviteeOrder the surcharge w is small, so an earlier invitee keeps a
// contested slot even when a later invitee prioritized it. Under
// InviteePriorities the surcharge dominates and prioritized claims win.
//
// # Exact costs
//
// The constants are rationals. Costs are scaled by lcm(1..n) and solved in
// int64, so tie-breaks never depend on floating-point rounding. For very
// large invitee counts (lcm overflow, n > ~40) the engine falls back to
// float64 costs and logs a warning.
//
// # Errors
//
//	ErrNegativeCount, ErrOrderLength, ErrDuplicateInvitee, ErrUnknownInvitee,
//	ErrSlotOutOfRange, ErrOverlappingSlots, ErrUnknownPriority - caller errors,
//	reported before any network is built.
//	ErrInternal - broken engine invariant.
//
// Zero invitees or zero slots are valid and yield an empty assignment.
//
// # Example
//
//	a, err := slot.Assign(slot.Instance{
//	    Invitees: 2, Slots: 1,
//	    Order:       []slot.InviteeID{10, 20},
//	    Available:   map[slot.InviteeID][]int{10: {0}},
//	    Prioritized: map[slot.InviteeID][]int{20: {0}},
//	    Priority:    slot.InviteePriorities,
//	})
//	// a.Matching == slot.Matching{20: 0}
package slot
