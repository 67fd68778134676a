package slot

import (
	"errors"
)

// InviteeID identifies an invitee in the surrounding system.
type InviteeID int64

// Instance is one scheduling problem.
//
//   - Invitees, Slots: sizes; both may be zero.
//   - Order: Invitees distinct identifiers, earliest first.
//   - Available / Prioritized: per-invitee slot indices in [0, Slots). The two
//     sets of one invitee must be disjoint. Missing entries mean "no slots".
//   - Priority: the weighting policy.
type Instance struct {
	Invitees    int                 `json:"invitees"`
	Slots       int                 `json:"slots"`
	Order       []InviteeID         `json:"order"`
	Available   map[InviteeID][]int `json:"available,omitempty"`
	Prioritized map[InviteeID][]int `json:"prioritized,omitempty"`
	Priority    Priority            `json:"priority"`
}

// Matching maps a matched invitee to its zero-based slot index. Unmatched
// invitees are absent.
type Matching map[InviteeID]int

// Assignment is the engine's answer: how many meetings were scheduled and
// which invitee takes which slot. Matched always equals len(Matching).
type Assignment struct {
	Matched  int      `json:"matched"`
	Matching Matching `json:"matching"`
}

// Sentinel errors returned by the slot package.
var (
	// ErrNegativeCount indicates a negative invitee or slot count.
	ErrNegativeCount = errors.New("slot: negative invitee or slot count")

	// ErrOrderLength indicates len(Order) != Invitees.
	ErrOrderLength = errors.New("slot: order length does not match invitee count")

	// ErrDuplicateInvitee indicates an identifier listed twice in Order.
	ErrDuplicateInvitee = errors.New("slot: duplicate invitee in order")

	// ErrUnknownInvitee indicates a slot set keyed by an invitee missing from Order.
	ErrUnknownInvitee = errors.New("slot: invitee not in order")

	// ErrSlotOutOfRange indicates a slot index outside [0, Slots).
	ErrSlotOutOfRange = errors.New("slot: slot index out of range")

	// ErrOverlappingSlots indicates a slot listed as both prioritized and
	// available for the same invitee.
	ErrOverlappingSlots = errors.New("slot: slot both prioritized and available")

	// ErrUnknownPriority indicates a Priority outside the declared policies.
	ErrUnknownPriority = errors.New("slot: unknown priority policy")

	// ErrInternal indicates a broken engine invariant (negative cycle,
	// flow/matching mismatch). It is never caused by input.
	ErrInternal = errors.New("slot: internal invariant violated")
)
