// Package slotflow assigns meeting invitees to time slots.
//
// Every invitee names the slots they can attend and, optionally, the ones
// they prefer. slotflow schedules as many meetings as possible and, among
// all maximum schedules, picks the one that best honours invitee order and
// stated preference. The weighing of those two is the Priority policy:
//
//	InviteeOrder:      earlier invitees win, preference breaks ties
//	InviteePriorities: a preferred slot beats a merely available one
//
// Under the hood the problem becomes a unit-capacity flow network
// (source → invitees → slots → sink) solved by min-cost max-flow with
// Bellman–Ford successive shortest paths.
//
// Packages:
//
//	flow/      residual network, Bellman–Ford, min-cost max-flow, Edmonds–Karp, Dinic
//	slot/      instances, validation, cost model, Assign / Suggest / MaxMatchable
//	meeting/   time.Time submissions in, start times out
//	cmd/       the slotflow command (YAML/JSON instance files)
//	examples/  small runnable programs
//
// Quick example:
//
//	a, err := slot.Assign(slot.Instance{
//		Invitees:    2,
//		Slots:       2,
//		Order:       []slot.InviteeID{7, 9},
//		Available:   map[slot.InviteeID][]int{7: {0, 1}},
//		Prioritized: map[slot.InviteeID][]int{9: {0}},
//	})
//	// a.Matched == 2, a.Matching == {7: 1, 9: 0}
//
//	go install github.com/katalvlaran/slotflow/cmd/slotflow@latest
package slotflow
