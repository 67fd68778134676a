package slot_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/slotflow/slot"
)

// referenceInstance is the five-invitee, four-slot instance used throughout
// the engine's documentation.
func referenceInstance(p slot.Priority) slot.Instance {
	return slot.Instance{
		Invitees: 5,
		Slots:    4,
		Order:    []slot.InviteeID{44, 11, 33, 22, 55},
		Available: map[slot.InviteeID][]int{
			11: {0, 2}, 22: {1}, 33: {}, 44: {0, 1, 3}, 55: {},
		},
		Prioritized: map[slot.InviteeID][]int{
			11: {}, 22: {0, 2}, 33: {1, 2}, 44: {}, 55: {0, 3},
		},
		Priority: p,
	}
}

// AssignSuite groups scenario tests for Assign.
type AssignSuite struct {
	suite.Suite
}

// TestReference_InviteeOrder: 44 is first in order and keeps slot 3 even
// though its claim is availability-only.
func (s *AssignSuite) TestReference_InviteeOrder() {
	a, err := slot.Assign(referenceInstance(slot.InviteeOrder))
	s.Require().NoError(err)

	want := slot.Matching{44: 3, 11: 2, 33: 1, 22: 0}
	if diff := cmp.Diff(want, a.Matching); diff != "" {
		s.T().Fatalf("matching mismatch (-want +got):\n%s", diff)
	}
	require.Equal(s.T(), 4, a.Matched)
}

// TestReference_InviteePriorities: prioritized claims of 22, 33 and 55 win
// their slots; 44 is left with slot 1 and 11 drops out.
func (s *AssignSuite) TestReference_InviteePriorities() {
	a, err := slot.Assign(referenceInstance(slot.InviteePriorities))
	s.Require().NoError(err)

	want := slot.Matching{44: 1, 33: 2, 22: 0, 55: 3}
	if diff := cmp.Diff(want, a.Matching); diff != "" {
		s.T().Fatalf("matching mismatch (-want +got):\n%s", diff)
	}
	require.Equal(s.T(), 4, a.Matched)
}

// TestContestedSlot: invitee 1 (earlier, available) and invitee 2 (later,
// prioritized) both want slot 0.
func (s *AssignSuite) TestContestedSlot() {
	in := slot.Instance{
		Invitees:    3,
		Slots:       1,
		Order:       []slot.InviteeID{1, 2, 3},
		Available:   map[slot.InviteeID][]int{1: {0}},
		Prioritized: map[slot.InviteeID][]int{2: {0}},
	}

	in.Priority = slot.InviteeOrder
	a, err := slot.Assign(in)
	s.Require().NoError(err)
	require.Equal(s.T(), slot.Matching{1: 0}, a.Matching)

	in.Priority = slot.InviteePriorities
	a, err = slot.Assign(in)
	s.Require().NoError(err)
	require.Equal(s.T(), slot.Matching{2: 0}, a.Matching)
}

// TestUncontestedPrefersPrioritized holds under both policies.
func (s *AssignSuite) TestUncontestedPrefersPrioritized() {
	for _, p := range slot.Priorities() {
		a, err := slot.Assign(slot.Instance{
			Invitees:    1,
			Slots:       2,
			Order:       []slot.InviteeID{7},
			Available:   map[slot.InviteeID][]int{7: {0}},
			Prioritized: map[slot.InviteeID][]int{7: {1}},
			Priority:    p,
		})
		s.Require().NoError(err)
		require.Equal(s.T(), slot.Matching{7: 1}, a.Matching, p.String())
	}
}

// TestEmptySetsNeverMatched: an invitee without slots is absent.
func (s *AssignSuite) TestEmptySetsNeverMatched() {
	a, err := slot.Assign(slot.Instance{
		Invitees: 2,
		Slots:    2,
		Order:    []slot.InviteeID{1, 2},
		Available: map[slot.InviteeID][]int{
			2: {0, 1},
		},
	})
	s.Require().NoError(err)
	require.Equal(s.T(), slot.Matching{2: 0}, a.Matching)
}

// TestDegenerate: zero invitees or zero slots give an empty assignment.
func (s *AssignSuite) TestDegenerate() {
	a, err := slot.Assign(slot.Instance{Slots: 3})
	s.Require().NoError(err)
	require.Equal(s.T(), 0, a.Matched)
	require.Empty(s.T(), a.Matching)

	a, err = slot.Assign(slot.Instance{Invitees: 2, Order: []slot.InviteeID{1, 2}})
	s.Require().NoError(err)
	require.Equal(s.T(), 0, a.Matched)
	require.Empty(s.T(), a.Matching)

	a, err = slot.Assign(slot.Instance{})
	s.Require().NoError(err)
	require.Equal(s.T(), 0, a.Matched)
}

// TestMonotonic: a new available slot for an unmatched invitee never lowers
// the matched count.
func (s *AssignSuite) TestMonotonic() {
	in := slot.Instance{
		Invitees:  2,
		Slots:     2,
		Order:     []slot.InviteeID{1, 2},
		Available: map[slot.InviteeID][]int{1: {0}, 2: {0}},
	}
	before, err := slot.Assign(in)
	s.Require().NoError(err)
	require.Equal(s.T(), slot.Matching{1: 0}, before.Matching)

	in.Available[2] = []int{0, 1}
	after, err := slot.Assign(in)
	s.Require().NoError(err)
	require.Equal(s.T(), slot.Matching{1: 0, 2: 1}, after.Matching)
}

// TestInvalidInput surfaces caller errors without solving.
func (s *AssignSuite) TestInvalidInput() {
	in := referenceInstance(slot.InviteeOrder)
	in.Available[11] = []int{4}
	_, err := slot.Assign(in)
	require.ErrorIs(s.T(), err, slot.ErrSlotOutOfRange)

	_, err = slot.Suggest(in)
	require.ErrorIs(s.T(), err, slot.ErrSlotOutOfRange)

	_, err = slot.MaxMatchable(in)
	require.ErrorIs(s.T(), err, slot.ErrSlotOutOfRange)
}

// TestSuggest runs both policies independently.
func (s *AssignSuite) TestSuggest() {
	in := referenceInstance(slot.InviteePriorities)
	got, err := slot.Suggest(in)
	s.Require().NoError(err)
	require.Len(s.T(), got, 2)
	require.Equal(s.T(), slot.Matching{44: 3, 11: 2, 33: 1, 22: 0}, got[slot.InviteeOrder].Matching)
	require.Equal(s.T(), slot.Matching{44: 1, 33: 2, 22: 0, 55: 3}, got[slot.InviteePriorities].Matching)
	require.Equal(s.T(), slot.InviteePriorities, in.Priority, "caller's instance untouched")
}

// TestFloatFallback: past the int64 denominator limit the engine still
// solves, and says so.
func (s *AssignSuite) TestFloatFallback() {
	const n = 45
	in := slot.Instance{Invitees: n, Slots: n, Available: map[slot.InviteeID][]int{}}
	for i := 0; i < n; i++ {
		id := slot.InviteeID(1000 + i)
		in.Order = append(in.Order, id)
		in.Available[id] = []int{i}
	}

	var buf bytes.Buffer
	a, err := slot.Assign(in, slot.WithLogger(zerolog.New(&buf)))
	s.Require().NoError(err)
	require.Equal(s.T(), n, a.Matched)
	for i, id := range in.Order {
		require.Equal(s.T(), i, a.Matching[id])
	}
	require.Contains(s.T(), buf.String(), "falling back to float costs")
}

// TestLogger: a debug summary is emitted per solve.
func (s *AssignSuite) TestLogger() {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := slot.Assign(referenceInstance(slot.InviteeOrder), slot.WithLogger(logger))
	s.Require().NoError(err)
	require.Contains(s.T(), buf.String(), `"message":"slot assignment solved"`)
	require.Contains(s.T(), buf.String(), `"priority":"invitee_order"`)
	require.Contains(s.T(), buf.String(), `"matched":4`)
}

func TestAssignSuite(t *testing.T) {
	suite.Run(t, new(AssignSuite))
}

// randomInstance draws an instance with up to 8 invitees and 6 slots; each
// slot is prioritized, available or absent for each invitee.
func randomInstance(r *rand.Rand, p slot.Priority) slot.Instance {
	n, m := r.Intn(9), r.Intn(7)
	in := slot.Instance{
		Invitees:    n,
		Slots:       m,
		Available:   map[slot.InviteeID][]int{},
		Prioritized: map[slot.InviteeID][]int{},
		Priority:    p,
	}
	for _, id := range r.Perm(100)[:n] {
		inv := slot.InviteeID(id)
		in.Order = append(in.Order, inv)
		for s := 0; s < m; s++ {
			switch r.Intn(4) {
			case 0:
				in.Prioritized[inv] = append(in.Prioritized[inv], s)
			case 1:
				in.Available[inv] = append(in.Available[inv], s)
			}
		}
	}
	return in
}

// TestAssign_Properties checks the engine's contract on random instances:
// bounded, injective, consistent with the submitted sets, maximum and
// reproducible.
func TestAssign_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for iter := 0; iter < 300; iter++ {
		p := slot.Priorities()[iter%2]
		in := randomInstance(r, p)

		a, err := slot.Assign(in)
		require.NoError(t, err, "iter %d", iter)

		require.Equal(t, a.Matched, len(a.Matching), "iter %d", iter)
		require.LessOrEqual(t, a.Matched, min(in.Invitees, in.Slots), "iter %d", iter)

		used := map[int]slot.InviteeID{}
		for id, s := range a.Matching {
			if prev, dup := used[s]; dup {
				t.Fatalf("iter %d: slot %d given to %d and %d", iter, s, prev, id)
			}
			used[s] = id
			allowed := append(append([]int{}, in.Available[id]...), in.Prioritized[id]...)
			require.Contains(t, allowed, s, "iter %d: invitee %d", iter, id)
		}

		best, err := slot.MaxMatchable(in)
		require.NoError(t, err)
		require.Equal(t, best, a.Matched, "iter %d: not a maximum matching", iter)

		again, err := slot.Assign(in)
		require.NoError(t, err)
		if diff := cmp.Diff(a, again); diff != "" {
			t.Fatalf("iter %d: rerun differs (-first +second):\n%s", iter, diff)
		}
	}
}

// TestAssign_MonotonicRandom adds one available slot to an unmatched
// invitee and checks the matched count does not drop.
func TestAssign_MonotonicRandom(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for iter := 0; iter < 200; iter++ {
		in := randomInstance(r, slot.Priorities()[iter%2])
		a, err := slot.Assign(in)
		require.NoError(t, err)

		for _, id := range in.Order {
			if _, matched := a.Matching[id]; matched {
				continue
			}
			free := freeSlot(in, id)
			if free < 0 {
				continue
			}
			in.Available[id] = append(in.Available[id], free)
			b, err := slot.Assign(in)
			require.NoError(t, err)
			require.GreaterOrEqual(t, b.Matched, a.Matched, "iter %d: invitee %d slot %d", iter, id, free)
			break
		}
	}
}

// freeSlot returns a slot id has not submitted yet, or -1.
func freeSlot(in slot.Instance, id slot.InviteeID) int {
	taken := map[int]bool{}
	for _, s := range in.Available[id] {
		taken[s] = true
	}
	for _, s := range in.Prioritized[id] {
		taken[s] = true
	}
	for s := 0; s < in.Slots; s++ {
		if !taken[s] {
			return s
		}
	}
	return -1
}

// TestAssign_PolicySensitivity: over random contested instances,
// InviteePriorities hands out at least as many prioritized slots as
// InviteeOrder.
func TestAssign_PolicySensitivity(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		in := randomInstance(r, slot.InviteeOrder)
		got, err := slot.Suggest(in)
		require.NoError(t, err)

		count := func(m slot.Matching) int {
			k := 0
			for id, s := range m {
				for _, ps := range in.Prioritized[id] {
					if ps == s {
						k++
					}
				}
			}
			return k
		}
		byOrder := count(got[slot.InviteeOrder].Matching)
		byPriorities := count(got[slot.InviteePriorities].Matching)
		require.GreaterOrEqual(t, byPriorities, byOrder, "iter %d", iter)
		require.Equal(t, got[slot.InviteeOrder].Matched, got[slot.InviteePriorities].Matched, "iter %d", iter)
	}
}
