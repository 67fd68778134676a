package slot

import (
	"fmt"
	"strings"
)

// Priority selects how strongly a stated slot preference is weighed against
// the invitee order.
type Priority int

const (
	// InviteeOrder: the prioritized/available gap is 1/n_invitee, so the
	// order of invitees dominates preference strength.
	InviteeOrder Priority = iota

	// InviteePriorities: the gap is 1, so a prioritized claim beats an
	// availability-only claim even from an earlier invitee.
	InviteePriorities
)

var priorityNames = [...]string{
	InviteeOrder:      "invitee_order",
	InviteePriorities: "invitee_priorities",
}

// Priorities lists every valid policy in declaration order.
func Priorities() []Priority {
	return []Priority{InviteeOrder, InviteePriorities}
}

// Valid reports whether p is one of the declared policies.
func (p Priority) Valid() bool {
	return p == InviteeOrder || p == InviteePriorities
}

func (p Priority) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// ParsePriority accepts the snake_case names ("invitee_order",
// "invitee_priorities"), case-insensitively and with '-' for '_'.
func ParsePriority(s string) (Priority, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, p := range Priorities() {
		if priorityNames[p] == norm {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPriority, int(p))
	}
	return []byte(priorityNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	v, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Set implements pflag.Value so a Priority can be bound to a command-line flag.
func (p *Priority) Set(s string) error { return p.UnmarshalText([]byte(s)) }

// Type implements pflag.Value.
func (p *Priority) Type() string { return "priority" }
