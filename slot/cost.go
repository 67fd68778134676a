package slot

import (
	"math"

	"github.com/katalvlaran/slotflow/flow"
)

// weights are the edge costs of one instance under one policy.
//
//	order[i]  = 1 - 1/(i+1)            cost of any edge from position i
//	priority  = 1/n  (InviteeOrder)    surcharge on merely-available slots
//	          = 1    (InviteePriorities)
//
// exactWeights expresses them as integers over a common denominator so the
// solver compares path costs without rounding.
type weights[C flow.Cost] struct {
	order    []C
	priority C
}

// exactWeights scales every cost by D = lcm(1..n). D is divisible by every
// i+1 ≤ n and by n itself, so each constant becomes an integer. ok is false
// when D, or a path cost over V vertices, would not fit in int64.
func exactWeights(n, vertices int, p Priority) (w weights[int64], ok bool) {
	d, ok := lcmUpTo(n)
	if !ok {
		return w, false
	}
	// A path alternates at most V arcs of magnitude ≤ 2D; keep 2x headroom
	// for the running total.
	if d > math.MaxInt64/(4*int64(vertices+1)) {
		return w, false
	}

	w.order = make([]int64, n)
	for i := range w.order {
		w.order[i] = d - d/int64(i+1)
	}
	switch p {
	case InviteeOrder:
		if n > 0 {
			w.priority = d / int64(n)
		}
	case InviteePriorities:
		w.priority = d
	}
	return w, true
}

// floatWeights uses the raw rational constants. Deterministic on a given
// platform but subject to rounding near ties.
func floatWeights(n int, p Priority) weights[float64] {
	w := weights[float64]{order: make([]float64, n)}
	for i := range w.order {
		w.order[i] = 1 - 1/float64(i+1)
	}
	switch p {
	case InviteeOrder:
		if n > 0 {
			w.priority = 1 / float64(n)
		}
	case InviteePriorities:
		w.priority = 1
	}
	return w
}

// lcmUpTo returns lcm(1, 2, ..., n), with lcm of the empty range = 1.
func lcmUpTo(n int) (int64, bool) {
	l := int64(1)
	for k := int64(2); k <= int64(n); k++ {
		g := gcd(l, k)
		q := l / g
		if q > math.MaxInt64/k {
			return 0, false
		}
		l = q * k
	}
	return l, true
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
