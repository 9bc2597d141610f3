// Package dice provides the randomness abstraction used by stat generation
// and combat resolution.
package dice

// Source is the randomness provider for every random draw in the simulator.
//
// Implementations document whether they are safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Chance reports whether a roll against percent succeeds.
// Values <= 0 never succeed; values >= 100 always succeed.
//
// Precondition: src must be non-nil.
// Postcondition: consumes exactly one Intn(100) draw.
func Chance(src Source, percent int) bool {
	return src.Intn(100) < percent
}

// Between returns a uniformly distributed int in [lo, hi].
//
// Precondition: lo <= hi; src must be non-nil.
// Postcondition: lo <= result <= hi.
func Between(src Source, lo, hi int) int {
	if hi < lo {
		panic("dice: Between called with hi < lo")
	}
	return lo + src.Intn(hi-lo+1)
}

// Pick returns k distinct indices drawn from [0, n) without replacement, in draw order.
// k is clamped to n.
//
// Precondition: n > 0; k >= 0; src must be non-nil.
func Pick(src Source, n, k int) []int {
	if k > n {
		k = n
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	out := make([]int, 0, k)
	for len(out) < k {
		j := src.Intn(len(pool))
		out = append(out, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return out
}
