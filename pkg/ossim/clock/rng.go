package clock

import "math/rand/v2"

// RNG is the simulator's single seeded source of randomness. Centralizing
// it here (owned by whoever constructs a Dispatcher, not a package-level
// global) is what makes a run reproducible end to end: same
// seed and same task step sequences reproduce identical clocks, schedules,
// context-switch counts, and accounting.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a deterministic generator. Two RNGs built from the same seed
// produce the same sequence of draws.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

// IntRange draws a uniform integer in [lo, hi] inclusive.
func (g *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.IntN(hi-lo+1)
}
