package clock

import "strings"

// burstRange is one entry of the name-keyed burst distribution table;
// ordered so SampleBurst can return on the first substring match.
type burstRange struct {
	substring string
	lo, hi    int
}

var burstTable = []burstRange{
	{"io_bound", 2, 6},
	{"cpu_bound", 8, 15},
	{"short", 1, 4},
}

const defaultBurstLo, defaultBurstHi = 3, 10

// SampleBurst draws a fresh CPU-burst length for a process named name. The
// first matching substring in the table wins; an unmatched name falls back
// to the default 3..10 range.
func SampleBurst(name string, rng *RNG) int {
	for _, b := range burstTable {
		if strings.Contains(name, b.substring) {
			return rng.IntRange(b.lo, b.hi)
		}
	}
	return rng.IntRange(defaultBurstLo, defaultBurstHi)
}
