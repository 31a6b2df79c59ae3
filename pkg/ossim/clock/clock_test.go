package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_AdvanceAccumulates(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Now())
	c.Advance(3)
	c.Advance(2)
	assert.Equal(t, 5, c.Now())
}

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntRange(1, 10), b.IntRange(1, 10))
	}
}

func TestRNG_IntRangeBounds(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 200; i++ {
		v := rng.IntRange(3, 10)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 10)
	}
}

func TestSampleBurst_NameKeyedRanges(t *testing.T) {
	rng := NewRNG(1)
	cases := []struct {
		name   string
		lo, hi int
	}{
		{"io_bound", 2, 6},
		{"cpu_bound", 8, 15},
		{"short_task", 1, 4},
		{"hello", 3, 10},
		{"my_cpu_bound_variant", 8, 15}, // substring match anywhere in name
	}
	for _, tc := range cases {
		for i := 0; i < 100; i++ {
			v := SampleBurst(tc.name, rng)
			assert.GreaterOrEqualf(t, v, tc.lo, "name=%s", tc.name)
			assert.LessOrEqualf(t, v, tc.hi, "name=%s", tc.name)
		}
	}
}

func TestSampleBurst_CPUBoundWinsOverShort(t *testing.T) {
	// "io_bound" is checked before "short" in the match order, but a name
	// cannot realistically contain both; this pins the documented order
	// instead against a name containing only "cpu_bound" and "short".
	rng := NewRNG(2)
	for i := 0; i < 100; i++ {
		v := SampleBurst("cpu_bound_short", rng)
		assert.GreaterOrEqual(t, v, 8)
		assert.LessOrEqual(t, v, 15)
	}
}
