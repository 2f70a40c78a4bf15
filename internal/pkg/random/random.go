package random

import (
	"errors"
	"math/rand/v2"
)

// ErrEmptyChoices is returned when a weighted set has no usable entries
var ErrEmptyChoices = errors.New("random: no choices with positive weight")

// Source is the single pseudo-random stream shared by a generation run.
// Every component that draws randomness receives the same *Source, so the
// order of calls fully determines the output for a given seed.
type Source struct {
	rng *rand.Rand
}

// New creates a Source seeded deterministically from seed
func New(seed int64) *Source {
	s := uint64(seed)
	return &Source{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// IntRange returns an int uniformly drawn from [lo, hi], both inclusive.
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// IntN returns an int in [0, n)
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Float64 returns a float in [0.0, 1.0)
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Pick returns one element of items chosen uniformly. It panics on an empty slice,
// which only happens on a programming error since every vocabulary is fixed.
func Pick[T any](s *Source, items []T) T {
	return items[s.IntN(len(items))]
}

// Sample returns k distinct elements of items in draw order (partial Fisher-Yates).
// items is not modified. If k exceeds len(items) every element is returned.
func Sample[T any](s *Source, items []T, k int) []T {
	n := len(items)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	out := make([]T, k)
	for i := 0; i < k; i++ {
		j := i + s.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = items[idx[i]]
	}
	return out
}
