package random

// Choice is one (value, weight) pair of a weighted distribution
type Choice[T any] struct {
	Value  T
	Weight int
}

// Weighted is a discrete distribution over a fixed set of values.
// It is immutable once built and safe to share between components.
type Weighted[T any] struct {
	values     []T
	cumulative []int
	total      int
}

// NewWeighted builds a distribution. Entries with a non-positive weight are dropped;
// ErrEmptyChoices is returned when nothing is left.
func NewWeighted[T any](choices ...Choice[T]) (*Weighted[T], error) {
	w := &Weighted[T]{}
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		w.total += c.Weight
		w.values = append(w.values, c.Value)
		w.cumulative = append(w.cumulative, w.total)
	}
	if w.total == 0 {
		return nil, ErrEmptyChoices
	}
	return w, nil
}

// MustWeighted is NewWeighted for package-level fixed distributions
func MustWeighted[T any](choices ...Choice[T]) *Weighted[T] {
	w, err := NewWeighted(choices...)
	if err != nil {
		panic(err)
	}
	return w
}

// Uniform gives every value the same weight. Repeated values count once per occurrence,
// so Uniform(1, 1, 2) picks 1 two times out of three.
func Uniform[T any](values ...T) *Weighted[T] {
	choices := make([]Choice[T], len(values))
	for i, v := range values {
		choices[i] = Choice[T]{Value: v, Weight: 1}
	}
	return MustWeighted(choices...)
}

// Chance returns a boolean distribution that yields true with probability percent/100.
func Chance(percent int) *Weighted[bool] {
	return MustWeighted(
		Choice[bool]{Value: true, Weight: percent},
		Choice[bool]{Value: false, Weight: 100 - percent},
	)
}

// Pick draws one value. Exactly one number is consumed from s.
func (w *Weighted[T]) Pick(s *Source) T {
	r := s.IntN(w.total)
	lo, hi := 0, len(w.cumulative)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if r < w.cumulative[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return w.values[lo]
}

// Len returns the number of distinct entries
func (w *Weighted[T]) Len() int {
	return len(w.values)
}
