// Package random abstracts randomness behind a single capability so the
// generation pipeline can be driven by a scripted source in tests. The core
// never calls any other randomness primitive.
package random

import "math/rand"

// Source yields uniformly distributed integers from inclusive ranges. It is
// the only randomness primitive the pipeline consumes.
type Source interface {
	// Range returns a value in [lo, hi]; both bounds are inclusive and
	// lo <= hi must hold.
	Range(lo, hi int) int
}

type randSource struct {
	r *rand.Rand
}

// New returns a production Source seeded with the given value. Two sources
// created from the same seed produce the same sequence.
func New(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Range(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}

// Min is a Source that always returns the low end of the range.
type Min struct{}

func (Min) Range(lo, _ int) int { return lo }

// Max is a Source that always returns the high end of the range.
type Max struct{}

func (Max) Range(_, hi int) int { return hi }

// Scripted replays a fixed sequence of values, cycling when exhausted. The
// requested range is ignored, which lets tests pin exact decisions.
type Scripted struct {
	values []int
	next   int
}

// NewScripted creates a Scripted source over the given values. At least one
// value is required.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) Range(_, _ int) int {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
