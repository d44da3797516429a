// Package rng provides the single seedable random source shared by every
// stochastic decision of a generation run.
package rng

import (
	"math/rand"
	"time"
)

// Source wraps a *rand.Rand and remembers the seed it was created from.
// A Source is not safe for concurrent use; a generation run owns exactly one.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New creates a source seeded with seed. A zero seed is replaced by the
// current time so that interactive runs differ from one another.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was (re)started from
func (s *Source) Seed() int64 {
	return s.seed
}

// SetSeed restarts the sequence from seed
func (s *Source) SetSeed(seed int64) {
	s.seed = seed
	s.r = rand.New(rand.NewSource(seed))
}

// Intn returns a uniform integer in [0, n). Non-positive n yields 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Range returns a uniform integer in [min, max). When max <= min it returns min.
func (s *Source) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min)
}

// Float64 returns a uniform fraction in [0, 1)
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Shuffle permutes list in place with a Fisher-Yates walk from the back.
func Shuffle[T any](s *Source, list []T) {
	n := len(list)
	for n > 1 {
		k := s.Intn(n)
		n--
		list[n], list[k] = list[k], list[n]
	}
}
