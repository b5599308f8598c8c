package matrix

import (
	"math/rand/v2"
	"sync"
	"time"
)

// DefaultWeightStdDev is the spread of the normal distribution used to
// initialize weights when no fill function is given.
const DefaultWeightStdDev = 0.6

// Sampler is a seeded random source shared by weight initialization, data
// generation and shuffling. It is safe for concurrent use.
//
// A Sampler is created once and reused; its generator is never reseeded.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler returns a Sampler seeded with seed. Equal seeds give equal
// sequences.
func NewSampler(seed uint64) *Sampler {
	//nolint:gosec // weight initialization and shuffling are not security-critical
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var (
	defaultOnce    sync.Once
	defaultSampler *Sampler
)

// Default returns the process-wide Sampler, seeded from the clock on first use.
func Default() *Sampler {
	defaultOnce.Do(func() {
		defaultSampler = NewSampler(uint64(time.Now().UnixNano()))
	})
	return defaultSampler
}

// Normal returns a fill function drawing from N(0, stddev²).
func (s *Sampler) Normal(stddev float64) func() float64 {
	return func() float64 {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.rng.NormFloat64() * stddev
	}
}

// Bernoulli returns a fill function yielding 1 with probability p and 0
// otherwise.
func (s *Sampler) Bernoulli(p float64) func() float64 {
	return func() float64 {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.rng.Float64() < p {
			return 1
		}
		return 0
	}
}

// Perm returns a random permutation of [0, n).
func (s *Sampler) Perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(n)
}

// Uniform returns a fill function drawing uniformly from [lo, hi).
func (s *Sampler) Uniform(lo, hi float64) func() float64 {
	return func() float64 {
		s.mu.Lock()
		defer s.mu.Unlock()
		return lo + s.rng.Float64()*(hi-lo)
	}
}
