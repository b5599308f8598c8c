package nn

import (
	"math"

	"github.com/born-ml/backprop/internal/matrix"
)

// Initializer produces parameter values one element at a time, in row-major
// order.
type Initializer func() float64

// DefaultInit draws from N(0, matrix.DefaultWeightStdDev²) using the
// process-wide sampler.
func DefaultInit() Initializer {
	return Normal(nil, matrix.DefaultWeightStdDev)
}

// Normal draws from N(0, stddev²).
//
// A nil sampler selects matrix.Default().
func Normal(s *matrix.Sampler, stddev float64) Initializer {
	if s == nil {
		s = matrix.Default()
	}
	return s.Normal(stddev)
}

// Xavier (Glorot) initialization.
//
// Draws from U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))), which keeps
// activation variance roughly constant across sigmoid layers.
//
// A nil sampler selects matrix.Default().
func Xavier(s *matrix.Sampler, fanIn, fanOut int) Initializer {
	if s == nil {
		s = matrix.Default()
	}
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return s.Uniform(-bound, bound)
}

// Zeros always returns 0.
func Zeros() Initializer {
	return func() float64 { return 0 }
}
