package data

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// XOR generates n random samples of the exclusive-or function.
//
// Each input is a 2x1 column of independent Bernoulli(0.5) bits and each
// target is the 1x1 XOR of the two bits. A nil sampler selects
// matrix.Default().
func XOR(n int, s *matrix.Sampler) (*Dataset, error) {
	if n <= 0 {
		return nil, fmt.Errorf("XOR(%d): %w: sample count must be positive", n, matrix.ErrConfiguration)
	}
	if s == nil {
		s = matrix.Default()
	}
	bit := s.Bernoulli(0.5)
	samples := make([]Sample, n)
	for i := range samples {
		a, b := bit(), bit()
		target := 0.0
		if a != b {
			target = 1
		}
		samples[i] = Sample{
			Input:  matrix.Must(matrix.NewWithValues(2, 1, a, b)),
			Target: matrix.Must(matrix.NewWithValues(1, 1, target)),
		}
	}
	return New(samples)
}
