// Package data provides in-memory training datasets and their sources:
// the IDX (MNIST) file format, a random XOR generator and a tiny synthetic
// digit set.
package data

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// Sample is one (input, target) pair.
type Sample struct {
	Input  *matrix.Matrix
	Target *matrix.Matrix
}

// Dataset is an ordered, immutable list of samples whose inputs share one
// shape and whose targets share another.
//
// Derived datasets (Shuffle, Trim, Split) share sample matrices with their
// source; treat sample matrices as read-only.
type Dataset struct {
	samples []Sample
	input   matrix.Shape
	target  matrix.Shape
}

// New builds a dataset from samples.
//
// Returns ErrConfiguration for an empty list or nil matrices and
// ErrShapeMismatch when shapes are not uniform.
func New(samples []Sample) (*Dataset, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("data.New: %w: no samples", matrix.ErrConfiguration)
	}
	for i, s := range samples {
		if s.Input == nil || s.Target == nil {
			return nil, fmt.Errorf("data.New: %w: sample %d has a nil matrix", matrix.ErrConfiguration, i)
		}
	}
	in, out := samples[0].Input.Shape(), samples[0].Target.Shape()
	for i, s := range samples[1:] {
		if !s.Input.Shape().Equal(in) {
			return nil, fmt.Errorf("data.New: sample %d input %w: %v vs %v", i+1, matrix.ErrShapeMismatch, s.Input.Shape(), in)
		}
		if !s.Target.Shape().Equal(out) {
			return nil, fmt.Errorf("data.New: sample %d target %w: %v vs %v", i+1, matrix.ErrShapeMismatch, s.Target.Shape(), out)
		}
	}
	owned := make([]Sample, len(samples))
	copy(owned, samples)
	return &Dataset{samples: owned, input: in, target: out}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.samples)
}

// InputShape returns the shape shared by every input.
func (d *Dataset) InputShape() matrix.Shape {
	return d.input
}

// OutputShape returns the shape shared by every target.
func (d *Dataset) OutputShape() matrix.Shape {
	return d.target
}

// At returns sample i.
func (d *Dataset) At(i int) (Sample, error) {
	if i < 0 || i >= len(d.samples) {
		return Sample{}, fmt.Errorf("At(%d): %w for %d samples", i, matrix.ErrIndexOutOfRange, len(d.samples))
	}
	return d.samples[i], nil
}

// Sample returns the input and target of sample i. It panics when i is out
// of range, like a slice index.
func (d *Dataset) Sample(i int) (input, target *matrix.Matrix) {
	s := d.samples[i]
	return s.Input, s.Target
}

// Shuffle returns a copy of the dataset in random order.
//
// A nil sampler selects matrix.Default().
func (d *Dataset) Shuffle(s *matrix.Sampler) *Dataset {
	if s == nil {
		s = matrix.Default()
	}
	perm := s.Perm(len(d.samples))
	samples := make([]Sample, len(d.samples))
	for i, j := range perm {
		samples[i] = d.samples[j]
	}
	return d.derive(samples)
}

// Trim returns the first n samples. The result keeps the dataset's shapes
// even when n is zero.
func (d *Dataset) Trim(n int) (*Dataset, error) {
	if n < 0 || n > len(d.samples) {
		return nil, fmt.Errorf("Trim(%d): %w for %d samples", n, matrix.ErrIndexOutOfRange, len(d.samples))
	}
	return d.derive(d.samples[:n:n]), nil
}

// Split splits the dataset into train and validation sets.
//
// Parameters:
//   - validationRatio: Fraction of samples, taken from the end, to use for
//     validation (e.g. 0.2 for 20%)
//
// Returns:
//   - train, validation
func (d *Dataset) Split(validationRatio float64) (*Dataset, *Dataset, error) {
	if validationRatio < 0 || validationRatio > 1 {
		return nil, nil, fmt.Errorf("Split(%g): %w: ratio must be in [0, 1]", validationRatio, matrix.ErrConfiguration)
	}
	splitIdx := int(float64(len(d.samples)) * (1.0 - validationRatio))
	return d.derive(d.samples[:splitIdx:splitIdx]), d.derive(d.samples[splitIdx:]), nil
}

func (d *Dataset) derive(samples []Sample) *Dataset {
	return &Dataset{samples: samples, input: d.input, target: d.target}
}
