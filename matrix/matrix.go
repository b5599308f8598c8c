// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/backprop/internal/matrix"
)

// Matrix is a dense row-major grid of float64 values.
type Matrix = matrix.Matrix

// Shape is a matrix height and width.
type Shape = matrix.Shape

// Sampler is a seeded, goroutine-safe random source.
type Sampler = matrix.Sampler

// DefaultWeightStdDev is the standard deviation of default weight
// initialization.
const DefaultWeightStdDev = matrix.DefaultWeightStdDev

// Sentinel errors.
var (
	ErrConfiguration   = matrix.ErrConfiguration
	ErrShapeMismatch   = matrix.ErrShapeMismatch
	ErrIndexOutOfRange = matrix.ErrIndexOutOfRange
	ErrAliasedBuffer   = matrix.ErrAliasedBuffer
)

// Construction

// New returns a zero-filled height×width matrix.
func New(height, width int) (*Matrix, error) {
	return matrix.New(height, width)
}

// NewFunc returns a height×width matrix filled by fn in row-major order.
//
// Example:
//
//	s := matrix.NewSampler(42)
//	w, _ := matrix.NewFunc(30, 784, s.Normal(matrix.DefaultWeightStdDev))
func NewFunc(height, width int, fn func() float64) (*Matrix, error) {
	return matrix.NewFunc(height, width, fn)
}

// NewFromSlice returns a matrix holding a copy of values with the given width.
func NewFromSlice(values []float64, width int) (*Matrix, error) {
	return matrix.NewFromSlice(values, width)
}

// NewWithValues returns a height×width matrix filled from values in
// row-major order.
func NewWithValues(height, width int, values ...float64) (*Matrix, error) {
	return matrix.NewWithValues(height, width, values...)
}

// OneHot returns a height×width matrix with a single 1 at (row, col).
func OneHot(height, width, row, col int) (*Matrix, error) {
	return matrix.OneHot(height, width, row, col)
}

// Must panics if err is non-nil and returns m otherwise.
func Must(m *Matrix, err error) *Matrix {
	return matrix.Must(m, err)
}

// Equal reports whether a and b have the same shape and elements.
func Equal(a, b *Matrix) bool {
	return matrix.Equal(a, b)
}

// Checked reports whether shape and index validation is compiled in.
func Checked() bool {
	return matrix.Checked()
}

// Products

// Mul returns a·b.
func Mul(a, b *Matrix) (*Matrix, error) { return matrix.Mul(a, b) }

// MulTo writes a·b into dst.
func MulTo(dst, a, b *Matrix) error { return matrix.MulTo(dst, a, b) }

// TransposeMul returns aᵗ·b.
func TransposeMul(a, b *Matrix) (*Matrix, error) { return matrix.TransposeMul(a, b) }

// TransposeMulTo writes aᵗ·b into dst.
func TransposeMulTo(dst, a, b *Matrix) error { return matrix.TransposeMulTo(dst, a, b) }

// MulTranspose returns a·bᵗ.
func MulTranspose(a, b *Matrix) (*Matrix, error) { return matrix.MulTranspose(a, b) }

// MulTransposeTo writes a·bᵗ into dst.
func MulTransposeTo(dst, a, b *Matrix) error { return matrix.MulTransposeTo(dst, a, b) }

// Transpose returns a materialized aᵗ.
func Transpose(a *Matrix) *Matrix { return matrix.Transpose(a) }

// Elementwise

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) { return matrix.Add(a, b) }

// AddTo writes a + b into dst, which may be a or b.
func AddTo(dst, a, b *Matrix) error { return matrix.AddTo(dst, a, b) }

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) { return matrix.Sub(a, b) }

// SubTo writes a - b into dst, which may be a or b.
func SubTo(dst, a, b *Matrix) error { return matrix.SubTo(dst, a, b) }

// Hadamard returns the elementwise product a ⊙ b.
func Hadamard(a, b *Matrix) (*Matrix, error) { return matrix.Hadamard(a, b) }

// HadamardTo writes a ⊙ b into dst, which may be a or b.
func HadamardTo(dst, a, b *Matrix) error { return matrix.HadamardTo(dst, a, b) }

// Scale returns s·a.
func Scale(a *Matrix, s float64) *Matrix { return matrix.Scale(a, s) }

// ScaleTo writes s·a into dst, which may be a.
func ScaleTo(dst, a *Matrix, s float64) error { return matrix.ScaleTo(dst, a, s) }

// Apply returns fn applied to every element of a.
func Apply(a *Matrix, fn func(float64) float64) *Matrix { return matrix.Apply(a, fn) }

// ApplyTo writes fn applied to every element of a into dst.
func ApplyTo(dst, a *Matrix, fn func(float64) float64) error { return matrix.ApplyTo(dst, a, fn) }

// Reductions

// MaxIndex returns the flat index of the first maximal element.
func MaxIndex(m *Matrix) int { return matrix.MaxIndex(m) }

// CompareMax reports whether want and got peak at the same index.
func CompareMax(want, got *Matrix) (bool, error) { return matrix.CompareMax(want, got) }

// CompareBool reports whether a 1x1 prediction rounds to a 1x1 0/1 target.
func CompareBool(correct, predicted *Matrix) (bool, error) {
	return matrix.CompareBool(correct, predicted)
}

// QuadraticCost returns ½·Σ(yᵢ − aᵢ)².
func QuadraticCost(y, a *Matrix) (float64, error) { return matrix.QuadraticCost(y, a) }

// Activations

// Sigmoid returns 1 / (1 + e^-x).
func Sigmoid(x float64) float64 { return matrix.Sigmoid(x) }

// SigmoidPrime returns the derivative of Sigmoid at x.
func SigmoidPrime(x float64) float64 { return matrix.SigmoidPrime(x) }

// Random

// NewSampler returns a Sampler with a fixed seed.
func NewSampler(seed uint64) *Sampler { return matrix.NewSampler(seed) }

// DefaultSampler returns the process-wide Sampler, seeded once from the
// clock.
func DefaultSampler() *Sampler { return matrix.Default() }
