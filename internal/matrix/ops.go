package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Elementwise operations. Buffer forms may write into one of their operands.

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) {
	dst := a.blank()
	if err := AddTo(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// AddTo writes a + b into dst.
func AddTo(dst, a, b *Matrix) error {
	if err := elementwiseShapes("AddTo", dst, a, b); err != nil {
		return err
	}
	floats.AddTo(dst.data, a.data, b.data)
	return nil
}

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) {
	dst := a.blank()
	if err := SubTo(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// SubTo writes a - b into dst.
func SubTo(dst, a, b *Matrix) error {
	if err := elementwiseShapes("SubTo", dst, a, b); err != nil {
		return err
	}
	floats.SubTo(dst.data, a.data, b.data)
	return nil
}

// Hadamard returns the elementwise product of a and b.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	dst := a.blank()
	if err := HadamardTo(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// HadamardTo writes the elementwise product of a and b into dst.
func HadamardTo(dst, a, b *Matrix) error {
	if err := elementwiseShapes("HadamardTo", dst, a, b); err != nil {
		return err
	}
	floats.MulTo(dst.data, a.data, b.data)
	return nil
}

// Scale returns s·a.
func Scale(a *Matrix, s float64) *Matrix {
	dst := a.blank()
	floats.ScaleTo(dst.data, s, a.data)
	return dst
}

// ScaleTo writes s·a into dst.
func ScaleTo(dst, a *Matrix, s float64) error {
	if checked && !dst.Shape().Equal(a.Shape()) {
		return mismatch("ScaleTo", dst.Shape(), a.Shape())
	}
	floats.ScaleTo(dst.data, s, a.data)
	return nil
}

// Apply returns a new matrix holding fn applied to every element of a.
func Apply(a *Matrix, fn func(float64) float64) *Matrix {
	dst := a.blank()
	for i, v := range a.data {
		dst.data[i] = fn(v)
	}
	return dst
}

// ApplyTo writes fn applied to every element of a into dst. dst may be a.
func ApplyTo(dst, a *Matrix, fn func(float64) float64) error {
	if checked && !dst.Shape().Equal(a.Shape()) {
		return mismatch("ApplyTo", dst.Shape(), a.Shape())
	}
	for i, v := range a.data {
		dst.data[i] = fn(v)
	}
	return nil
}

// blank returns a zero matrix shaped like m.
func (m *Matrix) blank() *Matrix {
	return &Matrix{data: make([]float64, len(m.data)), width: m.width}
}

func elementwiseShapes(op string, dst, a, b *Matrix) error {
	if !checked {
		return nil
	}
	if !a.Shape().Equal(b.Shape()) {
		return mismatch(op, a.Shape(), b.Shape())
	}
	if !dst.Shape().Equal(a.Shape()) {
		return fmt.Errorf("%s: buffer %w: %v vs %v", op, ErrShapeMismatch, dst.Shape(), a.Shape())
	}
	return nil
}
