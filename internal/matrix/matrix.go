// Package matrix implements the dense float64 matrix engine used by the
// network trainer.
//
// Matrices are row-major: element (r, c) lives at flat index r*Width()+c.
// Every arithmetic operation comes in two forms: a value-returning form that
// allocates its result (Mul, Add, ...) and a buffer-writing form that fills a
// caller-supplied matrix of the exact output shape (MulTo, AddTo, ...). The
// buffer forms keep allocation out of training hot loops.
//
// Shape, index and aliasing checks are on by default and can be compiled out
// with the nocheck build tag. Constructors always validate.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a dense row-major grid of float64 values.
//
// The zero value is not usable; build matrices with New, NewFunc,
// NewFromSlice, NewWithValues or OneHot.
type Matrix struct {
	data  []float64 // len == height*width
	width int
}

// New returns a zero-filled height×width matrix.
func New(height, width int) (*Matrix, error) {
	if err := (Shape{height, width}).Validate(); err != nil {
		return nil, err
	}
	return &Matrix{data: make([]float64, height*width), width: width}, nil
}

// NewFunc returns a height×width matrix whose elements are produced by fn,
// called exactly height*width times in row-major index order.
func NewFunc(height, width int, fn func() float64) (*Matrix, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil fill function", ErrConfiguration)
	}
	m, err := New(height, width)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = fn()
	}
	return m, nil
}

// NewFromSlice returns a matrix holding a copy of values with the given width.
// The height is len(values)/width, so len(values) must be a positive multiple
// of width.
func NewFromSlice(values []float64, width int) (*Matrix, error) {
	if width <= 0 || len(values) == 0 {
		return nil, fmt.Errorf("%w: %d values with width %d", ErrConfiguration, len(values), width)
	}
	if len(values)%width != 0 {
		return nil, fmt.Errorf("%w: %d values do not divide into rows of %d", ErrConfiguration, len(values), width)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Matrix{data: data, width: width}, nil
}

// NewWithValues returns a height×width matrix filled from values in
// row-major order. len(values) must equal height*width.
//
// Example:
//
//	m, _ := matrix.NewWithValues(2, 2,
//	    1, 2,
//	    3, 4,
//	)
func NewWithValues(height, width int, values ...float64) (*Matrix, error) {
	if err := (Shape{height, width}).Validate(); err != nil {
		return nil, err
	}
	if len(values) != height*width {
		return nil, fmt.Errorf("%w: %d values for a %dx%d matrix", ErrConfiguration, len(values), height, width)
	}
	return NewFromSlice(values, width)
}

// OneHot returns a height×width matrix that is zero except for a single 1 at
// (row, col).
func OneHot(height, width, row, col int) (*Matrix, error) {
	m, err := New(height, width)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= height || col < 0 || col >= width {
		return nil, fmt.Errorf("OneHot(%d,%d): %w for %dx%d", row, col, ErrIndexOutOfRange, height, width)
	}
	m.data[row*width+col] = 1
	return m, nil
}

// Must returns m and panics if err is non-nil. It is intended for matrix
// literals whose shape is known to be valid.
func Must(m *Matrix, err error) *Matrix {
	if err != nil {
		panic(err)
	}
	return m
}

// Height returns the number of rows.
func (m *Matrix) Height() int {
	return len(m.data) / m.width
}

// Width returns the number of columns.
func (m *Matrix) Width() int {
	return m.width
}

// Size returns the number of elements.
func (m *Matrix) Size() int {
	return len(m.data)
}

// Shape returns the matrix dimensions.
func (m *Matrix) Shape() Shape {
	return Shape{Height: m.Height(), Width: m.width}
}

// Data returns the row-major backing slice without copying.
//
// WARNING: writes through the returned slice modify the matrix.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{data: data, width: m.width}
}

// CopyFrom overwrites m with the contents of src, which must have the same
// shape.
func (m *Matrix) CopyFrom(src *Matrix) error {
	if checked && !m.Shape().Equal(src.Shape()) {
		return mismatch("CopyFrom", m.Shape(), src.Shape())
	}
	copy(m.data, src.data)
	return nil
}

// Zero sets every element to 0.
func (m *Matrix) Zero() {
	clear(m.data)
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) (float64, error) {
	if checked && !m.inBounds(row, col) {
		return 0, fmt.Errorf("At(%d,%d): %w for %v", row, col, ErrIndexOutOfRange, m.Shape())
	}
	return m.data[row*m.width+col], nil
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float64) error {
	if checked && !m.inBounds(row, col) {
		return fmt.Errorf("Set(%d,%d): %w for %v", row, col, ErrIndexOutOfRange, m.Shape())
	}
	m.data[row*m.width+col] = v
	return nil
}

// AtIndex returns the element at flat row-major index i.
func (m *Matrix) AtIndex(i int) (float64, error) {
	if checked && (i < 0 || i >= len(m.data)) {
		return 0, fmt.Errorf("AtIndex(%d): %w for size %d", i, ErrIndexOutOfRange, len(m.data))
	}
	return m.data[i], nil
}

// SetIndex stores v at flat row-major index i.
func (m *Matrix) SetIndex(i int, v float64) error {
	if checked && (i < 0 || i >= len(m.data)) {
		return fmt.Errorf("SetIndex(%d): %w for size %d", i, ErrIndexOutOfRange, len(m.data))
	}
	m.data[i] = v
	return nil
}

func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && col < m.width && row < m.Height()
}

// Equal reports whether a and b have the same shape and identical elements.
func Equal(a, b *Matrix) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	for i, v := range a.data {
		if b.data[i] != v {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line with space-separated values.
func (m *Matrix) String() string {
	var sb strings.Builder
	height := m.Height()
	for r := 0; r < height; r++ {
		for c := 0; c < m.width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(m.data[r*m.width+c], 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
