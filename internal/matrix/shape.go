package matrix

import (
	"fmt"
	"math"
)

// Shape is the height and width of a matrix.
type Shape struct {
	Height int
	Width  int
}

// Size returns the number of elements a matrix of this shape holds.
func (s Shape) Size() int {
	return s.Height * s.Width
}

// Validate checks that both dimensions are positive and that the element
// count fits in an int.
func (s Shape) Validate() error {
	if s.Height <= 0 || s.Width <= 0 {
		return fmt.Errorf("%w: shape %v must have positive dimensions", ErrConfiguration, s)
	}
	if s.Height > math.MaxInt/s.Width {
		return fmt.Errorf("%w: shape %v has too many elements", ErrConfiguration, s)
	}
	return nil
}

// Equal reports whether two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	return s.Height == other.Height && s.Width == other.Width
}

// String formats the shape as HEIGHTxWIDTH.
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Height, s.Width)
}

// mismatch builds a shape error for operation op.
func mismatch(op string, a, b Shape) error {
	return fmt.Errorf("%s: %w: %v vs %v", op, ErrShapeMismatch, a, b)
}

// Checked reports whether element access and arithmetic validate their
// preconditions in this build.
func Checked() bool {
	return checked
}
