package matrix

import "errors"

// Sentinel errors returned by the matrix engine and by the packages built on
// it. Callers match them with errors.Is; context is added with %w.
var (
	// ErrConfiguration reports an invalid construction request: non-positive
	// dimensions, a value list that does not fill the declared shape, an empty
	// layer list or incompatible adjacent layers.
	ErrConfiguration = errors.New("matrix: invalid configuration")

	// ErrShapeMismatch reports operands or buffers whose dimensions violate an
	// operation's precondition.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfRange reports element, row or column access outside the grid.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrAliasedBuffer reports a product whose output buffer shares storage
	// with one of its operands.
	ErrAliasedBuffer = errors.New("matrix: output buffer aliases an operand")
)
