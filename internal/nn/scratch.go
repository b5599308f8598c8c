package nn

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// Scratch is per-layer working state owned by the training loop.
//
// It is a closed set of variants: NoScratch, *MatrixScratch and
// *PairScratch. The network passes scratch values around without looking
// inside; each layer asserts the variant it allocated.
type Scratch interface {
	scratch()
}

// NoScratch is the scratch of a layer that needs none.
type NoScratch struct{}

// MatrixScratch holds a single matrix, such as a cached input or a gradient
// accumulator.
type MatrixScratch struct {
	M *matrix.Matrix
}

// PairScratch holds two matrices, such as a gradient accumulator and the
// buffer a gradient term is computed into before being accumulated.
type PairScratch struct {
	First  *matrix.Matrix
	Second *matrix.Matrix
}

func (NoScratch) scratch()      {}
func (*MatrixScratch) scratch() {}
func (*PairScratch) scratch()   {}

// ReleaseScratch drops the matrices held by s so the memory can be
// reclaimed. A released scratch must not be reused.
func ReleaseScratch(s Scratch) {
	switch v := s.(type) {
	case *MatrixScratch:
		v.M = nil
	case *PairScratch:
		v.First, v.Second = nil, nil
	}
}

func releaseAll(scratch []Scratch) {
	for i, s := range scratch {
		ReleaseScratch(s)
		scratch[i] = nil
	}
}

func asMatrixScratch(layer string, s Scratch) (*MatrixScratch, error) {
	v, ok := s.(*MatrixScratch)
	if !ok || v.M == nil {
		return nil, fmt.Errorf("%s: %w: want *MatrixScratch, got %T", layer, ErrScratchKind, s)
	}
	return v, nil
}

func asPairScratch(layer string, s Scratch) (*PairScratch, error) {
	v, ok := s.(*PairScratch)
	if !ok || v.First == nil || v.Second == nil {
		return nil, fmt.Errorf("%s: %w: want *PairScratch, got %T", layer, ErrScratchKind, s)
	}
	return v, nil
}

// zeros allocates a zero matrix of a shape already validated by a layer
// constructor.
func zeros(s matrix.Shape) *matrix.Matrix {
	return matrix.Must(matrix.New(s.Height, s.Width))
}
