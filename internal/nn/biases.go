package nn

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/optim"
)

// Biases adds a trainable offset: y = x + b.
type Biases struct {
	b *matrix.Matrix
}

// NewBiases creates a zero-filled Biases layer of the given shape.
func NewBiases(height, width int) (*Biases, error) {
	b, err := matrix.New(height, width)
	if err != nil {
		return nil, fmt.Errorf("NewBiases: %w", err)
	}
	return &Biases{b: b}, nil
}

// NewBiasesFrom creates a Biases layer holding a copy of b.
func NewBiasesFrom(b *matrix.Matrix) *Biases {
	return &Biases{b: b.Clone()}
}

// Parameters returns a copy of b.
func (l *Biases) Parameters() *matrix.Matrix {
	return l.b.Clone()
}

// InputShape returns the shape of b.
func (l *Biases) InputShape() matrix.Shape { return l.b.Shape() }

// OutputShape equals InputShape.
func (l *Biases) OutputShape() matrix.Shape { return l.b.Shape() }

// Evaluate returns input + b.
func (l *Biases) Evaluate(input *matrix.Matrix) (*matrix.Matrix, error) {
	if err := checkShape("Biases.Evaluate", l.b.Shape(), input); err != nil {
		return nil, err
	}
	return matrix.Add(input, l.b)
}

// EvaluateTo writes input + b into output.
func (l *Biases) EvaluateTo(output, input *matrix.Matrix) error {
	return matrix.AddTo(output, input, l.b)
}

// Clone returns a layer with its own copy of b.
func (l *Biases) Clone() Layer {
	return &Biases{b: l.b.Clone()}
}

// NewIterationScratch returns NoScratch; the bias gradient does not depend
// on the input.
func (l *Biases) NewIterationScratch() Scratch {
	return NoScratch{}
}

// NewBatchScratch allocates the gradient accumulator.
func (l *Biases) NewBatchScratch() Scratch {
	return &MatrixScratch{M: zeros(l.b.Shape())}
}

// Feedforward writes input + b into output.
func (l *Biases) Feedforward(output, input *matrix.Matrix, iteration, _ Scratch) error {
	if _, ok := iteration.(NoScratch); !ok {
		return fmt.Errorf("Biases.Feedforward: %w: want NoScratch, got %T", ErrScratchKind, iteration)
	}
	return matrix.AddTo(output, input, l.b)
}

// Backprop accumulates errIn and passes it through unchanged.
func (l *Biases) Backprop(errOut, errIn *matrix.Matrix, _, batch Scratch) error {
	grad, err := asMatrixScratch("Biases.Backprop", batch)
	if err != nil {
		return err
	}
	if err := matrix.AddTo(grad.M, grad.M, errIn); err != nil {
		return err
	}
	return errOut.CopyFrom(errIn)
}

// Update applies b -= learningRate·grad and resets grad.
func (l *Biases) Update(batch Scratch, learningRate float64) error {
	grad, err := asMatrixScratch("Biases.Update", batch)
	if err != nil {
		return err
	}
	return optim.SGD(l.b, grad.M, grad.M, learningRate)
}
