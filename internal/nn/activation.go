package nn

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// Sigmoid is an element-wise logistic activation.
//
// Applies σ(x) = 1 / (1 + exp(-x)), squashing values to (0, 1). It has no
// trainable parameters.
//
// Example:
//
//	act, err := nn.NewSigmoid(30, 1)
//	y, err := act.Evaluate(x) // values in (0, 1)
type Sigmoid struct {
	shape matrix.Shape
}

// NewSigmoid creates a Sigmoid layer for height×width inputs.
func NewSigmoid(height, width int) (*Sigmoid, error) {
	shape := matrix.Shape{Height: height, Width: width}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("NewSigmoid: %w", err)
	}
	return &Sigmoid{shape: shape}, nil
}

// InputShape returns the shape the layer was built for.
func (l *Sigmoid) InputShape() matrix.Shape { return l.shape }

// OutputShape equals InputShape.
func (l *Sigmoid) OutputShape() matrix.Shape { return l.shape }

// Evaluate returns σ(input).
func (l *Sigmoid) Evaluate(input *matrix.Matrix) (*matrix.Matrix, error) {
	if err := checkShape("Sigmoid.Evaluate", l.shape, input); err != nil {
		return nil, err
	}
	return matrix.Apply(input, matrix.Sigmoid), nil
}

// EvaluateTo writes σ(input) into output.
func (l *Sigmoid) EvaluateTo(output, input *matrix.Matrix) error {
	return matrix.ApplyTo(output, input, matrix.Sigmoid)
}

// Clone returns a copy of the layer.
func (l *Sigmoid) Clone() Layer {
	c := *l
	return &c
}

// NewIterationScratch allocates the cached pre-activation input.
func (l *Sigmoid) NewIterationScratch() Scratch {
	return &MatrixScratch{M: zeros(l.shape)}
}

// NewBatchScratch returns NoScratch.
func (l *Sigmoid) NewBatchScratch() Scratch {
	return NoScratch{}
}

// Feedforward caches input and writes σ(input) into output.
func (l *Sigmoid) Feedforward(output, input *matrix.Matrix, iteration, _ Scratch) error {
	cache, err := asMatrixScratch("Sigmoid.Feedforward", iteration)
	if err != nil {
		return err
	}
	if err := cache.M.CopyFrom(input); err != nil {
		return err
	}
	return matrix.ApplyTo(output, input, matrix.Sigmoid)
}

// Backprop writes errIn ⊙ σ′(input) into errOut. errOut may alias errIn.
func (l *Sigmoid) Backprop(errOut, errIn *matrix.Matrix, iteration, _ Scratch) error {
	cache, err := asMatrixScratch("Sigmoid.Backprop", iteration)
	if err != nil {
		return err
	}
	if matrix.Checked() {
		if err := checkShape("Sigmoid.Backprop", l.shape, errIn); err != nil {
			return err
		}
		if err := checkShape("Sigmoid.Backprop", l.shape, errOut); err != nil {
			return err
		}
	}
	out, in := errOut.Data(), errIn.Data()
	for i, x := range cache.M.Data() {
		out[i] = in[i] * matrix.SigmoidPrime(x)
	}
	return nil
}

// Update is a no-op.
func (l *Sigmoid) Update(batch Scratch, _ float64) error {
	if _, ok := batch.(NoScratch); !ok {
		return fmt.Errorf("Sigmoid.Update: %w: want NoScratch, got %T", ErrScratchKind, batch)
	}
	return nil
}
