package nn

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/optim"
)

// Weights is a fully connected layer without bias: y = W·x.
//
// W is outputHeight×inputHeight and the pipeline carries column vectors, so
// the layer maps inputHeight×1 to outputHeight×1.
//
// Example:
//
//	w, err := nn.NewWeights(784, 30, nil) // N(0, 0.6²) weights
//	y, err := w.Evaluate(x)               // 30x1
type Weights struct {
	w *matrix.Matrix
}

// NewWeights creates a Weights layer mapping inputHeight×1 to
// outputHeight×1.
//
// Parameters:
//   - inputHeight: Number of input units
//   - outputHeight: Number of output units
//   - init: Fill function for W in row-major order; nil selects DefaultInit
//
// Returns ErrConfiguration for non-positive sizes.
func NewWeights(inputHeight, outputHeight int, init Initializer) (*Weights, error) {
	if init == nil {
		init = DefaultInit()
	}
	w, err := matrix.NewFunc(outputHeight, inputHeight, init)
	if err != nil {
		return nil, fmt.Errorf("NewWeights: %w", err)
	}
	return &Weights{w: w}, nil
}

// NewWeightsFrom creates a Weights layer holding a copy of w.
func NewWeightsFrom(w *matrix.Matrix) *Weights {
	return &Weights{w: w.Clone()}
}

// Parameters returns a copy of W.
func (l *Weights) Parameters() *matrix.Matrix {
	return l.w.Clone()
}

// InputShape returns inputHeight×1.
func (l *Weights) InputShape() matrix.Shape {
	return matrix.Shape{Height: l.w.Width(), Width: 1}
}

// OutputShape returns outputHeight×1.
func (l *Weights) OutputShape() matrix.Shape {
	return matrix.Shape{Height: l.w.Height(), Width: 1}
}

// Evaluate returns W·input.
func (l *Weights) Evaluate(input *matrix.Matrix) (*matrix.Matrix, error) {
	if err := checkShape("Weights.Evaluate", l.InputShape(), input); err != nil {
		return nil, err
	}
	return matrix.Mul(l.w, input)
}

// EvaluateTo writes W·input into output.
func (l *Weights) EvaluateTo(output, input *matrix.Matrix) error {
	return matrix.MulTo(output, l.w, input)
}

// Clone returns a deep copy.
func (l *Weights) Clone() Layer {
	return &Weights{w: l.w.Clone()}
}

// NewIterationScratch allocates the cached input.
func (l *Weights) NewIterationScratch() Scratch {
	return &MatrixScratch{M: zeros(l.InputShape())}
}

// NewBatchScratch allocates the gradient accumulator and the buffer each
// per-sample gradient is computed into.
func (l *Weights) NewBatchScratch() Scratch {
	return &PairScratch{First: zeros(l.w.Shape()), Second: zeros(l.w.Shape())}
}

// Feedforward caches input and writes W·input into output.
func (l *Weights) Feedforward(output, input *matrix.Matrix, iteration, _ Scratch) error {
	cache, err := asMatrixScratch("Weights.Feedforward", iteration)
	if err != nil {
		return err
	}
	if err := cache.M.CopyFrom(input); err != nil {
		return err
	}
	return matrix.MulTo(output, l.w, input)
}

// Backprop accumulates errIn·inputᵗ and writes Wᵗ·errIn into errOut.
func (l *Weights) Backprop(errOut, errIn *matrix.Matrix, iteration, batch Scratch) error {
	cache, err := asMatrixScratch("Weights.Backprop", iteration)
	if err != nil {
		return err
	}
	grad, err := asPairScratch("Weights.Backprop", batch)
	if err != nil {
		return err
	}
	if err := matrix.MulTransposeTo(grad.Second, errIn, cache.M); err != nil {
		return err
	}
	if err := matrix.AddTo(grad.First, grad.First, grad.Second); err != nil {
		return err
	}
	return matrix.TransposeMulTo(errOut, l.w, errIn)
}

// Update applies W -= learningRate·grad and resets grad.
func (l *Weights) Update(batch Scratch, learningRate float64) error {
	grad, err := asPairScratch("Weights.Update", batch)
	if err != nil {
		return err
	}
	return optim.SGD(l.w, grad.First, grad.Second, learningRate)
}
