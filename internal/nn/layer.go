// Package nn implements the layer stack and the mini-batch SGD trainer.
//
// This package provides:
//   - Layer: the capability set every network stage implements
//   - Weights, Biases, Sigmoid: the concrete layers
//   - Scratch: per-layer working state threaded through training
//   - Network: a linear stack of layers with Evaluate, Test, Cost and Train
//
// Layers never know about each other. The network owns the data flow: it
// allocates every buffer and every scratch value, hands them to the layers,
// and drops them when a batch or a training run is over.
package nn

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// Layer is a single transformation stage in a network.
//
// Input and output shapes are fixed at construction.
//
// Evaluate, EvaluateTo, Feedforward and Backprop never mutate the layer:
// all working state lives in caller-supplied buffers and scratch, so they
// are safe to call concurrently on one layer as long as each caller owns
// its buffers and scratch. Update mutates parameters and must not overlap
// any other call on the same layer.
type Layer interface {
	// InputShape returns the shape of the matrices this layer accepts.
	InputShape() matrix.Shape

	// OutputShape returns the shape of the matrices this layer produces.
	OutputShape() matrix.Shape

	// Evaluate returns the layer's output for input.
	Evaluate(input *matrix.Matrix) (*matrix.Matrix, error)

	// EvaluateTo writes the layer's output for input into output.
	EvaluateTo(output, input *matrix.Matrix) error

	// Clone returns an independent deep copy of the layer.
	Clone() Layer

	// NewIterationScratch allocates the state one sample's
	// Feedforward/Backprop pair shares.
	NewIterationScratch() Scratch

	// NewBatchScratch allocates the gradient accumulator that persists
	// across a mini-batch.
	NewBatchScratch() Scratch

	// Feedforward writes the layer's output for input into output and
	// records in iteration whatever Backprop will need.
	Feedforward(output, input *matrix.Matrix, iteration, batch Scratch) error

	// Backprop takes the error gradient with respect to the layer's output
	// (errIn), accumulates the layer's parameter gradient into batch and
	// writes the error gradient with respect to the layer's input into
	// errOut.
	Backprop(errOut, errIn *matrix.Matrix, iteration, batch Scratch) error

	// Update applies the accumulated gradient, scaled by learningRate, to
	// the layer's parameters and resets the accumulator to zero.
	Update(batch Scratch, learningRate float64) error
}

// Dataset is an indexable sequence of (input, target) pairs with uniform
// shapes.
type Dataset interface {
	Len() int
	InputShape() matrix.Shape
	OutputShape() matrix.Shape
	Sample(i int) (input, target *matrix.Matrix)
}

// CompareFunc decides whether a prediction counts as correct for target.
// matrix.CompareBool and matrix.CompareMax satisfy it.
type CompareFunc func(target, predicted *matrix.Matrix) (bool, error)

// CostFunc measures the cost of a prediction against target.
// matrix.QuadraticCost satisfies it.
type CostFunc func(target, predicted *matrix.Matrix) (float64, error)

// checkShape returns ErrShapeMismatch when m is not shaped like want.
func checkShape(op string, want matrix.Shape, m *matrix.Matrix) error {
	if !m.Shape().Equal(want) {
		return fmt.Errorf("%s: %w: expected %v, got %v", op, matrix.ErrShapeMismatch, want, m.Shape())
	}
	return nil
}
