// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/nn"
)

// Layer is a single transformation stage in a network.
type Layer = nn.Layer

// Dataset is an indexable sequence of (input, target) pairs.
type Dataset = nn.Dataset

// CompareFunc decides whether a prediction is correct.
type CompareFunc = nn.CompareFunc

// CostFunc measures the cost of a prediction.
type CostFunc = nn.CostFunc

// Initializer produces parameter values in row-major order.
type Initializer = nn.Initializer

// Scratch

// Scratch is per-layer working state owned by the training loop.
type Scratch = nn.Scratch

// NoScratch is the scratch of a layer that needs none.
type NoScratch = nn.NoScratch

// MatrixScratch holds one matrix.
type MatrixScratch = nn.MatrixScratch

// PairScratch holds two matrices.
type PairScratch = nn.PairScratch

// ReleaseScratch drops the matrices held by s.
func ReleaseScratch(s Scratch) {
	nn.ReleaseScratch(s)
}

// Errors
var (
	ErrEmptyNetwork       = nn.ErrEmptyNetwork
	ErrIncompatibleLayers = nn.ErrIncompatibleLayers
	ErrScratchKind        = nn.ErrScratchKind
)

// Layers

// Weights is a fully connected layer without bias.
type Weights = nn.Weights

// NewWeights creates a Weights layer mapping inputHeight×1 to
// outputHeight×1. A nil init draws from N(0, 0.6²).
//
// Example:
//
//	w, err := nn.NewWeights(784, 30, nn.Xavier(nil, 784, 30))
func NewWeights(inputHeight, outputHeight int, init Initializer) (*Weights, error) {
	return nn.NewWeights(inputHeight, outputHeight, init)
}

// NewWeightsFrom creates a Weights layer holding a copy of w.
func NewWeightsFrom(w *matrix.Matrix) *Weights {
	return nn.NewWeightsFrom(w)
}

// Biases adds a trainable offset.
type Biases = nn.Biases

// NewBiases creates a zero-filled Biases layer.
func NewBiases(height, width int) (*Biases, error) {
	return nn.NewBiases(height, width)
}

// NewBiasesFrom creates a Biases layer holding a copy of b.
func NewBiasesFrom(b *matrix.Matrix) *Biases {
	return nn.NewBiasesFrom(b)
}

// Sigmoid is an element-wise logistic activation.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid layer for height×width inputs.
func NewSigmoid(height, width int) (*Sigmoid, error) {
	return nn.NewSigmoid(height, width)
}

// Network

// Network is a linear stack of layers.
type Network = nn.Network

// NewNetwork clones layers into a new network.
func NewNetwork(layers ...Layer) (*Network, error) {
	return nn.NewNetwork(layers...)
}

// Initialization

// DefaultInit draws from N(0, 0.6²) using the process-wide sampler.
func DefaultInit() Initializer { return nn.DefaultInit() }

// Normal draws from N(0, stddev²).
func Normal(s *matrix.Sampler, stddev float64) Initializer { return nn.Normal(s, stddev) }

// Xavier draws from the Glorot uniform distribution.
func Xavier(s *matrix.Sampler, fanIn, fanOut int) Initializer { return nn.Xavier(s, fanIn, fanOut) }

// Zeros always returns 0.
func Zeros() Initializer { return nn.Zeros() }
