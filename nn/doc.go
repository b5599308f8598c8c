// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers and the network trained by backpropagation.
//
// # Overview
//
// This package contains:
//   - Layers: Weights (y = W·x), Biases (y = x + b), Sigmoid
//   - Network: a linear stack of layers with Evaluate, Test, Cost and Train
//   - Scratch: per-layer working state allocated by the training loop
//   - Initialization: Normal, Xavier, Zeros
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/backprop/data"
//	    "github.com/born-ml/backprop/matrix"
//	    "github.com/born-ml/backprop/nn"
//	)
//
//	func main() {
//	    s := matrix.NewSampler(1)
//	    w1, _ := nn.NewWeights(784, 30, nn.Normal(s, 0.6))
//	    b1, _ := nn.NewBiases(30, 1)
//	    a1, _ := nn.NewSigmoid(30, 1)
//	    w2, _ := nn.NewWeights(30, 10, nn.Normal(s, 0.6))
//	    b2, _ := nn.NewBiases(10, 1)
//	    a2, _ := nn.NewSigmoid(10, 1)
//
//	    net, _ := nn.NewNetwork(w1, b1, a1, w2, b2, a2)
//
//	    train, _ := data.LoadMNIST("./data", true)
//	    test, _ := data.LoadMNIST("./data", false)
//	    for epoch := 0; epoch < 30; epoch++ {
//	        _ = net.Train(train.Shuffle(s), 0.1, 10)
//	    }
//	    correct, _ := net.Test(test, matrix.CompareMax)
//	}
//
// # Training
//
// Train runs one epoch of mini-batch gradient descent. Each sample is fed
// forward through every layer, its error (prediction minus target) is fed
// backward, and each layer accumulates its parameter gradient in batch
// scratch. After every batch the layers apply
//
//	θ -= learningRate · Σ ∂C/∂θ
//
// where C = ½‖a − y‖² per sample. Samples past the last full batch are
// skipped.
//
// # Concurrency
//
// Train and Update mutate the network and must not overlap other calls.
// Evaluate, Test, TestConcurrent and Cost only read it; TestConcurrent
// evaluates chunks of the dataset on separate goroutines.
package nn
