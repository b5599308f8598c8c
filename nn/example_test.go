// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"fmt"

	"github.com/born-ml/backprop/matrix"
	"github.com/born-ml/backprop/nn"
)

func ExampleNewNetwork() {
	w := nn.NewWeightsFrom(matrix.Must(matrix.NewWithValues(1, 2, 2, -2)))
	b := nn.NewBiasesFrom(matrix.Must(matrix.NewWithValues(1, 1, 0)))
	a, err := nn.NewSigmoid(1, 1)
	if err != nil {
		panic(err)
	}

	net, err := nn.NewNetwork(w, b, a)
	if err != nil {
		panic(err)
	}
	out, err := net.Evaluate(matrix.Must(matrix.NewWithValues(2, 1, 1, 1)))
	if err != nil {
		panic(err)
	}
	fmt.Println(net.InputShape(), net.OutputShape(), out.Data())
	// Output: 2x1 1x1 [0.5]
}

func ExampleNewNetwork_incompatible() {
	w1, _ := nn.NewWeights(2, 3, nn.Zeros())
	w2, _ := nn.NewWeights(5, 1, nn.Zeros())

	_, err := nn.NewNetwork(w1, w2)
	fmt.Println(err)
	// Output: NewNetwork: matrix: invalid configuration: adjacent layer shapes differ: layer 0 outputs 3x1, layer 1 expects 5x1
}
