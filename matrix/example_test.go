// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"fmt"

	"github.com/born-ml/backprop/matrix"
)

func ExampleMul() {
	a := matrix.Must(matrix.NewWithValues(2, 3,
		1, 2, 3,
		4, 5, 6,
	))
	x := matrix.Must(matrix.NewWithValues(3, 1, 1, 0, -1))

	y, err := matrix.Mul(a, x)
	if err != nil {
		panic(err)
	}
	fmt.Print(y)
	// Output:
	// -2
	// -2
}

func ExampleTransposeMul() {
	a := matrix.Must(matrix.NewWithValues(2, 2,
		1, 2,
		3, 4,
	))
	e := matrix.Must(matrix.NewWithValues(2, 1, 1, 1))

	// aᵗ·e without building aᵗ.
	y, err := matrix.TransposeMul(a, e)
	if err != nil {
		panic(err)
	}
	fmt.Print(y)
	// Output:
	// 4
	// 6
}

func ExampleOneHot() {
	m, err := matrix.OneHot(4, 1, 2, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(matrix.MaxIndex(m), m.Data())
	// Output: 2 [0 0 1 0]
}

func ExampleCompareBool() {
	target := matrix.Must(matrix.NewWithValues(1, 1, 1))
	for _, p := range []float64{0.49, 0.5} {
		ok, _ := matrix.CompareBool(target, matrix.Must(matrix.NewWithValues(1, 1, p)))
		fmt.Println(p, ok)
	}
	// Output:
	// 0.49 false
	// 0.5 true
}

func ExampleAddTo() {
	a := matrix.Must(matrix.NewWithValues(1, 3, 1, 2, 3))
	b := matrix.Must(matrix.NewWithValues(1, 3, 10, 20, 30))

	// Elementwise buffers may alias an operand.
	if err := matrix.AddTo(a, a, b); err != nil {
		panic(err)
	}
	fmt.Print(a)
	// Output: 11 22 33
}
