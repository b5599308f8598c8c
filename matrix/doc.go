// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float64 matrix engine behind the
// backprop trainer.
//
// # Overview
//
// This package contains:
//   - Matrix: a row-major height×width grid of float64 values
//   - Products: Mul, TransposeMul (aᵗ·b), MulTranspose (a·bᵗ)
//   - Elementwise: Add, Sub, Hadamard, Scale, Apply
//   - Reductions: MaxIndex, CompareMax, CompareBool, QuadraticCost
//   - Random: Sampler, a seeded process-scoped generator
//
// # Basic Usage
//
//	import "github.com/born-ml/backprop/matrix"
//
//	func main() {
//	    a, _ := matrix.NewWithValues(2, 2,
//	        1, 2,
//	        3, 4,
//	    )
//	    x, _ := matrix.NewWithValues(2, 1, 1, 1)
//
//	    y, _ := matrix.Mul(a, x) // 2x1: [3 7]
//	}
//
// # Buffer Forms
//
// Every arithmetic operation has a form that writes into a caller-owned
// matrix of the exact output shape, for allocation-free inner loops:
//
//	dst, _ := matrix.New(2, 1)
//	err := matrix.MulTo(dst, a, x)
//
// Product buffers must not share storage with an operand
// (ErrAliasedBuffer). Elementwise buffers may be an operand, so
// matrix.AddTo(a, a, b) updates a in place.
//
// # Validation
//
// Shape, index and aliasing checks run by default. Building with
//
//	go build -tags nocheck
//
// compiles them out of element access and arithmetic; Checked reports
// which mode is active. Constructors always validate.
//
// # Errors
//
// Errors wrap one of ErrConfiguration, ErrShapeMismatch,
// ErrIndexOutOfRange or ErrAliasedBuffer and are matched with errors.Is.
package matrix
