// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides training datasets for the nn package.
//
// # Overview
//
// This package contains:
//   - Dataset: an immutable list of (input, target) samples with uniform shapes
//   - IDX loading: ReadIDX, LoadIDX, LoadMNIST
//   - Generators: XOR, Synthetic
//
// # MNIST
//
// Download the four IDX files from http://yann.lecun.com/exdb/mnist/ and
// unpack them into one directory:
//
//	train, err := data.LoadMNIST("./data", true)  // 60,000 samples
//	test, err := data.LoadMNIST("./data", false)  // 10,000 samples
//
// Each input is a 784x1 column of pixels scaled to [0, 1) and each target a
// one-hot 10x1 column.
//
// # Derived Datasets
//
//	shuffled := train.Shuffle(sampler)
//	small, err := train.Trim(1000)
//	fit, validation, err := train.Split(0.2)
package data
