// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"io"

	"github.com/born-ml/backprop/internal/data"
	"github.com/born-ml/backprop/internal/matrix"
)

// Dataset is an immutable list of samples with uniform shapes.
type Dataset = data.Dataset

// Sample is one (input, target) pair.
type Sample = data.Sample

// MNISTClasses is the number of digit classes in MNIST.
const MNISTClasses = data.MNISTClasses

// Errors
var (
	ErrResource  = data.ErrResource
	ErrMalformed = data.ErrMalformed
)

// New builds a dataset from samples with uniform shapes.
func New(samples []Sample) (*Dataset, error) {
	return data.New(samples)
}

// ReadIDX decodes IDX image and label streams.
func ReadIDX(images, labels io.Reader, classes int) (*Dataset, error) {
	return data.ReadIDX(images, labels, classes)
}

// LoadIDX reads IDX image and label files.
func LoadIDX(imagesPath, labelsPath string, classes int) (*Dataset, error) {
	return data.LoadIDX(imagesPath, labelsPath, classes)
}

// LoadMNIST loads the MNIST training (train=true) or test set from dir.
func LoadMNIST(dir string, train bool) (*Dataset, error) {
	return data.LoadMNIST(dir, train)
}

// XOR generates n random exclusive-or samples.
func XOR(n int, s *matrix.Sampler) (*Dataset, error) {
	return data.XOR(n, s)
}

// Synthetic returns ten MNIST-shaped samples, one per class.
func Synthetic() *Dataset {
	return data.Synthetic()
}
