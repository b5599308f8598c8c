package data

import "github.com/born-ml/backprop/internal/matrix"

// Synthetic returns a tiny MNIST-shaped dataset for exercising the training
// pipeline without the real files.
//
// It contains one 784x1 sample per digit class. Sample i is a bright band
// starting at row 2i of a 28x28 image; the target is one-hot class i.
// This is NOT realistic MNIST data.
func Synthetic() *Dataset {
	const side = 28
	samples := make([]Sample, MNISTClasses)
	for i := range samples {
		pixels := make([]float64, side*side)
		startRow := i * 2
		for row := startRow; row < startRow+8 && row < side; row++ {
			for col := 5; col < 23; col++ {
				pixels[row*side+col] = 0.8
			}
		}
		samples[i] = Sample{
			Input:  matrix.Must(matrix.NewFromSlice(pixels, 1)),
			Target: matrix.Must(matrix.OneHot(MNISTClasses, 1, i, 0)),
		}
	}
	ds, err := New(samples)
	if err != nil {
		panic(err)
	}
	return ds
}
