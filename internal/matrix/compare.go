package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MaxIndex returns the flat index of the largest element. Ties resolve to the
// lowest index.
func MaxIndex(m *Matrix) int {
	return floats.MaxIdx(m.data)
}

// CompareMax reports whether want and got have their maximum at the same flat
// index. It is the correctness check for one-hot classification targets.
func CompareMax(want, got *Matrix) (bool, error) {
	if !want.Shape().Equal(got.Shape()) {
		return false, mismatch("CompareMax", want.Shape(), got.Shape())
	}
	return MaxIndex(want) == MaxIndex(got), nil
}

// CompareBool checks a single-element prediction against a single-element
// boolean target. correct must hold exactly 0 or 1; a prediction of 0.5 or
// more counts as 1.
func CompareBool(correct, predicted *Matrix) (bool, error) {
	if correct.Size() != 1 || predicted.Size() != 1 {
		return false, fmt.Errorf("CompareBool: %w: operands must be 1x1, got %v and %v",
			ErrShapeMismatch, correct.Shape(), predicted.Shape())
	}
	want, got := correct.data[0], predicted.data[0]
	switch want {
	case 0:
		return got < 0.5, nil
	case 1:
		return got >= 0.5, nil
	default:
		return false, fmt.Errorf("CompareBool: %w: target %v is not 0 or 1", ErrShapeMismatch, want)
	}
}

// QuadraticCost returns ½·Σ(yᵢ − aᵢ)² for two column vectors of equal height.
func QuadraticCost(y, a *Matrix) (float64, error) {
	if y.width != 1 || a.width != 1 {
		return 0, fmt.Errorf("QuadraticCost: %w: operands must be column vectors, got %v and %v",
			ErrShapeMismatch, y.Shape(), a.Shape())
	}
	if len(y.data) != len(a.data) {
		return 0, mismatch("QuadraticCost", y.Shape(), a.Shape())
	}
	sum := 0.0
	for i, v := range y.data {
		d := v - a.data[i]
		sum += d * d
	}
	return 0.5 * sum, nil
}
