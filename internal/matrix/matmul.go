package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Mul returns the matrix product a·b.
// Requires a.Width() == b.Height(); the result is a.Height()×b.Width().
func Mul(a, b *Matrix) (*Matrix, error) {
	if checked && a.width != b.Height() {
		return nil, mismatch("Mul", a.Shape(), b.Shape())
	}
	dst := &Matrix{data: make([]float64, a.Height()*b.width), width: b.width}
	mulKernel(dst.data, a.data, b.data, a.Height(), a.width, b.width)
	return dst, nil
}

// MulTo writes a·b into dst, which must be a.Height()×b.Width() and must not
// share storage with a or b.
func MulTo(dst, a, b *Matrix) error {
	if checked {
		if a.width != b.Height() {
			return mismatch("MulTo", a.Shape(), b.Shape())
		}
		if err := productBuffer("MulTo", dst, a, b, Shape{a.Height(), b.width}); err != nil {
			return err
		}
	}
	mulKernel(dst.data, a.data, b.data, a.Height(), a.width, b.width)
	return nil
}

// TransposeMul returns aᵗ·b without materializing aᵗ.
// Requires a.Height() == b.Height(); the result is a.Width()×b.Width().
func TransposeMul(a, b *Matrix) (*Matrix, error) {
	if checked && a.Height() != b.Height() {
		return nil, mismatch("TransposeMul", a.Shape(), b.Shape())
	}
	dst := &Matrix{data: make([]float64, a.width*b.width), width: b.width}
	transposeMulKernel(dst.data, a.data, b.data, a.Height(), a.width, b.width)
	return dst, nil
}

// TransposeMulTo writes aᵗ·b into dst, which must be a.Width()×b.Width() and
// must not share storage with a or b.
func TransposeMulTo(dst, a, b *Matrix) error {
	if checked {
		if a.Height() != b.Height() {
			return mismatch("TransposeMulTo", a.Shape(), b.Shape())
		}
		if err := productBuffer("TransposeMulTo", dst, a, b, Shape{a.width, b.width}); err != nil {
			return err
		}
	}
	transposeMulKernel(dst.data, a.data, b.data, a.Height(), a.width, b.width)
	return nil
}

// MulTranspose returns a·bᵗ without materializing bᵗ.
// Requires a.Width() == b.Width(); the result is a.Height()×b.Height().
func MulTranspose(a, b *Matrix) (*Matrix, error) {
	if checked && a.width != b.width {
		return nil, mismatch("MulTranspose", a.Shape(), b.Shape())
	}
	dst := &Matrix{data: make([]float64, a.Height()*b.Height()), width: b.Height()}
	mulTransposeKernel(dst.data, a.data, b.data, a.Height(), b.Height(), a.width)
	return dst, nil
}

// MulTransposeTo writes a·bᵗ into dst, which must be a.Height()×b.Height()
// and must not share storage with a or b.
func MulTransposeTo(dst, a, b *Matrix) error {
	if checked {
		if a.width != b.width {
			return mismatch("MulTransposeTo", a.Shape(), b.Shape())
		}
		if err := productBuffer("MulTransposeTo", dst, a, b, Shape{a.Height(), b.Height()}); err != nil {
			return err
		}
	}
	mulTransposeKernel(dst.data, a.data, b.data, a.Height(), b.Height(), a.width)
	return nil
}

// Transpose returns a materialized aᵗ.
func Transpose(a *Matrix) *Matrix {
	height := a.Height()
	dst := &Matrix{data: make([]float64, len(a.data)), width: height}
	for r := 0; r < height; r++ {
		for c := 0; c < a.width; c++ {
			dst.data[c*height+r] = a.data[r*a.width+c]
		}
	}
	return dst
}

// productBuffer validates the output buffer of a product.
func productBuffer(op string, dst, a, b *Matrix, want Shape) error {
	if !dst.Shape().Equal(want) {
		return fmt.Errorf("%s: buffer %w: got %v, want %v", op, ErrShapeMismatch, dst.Shape(), want)
	}
	if sharesStorage(dst, a) {
		return fmt.Errorf("%s: %w: left operand", op, ErrAliasedBuffer)
	}
	if sharesStorage(dst, b) {
		return fmt.Errorf("%s: %w: right operand", op, ErrAliasedBuffer)
	}
	return nil
}

// sharesStorage reports whether two matrices are the same object or are
// backed by the same array.
func sharesStorage(x, y *Matrix) bool {
	return x == y || &x.data[0] == &y.data[0]
}

// mulKernel computes c = a·b for a (m×k) and b (k×n).
func mulKernel(c, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		row := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			sum := 0.0
			for kIdx, av := range row {
				sum += av * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// transposeMulKernel computes c = aᵗ·b for a (k×m) and b (k×n).
func transposeMulKernel(c, a, b []float64, k, m, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[kIdx*m+i] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// mulTransposeKernel computes c = a·bᵗ for a (m×k) and b (n×k). Rows of both
// operands are contiguous, so each element is a single dot product.
func mulTransposeKernel(c, a, b []float64, m, n, k int) {
	for i := 0; i < m; i++ {
		row := a[i*k : (i+1)*k]
		for j := 0; j < n; j++ {
			c[i*n+j] = floats.Dot(row, b[j*k:(j+1)*k])
		}
	}
}
