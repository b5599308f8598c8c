package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementwise_KnownValues(t *testing.T) {
	a := Must(NewWithValues(2, 2, 1, 2, 3, 4))
	b := Must(NewWithValues(2, 2, 5, 6, 7, 8))

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8, 10, 12}, sum.Data())

	diff, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-4, -4, -4, -4}, diff.Data())

	prod, err := Hadamard(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 12, 21, 32}, prod.Data())

	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, Scale(a, 0.5).Data())
	assert.Equal(t, []float64{1, 4, 9, 16}, Apply(a, func(x float64) float64 { return x * x }).Data())

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
}

func TestElementwise_BufferMatchesValue(t *testing.T) {
	s := NewSampler(10)
	a := Must(NewFunc(3, 2, s.Normal(1)))
	b := Must(NewFunc(3, 2, s.Normal(1)))

	tests := []struct {
		name  string
		value func() *Matrix
		into  func(dst *Matrix) error
	}{
		{"Add", func() *Matrix { return Must(Add(a, b)) }, func(dst *Matrix) error { return AddTo(dst, a, b) }},
		{"Sub", func() *Matrix { return Must(Sub(a, b)) }, func(dst *Matrix) error { return SubTo(dst, a, b) }},
		{"Hadamard", func() *Matrix { return Must(Hadamard(a, b)) }, func(dst *Matrix) error { return HadamardTo(dst, a, b) }},
		{"Scale", func() *Matrix { return Scale(a, -2.5) }, func(dst *Matrix) error { return ScaleTo(dst, a, -2.5) }},
		{"Apply", func() *Matrix { return Apply(a, Sigmoid) }, func(dst *Matrix) error { return ApplyTo(dst, a, Sigmoid) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := Must(New(3, 2))
			require.NoError(t, tt.into(dst))
			assert.True(t, Equal(tt.value(), dst))
		})
	}
}

func TestElementwise_InPlace(t *testing.T) {
	a := Must(NewWithValues(1, 3, 1, 2, 3))
	b := Must(NewWithValues(1, 3, 1, 1, 1))

	require.NoError(t, AddTo(a, a, b))
	assert.Equal(t, []float64{2, 3, 4}, a.Data())

	require.NoError(t, HadamardTo(a, a, a))
	assert.Equal(t, []float64{4, 9, 16}, a.Data())

	require.NoError(t, ApplyTo(a, a, math.Sqrt))
	assert.Equal(t, []float64{2, 3, 4}, a.Data())

	require.NoError(t, ScaleTo(a, a, 2))
	assert.Equal(t, []float64{4, 6, 8}, a.Data())
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	skipUnchecked(t)
	a := Must(New(2, 3))
	b := Must(New(3, 2))

	_, err := Add(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Sub(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Hadamard(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	assert.ErrorIs(t, AddTo(b, a, a), ErrShapeMismatch)
	assert.ErrorIs(t, SubTo(b, a, a), ErrShapeMismatch)
	assert.ErrorIs(t, HadamardTo(b, a, a), ErrShapeMismatch)
	assert.ErrorIs(t, ScaleTo(b, a, 1), ErrShapeMismatch)
	assert.ErrorIs(t, ApplyTo(b, a, Sigmoid), ErrShapeMismatch)
}

func TestSigmoid(t *testing.T) {
	assert.InDelta(t, 0.5, Sigmoid(0), 1e-12)
	assert.InDelta(t, 0.25, SigmoidPrime(0), 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(-2)), Sigmoid(2), 1e-12)
	assert.InDelta(t, 1.0, Sigmoid(50), 1e-12)
	assert.InDelta(t, 0.0, Sigmoid(-50), 1e-12)

	// Symmetry: σ(-x) = 1 - σ(x), σ'(-x) = σ'(x).
	for _, x := range []float64{0.1, 1, 3.5} {
		assert.InDelta(t, 1-Sigmoid(x), Sigmoid(-x), 1e-12)
		assert.InDelta(t, SigmoidPrime(x), SigmoidPrime(-x), 1e-12)
	}
}
