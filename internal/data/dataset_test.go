package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/backprop/internal/matrix"
)

func sampleN(n int) []Sample {
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = Sample{
			Input:  matrix.Must(matrix.NewWithValues(2, 1, float64(i), float64(-i))),
			Target: matrix.Must(matrix.NewWithValues(1, 1, float64(i))),
		}
	}
	return samples
}

func TestNew(t *testing.T) {
	ds, err := New(sampleN(5))
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, matrix.Shape{Height: 2, Width: 1}, ds.InputShape())
	assert.Equal(t, matrix.Shape{Height: 1, Width: 1}, ds.OutputShape())

	s, err := ds.At(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Target.Data()[0])

	_, err = ds.At(5)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = ds.At(-1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, matrix.ErrConfiguration)

	samples := sampleN(3)
	samples[2].Input = matrix.Must(matrix.New(3, 1))
	_, err = New(samples)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	samples = sampleN(3)
	samples[1].Target = matrix.Must(matrix.New(1, 2))
	_, err = New(samples)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	samples = sampleN(2)
	samples[0].Target = nil
	_, err = New(samples)
	assert.ErrorIs(t, err, matrix.ErrConfiguration)
}

func TestShuffle(t *testing.T) {
	ds, err := New(sampleN(50))
	require.NoError(t, err)

	shuffled := ds.Shuffle(matrix.NewSampler(1))
	require.Equal(t, ds.Len(), shuffled.Len())

	seen := make(map[float64]bool)
	moved := 0
	for i := 0; i < shuffled.Len(); i++ {
		_, target := shuffled.Sample(i)
		v := target.Data()[0]
		seen[v] = true
		if v != float64(i) {
			moved++
		}
	}
	assert.Len(t, seen, 50, "shuffle must be a permutation")
	assert.Positive(t, moved)

	// The source keeps its order.
	_, target := ds.Sample(7)
	assert.Equal(t, 7.0, target.Data()[0])

	again := ds.Shuffle(matrix.NewSampler(1))
	for i := 0; i < ds.Len(); i++ {
		_, a := shuffled.Sample(i)
		_, b := again.Sample(i)
		assert.True(t, matrix.Equal(a, b))
	}
}

func TestTrim(t *testing.T) {
	ds, err := New(sampleN(10))
	require.NoError(t, err)

	head, err := ds.Trim(4)
	require.NoError(t, err)
	assert.Equal(t, 4, head.Len())
	_, target := head.Sample(3)
	assert.Equal(t, 3.0, target.Data()[0])

	empty, err := ds.Trim(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, ds.InputShape(), empty.InputShape())
	assert.Equal(t, ds.OutputShape(), empty.OutputShape())

	_, err = ds.Trim(11)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = ds.Trim(-1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

func TestSplit(t *testing.T) {
	ds, err := New(sampleN(10))
	require.NoError(t, err)

	train, val, err := ds.Split(0.2)
	require.NoError(t, err)
	assert.Equal(t, 8, train.Len())
	assert.Equal(t, 2, val.Len())
	_, target := val.Sample(0)
	assert.Equal(t, 8.0, target.Data()[0])

	_, _, err = ds.Split(1.5)
	assert.ErrorIs(t, err, matrix.ErrConfiguration)
}

func TestXOR(t *testing.T) {
	ds, err := XOR(200, matrix.NewSampler(3))
	require.NoError(t, err)
	assert.Equal(t, 200, ds.Len())
	assert.Equal(t, matrix.Shape{Height: 2, Width: 1}, ds.InputShape())
	assert.Equal(t, matrix.Shape{Height: 1, Width: 1}, ds.OutputShape())

	patterns := make(map[[2]float64]bool)
	for i := 0; i < ds.Len(); i++ {
		input, target := ds.Sample(i)
		a, b := input.Data()[0], input.Data()[1]
		require.Contains(t, []float64{0, 1}, a)
		require.Contains(t, []float64{0, 1}, b)
		want := 0.0
		if a != b {
			want = 1
		}
		assert.Equal(t, want, target.Data()[0])
		patterns[[2]float64{a, b}] = true
	}
	assert.Len(t, patterns, 4, "200 draws should cover every input pattern")

	_, err = XOR(0, nil)
	assert.ErrorIs(t, err, matrix.ErrConfiguration)
}

func TestSynthetic(t *testing.T) {
	ds := Synthetic()
	require.Equal(t, MNISTClasses, ds.Len())
	assert.Equal(t, 784, ds.InputShape().Height)
	for i := 0; i < ds.Len(); i++ {
		_, target := ds.Sample(i)
		assert.Equal(t, i, matrix.MaxIndex(target))
	}
}
