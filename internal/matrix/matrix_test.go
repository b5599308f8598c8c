package matrix

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipUnchecked skips tests that assert on validation errors in nocheck builds.
func skipUnchecked(t *testing.T) {
	t.Helper()
	if !Checked() {
		t.Skip("validation compiled out by the nocheck tag")
	}
}

func TestNew(t *testing.T) {
	m, err := New(3, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, Shape{3, 2}, m.Shape())
	for _, v := range m.Data() {
		assert.Zero(t, v)
	}
}

func TestNew_InvalidShape(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 3},
		{"zero width", 3, 0},
		{"negative height", -1, 3},
		{"negative width", 2, -4},
		{"element count overflows by one row", math.MaxInt/2 + 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.height, tt.width)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestNewFunc_RowMajorOrder(t *testing.T) {
	calls := 0
	m, err := NewFunc(2, 3, func() float64 {
		calls++
		return float64(calls)
	})
	require.NoError(t, err)

	assert.Equal(t, 6, calls)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestNewFunc_NilFill(t *testing.T) {
	_, err := NewFunc(2, 2, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewFromSlice(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	m, err := NewFromSlice(values, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 2, m.Width())

	// The matrix owns a copy.
	values[0] = 100
	v, err := m.AtIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = NewFromSlice([]float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewFromSlice(nil, 1)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewFromSlice([]float64{1}, 0)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewWithValues(t *testing.T) {
	m, err := NewWithValues(2, 2, 1, 2, 3, 4)
	require.NoError(t, err)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = NewWithValues(2, 2, 1, 2, 3)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewWithValues(0, 2)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestOneHot(t *testing.T) {
	m, err := OneHot(3, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, m.Data())
	assert.Equal(t, Shape{3, 1}, m.Shape())

	_, err = OneHot(3, 1, 3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(New(1, 1)) })
	assert.Panics(t, func() { Must(New(0, 1)) })
}

func TestAccess(t *testing.T) {
	m := Must(New(2, 3))

	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	v, err = m.AtIndex(5)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	require.NoError(t, m.SetIndex(0, -1))
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)
}

func TestAccess_OutOfRange(t *testing.T) {
	skipUnchecked(t)
	m := Must(New(2, 3))

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.At(0, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.At(-1, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), ErrIndexOutOfRange)
	_, err = m.AtIndex(6)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, m.SetIndex(-1, 0), ErrIndexOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	m := Must(NewWithValues(1, 2, 1, 2))
	c := m.Clone()
	require.NoError(t, c.SetIndex(0, 9))

	assert.Equal(t, []float64{1, 2}, m.Data())
	assert.Equal(t, []float64{9, 2}, c.Data())
}

func TestCopyFromAndZero(t *testing.T) {
	src := Must(NewWithValues(2, 1, 3, 4))
	dst := Must(New(2, 1))

	require.NoError(t, dst.CopyFrom(src))
	assert.True(t, Equal(src, dst))

	dst.Zero()
	assert.Equal(t, []float64{0, 0}, dst.Data())

	if Checked() {
		err := Must(New(1, 2)).CopyFrom(src)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
	}
}

func TestEqual(t *testing.T) {
	a := Must(NewWithValues(2, 1, 1, 2))
	assert.True(t, Equal(a, a.Clone()))
	assert.False(t, Equal(a, Must(NewWithValues(1, 2, 1, 2))))
	assert.False(t, Equal(a, Must(NewWithValues(2, 1, 1, 3))))
}

func TestString(t *testing.T) {
	m := Must(NewWithValues(2, 2, 1, 2.5, -3, 4))
	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	assert.Equal(t, []string{"1 2.5", "-3 4"}, lines)
}

func TestShape(t *testing.T) {
	assert.Equal(t, 12, Shape{3, 4}.Size())
	assert.Equal(t, "3x4", Shape{3, 4}.String())
	assert.NoError(t, Shape{1, 1}.Validate())
	assert.ErrorIs(t, Shape{0, 1}.Validate(), ErrConfiguration)
}
